package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/ui"
)

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Manage daily quests (recurring habits)",
	}
	cmd.AddCommand(
		newDailyAddCmd(),
		newDailyListCmd(),
		newDailyDoCmd(),
		newDailyRmCmd(),
	)
	return cmd
}

func newDailyAddCmd() *cobra.Command {
	var stat string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a daily quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			statIdx, err := resolveStat(a.eng.State(), stat)
			if err != nil {
				return err
			}
			if _, err := a.eng.Dispatch(engine.AddDailyQuest{Title: args[0], StatIndex: statIdx}); err != nil {
				return err
			}
			a.persist()

			fmt.Fprintf(cmd.OutOrStdout(), "%s Daily added: %s (+%d XP each day)\n",
				ui.IconDaily, args[0], engine.DailyQuestXP)
			return nil
		},
	}

	cmd.Flags().StringVarP(&stat, "stat", "s", "0", "Stat to reward (index or name)")
	return cmd
}

func newDailyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List daily quests and today's completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.eng.State()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDaily, "Daily Quests"))
			if len(s.DailyQuests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for i, d := range s.DailyQuests {
				mark := "○"
				if d.CompletedToday {
					mark = ui.Good.Render("●")
				}
				statName := "?"
				if d.StatIndex >= 0 && d.StatIndex < len(s.Stats) {
					statName = s.Stats[d.StatIndex].Name
				}
				fmt.Fprintf(out, "%2d. %s %s %s\n", i+1, mark, d.Title, ui.Muted.Render("("+statName+")"))
			}
			return nil
		},
	}

	return cmd
}

func newDailyDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <number|id>",
		Short: "Complete a daily quest for today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("daily quest number or id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := matchDaily(a.eng.State(), args[0])
			if err != nil {
				return err
			}
			res, err := a.eng.Dispatch(engine.CompleteDailyQuest{DailyID: id})
			if err != nil {
				return err
			}
			a.persist()

			fmt.Fprintf(cmd.OutOrStdout(), "%s +%d XP\n", ui.IconDone, res.XPAwarded)
			printHighlights(cmd.OutOrStdout(), res)
			return nil
		},
	}

	return cmd
}

func newDailyRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <number|id>",
		Short: "Delete a daily quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("daily quest number or id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := matchDaily(a.eng.State(), args[0])
			if err != nil {
				return err
			}
			if _, err := a.eng.Dispatch(engine.DeleteDailyQuest{DailyID: id}); err != nil {
				return err
			}
			a.persist()

			fmt.Fprintln(cmd.OutOrStdout(), "Daily quest removed.")
			return nil
		},
	}

	return cmd
}
