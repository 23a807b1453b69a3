package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage one-off quests",
	}
	cmd.AddCommand(
		newQuestAddCmd(),
		newQuestListCmd(),
		newQuestDoCmd(),
		newQuestRmCmd(),
	)
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var typ string
	var stat string
	var desc string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
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
			res, err := a.eng.Dispatch(engine.AddQuest{
				Title:     args[0],
				Type:      typ,
				StatIndex: statIdx,
				Desc:      desc,
			})
			if err != nil {
				return err
			}
			a.persist()

			q := res.State.Quests[len(res.State.Quests)-1]
			qt := engine.QuestTypeByKey(q.Type)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added [%s] %s %s\n",
				qt.Icon, ui.QuestTypeText(q.Type), q.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, +%d XP on completion)", shortID(q.ID), qt.XP)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "side", "Quest type (main|side|boss|shadow)")
	cmd.Flags().StringVarP(&stat, "stat", "s", "0", "Stat to reward (index or name)")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	return cmd
}

func newQuestListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.eng.State()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Active Quests"))
			if len(s.Quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, q := range s.Quests {
				qt := engine.QuestTypeByKey(q.Type)
				statName := "?"
				if q.StatIndex >= 0 && q.StatIndex < len(s.Stats) {
					statName = s.Stats[q.StatIndex].Name
				}
				fmt.Fprintf(out, "- %s [%s] %s %s\n", shortID(q.ID), ui.QuestTypeText(q.Type), q.Title,
					ui.Muted.Render(fmt.Sprintf("(+%d %s, costs %d energy)", qt.XP, statName, qt.EnergyCost)))
			}
			return nil
		},
	}

	return cmd
}

func newQuestDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := matchQuest(a.eng.State(), args[0])
			if err != nil {
				return err
			}
			res, err := a.eng.Dispatch(engine.CompleteQuest{QuestID: id})
			if err != nil {
				return err
			}
			a.persist()

			fmt.Fprintf(cmd.OutOrStdout(), "%s Quest complete: +%d XP\n", ui.IconDone, res.XPAwarded)
			printHighlights(cmd.OutOrStdout(), res)
			return nil
		},
	}

	return cmd
}

func newQuestRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Abandon a quest (no reward)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := matchQuest(a.eng.State(), args[0])
			if err != nil {
				return err
			}
			if _, err := a.eng.Dispatch(engine.DeleteQuest{QuestID: id}); err != nil {
				return err
			}
			a.persist()

			fmt.Fprintln(cmd.OutOrStdout(), "Quest abandoned.")
			return nil
		},
	}

	return cmd
}
