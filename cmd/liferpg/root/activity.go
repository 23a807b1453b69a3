package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/ui"
)

func newActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage the activity catalog",
	}
	cmd.AddCommand(
		newActivityAddCmd(),
		newActivityEditCmd(),
		newActivityRmCmd(),
	)
	return cmd
}

func newActivityAddCmd() *cobra.Command {
	var icon string
	var stat string
	var xp int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom activity",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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
			res, err := a.eng.Dispatch(engine.AddActivity{
				Name: args[0],
				Icon: icon,
				Stat: statIdx,
				XP:   xp,
			})
			if err != nil {
				return err
			}
			a.persist()

			added := res.State.Activities[len(res.State.Activities)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s %s\n", ui.IconPlus, added.Icon, added.Name,
				ui.Muted.Render(fmt.Sprintf("(id %s, +%d XP)", shortID(added.ID), added.XP)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", "", "Icon (emoji)")
	cmd.Flags().StringVarP(&stat, "stat", "s", "0", "Stat to reward (index or name)")
	cmd.Flags().IntVarP(&xp, "xp", "x", 0, "XP per log (default 15)")
	return cmd
}

func newActivityEditCmd() *cobra.Command {
	var name string
	var icon string
	var stat string
	var xp int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a catalog activity (past log entries are untouched)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("activity id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			statIdx := -1
			if stat != "" {
				statIdx, err = resolveStat(a.eng.State(), stat)
				if err != nil {
					return err
				}
			}
			if _, err := a.eng.Dispatch(engine.EditActivity{
				ActivityID: args[0],
				Name:       name,
				Icon:       icon,
				Stat:       statIdx,
				XP:         xp,
			}); err != nil {
				return err
			}
			a.persist()

			fmt.Fprintln(cmd.OutOrStdout(), "Activity updated.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "New icon")
	cmd.Flags().StringVarP(&stat, "stat", "s", "", "New stat (index or name)")
	cmd.Flags().IntVarP(&xp, "xp", "x", 0, "New XP per log")
	return cmd
}

func newActivityRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a catalog activity (log history stays)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("activity id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := a.eng.Dispatch(engine.DeleteActivity{ActivityID: args[0]}); err != nil {
				return err
			}
			a.persist()

			fmt.Fprintln(cmd.OutOrStdout(), "Activity removed from catalog.")
			return nil
		},
	}

	return cmd
}
