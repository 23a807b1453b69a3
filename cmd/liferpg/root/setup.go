package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/ui"
)

func newSetupCmd() *cobra.Command {
	var name string
	var title string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set your character name and title",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := a.eng.Dispatch(engine.SetProfile{PlayerName: name, Title: title})
			if err != nil {
				return err
			}
			a.persist()

			fmt.Fprintf(cmd.OutOrStdout(), "%s You are %s «%s»\n",
				ui.IconSparkle, res.State.PlayerName, res.State.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Character name")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Character title")
	return cmd
}

func newEnergyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "energy <on|off>",
		Short: "Enable or disable the energy system",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				return errors.New("argument must be on or off")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			enabled := args[0] == "on"
			if _, err := a.eng.Dispatch(engine.SetEnergyEnabled{Enabled: enabled}); err != nil {
				return err
			}
			a.persist()

			if enabled {
				fmt.Fprintln(cmd.OutOrStdout(), ui.IconEnergy+" Energy system enabled.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Energy system disabled; actions no longer cost energy.")
			}
			return nil
		},
	}

	return cmd
}

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase the save and start a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this erases all progress; pass --yes to confirm")
			}
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := a.eng.Dispatch(engine.ResetGame{}); err != nil {
				return err
			}
			a.persist()

			fmt.Fprintln(cmd.OutOrStdout(), ui.IconSparkle+" A new adventure begins.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return cmd
}
