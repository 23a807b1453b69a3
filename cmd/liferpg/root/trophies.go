package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/ui"
)

func newTrophiesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "trophies",
		Short: "Show unlocked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.eng.State()
			have := make(map[string]bool, len(s.UnlockedAchievements))
			for _, id := range s.UnlockedAchievements {
				have[id] = true
			}

			out := cmd.OutOrStdout()
			defs := engine.Achievements()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Trophies (%d/%d)", len(s.UnlockedAchievements), len(defs))))
			for _, def := range defs {
				if have[def.ID] {
					fmt.Fprintf(out, "- %s %s — %s\n", def.Icon, ui.Gold.Render(def.Name), def.Desc)
				} else if all {
					fmt.Fprintf(out, "- 🔒 %s — %s\n", ui.Muted.Render(def.Name), ui.Muted.Render(def.Desc))
				}
			}
			if !all {
				fmt.Fprintln(out, ui.Dim.Render("\n(use --all to include locked trophies)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include locked trophies")
	return cmd
}
