package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			persist := func(s *engine.SaveState) {
				a.store.Persist(a.ctx, s)
			}
			return tui.RunBoard(a.eng, persist, a.cfg.TickInterval.Duration, cmd.OutOrStdout())
		},
	}

	return cmd
}
