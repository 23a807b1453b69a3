package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/storage"
	"github.com/mikecappella27/life-rpg/internal/ui"
)

func newExportCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the save to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			if path == "" {
				path = storage.ExportFilename(time.Now())
			}
			if err := storage.ExportFile(path, a.eng.State()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported to %s\n", ui.IconDone, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "out", "o", "", "Output path (default life-rpg-save-<date>.json)")
	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a save file, replacing the current game",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("save file path is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := storage.ImportFile(args[0])
			if err != nil {
				return err
			}
			if _, err := a.eng.Dispatch(engine.ReplaceState{State: s}); err != nil {
				return err
			}
			// An imported save may be from an earlier day; run the rollover
			// before persisting.
			a.eng.Tick(time.Now())
			a.persist()

			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported save for %s (level %d)\n",
				ui.IconDone, s.PlayerName, engine.ResolveLevel(s.TotalXP).Level)
			return nil
		},
	}

	return cmd
}
