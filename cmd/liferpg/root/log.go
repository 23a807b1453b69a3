package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/ui"
)

func newLogCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "log [activity-id]",
		Short: "Log an activity (or list the catalog with --list)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if list || len(args) == 0 {
				s := a.eng.State()
				fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Activity Catalog"))
				for _, act := range s.Activities {
					statName := "?"
					if act.Stat >= 0 && act.Stat < len(s.Stats) {
						statName = s.Stats[act.Stat].Name
					}
					fmt.Fprintf(out, "- %-12s %s %s %s\n", act.ID, act.Icon, act.Name,
						ui.Muted.Render(fmt.Sprintf("(+%d %s)", act.XP, statName)))
				}
				return nil
			}

			res, err := a.eng.Dispatch(engine.LogActivity{ActivityID: args[0]})
			if err != nil {
				return err
			}
			a.persist()

			fmt.Fprintf(out, "%s +%d XP\n", ui.IconDone, res.XPAwarded)
			printHighlights(out, res)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List the activity catalog instead of logging")
	return cmd
}

func newUnlogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlog",
		Short: "Delete the most recent activity log entry and reverse its XP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.eng.State()
			if len(s.ActivityLog) == 0 {
				return errors.New("activity log is empty")
			}
			last := s.ActivityLog[len(s.ActivityLog)-1]

			if _, err := a.eng.Dispatch(engine.DeleteLogEntry{LoggedAt: last.LoggedAt}); err != nil {
				return err
			}
			a.persist()

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q (%s, -%d XP refunded)\n",
				last.Name, time.UnixMilli(last.LoggedAt).Format("15:04"), last.XP)
			return nil
		},
	}

	return cmd
}

// printHighlights renders level-up and achievement flashes after a reward.
func printHighlights(out io.Writer, res *engine.Result) {
	if res.LevelUp {
		fmt.Fprintf(out, "%s %s → level %d\n", ui.IconBolt, ui.BadgeLevelUp, res.LevelAfter)
	}
	if res.NewAchievement != nil {
		fmt.Fprintf(out, "%s %s — %s\n", ui.IconTrophy,
			ui.Gold.Render(res.NewAchievement.Name), res.NewAchievement.Desc)
	}
}
