package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show character status, stats, and today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.eng.State()
			lv := engine.ResolveLevel(s.TotalXP)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, fmt.Sprintf("%s «%s»", s.PlayerName, s.Title)))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d  %s  %d/%d XP", lv.Level, ui.ProgressBar(lv.CurrentXP, lv.Needed, 24), lv.CurrentXP, lv.Needed)))
			fmt.Fprintln(out, ui.LabelValue("Total XP", s.TotalXP))
			if s.Settings.EnergyEnabled {
				fmt.Fprintln(out, ui.LabelValue("Energy", ui.IconEnergy+" "+ui.EnergyText(s.Energy, engine.EnergyMax)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Energy", ui.Muted.Render("disabled")))
			}
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d (best %d)", ui.IconStreak, s.Streak, s.LongestStreak)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			for _, st := range s.Stats {
				sl := engine.ResolveLevel(st.XP)
				fmt.Fprintf(out, "- %s %-12s L%-2d %s\n", st.Icon, st.Name, sl.Level, ui.ProgressBar(sl.CurrentXP, sl.Needed, 14))
			}
			fmt.Fprintln(out, "")

			sum := engine.SummarizeToday(s, time.Now())
			fmt.Fprintln(out, ui.H2.Render("☀️ Today"))
			fmt.Fprintf(out, "- XP earned: %d\n", sum.XPEarned)
			fmt.Fprintf(out, "- Activities logged: %d\n", sum.Logged)
			fmt.Fprintf(out, "- Dailies: %d/%d\n", sum.DailiesDone, sum.DailiesTotal)
			fmt.Fprintln(out, "")

			fmt.Fprintf(out, "%s %d active quests, %d completed, %d/%d trophies\n",
				ui.IconQuest, len(s.Quests), len(s.CompletedLog),
				len(s.UnlockedAchievements), len(engine.Achievements()))
			return nil
		},
	}

	return cmd
}
