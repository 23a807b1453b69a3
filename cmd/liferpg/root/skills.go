package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikecappella27/life-rpg/internal/engine"
	"github.com/mikecappella27/life-rpg/internal/ui"
)

func newSkillsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Show skill trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			s := a.eng.State()
			out := cmd.OutOrStdout()
			for i := range s.SkillTrees {
				t := &s.SkillTrees[i]
				done, total := engine.TreeProgress(t)
				fmt.Fprintf(out, "%s\n", ui.H2.Render(fmt.Sprintf("%s %s (%d/%d) — %s", t.Icon, t.Name, done, total, t.Desc)))
				for j := range t.Nodes {
					n := &t.Nodes[j]
					var badge string
					switch engine.NodeStatusOf(s, t, n) {
					case engine.NodeUnlocked:
						badge = ui.Good.Render("✓")
					case engine.NodeReady:
						badge = ui.Gold.Render("◆")
					default:
						badge = ui.Muted.Render("🔒")
					}
					fmt.Fprintf(out, "  %s %-8s T%d %s %s\n", badge, n.ID, n.Tier, n.Name, ui.Muted.Render(reqText(n)))
				}
				fmt.Fprintln(out, "")
			}
			fmt.Fprintln(out, ui.Dim.Render("◆ = ready to unlock: liferpg skills unlock <tree> <node>"))
			return nil
		},
	}

	cmd.AddCommand(newSkillsUnlockCmd())
	return cmd
}

func reqText(n *engine.SkillNode) string {
	if len(n.Req) == 0 {
		return ""
	}
	out := "(needs"
	for name, lv := range n.Req {
		out += fmt.Sprintf(" %s %d", name, lv)
	}
	return out + ")"
}

func newSkillsUnlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock <tree> <node>",
		Short: "Unlock a skill node",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("tree id and node id are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := a.eng.Dispatch(engine.UnlockSkillNode{TreeID: args[0], NodeID: args[1]})
			if err != nil {
				return err
			}
			a.persist()

			fmt.Fprintf(cmd.OutOrStdout(), "%s Unlocked %s/%s\n", ui.IconSparkle, args[0], args[1])
			printHighlights(cmd.OutOrStdout(), res)
			return nil
		},
	}

	return cmd
}
