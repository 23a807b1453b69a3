package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikecappella27/life-rpg/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "liferpg",
	Short:         "Life RPG — gamified habit and quest tracker",
	Long:          "Life RPG turns your real life into a role-playing game: log activities,\ncomplete quests, keep streaks, and level up six character stats.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newLogCmd(),
		newUnlogCmd(),
		newQuestCmd(),
		newDailyCmd(),
		newSkillsCmd(),
		newTrophiesCmd(),
		newActivityCmd(),
		newExportCmd(),
		newImportCmd(),
		newBoardCmd(),
		newSetupCmd(),
		newEnergyCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
