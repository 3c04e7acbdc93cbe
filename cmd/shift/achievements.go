package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/purple-shift/internal/config"
	"github.com/vovakirdan/purple-shift/internal/game"
	"github.com/vovakirdan/purple-shift/internal/save"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and unlock state",
	Long: `List every achievement with its income bonus and whether the saved
progress satisfies it. Session-only counters (clicks, inspection wins)
read as zero here, so those achievements only show unlocked in-game.

Examples:
  shift achievements`,
	Args: cobra.NoArgs,
	Run:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) {
	bal, err := config.LoadBalance(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balance config: %v\n", err)
		os.Exit(1)
	}

	savePath := expandHome(flagSavePath)
	st, err := save.Load(savePath, game.DefaultSaveState(bal))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read save file: %v\n", err)
		st = game.DefaultSaveState(bal)
	}

	total := 0
	for _, n := range st.Buildings {
		total += n
	}
	progress := game.Progress{
		KPI:            st.KPI,
		TotalBuildings: total,
		PrestigeTokens: st.Prestige,
	}

	unlockedCount := 0
	fmt.Println("Achievements")
	fmt.Println()
	for _, a := range game.Achievements() {
		mark := "[ ]"
		if a.Met(progress) {
			mark = "[x]"
			unlockedCount++
		}
		fmt.Printf("  %s %-22s +%.0f%%  %s\n", mark, a.Name, a.Bonus*100, a.Desc)
	}
	fmt.Println()
	fmt.Printf("Unlocked: %d/%d\n", unlockedCount, len(game.Achievements()))
}
