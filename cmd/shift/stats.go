package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/purple-shift/internal/platform/tui"
	"github.com/vovakirdan/purple-shift/internal/storage"
)

var flagStatsPlain bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Browse prestige and inspection history",
	Long: `Open the interactive stats board: aggregate totals plus scrollable
tables of past prestige runs and inspection results.

Examples:
  shift stats
  shift stats --plain
  shift stats --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsPlain, "plain", false, "Print the history as plain text instead of the interactive board")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsPlain {
		printStats(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunStats(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing stats: %v\n", err)
		os.Exit(1)
	}
}

// printStats dumps totals and the ten most recent entries of each table.
func printStats(store *storage.Store) {
	if totals, err := store.GetTotals(); err == nil {
		fmt.Printf("Runs: %d | Tokens earned: %d | Best run: %d | Inspections passed: %d/%d\n",
			totals.Runs, totals.TokensEarned, totals.BestTokens,
			totals.BossWon, totals.BossAttempts)
		fmt.Println()
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Prestige runs")
	if len(runs) == 0 {
		fmt.Println("  No runs recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-8s  %-12s  %-5s  %-5s  %s\n", "#", "Tokens", "Salary", "KPI", "Won", "Date")
		for i, r := range runs {
			fmt.Printf("  %-4d  %-8d  %-12.0f  %-5d  %-5d  %s\n",
				i+1, r.Tokens, r.Salary, r.KPI, r.BossWins, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
	fmt.Println()

	bosses, err := store.RecentBossResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving inspections: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Inspections")
	if len(bosses) == 0 {
		fmt.Println("  No inspections recorded yet.")
		return
	}
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-8s  %s\n", "#", "Result", "Goal", "Packed", "Amount", "Date")
	for i, r := range bosses {
		result := "failed"
		if r.Won {
			result = "passed"
		}
		fmt.Printf("  %-4d  %-8s  %-8.0f  %-8.0f  %-8.0f  %s\n",
			i+1, result, r.Goal, r.Progress, r.Amount, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
