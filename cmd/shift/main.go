// shift is a terminal idle clicker about surviving warehouse shifts.
//
// Usage:
//
//	shift play              - Start (or resume) a shift
//	shift stats             - Browse prestige and inspection history
//	shift achievements      - List achievements and unlock state
//	shift reset             - Wipe the save file
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--save <path>    - Set save file path (default: ~/.purple-shift/save.json)
//	--db <path>      - Set history database path (default: ~/.purple-shift/history.db)
//	--config <path>  - Path to a custom balance YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagSavePath string
	flagDBPath   string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shift",
	Short: "Purple Shift - an idle warehouse clicker for your terminal",
	Long: `Purple Shift is a terminal idle clicker. Pack boxes, raise your KPI,
hire help, survive inspections, and prestige into purple tokens.

Available commands:
  play          - Start or resume a shift
  stats         - Browse prestige and inspection history
  achievements  - List achievements and unlock state
  reset         - Wipe the save file

Examples:
  shift play
  shift play --seed 42 --fps 30
  shift play --config ./my-balance.yaml
  shift stats
  shift reset --yes`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "~/.purple-shift/save.json", "Path to the save file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.purple-shift/history.db", "Path to the history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom balance YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(resetCmd)
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
