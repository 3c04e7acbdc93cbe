package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the save file",
	Long: `Delete the save file and start over. History in the database is kept.

Examples:
  shift reset
  shift reset --yes`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) {
	savePath := expandHome(flagSavePath)

	if _, err := os.Stat(savePath); os.IsNotExist(err) {
		fmt.Println("No save file found; nothing to reset.")
		return
	}

	if !flagResetYes {
		fmt.Printf("Delete %s? This cannot be undone. [y/N] ", savePath)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	if err := os.Remove(savePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting save file: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Save file deleted. First shift starts fresh.")
}
