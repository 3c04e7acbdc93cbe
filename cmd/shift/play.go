package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/purple-shift/internal/config"
	"github.com/vovakirdan/purple-shift/internal/core"
	"github.com/vovakirdan/purple-shift/internal/game"
	"github.com/vovakirdan/purple-shift/internal/platform/tui"
	"github.com/vovakirdan/purple-shift/internal/save"
	"github.com/vovakirdan/purple-shift/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume a shift",
	Long: `Start the game, resuming from the save file if one exists.

Controls:
  Space/Enter  - Pack a box
  1-4          - Buy a building (or a meta upgrade when the shop is open)
  K            - Raise KPI
  A            - Buy the auto clicker
  P            - Prestige
  M/Esc        - Toggle the meta shop
  Q/Ctrl+C     - Save and quit

Examples:
  shift play
  shift play --seed 42
  shift play --config ./my-balance.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shift",
	})

	bal, err := config.LoadBalance(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balance config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	savePath := expandHome(flagSavePath)
	st, err := save.Load(savePath, game.DefaultSaveState(bal))
	if err != nil {
		// A broken save must not brick the game; start fresh and say so.
		logger.Warn("could not read save file, starting fresh", "path", savePath, "error", err)
		st = game.DefaultSaveState(bal)
	}

	ctrl := game.NewController(bal, seed, time.Now())
	ctrl.Restore(st)

	// Open history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(tui.NewModel(ctrl, bal, cfg, savePath, store, logger))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
