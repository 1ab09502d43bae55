package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/adventure-clicker/internal/config"
	"github.com/vovakirdan/adventure-clicker/internal/core"
	"github.com/vovakirdan/adventure-clicker/internal/games/clicker"
	"github.com/vovakirdan/adventure-clicker/internal/logging"
	"github.com/vovakirdan/adventure-clicker/internal/platform/tui"
	"github.com/vovakirdan/adventure-clicker/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Adventure Clicker.

Controls:
  Space/Up/W  - Jump
  Mouse       - Click an upgrade button
  Ctrl+S      - Save a screenshot to ~/.clicker/screenshots
  Q/Ctrl+C    - Quit

The game ends on the first collision; the final score and gold nuggets
stay on screen until you quit. Every finished run is recorded in the
run history (see 'clicker scores').

Examples:
  clicker play
  clicker play --fps 60
  clicker play --config ./my-clicker.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// gameRunner runs one game to completion. tui.Run in production.
type gameRunner func(game *clicker.Game, store tui.RunRecorder, logger *log.Logger, cfg core.RuntimeConfig) error

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: clicker needs an interactive terminal")
		os.Exit(1)
	}

	if err := play(tui.Run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play loads the config, opens the log file and run history, and runs the
// game. Both are closed before it returns.
func play(run gameRunner) error {
	gameCfg, err := config.LoadClicker(flagConfig)
	if err != nil {
		return err
	}

	// Warn early if the terminal cannot fit the playfield
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < gameCfg.Columns() || h < gameCfg.Rows()+1 {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n",
				w, h, gameCfg.Columns(), gameCfg.Rows()+1)
		}
	}

	logger, logCloser, err := logging.NewFile(flagLogPath, "clicker")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger = logging.Discard()
	} else {
		defer logCloser.Close()
	}

	// Open run history
	var recorder tui.RunRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		recorder = store
	}

	runtime := core.RuntimeConfig{
		TickRate: flagFPS,
		Clock:    core.NewSystemClock(),
	}

	if err := run(clicker.New(gameCfg), recorder, logger, runtime); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
