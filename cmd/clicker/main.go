// clicker is a side-scrolling jumping game with an upgrade panel, played in the terminal.
//
// Usage:
//
//	clicker                  - Play the game (same as "clicker play")
//	clicker play             - Play the game
//	clicker serve            - Start SSH server for remote play
//	clicker scores           - Show the best runs
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 30)
//	--config <path>  - Path to a custom clicker.yaml
//	--db <path>      - Set database path (default: ~/.clicker/runs.db)
//	--log <path>     - Set log file path (default: ~/.clicker/clicker.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clicker",
	Short: "Adventure Clicker - jump over obstacles and collect gold nuggets",
	Long: `Adventure Clicker is a small side-scrolling game for the terminal.
Jump over the obstacles that roll in from the right, earn a gold nugget
for every jump and click the upgrade buttons on the right-hand panel.

Available commands:
  play     - Play the game (default)
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  clicker
  clicker play --fps 60
  clicker serve --ssh :2222
  clicker scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom clicker config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.clicker/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.clicker/clicker.log", "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
