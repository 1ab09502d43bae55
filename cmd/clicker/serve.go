package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/adventure-clicker/internal/config"
	"github.com/vovakirdan/adventure-clicker/internal/logging"
	"github.com/vovakirdan/adventure-clicker/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the clicker SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game. Runs from every session are
recorded in the same run history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.clicker/host_key

Examples:
  clicker serve                           # Listen on :23235 with auto-generated key
  clicker serve --ssh :2222               # Listen on port 2222
  clicker serve --host-key ./my_host_key  # Use specific host key
  clicker serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadClicker(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := serverConfig(gameCfg)

	logger := logging.NewStderr("clicker-ssh")

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting clicker SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = server.ListenAndServe(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// serverConfig starts from the server defaults and applies the flags that
// were set.
func serverConfig(gameCfg config.ClickerConfig) tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Game = gameCfg
	cfg.HostKeyPath = flagHostKey
	if flagFPS > 0 {
		cfg.Game.Display.TickRate = flagFPS
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	return cfg
}
