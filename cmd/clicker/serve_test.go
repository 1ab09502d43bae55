package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/adventure-clicker/internal/config"
	"github.com/vovakirdan/adventure-clicker/internal/platform/tui"
)

func TestServerConfigFlags(t *testing.T) {
	oldAddr, oldKey, oldIdle, oldDB, oldFPS := flagSSHAddr, flagHostKey, flagIdleTimeout, flagDBPath, flagFPS
	t.Cleanup(func() {
		flagSSHAddr, flagHostKey, flagIdleTimeout, flagDBPath, flagFPS = oldAddr, oldKey, oldIdle, oldDB, oldFPS
	})

	defaults := tui.DefaultSSHServerConfig()
	gameCfg := config.DefaultClickerConfig()

	t.Run("unset flags keep defaults", func(t *testing.T) {
		flagSSHAddr, flagHostKey, flagIdleTimeout, flagDBPath, flagFPS = "", "", 0, "", 0

		cfg := serverConfig(gameCfg)
		if cfg.Address != defaults.Address || cfg.DBPath != defaults.DBPath || cfg.IdleTimeout != defaults.IdleTimeout {
			t.Errorf("serverConfig() = %+v, expected defaults %+v", cfg, defaults)
		}
		if cfg.Game.Display.TickRate != gameCfg.Display.TickRate {
			t.Errorf("tick rate = %d, expected %d", cfg.Game.Display.TickRate, gameCfg.Display.TickRate)
		}
	})

	t.Run("flags override", func(t *testing.T) {
		flagSSHAddr, flagHostKey, flagIdleTimeout, flagDBPath, flagFPS = ":2222", "/tmp/key", 5, "/tmp/runs.db", 60

		cfg := serverConfig(gameCfg)
		if cfg.Address != ":2222" || cfg.HostKeyPath != "/tmp/key" || cfg.DBPath != "/tmp/runs.db" {
			t.Errorf("serverConfig() = %+v, expected flag values", cfg)
		}
		if cfg.IdleTimeout != 5*time.Minute {
			t.Errorf("IdleTimeout = %v, expected 5m", cfg.IdleTimeout)
		}
		if cfg.Game.Display.TickRate != 60 {
			t.Errorf("tick rate = %d, expected 60", cfg.Game.Display.TickRate)
		}
	})
}
