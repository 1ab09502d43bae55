package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultClickerConfig()) {
		t.Errorf("embedded YAML differs from DefaultClickerConfig():\n%+v\n%+v", cfg, DefaultClickerConfig())
	}
}

func TestLoadClickerFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())

	cfg, err := LoadClicker("")
	if err != nil {
		t.Fatalf("LoadClicker() failed: %v", err)
	}
	if cfg.Display.Width != 800 || cfg.Display.Height != 400 {
		t.Errorf("unexpected display size %dx%d", cfg.Display.Width, cfg.Display.Height)
	}
}

func TestLoadClickerUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	testChdir(t, t.TempDir())

	dir := filepath.Join(home, ".clicker", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("obstacles:\n  speed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadClicker("")
	if err != nil {
		t.Fatalf("LoadClicker() failed: %v", err)
	}
	if cfg.Obstacles.Speed != 7 {
		t.Errorf("Obstacles.Speed = %v, expected 7", cfg.Obstacles.Speed)
	}
}

func TestLoadClickerCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  jump_strength: 20\nupgrades:\n  - \"Boots\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadClicker(path)
	if err != nil {
		t.Fatalf("LoadClicker() failed: %v", err)
	}
	if cfg.Physics.JumpStrength != 20 {
		t.Errorf("JumpStrength = %v, expected 20", cfg.Physics.JumpStrength)
	}
	if cfg.Physics.Gravity != 1 {
		t.Errorf("Gravity should keep its default, got %v", cfg.Physics.Gravity)
	}
	if len(cfg.Upgrades) != 1 || cfg.Upgrades[0] != "Boots" {
		t.Errorf("Upgrades = %v, expected [Boots]", cfg.Upgrades)
	}
}

func TestLoadClickerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadClicker(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("display: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadClicker(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"zero speed", "obstacles:\n  speed: 0\n", "speed"},
		{"zero gravity", "physics:\n  gravity: 0\n", "gravity"},
		{"negative gravity", "physics:\n  gravity: -1\n", "gravity"},
		{"zero jump strength", "physics:\n  jump_strength: 0\n", "jump_strength"},
		{"ground above display", "player:\n  ground_offset: 400\n", "ground_offset"},
		{"ground below display", "player:\n  ground_offset: -10\n", "ground_offset"},
		{"zero button width", "layout:\n  button_width: 0\n", "button size"},
		{"negative button height", "layout:\n  button_height: -40\n", "button size"},
		{"zero button spacing", "layout:\n  button_spacing: 0\n", "button_spacing"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadClicker(path)
			if err == nil || !strings.Contains(err.Error(), tc.field) {
				t.Errorf("expected %s validation error, got %v", tc.field, err)
			}
		})
	}
}

func TestDerivedGeometry(t *testing.T) {
	cfg := DefaultClickerConfig()

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"ground line", cfg.GroundY(), 350},
		{"play area width", cfg.GameWidth(), 400},
		{"upgrade panel x", cfg.PanelX(), 600},
		{"spawn x", cfg.SpawnX(), 599},
	}
	for _, tc := range tests {
		if tc.got != tc.expected {
			t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.expected)
		}
	}

	if cfg.Columns() != 80 || cfg.Rows() != 20 {
		t.Errorf("terminal size = %dx%d, expected 80x20", cfg.Columns(), cfg.Rows())
	}
}
