package config

import (
	_ "embed"
)

//go:embed defaults/clicker.yaml
var defaultClickerYAML []byte

// DefaultClickerConfig returns the default Adventure Clicker configuration.
func DefaultClickerConfig() ClickerConfig {
	return ClickerConfig{
		Display: Display{
			Width:      800,
			Height:     400,
			Title:      "Jumping Dino Game",
			TickRate:   30,
			CellWidth:  10,
			CellHeight: 20,
		},
		Physics: Physics{
			Gravity:      1,
			JumpStrength: 15,
		},
		Player: Player{
			X:            100,
			Width:        40,
			Height:       40,
			GroundOffset: 50,
		},
		Obstacles: Obstacles{
			Width:         20,
			Height:        40,
			Speed:         5,
			SpawnInterval: 1500,
		},
		Layout: Layout{
			PanelWidth:    200,
			MiddleWidth:   200,
			ButtonInset:   20,
			ButtonTop:     50,
			ButtonWidth:   160,
			ButtonHeight:  40,
			ButtonSpacing: 50,
		},
		Upgrades: []string{"Upgrade 1", "Upgrade 2", "Upgrade 3"},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultClickerYAML
}
