// Package config provides YAML-based game configuration loading for the
// clicker game.
package config

import (
	"errors"
	"fmt"
)

// ClickerConfig contains all configuration for Adventure Clicker.
type ClickerConfig struct {
	Display   Display   `yaml:"display"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Layout    Layout    `yaml:"layout"`
	Upgrades  []string  `yaml:"upgrades"` // Button labels, top to bottom
}

// Display defines the logical drawing surface and its terminal mapping.
type Display struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Title      string  `yaml:"title"`
	TickRate   int     `yaml:"tick_rate"`
	CellWidth  float64 `yaml:"cell_width"`  // Logical units per terminal column
	CellHeight float64 `yaml:"cell_height"` // Logical units per terminal row
}

// Physics defines the jump kinematics.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
}

// Player defines the player box.
type Player struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from the bottom edge to the ground line
}

// Obstacles defines obstacle size, motion and spawning.
type Obstacles struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int64   `yaml:"spawn_interval_ms"`
}

// Layout defines the side panels and the upgrade button column.
type Layout struct {
	PanelWidth    float64 `yaml:"panel_width"`  // Right-hand upgrade panel
	MiddleWidth   float64 `yaml:"middle_width"` // Middle info panel
	ButtonInset   float64 `yaml:"button_inset"` // Distance from the panel's left edge
	ButtonTop     float64 `yaml:"button_top"`
	ButtonWidth   float64 `yaml:"button_width"`
	ButtonHeight  float64 `yaml:"button_height"`
	ButtonSpacing float64 `yaml:"button_spacing"` // Distance between button tops
}

// GroundY returns the y-coordinate of the ground line.
func (c ClickerConfig) GroundY() float64 {
	return float64(c.Display.Height) - c.Player.GroundOffset
}

// GameWidth returns the width of the play area left of the panels.
func (c ClickerConfig) GameWidth() float64 {
	return float64(c.Display.Width) - c.Layout.PanelWidth - c.Layout.MiddleWidth
}

// PanelX returns the x-coordinate of the upgrade panel's left edge.
func (c ClickerConfig) PanelX() float64 {
	return float64(c.Display.Width) - c.Layout.PanelWidth
}

// SpawnX returns where new obstacles appear: just left of the upgrade panel.
func (c ClickerConfig) SpawnX() float64 {
	return c.PanelX() - 1
}

// Columns returns the terminal width needed to show the whole surface.
func (c ClickerConfig) Columns() int {
	return int(float64(c.Display.Width) / c.Display.CellWidth)
}

// Rows returns the terminal height needed to show the whole surface.
func (c ClickerConfig) Rows() int {
	return int(float64(c.Display.Height) / c.Display.CellHeight)
}

// Validate checks that the config describes a playable game.
func (c ClickerConfig) Validate() error {
	var errs []error

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size %dx%d must be positive", c.Display.Width, c.Display.Height))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate %d must be positive", c.Display.TickRate))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, errors.New("cell_width and cell_height must be positive"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity %v must be positive", c.Physics.Gravity))
	}
	if c.Physics.JumpStrength <= 0 {
		errs = append(errs, fmt.Errorf("jump_strength %v must be positive", c.Physics.JumpStrength))
	}
	if g := c.GroundY(); g <= 0 || g >= float64(c.Display.Height) {
		errs = append(errs, fmt.Errorf("ground_offset %v puts the ground line outside the display", c.Player.GroundOffset))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, errors.New("obstacle size must be positive"))
	}
	if c.Obstacles.Speed <= 0 {
		errs = append(errs, fmt.Errorf("obstacle speed %v must be positive", c.Obstacles.Speed))
	}
	if c.Obstacles.SpawnInterval < 0 {
		errs = append(errs, fmt.Errorf("spawn_interval_ms %d must not be negative", c.Obstacles.SpawnInterval))
	}
	if c.Layout.ButtonWidth <= 0 || c.Layout.ButtonHeight <= 0 {
		errs = append(errs, errors.New("button size must be positive"))
	}
	if c.Layout.ButtonSpacing <= 0 {
		errs = append(errs, fmt.Errorf("button_spacing %v must be positive", c.Layout.ButtonSpacing))
	}
	if c.GameWidth() <= 0 {
		errs = append(errs, errors.New("panels leave no room for the play area"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid clicker config: %w", errors.Join(errs...))
	}
	return nil
}
