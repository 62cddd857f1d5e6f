// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import "fmt"

// LaneDodgerConfig contains all configuration for the Lane Dodger game.
// Distances are logical pixels of the playfield, speeds are pixels per tick.
type LaneDodgerConfig struct {
	Screen     LaneDodgerScreen     `yaml:"screen"`
	Player     LaneDodgerPlayer     `yaml:"player"`
	Bullet     LaneDodgerBullet     `yaml:"bullet"`
	Obstacles  LaneDodgerObstacles  `yaml:"obstacles"`
	Collision  LaneDodgerCollision  `yaml:"collision"`
	Background LaneDodgerBackground `yaml:"background"`
	Audio      AudioConfig          `yaml:"audio"`
	Input      InputConfig          `yaml:"input"`
}

// LaneDodgerScreen defines the playfield grid.
type LaneDodgerScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Rows   int `yaml:"rows"` // Row height is Height / Rows
}

// LaneDodgerPlayer defines where the ship sits.
type LaneDodgerPlayer struct {
	StartLane     int `yaml:"start_lane"`
	RowFromBottom int `yaml:"row_from_bottom"`
}

// LaneDodgerBullet defines projectile size and speed.
type LaneDodgerBullet struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// LaneDodgerObstacles defines descending obstacle parameters.
type LaneDodgerObstacles struct {
	Speed        int `yaml:"speed"`         // Also the background scroll speed
	WidthMargin  int `yaml:"width_margin"`  // Obstacle width = lane width - margin
	HeightMargin int `yaml:"height_margin"` // Obstacle height = row height - margin
	IntervalRows int `yaml:"interval_rows"` // Rows of travel between spawns
}

// LaneDodgerCollision defines hitbox tolerance.
type LaneDodgerCollision struct {
	Ratio float64 `yaml:"ratio"` // Fraction of each bounding box used for player hits
}

// LaneDodgerBackground defines the scrolling backdrop.
type LaneDodgerBackground struct {
	Height int `yaml:"height"` // Scroll wraps modulo this height
}

// AudioConfig controls background music.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float64 `yaml:"volume"`
	FadeOutMS int     `yaml:"fade_out_ms"`
}

// InputConfig controls terminal input emulation.
type InputConfig struct {
	// HoldTicks is how long a direction key counts as held after a press.
	// Terminals report presses and repeats but never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate checks that the configuration describes a playable field.
func (c *LaneDodgerConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Rows <= 0 || c.Screen.Rows > c.Screen.Height {
		return fmt.Errorf("screen rows must be in [1, %d], got %d", c.Screen.Height, c.Screen.Rows)
	}
	if c.Player.StartLane < 0 || c.Player.StartLane > 2 {
		return fmt.Errorf("player start_lane must be 0, 1 or 2, got %d", c.Player.StartLane)
	}
	if c.Player.RowFromBottom < 1 || c.Player.RowFromBottom > c.Screen.Rows {
		return fmt.Errorf("player row_from_bottom must be in [1, %d], got %d", c.Screen.Rows, c.Player.RowFromBottom)
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 || c.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet width, height and speed must be positive")
	}
	if c.Obstacles.Speed <= 0 {
		return fmt.Errorf("obstacle speed must be positive, got %d", c.Obstacles.Speed)
	}
	if c.Obstacles.IntervalRows <= 0 {
		return fmt.Errorf("obstacle interval_rows must be positive, got %d", c.Obstacles.IntervalRows)
	}
	laneW := c.Screen.Width / 3
	rowH := c.Screen.Height / c.Screen.Rows
	if c.Obstacles.WidthMargin < 0 || c.Obstacles.WidthMargin >= laneW {
		return fmt.Errorf("obstacle width_margin must be in [0, %d), got %d", laneW, c.Obstacles.WidthMargin)
	}
	if c.Obstacles.HeightMargin < 0 || c.Obstacles.HeightMargin >= rowH {
		return fmt.Errorf("obstacle height_margin must be in [0, %d), got %d", rowH, c.Obstacles.HeightMargin)
	}
	if c.Collision.Ratio <= 0 || c.Collision.Ratio > 1 {
		return fmt.Errorf("collision ratio must be in (0, 1], got %v", c.Collision.Ratio)
	}
	if c.Background.Height <= 0 {
		return fmt.Errorf("background height must be positive, got %d", c.Background.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0, 1], got %v", c.Audio.Volume)
	}
	if c.Audio.FadeOutMS < 0 {
		return fmt.Errorf("audio fade_out_ms must not be negative, got %d", c.Audio.FadeOutMS)
	}
	if c.Input.HoldTicks < 1 {
		return fmt.Errorf("input hold_ticks must be at least 1, got %d", c.Input.HoldTicks)
	}
	return nil
}
