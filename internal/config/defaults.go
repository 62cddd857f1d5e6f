package config

import (
	_ "embed"
)

//go:embed defaults/lanedodger.yaml
var defaultLaneDodgerYAML []byte

// DefaultLaneDodgerConfig returns the default Lane Dodger configuration.
// Values match the 480x720 reference build.
func DefaultLaneDodgerConfig() LaneDodgerConfig {
	return LaneDodgerConfig{
		Screen: LaneDodgerScreen{
			Width:  480,
			Height: 720,
			Rows:   6,
		},
		Player: LaneDodgerPlayer{
			StartLane:     1,
			RowFromBottom: 2,
		},
		Bullet: LaneDodgerBullet{
			Width:  8,
			Height: 20,
			Speed:  25,
		},
		Obstacles: LaneDodgerObstacles{
			Speed:        3,
			WidthMargin:  20,
			HeightMargin: 10,
			IntervalRows: 2,
		},
		Collision: LaneDodgerCollision{
			Ratio: 0.7,
		},
		Background: LaneDodgerBackground{
			Height: 720,
		},
		Audio: AudioConfig{
			Enabled:   true,
			Volume:    0.5,
			FadeOutMS: 1000,
		},
		Input: InputConfig{
			HoldTicks: 24,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "lanedodger":
		return defaultLaneDodgerYAML
	default:
		return nil
	}
}
