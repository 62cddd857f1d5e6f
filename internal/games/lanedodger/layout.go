package lanedodger

import (
	"github.com/vovakirdan/lane-dodger/internal/config"
)

// NumLanes is the number of corridors obstacles and the player travel in.
const NumLanes = 3

// Layout holds the derived playfield geometry in logical pixels.
type Layout struct {
	ScreenW, ScreenH int
	LaneW, RowH      int

	PlayerW, PlayerH int
	PlayerY          int // Top edge of the player, fixed for the whole session
	StartLane        int

	BulletW, BulletH int
	BulletSpeed      int

	ObstacleW, ObstacleH int
	ObstacleSpeed        int
	SpawnCooldown        int // Frames between obstacle rows

	CollisionRatio float64
	BgHeight       int
}

// NewLayout derives the geometry from configuration.
func NewLayout(cfg config.LaneDodgerConfig) Layout {
	laneW := cfg.Screen.Width / NumLanes
	rowH := cfg.Screen.Height / cfg.Screen.Rows
	playerH := rowH / 2

	return Layout{
		ScreenW: cfg.Screen.Width,
		ScreenH: cfg.Screen.Height,
		LaneW:   laneW,
		RowH:    rowH,

		PlayerW:   laneW / 2,
		PlayerH:   playerH,
		PlayerY:   cfg.Screen.Height - cfg.Player.RowFromBottom*rowH + rowH/2 - playerH/2,
		StartLane: cfg.Player.StartLane,

		BulletW:     cfg.Bullet.Width,
		BulletH:     cfg.Bullet.Height,
		BulletSpeed: cfg.Bullet.Speed,

		ObstacleW:     laneW - cfg.Obstacles.WidthMargin,
		ObstacleH:     rowH - cfg.Obstacles.HeightMargin,
		ObstacleSpeed: cfg.Obstacles.Speed,
		SpawnCooldown: cfg.Obstacles.IntervalRows * rowH / cfg.Obstacles.Speed,

		CollisionRatio: cfg.Collision.Ratio,
		BgHeight:       cfg.Background.Height,
	}
}

// LaneCenterX returns the horizontal center of a lane.
func (l Layout) LaneCenterX(lane int) int {
	return lane*l.LaneW + l.LaneW/2
}
