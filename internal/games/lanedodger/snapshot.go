package lanedodger

import (
	"strconv"

	"github.com/vovakirdan/lane-dodger/internal/core"
)

// Snapshot is a read-only copy of what a frontend needs to draw one frame.
// Coordinates are playfield pixels.
type Snapshot struct {
	Phase      Phase
	Score      int
	Scroll     int
	Tick       uint64
	PlayerLane int
	Player     core.Rect
	Bullets    []core.Rect
	Obstacles  []Obstacle
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	s := g.session

	bullets := make([]core.Rect, len(s.Bullets))
	for i, b := range s.Bullets {
		bullets[i] = b.Rect
	}

	return Snapshot{
		Phase:      g.phase,
		Score:      s.Score,
		Scroll:     s.Scroll,
		Tick:       s.Tick,
		PlayerLane: s.Player.Lane,
		Player:     s.Player.Rect,
		Bullets:    bullets,
		Obstacles:  append([]Obstacle(nil), s.Obstacles...),
	}
}

// OverlayLines returns the game over text lines in display order.
func OverlayLines(score int) []string {
	return []string{
		textGameOver,
		"Final Score: " + strconv.Itoa(score),
		textPlayAgain,
		textQuit,
	}
}
