package lanedodger

import (
	"github.com/vovakirdan/lane-dodger/internal/core"
)

// playerHit reports whether the player's shrunk box overlaps any obstacle's
// shrunk box.
func (s *Session) playerHit(l Layout) bool {
	for _, o := range s.Obstacles {
		if core.IntersectsScaled(s.Player.Rect, o.Rect, l.CollisionRatio) {
			return true
		}
	}
	return false
}

// shootDownPirates destroys every pirate touched by at least one bullet along
// with all bullets touching it. Each bullet is consumed by the first pirate
// it touches. Returns the number of pirates destroyed.
func (s *Session) shootDownPirates() int {
	destroyed := 0
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		if o.Kind != KindPirate || o.dead {
			continue
		}
		for j := range s.Bullets {
			b := &s.Bullets[j]
			if b.dead || !b.Rect.Intersects(o.Rect) {
				continue
			}
			b.dead = true
			o.dead = true
		}
		if o.dead {
			destroyed++
		}
	}
	if destroyed > 0 {
		s.sweep()
	}
	return destroyed
}
