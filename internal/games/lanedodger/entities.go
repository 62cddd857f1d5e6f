package lanedodger

import (
	"github.com/vovakirdan/lane-dodger/internal/core"
)

// Kind tags an obstacle variant.
type Kind int

const (
	KindMeteorite Kind = iota // Passive, must be dodged
	KindPirate                // Can be shot down
)

// String returns the asset-style name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMeteorite:
		return "meteorite"
	case KindPirate:
		return "pirate"
	default:
		return "unknown"
	}
}

// Player is the ship at the bottom of the field.
type Player struct {
	Lane int
	Rect core.Rect
}

// newPlayer places a player in lane with its top edge at layout.PlayerY.
func newPlayer(l Layout, lane int) Player {
	p := Player{Rect: core.NewRect(0, l.PlayerY, l.PlayerW, l.PlayerH)}
	p.snap(l, lane)
	return p
}

// snap moves the player straight to a lane.
func (p *Player) snap(l Layout, lane int) {
	p.Lane = core.Clamp(lane, 0, NumLanes-1)
	p.Rect.X = l.LaneCenterX(p.Lane) - p.Rect.W/2
	p.Rect.Y = l.PlayerY
}

// Bullet travels straight up from where it was fired.
type Bullet struct {
	Rect core.Rect
	dead bool
}

// newBullet centers a bullet on x with its bottom edge at y.
func newBullet(l Layout, x, y int) Bullet {
	return Bullet{Rect: core.NewRect(x-l.BulletW/2, y-l.BulletH, l.BulletW, l.BulletH)}
}

// update moves the bullet and marks it dead once it is fully above the field.
func (b *Bullet) update(l Layout) {
	b.Rect.Y -= l.BulletSpeed
	if b.Rect.Bottom() < 0 {
		b.dead = true
	}
}

// Obstacle descends in a lane.
type Obstacle struct {
	Kind Kind
	Lane int
	Rect core.Rect
	dead bool
}

// newObstacle centers an obstacle in lane with its bottom edge at the top of the field.
func newObstacle(l Layout, kind Kind, lane int) Obstacle {
	return Obstacle{
		Kind: kind,
		Lane: lane,
		Rect: core.NewRect(l.LaneCenterX(lane)-l.ObstacleW/2, -l.ObstacleH, l.ObstacleW, l.ObstacleH),
	}
}

// update moves the obstacle and marks it dead once it is fully below the field.
func (o *Obstacle) update(l Layout) {
	o.Rect.Y += l.ObstacleSpeed
	if o.Rect.Y > l.ScreenH {
		o.dead = true
	}
}
