package lanedodger

// Session is the mutable state of one run, from start (or restart) to game over.
type Session struct {
	Player    Player
	Bullets   []Bullet
	Obstacles []Obstacle

	Score           int
	SpawnTimer      int  // Frames until the next row; a row spawns when it reaches zero
	FirstRowSpawned bool // The first row does not score
	Scroll          int  // Background offset in [0, BgHeight)
	Tick            uint64
}

// newSession returns a fresh session with the player in the start lane.
func newSession(l Layout) *Session {
	return &Session{
		Player:    newPlayer(l, l.StartLane),
		Bullets:   make([]Bullet, 0, 16),
		Obstacles: make([]Obstacle, 0, 12),
	}
}

// shoot fires a bullet from the nose of the ship.
func (s *Session) shoot(l Layout) {
	cx, _ := s.Player.Rect.Center()
	s.Bullets = append(s.Bullets, newBullet(l, cx, s.Player.Rect.Y))
}

// updateEntities advances every entity by one frame and drops the ones
// that left the field.
func (s *Session) updateEntities(l Layout, lane int) {
	s.Player.snap(l, lane)

	for i := range s.Bullets {
		s.Bullets[i].update(l)
	}
	for i := range s.Obstacles {
		s.Obstacles[i].update(l)
	}
	s.sweep()
}

// advanceScroll moves the background down by the obstacle speed.
func (s *Session) advanceScroll(l Layout) {
	s.Scroll = (s.Scroll + l.ObstacleSpeed) % l.BgHeight
}

// sweep removes dead bullets and obstacles, keeping order.
func (s *Session) sweep() {
	bullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		if !b.dead {
			bullets = append(bullets, b)
		}
	}
	s.Bullets = bullets

	obstacles := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if !o.dead {
			obstacles = append(obstacles, o)
		}
	}
	s.Obstacles = obstacles
}
