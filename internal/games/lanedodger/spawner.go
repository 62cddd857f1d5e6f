package lanedodger

import (
	"math/rand"
)

// MeteoriteChance is the probability that a lane draws a meteorite.
const MeteoriteChance = 0.6

// drawRow picks the obstacle kind for each lane. A row that comes out all
// meteorites gets one uniformly chosen lane turned into a pirate, so every
// row has something to shoot.
func drawRow(rng *rand.Rand) [NumLanes]Kind {
	var row [NumLanes]Kind
	allMeteorites := true
	for lane := range row {
		if rng.Float64() < MeteoriteChance {
			row[lane] = KindMeteorite
		} else {
			row[lane] = KindPirate
			allMeteorites = false
		}
	}
	if allMeteorites {
		row[rng.Intn(NumLanes)] = KindPirate
	}
	return row
}

// spawnRow adds one obstacle per lane above the field.
// Every row after the first scores a point.
func (s *Session) spawnRow(l Layout, row [NumLanes]Kind) {
	for lane, kind := range row {
		s.Obstacles = append(s.Obstacles, newObstacle(l, kind, lane))
	}
	if s.FirstRowSpawned {
		s.Score++
	} else {
		s.FirstRowSpawned = true
	}
}

// runSpawner counts down and spawns a row when the timer expires.
// It reports whether a row was spawned.
func (s *Session) runSpawner(l Layout, rng *rand.Rand) bool {
	s.SpawnTimer--
	if s.SpawnTimer > 0 {
		return false
	}
	s.spawnRow(l, drawRow(rng))
	s.SpawnTimer = l.SpawnCooldown
	return true
}
