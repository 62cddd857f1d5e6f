// Package lanedodger implements Lane Dodger: a ship switches between three
// lanes, shooting pirates and dodging meteorites that descend in rows.
//
// The simulation works in logical pixels of a fixed playfield (480x720 by
// default). Frontends scale it to terminal cells or window pixels.
package lanedodger

import (
	"math/rand"

	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/registry"
)

// ID is the registry and score storage identifier.
const ID = "lanedodger"

// Title is the display name.
const Title = "Lane Dodger"

// Phase is the top-level state of the game loop.
type Phase int

const (
	PhasePlaying  Phase = iota
	PhaseGameOver       // Frozen on the last frame, waiting for a key
	PhaseQuit           // Terminal; the frontend should exit
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Game implements registry.Game for Lane Dodger.
type Game struct {
	cfg     config.LaneDodgerConfig
	layout  Layout
	runtime core.RuntimeConfig
	rng     *rand.Rand
	phase   Phase
	session *Session

	sprites  core.SpriteSource
	viewport *core.Screen // Reused between renders
}

// New creates a game from configuration. Call Reset before stepping.
func New(cfg config.LaneDodgerConfig) *Game {
	l := NewLayout(cfg)
	return &Game{
		cfg:     cfg,
		layout:  l,
		rng:     rand.New(rand.NewSource(1)),
		session: newSession(l),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.LaneDodgerConfig {
	return g.cfg
}

// Layout returns the playfield geometry.
func (g *Game) Layout() Layout {
	return g.layout
}

// Phase returns the current loop phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// SetSprites sets the art used by Render. With no source, or for names the
// source does not know, entities are drawn as plain colored blocks.
func (g *Game) SetSprites(src core.SpriteSource) {
	g.sprites = src
}

// Reset starts a new session and seeds the RNG from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.restart()
}

// restart clears the session and returns to Playing. The RNG keeps its state.
func (g *Game) restart() {
	g.phase = PhasePlaying
	g.session = newSession(g.layout)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.phase {
	case PhaseQuit:
		// Nothing left to do

	case PhaseGameOver:
		switch {
		case in.Has(core.ActionQuit), in.Has(core.ActionCancel):
			g.phase = PhaseQuit
			events = append(events, core.EventQuit)
		case in.Has(core.ActionAnyKey):
			g.restart()
			events = append(events, core.EventRestart)
		}

	case PhasePlaying:
		events = g.stepPlaying(in)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// stepPlaying runs one frame of the Playing phase in the fixed order:
// input, lane target, entity update, scroll, spawner, collisions.
func (g *Game) stepPlaying(in core.InputFrame) []core.Event {
	if in.Has(core.ActionQuit) {
		g.phase = PhaseQuit
		return []core.Event{core.EventQuit}
	}
	if in.Has(core.ActionCancel) {
		g.phase = PhaseGameOver
		return []core.Event{core.EventGameOver}
	}

	s := g.session
	l := g.layout
	s.Tick++

	if in.Has(core.ActionShoot) {
		s.shoot(l)
	}

	s.updateEntities(l, targetLane(in))
	s.advanceScroll(l)
	s.runSpawner(l, g.rng)

	// Both passes run every frame; a crash does not cancel this frame's kills.
	hit := s.playerHit(l)
	s.Score += s.shootDownPirates()
	if hit {
		g.phase = PhaseGameOver
		return []core.Event{core.EventGameOver}
	}

	return nil
}

// targetLane maps held direction keys to a lane. Left wins over right and
// no direction means the middle lane.
func targetLane(in core.InputFrame) int {
	switch {
	case in.Has(core.ActionLeft):
		return 0
	case in.Has(core.ActionRight):
		return NumLanes - 1
	default:
		return 1
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		GameOver: g.phase == PhaseGameOver,
		Quit:     g.phase == PhaseQuit,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, Title, func(configPath string) (registry.Game, error) {
		cfg, err := config.LoadLaneDodger(configPath)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}
