package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for frame pacing and deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal frontend only)
	ScreenH  int   // Terminal height in characters (terminal frontend only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended and the game waits for a key
	Quit     bool // Whether the player asked to leave
}

// Event is a phase transition reported by a simulation tick.
type Event int

const (
	EventGameOver Event = iota + 1 // Playing -> GameOver
	EventRestart                   // GameOver -> Playing with a fresh session
	EventQuit                      // Any phase -> Quit
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event happened during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
