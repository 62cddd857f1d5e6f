package lanedodger

import (
	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(config.DefaultLaneDodgerConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// quiet keeps the spawner from firing for a long time.
func quiet(g *Game) {
	g.session.SpawnTimer = 1 << 20
	g.session.FirstRowSpawned = true
}
