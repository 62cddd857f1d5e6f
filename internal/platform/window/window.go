// Package window runs a game in a desktop window using ebiten.
package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/lane-dodger/internal/assets"
	"github.com/vovakirdan/lane-dodger/internal/audio"
	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/games/lanedodger"
	"github.com/vovakirdan/lane-dodger/internal/storage"
)

// Title is the window caption.
const Title = "Lane Dodger X - Enhanced"

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig
	Pack    *assets.Pack   // nil draws plain rectangles
	Music   audio.Music    // nil plays nothing
	FadeOut time.Duration  // Music fade on game over
	Store   *storage.Store // nil disables score persistence
	Logger  *log.Logger    // nil discards logs
}

// Window adapts a game to ebiten.Game.
type Window struct {
	game    *lanedodger.Game
	layout  lanedodger.Layout
	input   keyboard
	music   audio.Music
	store   *storage.Store
	logger  *log.Logger
	fadeOut time.Duration
	dt      time.Duration
	best    int // Highest recorded score, shown in the HUD

	images images
	fonts  fonts

	frames uint64
}

// New prepares a window for game. The game is reset with opts.Runtime.
func New(game *lanedodger.Game, opts Options) (*Window, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	f, err := newFonts()
	if err != nil {
		return nil, err
	}

	w := &Window{
		game:    game,
		layout:  game.Layout(),
		input:   &ebitenKeyboard{},
		music:   opts.Music,
		store:   opts.Store,
		logger:  opts.Logger,
		fadeOut: opts.FadeOut,
		dt:      time.Second / time.Duration(cfg.TickRate),
		images:  newImages(opts.Pack),
		fonts:   f,
	}
	if w.music == nil {
		w.music = audio.Silent{}
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}
	if w.store != nil {
		best, err := w.store.HighScore(game.ID())
		if err != nil {
			w.logger.Warn("could not load high score", "error", err)
		}
		w.best = best
	}

	game.Reset(cfg)
	w.logger.Info("session started", "game", game.ID(), "seed", cfg.Seed, "tps", cfg.TickRate)
	return w, nil
}

// Update advances the simulation by one tick.
func (w *Window) Update() error {
	return w.step(readInput(w.input))
}

// step applies one input frame and reacts to the resulting events.
func (w *Window) step(in core.InputFrame) error {
	result := w.game.Step(in)
	if !result.State.GameOver && !result.State.Quit {
		w.frames++
	}

	if result.Has(core.EventGameOver) {
		w.music.FadeOut(w.fadeOut)
		w.recordRun(result.State.Score)
	}
	if result.Has(core.EventRestart) {
		w.frames = 0
		if err := w.music.Play(); err != nil {
			w.logger.Warn("music playback failed", "error", err)
		}
	}
	if result.Has(core.EventQuit) {
		w.logger.Info("session ended", "score", result.State.Score)
	}
	w.music.Update(w.dt)

	if result.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// recordRun saves a finished run. Storage problems are logged, never fatal.
func (w *Window) recordRun(score int) {
	w.logger.Info("game over", "score", score, "frames", w.frames)
	w.best = core.Max(w.best, score)
	if w.store == nil {
		return
	}
	if _, err := w.store.SaveRun(w.game.ID(), score, w.frames); err != nil {
		w.logger.Warn("could not save run", "error", err)
	}
}

// bestScore is the HUD best: the stored high score, or the running score
// once it is higher.
func (w *Window) bestScore(score int) int {
	return core.Max(w.best, score)
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.drawFrame(screen, w.game.Snapshot())
}

// Layout fixes the logical resolution; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.layout.ScreenW, w.layout.ScreenH
}

// Run opens the window and blocks until the player quits.
func Run(game *lanedodger.Game, opts Options) error {
	w, err := New(game, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(w.layout.ScreenW, w.layout.ScreenH)
	ebiten.SetTPS(int(time.Second / w.dt))
	// Closing the window becomes a Quit input instead of an immediate exit.
	ebiten.SetWindowClosingHandled(true)

	if err := w.music.Play(); err != nil {
		w.logger.Warn("music playback failed", "error", err)
	}

	// RunGame returns nil when Update reports ebiten.Termination.
	return ebiten.RunGame(w)
}
