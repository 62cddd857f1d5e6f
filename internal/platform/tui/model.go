package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-dodger/internal/audio"
	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/registry"
	"github.com/vovakirdan/lane-dodger/internal/storage"
)

// statusStyle renders the line under the playfield.
var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a terminal session.
type Options struct {
	Runtime   core.RuntimeConfig
	HoldTicks int               // Ticks a direction stays held after a key press
	FadeOut   time.Duration     // Music fade on game over
	Music     audio.Music       // nil plays nothing
	Store     *storage.Store    // nil disables score persistence
	Sprites   core.SpriteSource // nil draws plain blocks
	Logger    *log.Logger       // nil discards logs
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	input   *HoldInput
	keys    KeyMap
	help    help.Model
	music   audio.Music
	store   *storage.Store
	logger  *log.Logger
	fadeOut time.Duration

	state    core.GameState
	frames   uint64 // Ticks in the current run
	best     int
	quitting bool
}

// spriteSetter is implemented by games that can draw image-based sprites.
type spriteSetter interface {
	SetSprites(core.SpriteSource)
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	music := opts.Music
	if music == nil {
		music = audio.Silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if ss, ok := game.(spriteSetter); ok && opts.Sprites != nil {
		ss.SetSprites(opts.Sprites)
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		config:  cfg,
		input:   NewHoldInput(opts.HoldTicks),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		music:   music,
		store:   opts.Store,
		logger:  logger,
		fadeOut: opts.FadeOut,
	}
	m.help.Width = cfg.ScreenW
	m.best = m.loadBest()

	game.Reset(cfg)
	m.state = game.State()
	return m
}

// Init starts the music and the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.music.Play(); err != nil {
		m.logger.Warn("music playback failed", "error", err)
	}
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "tps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.input.Press(m.keys.MapKey(msg))
	return m, nil
}

// handleResize adapts the screen buffer. The game keeps running; it
// rescales to the new size on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation one frame and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Next())
	m.state = result.State
	if !m.state.GameOver && !m.state.Quit {
		m.frames++
	}

	for _, ev := range result.Events {
		switch ev {
		case core.EventGameOver:
			m.music.FadeOut(m.fadeOut)
			m.input.Release()
			m.recordRun()
		case core.EventRestart:
			m.frames = 0
			if err := m.music.Play(); err != nil {
				m.logger.Warn("music playback failed", "error", err)
			}
			m.logger.Debug("run restarted")
		case core.EventQuit:
			m.logger.Info("session ended", "score", m.state.Score)
		}
	}

	m.music.Update(time.Second / time.Duration(m.config.TickRate))

	if m.state.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the finished run. Storage problems are logged, never fatal.
func (m *Model) recordRun() {
	score := m.state.Score
	m.logger.Info("game over", "score", score, "frames", m.frames)
	if score > m.best {
		m.best = score
	}
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(m.game.ID(), score, m.frames); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// loadBest reads the stored high score, or 0 without a store.
func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// saveScreenshot writes the current frame as plain text to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the playfield and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	status := fmt.Sprintf("%s  Best: %d", m.help.View(m.keys), core.Max(m.best, m.state.Score))
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
