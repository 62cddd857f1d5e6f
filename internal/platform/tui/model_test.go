package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/games/lanedodger"
	"github.com/vovakirdan/lane-dodger/internal/storage"
)

// scriptedGame reports the queued events one step at a time.
type scriptedGame struct {
	script [][]core.Event
	inputs []core.InputFrame
	state  core.GameState
	resets int
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) State() core.GameState    { return g.state }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "frame") }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	var events []core.Event
	if len(g.script) > 0 {
		events, g.script = g.script[0], g.script[1:]
	}
	for _, ev := range events {
		switch ev {
		case core.EventGameOver:
			g.state.GameOver = true
		case core.EventRestart:
			g.state = core.GameState{}
		case core.EventQuit:
			g.state.Quit = true
		}
	}
	return core.StepResult{State: g.state, Events: events}
}

// recordingMusic counts calls.
type recordingMusic struct {
	plays   int
	fades   []time.Duration
	elapsed time.Duration
}

func (m *recordingMusic) Play() error             { m.plays++; return nil }
func (m *recordingMusic) FadeOut(d time.Duration) { m.fades = append(m.fades, d) }
func (m *recordingMusic) Update(dt time.Duration) { m.elapsed += dt }
func (m *recordingMusic) Close() error            { return nil }

func testOptions() Options {
	return Options{
		Runtime:   core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1},
		HoldTicks: 3,
		FadeOut:   time.Second,
	}
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg(time.Now()))
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(k)
	return next.(Model)
}

func TestModelResetsGameOnce(t *testing.T) {
	game := &scriptedGame{}
	NewModel(game, testOptions())
	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
}

func TestModelForwardsKeysOnNextTick(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, testOptions())

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = tick(t, m)
	m, _ = tick(t, m)

	first := game.inputs[0]
	if !first.Has(core.ActionShoot) || !first.Has(core.ActionLeft) || !first.Has(core.ActionAnyKey) {
		t.Errorf("first tick missing actions")
	}
	second := game.inputs[1]
	if second.Has(core.ActionShoot) {
		t.Error("shoot should be delivered once")
	}
	if !second.Has(core.ActionLeft) {
		t.Error("left should stay held")
	}
}

func TestModelGameOverFadesAndSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{script: [][]core.Event{nil, nil, {core.EventGameOver}}}
	music := &recordingMusic{}
	opts := testOptions()
	opts.Store = store
	opts.Music = music
	m := NewModel(game, opts)

	game.state.Score = 7
	for range 3 {
		m, _ = tick(t, m)
	}

	if len(music.fades) != 1 || music.fades[0] != time.Second {
		t.Errorf("fades = %v, want [1s]", music.fades)
	}
	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 7 || runs[0].Frames != 2 {
		t.Errorf("runs = %+v, want one run with score 7 and 2 frames", runs)
	}
	if m.best != 7 {
		t.Errorf("best = %d, want 7", m.best)
	}
	if wantDt := 3 * (time.Second / 60); music.elapsed != wantDt {
		t.Errorf("music advanced %v, want %v", music.elapsed, wantDt)
	}
}

func TestModelRestartReplaysMusic(t *testing.T) {
	game := &scriptedGame{script: [][]core.Event{{core.EventGameOver}, {core.EventRestart}}}
	music := &recordingMusic{}
	opts := testOptions()
	opts.Music = music
	m := NewModel(game, opts)
	m.Init()

	m, _ = tick(t, m)
	m, _ = tick(t, m)

	if music.plays != 2 {
		t.Errorf("plays = %d, want 2", music.plays)
	}
	if m.frames != 0 {
		t.Errorf("frames = %d after restart, want 0", m.frames)
	}
}

func TestModelHeldDirectionDoesNotRestart(t *testing.T) {
	game := lanedodger.New(config.DefaultLaneDodgerConfig())
	m := NewModel(game, testOptions())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = tick(t, m)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = tick(t, m)
	if game.Phase() != lanedodger.PhaseGameOver {
		t.Fatalf("phase = %v, want game over", game.Phase())
	}

	// The player is still holding left; the terminal keeps repeating it.
	for range 5 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
		m, _ = tick(t, m)
	}
	if game.Phase() != lanedodger.PhaseGameOver {
		t.Errorf("phase = %v, held key restarted the game", game.Phase())
	}

	// Letting go and pressing a key restarts.
	for range 10 {
		m, _ = tick(t, m)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = tick(t, m)
	if game.Phase() != lanedodger.PhasePlaying {
		t.Errorf("phase = %v, want playing after a fresh key", game.Phase())
	}
}

func TestModelQuitEndsProgram(t *testing.T) {
	game := &scriptedGame{script: [][]core.Event{{core.EventQuit}}}
	m := NewModel(game, testOptions())

	m, cmd := tick(t, m)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelBestLoadedFromStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveRun("scripted", 12, 300); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	opts := testOptions()
	opts.Store = store
	m := NewModel(&scriptedGame{}, opts)

	view := m.View()
	if !strings.Contains(view, "Best: 12") {
		t.Errorf("view missing best score:\n%s", view)
	}
	if !strings.Contains(view, "frame") {
		t.Errorf("view missing game output:\n%s", view)
	}
}

func TestModelResizeKeepsStatusLine(t *testing.T) {
	m := NewModel(&scriptedGame{}, testOptions())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m = next.(Model)

	if m.screen.Width() != 60 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 60x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	game := &scriptedGame{}
	m := NewModel(game, testOptions())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	matches, err := filepath.Glob(filepath.Join(home, ".arcade", "screenshots", "scripted_*.txt"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("screenshots = %v (%v), want one file", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "frame") {
		t.Errorf("screenshot content = %q", data)
	}

	// The screenshot key is not game input.
	m, _ = tick(t, m)
	if game.inputs[0].Has(core.ActionAnyKey) {
		t.Error("screenshot key leaked into game input")
	}
}

func TestFormatPlayTime(t *testing.T) {
	tests := []struct {
		frames   uint64
		tickRate int
		want     string
	}{
		{0, 60, "0:00"},
		{59, 60, "0:00"},
		{60, 60, "0:01"},
		{3600, 60, "1:00"},
		{4500, 30, "2:30"},
		{120, 0, "0:02"},
	}
	for _, tt := range tests {
		if got := FormatPlayTime(tt.frames, tt.tickRate); got != tt.want {
			t.Errorf("FormatPlayTime(%d, %d) = %q, want %q", tt.frames, tt.tickRate, got, tt.want)
		}
	}
}

func TestScoreboardShowsStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	for _, score := range []int{4, 10} {
		if _, err := store.SaveRun("lanedodger", score, 600); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, "lanedodger", "Lane Dodger", 60, 80, 24)
	view := m.View()
	for _, want := range []string{"HIGH SCORES - Lane Dodger", "Runs: 2", "Best: 10", "Average: 7.0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if len(m.table.Rows()) != 2 || m.table.Rows()[0][1] != "10" || m.table.Rows()[0][2] != "0:10" {
		t.Errorf("rows = %v", m.table.Rows())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "lanedodger", "Lane Dodger", 60, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("expected empty message")
	}
}
