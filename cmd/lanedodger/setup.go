package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-dodger/internal/assets"
	"github.com/vovakirdan/lane-dodger/internal/audio"
	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/games/lanedodger"
	"github.com/vovakirdan/lane-dodger/internal/registry"
	"github.com/vovakirdan/lane-dodger/internal/storage"
)

// newLogger builds the session logger. Logs go to --log-file when set,
// otherwise to fallback (nil discards them).
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	var closer io.Closer
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "lanedodger",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	return logger, closer, nil
}

// newGame creates the game through the registry so --config goes through
// the same search order as every other entry point.
func newGame() (*lanedodger.Game, error) {
	if !registry.Exists(lanedodger.ID) {
		return nil, fmt.Errorf("game %q is not registered", lanedodger.ID)
	}
	g, err := registry.Create(lanedodger.ID, flagConfig)
	if err != nil {
		return nil, err
	}
	game, ok := g.(*lanedodger.Game)
	if !ok {
		return nil, fmt.Errorf("registry: %q is %T, not a lane dodger game", lanedodger.ID, g)
	}
	return game, nil
}

// runtimeConfig builds the runtime settings from the global flags.
// Zero sizes keep the defaults.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if width > 0 && height > 0 {
		cfg.ScreenW = width
		cfg.ScreenH = height
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// musicEnabled reports whether the session should load and play music.
func musicEnabled(cfg config.LaneDodgerConfig) bool {
	return cfg.Audio.Enabled && !flagMute
}

// loadPack loads every asset at the game's world size.
func loadPack(game *lanedodger.Game) (*assets.Pack, error) {
	l := game.Layout()
	provider := assets.New(flagAssets)
	return provider.LoadPack(assets.Sizes{
		PlayerW:     l.PlayerW,
		PlayerH:     l.PlayerH,
		ObstacleW:   l.ObstacleW,
		ObstacleH:   l.ObstacleH,
		BackgroundW: l.ScreenW,
		BackgroundH: l.BgHeight,
	}, musicEnabled(game.Config()))
}

// fadeOut returns the configured game over music fade.
func fadeOut(cfg config.LaneDodgerConfig) time.Duration {
	return time.Duration(cfg.Audio.FadeOutMS) * time.Millisecond
}

// openStore opens the score database, or returns nil when it is disabled
// or unavailable. The game runs fine without it.
func openStore(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		logger.Debug("score storage disabled")
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// closeMusic releases the audio player, logging any failure.
func closeMusic(m audio.Music, logger *log.Logger) {
	if err := m.Close(); err != nil {
		logger.Warn("could not close music", "error", err)
	}
}
