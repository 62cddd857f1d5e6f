package main

import (
	"fmt"
	"os"

	_ "github.com/ebitengine/hideconsole"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dodger/internal/audio"
	"github.com/vovakirdan/lane-dodger/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Lane Dodger in a 480x720 desktop window.

Controls:
  Left/A, Right/D  - Hold to steer into the side lanes
  Space            - Fire
  Esc              - Give up the run / leave from the game over screen
  Any key          - Play again after game over

Closing the window quits at any time.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

// runWindow returns errors instead of exiting so deferred cleanup (log file,
// audio, score store) always runs.
func runWindow(cmd *cobra.Command, args []string) error {
	logger, logCloser, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	game, err := newGame()
	if err != nil {
		logger.Error("could not create game", "error", err)
		return fmt.Errorf("creating game: %w", err)
	}
	cfg := game.Config()

	pack, err := loadPack(game)
	if err != nil {
		logger.Error("could not load assets", "error", err)
		return fmt.Errorf("loading assets: %w", err)
	}

	var music audio.Music = audio.Silent{}
	if pack.Music != nil {
		m, err := audio.NewEbitenMusic(pack.Music, cfg.Audio.Volume)
		if err != nil {
			logger.Error("could not start audio", "error", err)
			return fmt.Errorf("starting audio (use --mute to play without music): %w", err)
		}
		logger.Debug("music loaded", "seconds", pack.Music.Duration())
		music = m
	}
	defer closeMusic(music, logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	err = window.Run(game, window.Options{
		Runtime: runtimeConfig(0, 0),
		Pack:    pack,
		Music:   music,
		FadeOut: fadeOut(cfg),
		Store:   store,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("window closed with error", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
