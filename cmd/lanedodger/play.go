package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-dodger/internal/audio"
	"github.com/vovakirdan/lane-dodger/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Lane Dodger in the terminal.

Controls:
  Left/A, Right/D  - Hold to steer into the side lanes
  Space            - Fire
  Esc              - Give up the run / leave from the game over screen
  Any key          - Play again after game over
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Terminals do not report key releases, so a direction stays held for a few
ticks after each press (see input.hold_ticks in the config).

Examples:
  lanedodger play
  lanedodger play --seed 7 --mute
  lanedodger play --log-file /tmp/lanedodger.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alt screen owns stdout, so logs only go to --log-file
	logger, logCloser, err := newLogger(nil)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	game, err := newGame()
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	cfg := game.Config()

	pack, err := loadPack(game)
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	var music audio.Music = audio.Silent{}
	if pack.Music != nil {
		m, err := audio.NewOtoMusic(pack.Music, cfg.Audio.Volume)
		if err != nil {
			return fmt.Errorf("starting audio (use --mute to play without music): %w", err)
		}
		logger.Debug("music loaded", "seconds", pack.Music.Duration())
		music = m
	}
	defer closeMusic(music, logger)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runErr := tui.Run(game, tui.Options{
		Runtime:   runtimeConfig(width, height),
		HoldTicks: cfg.Input.HoldTicks,
		FadeOut:   fadeOut(cfg),
		Music:     music,
		Store:     store,
		Sprites:   tui.NewArt(pack),
		Logger:    logger,
	})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
