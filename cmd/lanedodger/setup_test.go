package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/core"
)

// withFlags resets the global flags to their defaults for one test.
func withFlags(t *testing.T) {
	t.Helper()
	fps, seed, mute := flagFPS, flagSeed, flagMute
	db, cfg, assetsDir := flagDBPath, flagConfig, flagAssets
	level, logFile := flagLogLevel, flagLogFile
	t.Cleanup(func() {
		flagFPS, flagSeed, flagMute = fps, seed, mute
		flagDBPath, flagConfig, flagAssets = db, cfg, assetsDir
		flagLogLevel, flagLogFile = level, logFile
	})

	flagFPS, flagSeed, flagMute = 60, 0, true
	flagDBPath, flagConfig, flagAssets = "", "", ""
	flagLogLevel, flagLogFile = "info", ""

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestRuntimeConfig(t *testing.T) {
	withFlags(t)
	flagSeed = 42

	tests := []struct {
		name string
		w, h int
		fps  int
		want core.RuntimeConfig
	}{
		{"terminal size", 120, 40, 30, core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 42}},
		{"no size keeps defaults", 0, 0, 60, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}},
		{"bad fps keeps default", 100, 30, 0, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 42}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagFPS = tc.fps
			if got := runtimeConfig(tc.w, tc.h); got != tc.want {
				t.Errorf("runtimeConfig(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.want)
			}
		})
	}
}

func TestNewGameUsesConfigFlag(t *testing.T) {
	withFlags(t)

	path := filepath.Join(t.TempDir(), "fast.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  speed: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	game, err := newGame()
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	if game.Config().Obstacles.Speed != 4 {
		t.Errorf("speed = %d, expected 4 from --config", game.Config().Obstacles.Speed)
	}
	if game.Config().Screen != config.DefaultLaneDodgerConfig().Screen {
		t.Error("unset fields should keep their defaults")
	}
}

func TestCommandsReturnErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{"play", func() error { return runPlay(playCmd, nil) }},
		{"window", func() error { return runWindow(windowCmd, nil) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withFlags(t)
			flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
			flagLogFile = filepath.Join(t.TempDir(), "lanedodger.log")

			err := tc.run()
			if !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("err = %v, expected a wrapped fs.ErrNotExist", err)
			}
			if _, statErr := os.Stat(flagLogFile); statErr != nil {
				t.Errorf("log file: %v", statErr)
			}
		})
	}
}

func TestWindowLogsFailureToFile(t *testing.T) {
	withFlags(t)
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	flagLogFile = filepath.Join(t.TempDir(), "lanedodger.log")

	if err := runWindow(windowCmd, nil); err == nil {
		t.Fatal("expected an error")
	}
	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "could not create game") {
		t.Errorf("log = %q, expected the failure to be recorded", data)
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var out bytes.Buffer
	configCmd.SetOut(&out)
	t.Cleanup(func() { configCmd.SetOut(nil) })

	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig: %v", err)
	}
	if !bytes.Equal(out.Bytes(), config.GetDefaultYAML("lanedodger")) {
		t.Error("config command should print the embedded defaults")
	}
}

func TestInvalidLogLevel(t *testing.T) {
	withFlags(t)
	flagLogLevel = "loud"
	if _, _, err := newLogger(nil); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}
