package audio

import (
	"bytes"
	"fmt"
	"time"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/lane-dodger/internal/assets"
)

// EbitenMusic plays a track through the ebiten audio context. Used by the
// window frontend, which must not open a second device.
type EbitenMusic struct {
	player *ebaudio.Player
	fade   fader
}

// NewEbitenMusic creates a looping player. The ebiten audio context is
// created on first use and reused afterwards.
func NewEbitenMusic(track *assets.Track, volume float64) (*EbitenMusic, error) {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(track.SampleRate)
	}
	if ctx.SampleRate() != track.SampleRate {
		return nil, fmt.Errorf("audio: context runs at %d Hz, track is %d Hz", ctx.SampleRate(), track.SampleRate)
	}

	stream := bytes.NewReader(track.PCM)
	loop := ebaudio.NewInfiniteLoop(stream, int64(len(track.PCM)))
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("audio: create player: %w", err)
	}
	player.SetVolume(volume)

	return &EbitenMusic{player: player, fade: newFader(volume)}, nil
}

// Play restarts the track from the beginning at full volume.
func (m *EbitenMusic) Play() error {
	m.player.Pause()
	if err := m.player.SetPosition(0); err != nil {
		return fmt.Errorf("audio: rewind: %w", err)
	}
	m.fade.reset()
	m.player.SetVolume(m.fade.volume)
	m.player.Play()
	return nil
}

// FadeOut ramps the volume down over d.
func (m *EbitenMusic) FadeOut(d time.Duration) {
	m.fade.start(d)
	if !m.fade.active() {
		m.player.SetVolume(0)
		m.player.Pause()
	}
}

// Update advances the fade.
func (m *EbitenMusic) Update(dt time.Duration) {
	if !m.fade.active() {
		return
	}
	vol, done := m.fade.step(dt)
	m.player.SetVolume(vol)
	if done {
		m.player.Pause()
	}
}

// Close stops playback.
func (m *EbitenMusic) Close() error {
	if err := m.player.Close(); err != nil {
		return fmt.Errorf("audio: close player: %w", err)
	}
	return nil
}
