// Package audio plays the looping background music for both frontends.
package audio

import (
	"time"
)

// Music is a looping background track.
// Update must be called once per simulation tick to advance volume ramps.
type Music interface {
	// Play starts the track from the beginning at full volume.
	Play() error
	// FadeOut ramps the volume to zero over d, then pauses.
	FadeOut(d time.Duration)
	// Update advances any running fade by dt.
	Update(dt time.Duration)
	// Close stops playback and releases the player.
	Close() error
}

// fader is a linear volume ramp toward silence.
type fader struct {
	base      float64
	volume    float64
	from      float64 // volume when the fade began
	total     time.Duration
	remaining time.Duration
}

func newFader(base float64) fader {
	return fader{base: base, volume: base}
}

// reset restores full volume and cancels any fade.
func (f *fader) reset() {
	f.volume = f.base
	f.total = 0
	f.remaining = 0
}

// start begins fading from the current volume. d <= 0 silences immediately.
func (f *fader) start(d time.Duration) {
	if d <= 0 {
		f.volume = 0
		f.total = 0
		f.remaining = 0
		return
	}
	f.from = f.volume
	f.total = d
	f.remaining = d
}

func (f *fader) active() bool {
	return f.remaining > 0
}

// step advances the ramp. It returns the new volume and whether the fade
// finished during this step.
func (f *fader) step(dt time.Duration) (float64, bool) {
	if !f.active() {
		return f.volume, false
	}
	f.remaining -= dt
	if f.remaining <= 0 {
		f.remaining = 0
		f.total = 0
		f.volume = 0
		return 0, true
	}
	f.volume = f.from * float64(f.remaining) / float64(f.total)
	return f.volume, false
}

// Silent is a Music that plays nothing. Used when audio is disabled.
type Silent struct{}

func (Silent) Play() error           { return nil }
func (Silent) FadeOut(time.Duration) {}
func (Silent) Update(time.Duration)  {}
func (Silent) Close() error          { return nil }
