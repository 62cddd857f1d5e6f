package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/vovakirdan/lane-dodger/internal/assets"
)

// loopReader serves PCM bytes forever, wrapping at the end.
// oto reads from its own goroutine, so access is guarded.
type loopReader struct {
	mu   sync.Mutex
	data []byte
	pos  int
}

func (r *loopReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) {
		c := copy(p[n:], r.data[r.pos:])
		n += c
		r.pos = (r.pos + c) % len(r.data)
	}
	return n, nil
}

func (r *loopReader) Seek(offset int64, whence int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(r.pos) + offset
	case io.SeekEnd:
		abs = int64(len(r.data)) + offset
	default:
		return 0, fmt.Errorf("audio: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("audio: negative position %d", abs)
	}
	if len(r.data) > 0 {
		abs %= int64(len(r.data))
	}
	r.pos = int(abs)
	return abs, nil
}

// OtoMusic plays a track through an oto context. Used by the terminal frontend.
type OtoMusic struct {
	ctx    *oto.Context
	player *oto.Player
	reader *loopReader
	fade   fader
}

// NewOtoMusic opens the audio device at the track's sample rate.
// An oto context can only be created once per process.
func NewOtoMusic(track *assets.Track, volume float64) (*OtoMusic, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   track.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	<-ready

	reader := &loopReader{data: track.PCM}
	m := &OtoMusic{
		ctx:    ctx,
		player: ctx.NewPlayer(reader),
		reader: reader,
		fade:   newFader(volume),
	}
	m.player.SetVolume(volume)
	return m, nil
}

// Play restarts the track from the beginning at full volume.
func (m *OtoMusic) Play() error {
	m.player.Pause()
	if _, err := m.player.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("audio: rewind: %w", err)
	}
	m.fade.reset()
	m.player.SetVolume(m.fade.volume)
	m.player.Play()
	return nil
}

// FadeOut ramps the volume down over d.
func (m *OtoMusic) FadeOut(d time.Duration) {
	m.fade.start(d)
	if !m.fade.active() {
		m.player.SetVolume(0)
		m.player.Pause()
	}
}

// Update advances the fade.
func (m *OtoMusic) Update(dt time.Duration) {
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
func (m *OtoMusic) Close() error {
	m.player.Pause()
	if err := m.player.Close(); err != nil {
		return fmt.Errorf("audio: close player: %w", err)
	}
	return nil
}
