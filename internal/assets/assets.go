// Package assets loads the images and music used by the game frontends.
// Files come from the embedded pack by default or from a directory override.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"golang.org/x/image/draw"
)

//go:embed images/*.png sounds/*.wav
var embedded embed.FS

// ErrAssetMissing is returned when a requested asset does not exist.
var ErrAssetMissing = errors.New("asset missing")

// Asset paths relative to the asset root.
const (
	PlayerShip      = "images/player_ship.png"
	Meteorite       = "images/meteorite.png"
	PirateShip      = "images/pirate_ship.png"
	Background      = "images/background.png"
	BackgroundMusic = "sounds/background_music.wav"
)

// Track is decoded music: interleaved signed 16-bit little-endian stereo PCM.
type Track struct {
	PCM        []byte
	SampleRate int
}

// Duration returns the track length in seconds.
func (t *Track) Duration() float64 {
	if t.SampleRate == 0 {
		return 0
	}
	return float64(len(t.PCM)) / float64(t.SampleRate*4)
}

// Provider reads assets from a file system.
type Provider struct {
	fsys fs.FS
}

// New returns a provider for dir, or for the embedded assets if dir is empty.
func New(dir string) *Provider {
	if dir == "" {
		return &Provider{fsys: embedded}
	}
	return &Provider{fsys: os.DirFS(dir)}
}

// NewFS returns a provider backed by fsys.
func NewFS(fsys fs.FS) *Provider {
	return &Provider{fsys: fsys}
}

func (p *Provider) read(name string) ([]byte, error) {
	data, err := fs.ReadFile(p.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("assets: %s: %w", name, ErrAssetMissing)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	return data, nil
}

// LoadImage decodes the image at name.
func (p *Provider) LoadImage(name string) (image.Image, error) {
	data, err := p.read(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

// LoadMusic decodes a WAV file into a Track.
// 8-bit and mono sources are converted to 16-bit stereo.
func (p *Provider) LoadMusic(name string) (*Track, error) {
	data, err := p.read(name)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: read samples %s: %w", name, err)
	}
	return &Track{PCM: pcm, SampleRate: stream.SampleRate()}, nil
}

// Scale resizes img to w x h.
func Scale(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Pack holds everything a frontend needs, already scaled to world size.
type Pack struct {
	Player     image.Image
	Meteorite  image.Image
	Pirate     image.Image
	Background image.Image
	Music      *Track // nil when music was not requested
}

// Sizes are the world dimensions sprites are scaled to.
type Sizes struct {
	PlayerW, PlayerH         int
	ObstacleW, ObstacleH     int
	BackgroundW, BackgroundH int
}

// LoadPack loads and scales every game asset. Any failure aborts the load.
func (p *Provider) LoadPack(sz Sizes, withMusic bool) (*Pack, error) {
	load := func(name string, w, h int) (image.Image, error) {
		img, err := p.LoadImage(name)
		if err != nil {
			return nil, err
		}
		return Scale(img, w, h), nil
	}

	var pack Pack
	var err error
	if pack.Player, err = load(PlayerShip, sz.PlayerW, sz.PlayerH); err != nil {
		return nil, err
	}
	if pack.Meteorite, err = load(Meteorite, sz.ObstacleW, sz.ObstacleH); err != nil {
		return nil, err
	}
	if pack.Pirate, err = load(PirateShip, sz.ObstacleW, sz.ObstacleH); err != nil {
		return nil, err
	}
	if pack.Background, err = load(Background, sz.BackgroundW, sz.BackgroundH); err != nil {
		return nil, err
	}
	if withMusic {
		if pack.Music, err = p.LoadMusic(BackgroundMusic); err != nil {
			return nil, err
		}
	}
	return &pack, nil
}
