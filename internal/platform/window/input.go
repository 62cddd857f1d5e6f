package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/lane-dodger/internal/core"
)

// keyboard is the subset of ebiten input state the window reads each tick.
type keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed() []ebiten.Key
	Closing() bool
}

// ebitenKeyboard reads the live ebiten input state.
type ebitenKeyboard struct {
	buf []ebiten.Key
}

func (k *ebitenKeyboard) Pressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }
func (k *ebitenKeyboard) Closing() bool               { return ebiten.IsWindowBeingClosed() }

func (k *ebitenKeyboard) JustPressed() []ebiten.Key {
	k.buf = inpututil.AppendJustPressedKeys(k.buf[:0])
	return k.buf
}

// Held direction keys.
var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// readInput builds the input frame for one tick.
// Directions are sampled as held state; Space and Escape count only on the
// tick they go down. Every fresh key except Escape is also an "any key".
func readInput(kb keyboard) core.InputFrame {
	in := core.NewInputFrame()

	if kb.Closing() {
		in.Set(core.ActionQuit)
	}

	for _, k := range leftKeys {
		if kb.Pressed(k) {
			in.Set(core.ActionLeft)
		}
	}
	for _, k := range rightKeys {
		if kb.Pressed(k) {
			in.Set(core.ActionRight)
		}
	}

	for _, k := range kb.JustPressed() {
		switch k {
		case ebiten.KeyEscape:
			in.Set(core.ActionCancel)
			continue
		case ebiten.KeySpace:
			in.Set(core.ActionShoot)
		}
		in.Set(core.ActionAnyKey)
	}
	return in
}
