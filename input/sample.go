package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/pazzles/geom"
)

var ebitenButtons = [NumButtons]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Sample advances the snapshot to a new frame and fills it from ebiten.
// Ebiten reports the cursor in the logical screen size returned by
// Game.Layout, so no further scaling is applied here.
func (m *Mouse) Sample() {
	m.Advance()

	x, y := ebiten.CursorPosition()
	m.MoveTo(geom.Pt(float64(x), float64(y)))

	for i, eb := range ebitenButtons {
		b := Button(i + 1)
		if inpututil.IsMouseButtonJustPressed(eb) {
			m.Press(b)
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			m.Release(b)
		}
	}

	// Mouse wheel
	_, wheelY := ebiten.Wheel()
	switch {
	case wheelY > 0:
		m.Scroll(WheelUp)
	case wheelY < 0:
		m.Scroll(WheelDown)
	}

	m.sampleTouches()
}
