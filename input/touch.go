package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/pazzles/geom"
)

// touchState lets a touch screen drive the same snapshot as a mouse: the
// first finger acts as the left button and a two finger pinch scrolls.
type touchState struct {
	primary  ebiten.TouchID
	active   bool
	lastDist float64
}

func (m *Mouse) sampleTouches() {
	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)

	if m.touch.active {
		if !containsTouchID(touches, m.touch.primary) {
			m.Release(ButtonLeft)
			m.touch.active = false
		} else {
			x, y := ebiten.TouchPosition(m.touch.primary)
			m.MoveTo(geom.Pt(float64(x), float64(y)))
		}
	} else if m.State(ButtonLeft) == ButtonIdle {
		pressed := inpututil.AppendJustPressedTouchIDs(nil)
		if len(pressed) > 0 {
			m.touch.primary = pressed[0]
			m.touch.active = true
			x, y := ebiten.TouchPosition(m.touch.primary)
			m.MoveTo(geom.Pt(float64(x), float64(y)))
			m.Press(ButtonLeft)
		}
	}

	if len(touches) != 2 {
		m.touch.lastDist = 0
		return
	}

	// Two finger pinch maps onto the wheel
	x1, y1 := ebiten.TouchPosition(touches[0])
	x2, y2 := ebiten.TouchPosition(touches[1])
	dist := distance(float64(x1), float64(y1), float64(x2), float64(y2))
	if m.touch.lastDist > 0 {
		if dist > m.touch.lastDist*1.1 {
			m.Scroll(WheelUp)
			m.touch.lastDist = dist
		} else if dist < m.touch.lastDist*0.9 {
			m.Scroll(WheelDown)
			m.touch.lastDist = dist
		}
		return
	}
	m.touch.lastDist = dist
}

func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}

func distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
