package input

import "github.com/OpticalFlyer/pazzles/geom"

// Button identifies one of the three tracked mouse buttons.
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

// NumButtons is the number of tracked mouse buttons.
const NumButtons = 3

func (b Button) valid() bool { return b >= ButtonLeft && b <= ButtonRight }

// ButtonState is the state of a mouse button during one frame.
type ButtonState uint8

const (
	ButtonIdle ButtonState = iota
	ButtonPress
	ButtonHold
	ButtonRelease
)

func (s ButtonState) String() string {
	switch s {
	case ButtonPress:
		return "press"
	case ButtonHold:
		return "hold"
	case ButtonRelease:
		return "release"
	default:
		return "idle"
	}
}

// Wheel is the scroll direction of the mouse wheel during one frame.
type Wheel uint8

const (
	WheelNone Wheel = iota
	WheelUp
	WheelDown
)

// Mouse is the per-frame pointer snapshot consumed by widget event systems.
// Call Advance once at the start of each frame, then feed the raw samples.
type Mouse struct {
	pos     geom.Point
	prev    geom.Point
	moved   bool
	wheel   Wheel
	buttons [NumButtons]ButtonState

	touch touchState
}

// Advance decays the previous frame's edges: a press becomes a hold,
// a release becomes idle, and the wheel and motion flags are cleared.
func (m *Mouse) Advance() {
	m.prev = m.pos
	m.moved = false
	m.wheel = WheelNone
	for i, s := range m.buttons {
		switch s {
		case ButtonPress:
			m.buttons[i] = ButtonHold
		case ButtonRelease:
			m.buttons[i] = ButtonIdle
		}
	}
}

// MoveTo sets the pointer position and raises the motion flag if it changed.
func (m *Mouse) MoveTo(p geom.Point) {
	if p != m.pos {
		m.moved = true
	}
	m.pos = p
}

// Press marks b as pressed this frame. Buttons outside 1..3 are ignored.
func (m *Mouse) Press(b Button) {
	if b.valid() {
		m.buttons[b-1] = ButtonPress
	}
}

// Release marks b as released this frame. Buttons outside 1..3 are ignored.
func (m *Mouse) Release(b Button) {
	if b.valid() {
		m.buttons[b-1] = ButtonRelease
	}
}

// Scroll records the wheel direction for this frame.
func (m *Mouse) Scroll(w Wheel) {
	m.wheel = w
}

func (m *Mouse) Pos() geom.Point     { return m.pos }
func (m *Mouse) PrevPos() geom.Point { return m.prev }
func (m *Mouse) Moved() bool         { return m.moved }
func (m *Mouse) Wheel() Wheel        { return m.wheel }

// State returns the state of button b, or ButtonIdle for an unknown button.
func (m *Mouse) State(b Button) ButtonState {
	if !b.valid() {
		return ButtonIdle
	}
	return m.buttons[b-1]
}

// Delta returns how far the pointer moved since the previous frame.
func (m *Mouse) Delta() geom.Point {
	return m.pos.Sub(m.prev)
}
