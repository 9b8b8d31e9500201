package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/pazzles/input"
)

// Frame is the state shared by every widget during one update sweep.
type Frame struct {
	Mouse *input.Mouse

	hovered    []Widget
	interacted []Widget
}

// NewFrame creates a frame reading pointer state from m.
func NewFrame(m *input.Mouse) *Frame {
	return &Frame{Mouse: m}
}

// Reset forgets the widgets collected during the previous sweep.
func (f *Frame) Reset() {
	clear(f.hovered)
	clear(f.interacted)
	f.hovered = f.hovered[:0]
	f.interacted = f.interacted[:0]
}

func (f *Frame) markHovered(w Widget)    { f.hovered = append(f.hovered, w) }
func (f *Frame) markInteracted(w Widget) { f.interacted = appendOnce(f.interacted, w) }

func appendOnce(ws []Widget, w Widget) []Widget {
	for _, x := range ws {
		if x == w {
			return ws
		}
	}
	return append(ws, w)
}

// Hovered returns the widgets under the pointer, in update order.
func (f *Frame) Hovered() []Widget { return f.hovered }

// Interacted returns the widgets holding a pressed button, in update order.
func (f *Frame) Interacted() []Widget { return f.interacted }

// Cursor resolves the cursor shape for this frame. A widget being interacted
// with takes precedence over a hovered one; def is used when no widget has
// a preference.
func (f *Frame) Cursor(def ebiten.CursorShapeType) ebiten.CursorShapeType {
	for _, w := range f.interacted {
		if c, ok := w.Cursor(); ok {
			return c
		}
	}
	for _, w := range f.hovered {
		if c, ok := w.Cursor(); ok {
			return c
		}
	}
	return def
}
