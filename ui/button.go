package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/pazzles/geom"
	"github.com/OpticalFlyer/pazzles/input"
)

var (
	_ Widget = (*Button)(nil)
	_ Widget = (*AnimatedButton)(nil)
)

// Button is a clickable widget with an optional label centered on it.
// Listen for clicks with Connect().Click.
type Button struct {
	Base

	label       *Label
	labelOffset geom.Point

	hoverCursor ebiten.CursorShapeType
	pressCursor ebiten.CursorShapeType
}

// NewButton creates a button showing c. Without content the button takes
// the size of its label.
func NewButton(a *Arena, pos geom.Point, c Content, opts ...Option) *Button {
	b := &Button{}
	b.initButton(a, b, pos, c, opts)
	return b
}

func (b *Button) initButton(a *Arena, self Widget, pos geom.Point, c Content, opts []Option) {
	b.hoverCursor = ebiten.CursorShapePointer
	b.pressCursor = ebiten.CursorShapePointer
	b.init(a, self, pos, c, opts)
}

// SetCursors sets the cursor shapes shown while the button is hovered and
// while it is pressed.
func (b *Button) SetCursors(hover, press ebiten.CursorShapeType) {
	b.hoverCursor = hover
	b.pressCursor = press
}

func (b *Button) Cursor() (ebiten.CursorShapeType, bool) {
	for btn := input.ButtonLeft; btn <= input.ButtonRight; btn++ {
		if b.Pressed(btn) {
			return b.pressCursor, true
		}
	}
	if b.Hovered() {
		return b.hoverCursor, true
	}
	return ebiten.CursorShapeDefault, false
}

func (b *Button) Label() *Label { return b.label }

// SetLabel replaces the label, centering it on the button and shifting it
// by offset. The previous label is detached but not destroyed.
func (b *Button) SetLabel(l *Label, offset geom.Point) error {
	if l != nil && l.Parent() != nil && l.Parent() != b.self {
		return fmt.Errorf("set label of %v: %w", b.id, ErrHasParent)
	}
	if b.label != nil && b.label != l {
		_ = b.label.SetParent(nil)
	}
	b.label = l
	b.labelOffset = offset
	if l != nil {
		_ = l.SetParent(b.self)
	}
	b.RecomputePositions()
	return nil
}

// SetContent replaces the content keeping the anchor point fixed and the
// label centered.
func (b *Button) SetContent(c Content, anchor geom.Anchor) {
	b.content = c
	b.fitLabel(anchor)
	b.relayoutParent()
}

// RecomputePositions recenters the label after it changed size.
func (b *Button) RecomputePositions() {
	b.fitLabel(b.anchor)
	b.relayoutParent()
}

func (b *Button) fitLabel(anchor geom.Anchor) {
	switch {
	case b.content != nil:
		w, h := b.content.Size()
		b.resize(w, h, anchor)
	case b.label != nil:
		s := b.label.Size()
		b.resize(s.X, s.Y, anchor)
	default:
		b.resize(0, 0, anchor)
	}
	if b.label == nil {
		return
	}
	s, ls := b.rect.Size(), b.label.Size()
	b.label.MoveTo(geom.Pt((s.X-ls.X)/2, (s.Y-ls.Y)/2), geom.TopLeft)
	b.label.Move(b.labelOffset)
}

func (b *Button) Update(f *Frame) {
	b.update(f, func() {
		if b.label != nil {
			b.label.Update(f)
		}
	})
}

func (b *Button) Render(dst *ebiten.Image, offset geom.Point) {
	b.render(dst, offset, func() {
		if b.label != nil {
			b.label.Render(dst, offset)
		}
	})
}

// Destroy destroys the label together with the button.
func (b *Button) Destroy() {
	if b.destroyed {
		return
	}
	if b.label != nil {
		b.label.Destroy()
	}
	b.Base.Destroy()
}

func (b *Button) detach(w Widget) {
	if b.label != nil && Widget(b.label) == w {
		b.label = nil
	}
}

func (b *Button) Info() string {
	label := "none"
	if b.label != nil {
		label = fmt.Sprintf("%q", b.label.Text())
	}
	return b.info([]string{"label: " + label})
}

// AnimatedButton is a Button that shows a different content while pressed.
type AnimatedButton struct {
	Button

	released Content
	pressed  Content
}

func NewAnimatedButton(a *Arena, pos geom.Point, released, pressed Content, opts ...Option) *AnimatedButton {
	ab := &AnimatedButton{released: released, pressed: pressed}
	ab.initButton(a, ab, pos, released, opts)
	ab.Connect().Press(func(Widget, Event) { ab.SetContent(ab.pressed, geom.Center) })
	ab.Connect().Release(func(Widget, Event) { ab.SetContent(ab.released, geom.Center) })
	return ab
}
