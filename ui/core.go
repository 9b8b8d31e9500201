package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/pazzles/geom"
	"github.com/OpticalFlyer/pazzles/input"
)

// Widget represents the basic building block of the UI system.
// The set of implementations is closed: every widget embeds Base, which
// provides the unexported base method and the shared behaviour.
type Widget interface {
	base() *Base

	ID() ID
	Update(f *Frame)
	Render(dst *ebiten.Image, offset geom.Point)
	Destroy()

	Active() bool
	SetActive(active bool)
	Anchor() geom.Anchor
	Tags() []string
	HasTags(tags ...string) bool

	Rect() geom.Rect
	AbsoluteRect() geom.Rect
	CollidesWithPoint(p geom.Point) bool
	Move(d geom.Point)
	MoveTo(p geom.Point, anchor geom.Anchor)

	Parent() Widget
	SetParent(parent Widget) error

	Events() *EventSystem
	Connect() Connector
	Disconnect() Disconnector
	Hovered() bool
	Pressed(b input.Button) bool

	// Cursor reports the cursor shape the widget wants while it is hovered
	// or interacted with. ok is false when it has no preference.
	Cursor() (shape ebiten.CursorShapeType, ok bool)
	Info() string
}

// Parent represents a Widget that owns an ordered set of children.
type Parent interface {
	Widget
	Add(ws ...Widget) error
	Remove(ws ...Widget) error
	InsertAt(index int, ws ...Widget) error
	Children(onlyActive bool) []Widget
	Clear()
	RecomputePositions()
}

// relayouter is implemented by parents whose geometry depends on the size
// or activity of their children.
type relayouter interface {
	RecomputePositions()
}

// Layout defines how a Container arranges its active children and sizes
// itself around them.
type Layout interface {
	ArrangeChildren(c *Container)
}

// Content is the visual payload of a widget. It is drawn with its top-left
// corner at the widget's rectangle origin.
type Content interface {
	Size() (w, h float64)
	Draw(dst *ebiten.Image, x, y float64)
}
