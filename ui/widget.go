package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/pazzles/geom"
	"github.com/OpticalFlyer/pazzles/input"
)

var _ Widget = (*Base)(nil)

// Option configures a widget at construction.
type Option func(*Base)

// WithAnchor sets the anchor the construction position refers to.
// The default is geom.Center.
func WithAnchor(a geom.Anchor) Option {
	return func(b *Base) { b.anchor = a }
}

func WithTags(tags ...string) Option {
	return func(b *Base) { b.AddTags(tags...) }
}

// WithActive sets the initial active flag. Widgets are active by default.
func WithActive(active bool) Option {
	return func(b *Base) { b.active = active }
}

// detacher is implemented by owners that keep a reference to a child which
// must be dropped when the child is destroyed.
type detacher interface {
	detach(w Widget)
}

// Base is a leaf widget and the embedded core of every other widget.
type Base struct {
	self  Widget
	arena *Arena
	id    ID

	rect    geom.Rect
	content Content
	anchor  geom.Anchor
	tags    []string
	active  bool

	parent    Widget
	events    *EventSystem
	destroyed bool
}

// NewWidget creates a leaf widget showing c, placed so that its anchor point
// lies at pos, and registers it in a.
func NewWidget(a *Arena, pos geom.Point, c Content, opts ...Option) *Base {
	b := &Base{}
	b.init(a, b, pos, c, opts)
	return b
}

// init must be called exactly once by every constructor, with self set to
// the outermost widget that embeds b.
func (b *Base) init(a *Arena, self Widget, pos geom.Point, c Content, opts []Option) {
	b.self = self
	b.arena = a
	b.anchor = geom.Center
	b.active = true
	b.content = c
	for _, opt := range opts {
		opt(b)
	}
	b.rect = contentRect(c).Anchored(b.anchor, pos)
	b.events = newEventSystem(self)
	b.id = a.insert(self)
}

func contentRect(c Content) geom.Rect {
	if c == nil {
		return geom.Rect{}
	}
	w, h := c.Size()
	return geom.RectFromSize(w, h)
}

func (b *Base) base() *Base { return b }

func (b *Base) ID() ID { return b.id }

// Update runs one event sweep for the widget.
func (b *Base) Update(f *Frame) { b.update(f, nil) }

// update wraps the event system update, preceded by inner, in the
// pre-update and post-update lifecycle events.
func (b *Base) update(f *Frame, inner func()) {
	if !b.active {
		return
	}
	b.events.emit(Event{Kind: EventPreUpdate})
	if inner != nil {
		inner()
	}
	b.events.update(f)
	b.events.emit(Event{Kind: EventPostUpdate})
}

// Render draws the widget content at its absolute position translated by
// offset.
func (b *Base) Render(dst *ebiten.Image, offset geom.Point) { b.render(dst, offset, nil) }

// render draws the content, then after, between the pre-render and
// post-render lifecycle events.
func (b *Base) render(dst *ebiten.Image, offset geom.Point, after func()) {
	if !b.active {
		return
	}
	b.events.emit(Event{Kind: EventPreRender, Target: dst, Offset: offset})
	if b.content != nil {
		p := b.self.AbsoluteRect().TopLeft().Add(offset)
		b.content.Draw(dst, p.X, p.Y)
	}
	if after != nil {
		after()
	}
	b.events.emit(Event{Kind: EventPostRender, Target: dst, Offset: offset})
}

// Destroy removes the widget from its arena and detaches it from its
// parent. Destroying twice is a no-op.
func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if d, ok := b.parent.(detacher); ok {
		d.detach(b.self)
	}
	b.parent = nil
	b.arena.remove(b.id)
}

// Destroyed reports whether Destroy has been called.
func (b *Base) Destroyed() bool { return b.destroyed }

func (b *Base) Active() bool { return b.active }

// SetActive changes the active flag. A parent that lays out its children is
// recomputed when the flag changes.
func (b *Base) SetActive(active bool) {
	if b.active == active {
		return
	}
	b.active = active
	b.relayoutParent()
}

// isAncestor reports whether w is w2 or one of its parents.
func isAncestor(w, w2 Widget) bool {
	for p := w2; p != nil; p = p.Parent() {
		if p == w {
			return true
		}
	}
	return false
}

func (b *Base) relayoutParent() {
	if r, ok := b.parent.(relayouter); ok {
		r.RecomputePositions()
	}
}

func (b *Base) Anchor() geom.Anchor { return b.anchor }

// SetAnchor changes the anchor used by MoveToAnchor. The rectangle does not
// move.
func (b *Base) SetAnchor(a geom.Anchor) { b.anchor = a }

func (b *Base) Tags() []string { return slices.Clone(b.tags) }

// HasTags reports whether the widget carries every one of tags.
func (b *Base) HasTags(tags ...string) bool {
	for _, t := range tags {
		if !slices.Contains(b.tags, t) {
			return false
		}
	}
	return true
}

func (b *Base) AddTags(tags ...string) {
	for _, t := range tags {
		if !slices.Contains(b.tags, t) {
			b.tags = append(b.tags, t)
		}
	}
}

func (b *Base) RemoveTags(tags ...string) {
	b.tags = slices.DeleteFunc(b.tags, func(t string) bool {
		return slices.Contains(tags, t)
	})
}

// Rect returns the rectangle relative to the parent's top-left corner.
func (b *Base) Rect() geom.Rect { return b.rect }

// AbsoluteRect returns the rectangle in surface coordinates.
func (b *Base) AbsoluteRect() geom.Rect {
	if b.parent == nil {
		return b.rect
	}
	return b.rect.Move(b.parent.AbsoluteRect().TopLeft())
}

func (b *Base) CollidesWithPoint(p geom.Point) bool {
	return b.self.AbsoluteRect().Contains(p)
}

func (b *Base) Size() geom.Point { return b.rect.Size() }

func (b *Base) Move(d geom.Point) { b.rect = b.rect.Move(d) }

// MoveTo places the widget so that its anchor point lies at p.
func (b *Base) MoveTo(p geom.Point, anchor geom.Anchor) {
	b.rect = b.rect.Anchored(anchor, p)
}

// MoveToAnchor is MoveTo with the widget's own anchor.
func (b *Base) MoveToAnchor(p geom.Point) { b.MoveTo(p, b.anchor) }

// resize changes the size keeping the given anchor point fixed.
func (b *Base) resize(w, h float64, anchor geom.Anchor) {
	at := b.rect.At(anchor)
	b.rect.Width, b.rect.Height = w, h
	b.rect = b.rect.Anchored(anchor, at)
}

func (b *Base) Content() Content { return b.content }

// SetContent replaces the visual content. The rectangle takes the new
// content size with its anchor point unchanged, and a parent that lays out
// its children is recomputed.
func (b *Base) SetContent(c Content, anchor geom.Anchor) {
	b.content = c
	r := contentRect(c)
	b.resize(r.Width, r.Height, anchor)
	b.relayoutParent()
}

func (b *Base) Parent() Widget { return b.parent }

// SetParent assigns the owner of the widget. Use nil to detach.
func (b *Base) SetParent(parent Widget) error {
	if b.parent != nil && parent != nil && b.parent != parent {
		return fmt.Errorf("set parent of %v: %w", b.id, ErrHasParent)
	}
	if isAncestor(b.self, parent) {
		return fmt.Errorf("set parent of %v: %w", b.id, ErrCycle)
	}
	b.parent = parent
	return nil
}

func (b *Base) Events() *EventSystem { return b.events }

// Connect returns a helper registering listeners by event name.
func (b *Base) Connect() Connector { return Connector{b.events} }

func (b *Base) Disconnect() Disconnector { return Disconnector{b.events} }

func (b *Base) Hovered() bool { return b.events.Hovered() }

func (b *Base) Pressed(btn input.Button) bool { return b.events.Pressed(btn) }

// SetDisabled stops or resumes pointer event processing.
func (b *Base) SetDisabled(v bool) { b.events.SetDisabled(v) }

func (b *Base) Cursor() (ebiten.CursorShapeType, bool) { return ebiten.CursorShapeDefault, false }

func (b *Base) Info() string {
	return b.info(nil)
}

// info formats the debug description shared by all widgets, followed by
// any extra lines.
func (b *Base) info(extra []string) string {
	var sb strings.Builder
	name := strings.TrimPrefix(fmt.Sprintf("%T", b.self), "*ui.")
	fmt.Fprintf(&sb, "%s:\n", name)
	fmt.Fprintf(&sb, "  - id: %v\n", b.id)
	fmt.Fprintf(&sb, "  - active: %t\n", b.active)
	fmt.Fprintf(&sb, "  - anchor: %v\n", b.anchor)
	fmt.Fprintf(&sb, "  - tags: %v\n", b.tags)
	fmt.Fprintf(&sb, "  - absolute rect: %v\n", b.self.AbsoluteRect())
	fmt.Fprintf(&sb, "  - relative rect: %v\n", b.rect)
	if b.parent != nil {
		fmt.Fprintf(&sb, "  - parent: %v\n", b.parent.ID())
	} else {
		sb.WriteString("  - parent: none\n")
	}
	for _, l := range extra {
		fmt.Fprintf(&sb, "  - %s\n", l)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (b *Base) String() string {
	return fmt.Sprintf("%s(%v)", strings.TrimPrefix(fmt.Sprintf("%T", b.self), "*ui."), b.id)
}
