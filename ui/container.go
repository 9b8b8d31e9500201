package ui

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/pazzles/geom"
)

var _ Parent = (*Container)(nil)

// Container is a widget that owns an ordered list of children. Children are
// positioned relative to the container's top-left corner. A plain Container
// leaves its children where they are; the layout containers embed it and
// arrange them.
type Container struct {
	Base

	children []Widget
	layout   Layout
}

// NewContainer creates an empty container anchored at pos.
func NewContainer(a *Arena, pos geom.Point, opts ...Option) *Container {
	c := &Container{}
	c.init(a, c, pos, nil, opts)
	return c
}

// Update updates the children in reverse order, so the topmost child sees
// the input first, then the container itself.
func (c *Container) Update(f *Frame) {
	c.update(f, func() {
		children := slices.Clone(c.children)
		for i := len(children) - 1; i >= 0; i-- {
			children[i].Update(f)
		}
	})
}

// Render draws the container, then its children in order.
func (c *Container) Render(dst *ebiten.Image, offset geom.Point) {
	c.render(dst, offset, func() {
		for _, w := range slices.Clone(c.children) {
			w.Render(dst, offset)
		}
	})
}

// Destroy destroys every child, then the container.
func (c *Container) Destroy() {
	if c.destroyed {
		return
	}
	for _, w := range slices.Clone(c.children) {
		w.Destroy()
	}
	c.Base.Destroy()
}

func (c *Container) Info() string {
	return c.info([]string{fmt.Sprintf("children amount: %d", len(c.children))})
}

// Add appends ws to the children. A widget owned by another parent is
// rejected with ErrHasParent.
func (c *Container) Add(ws ...Widget) error {
	defer c.RecomputePositions()
	for _, w := range ws {
		if w == nil {
			return ErrNilWidget
		}
		if c.ChildIndex(w) >= 0 {
			return fmt.Errorf("add %v: %w", w, ErrHasParent)
		}
		if isAncestor(w, c.self) {
			return fmt.Errorf("add %v: %w", w, ErrCycle)
		}
		if err := w.SetParent(c.self); err != nil {
			return err
		}
		c.children = append(c.children, w)
	}
	return nil
}

// Remove detaches ws from the container.
func (c *Container) Remove(ws ...Widget) error {
	defer c.RecomputePositions()
	for _, w := range ws {
		if w == nil {
			return ErrNilWidget
		}
		i := c.ChildIndex(w)
		if i < 0 {
			return fmt.Errorf("remove %v: %w", w, ErrNotChild)
		}
		c.children = slices.Delete(c.children, i, i+1)
		_ = w.SetParent(nil)
	}
	return nil
}

// InsertAt inserts ws before index, which is clamped to the valid range.
// Widgets owned by another container are moved out of it first.
func (c *Container) InsertAt(index int, ws ...Widget) error {
	defer c.RecomputePositions()
	for i, w := range ws {
		if w == nil {
			return ErrNilWidget
		}
		if isAncestor(w, c.self) {
			return fmt.Errorf("insert %v: %w", w, ErrCycle)
		}
		if old := w.Parent(); old != nil {
			p, ok := old.(Parent)
			if !ok {
				return fmt.Errorf("insert %v: %w", w, ErrHasParent)
			}
			if err := p.Remove(w); err != nil {
				return err
			}
		}
		if err := w.SetParent(c.self); err != nil {
			return err
		}
		at := min(max(index+i, 0), len(c.children))
		c.children = slices.Insert(c.children, at, w)
	}
	return nil
}

func (c *Container) detach(w Widget) {
	if i := c.ChildIndex(w); i >= 0 {
		c.children = slices.Delete(c.children, i, i+1)
		c.RecomputePositions()
	}
}

// Children returns a copy of the child list, optionally filtered to the
// active children.
func (c *Container) Children(onlyActive bool) []Widget {
	if !onlyActive {
		return slices.Clone(c.children)
	}
	out := make([]Widget, 0, len(c.children))
	for _, w := range c.children {
		if w.Active() {
			out = append(out, w)
		}
	}
	return out
}

// ChildIndex returns the position of w among the children, or -1.
func (c *Container) ChildIndex(w Widget) int {
	return slices.Index(c.children, w)
}

func (c *Container) Len() int { return len(c.children) }

// Clear detaches every child without destroying it.
func (c *Container) Clear() {
	for _, w := range c.children {
		_ = w.SetParent(nil)
	}
	clear(c.children)
	c.children = c.children[:0]
	c.RecomputePositions()
}

// RecomputePositions arranges the children with the container's layout and
// asks the parent to do the same.
func (c *Container) RecomputePositions() {
	if c.layout != nil {
		c.layout.ArrangeChildren(c)
	}
	c.relayoutParent()
}

// fit resizes the container to w×h keeping its anchor point in place.
func (c *Container) fit(w, h float64) {
	c.resize(max(w, 0), max(h, 0), c.anchor)
}
