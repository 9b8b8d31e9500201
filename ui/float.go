package ui

import (
	"fmt"

	"github.com/OpticalFlyer/pazzles/geom"
)

// Float is a container whose children keep their own positions. The
// container is anchored at its top-left corner and grows to enclose its
// active children.
type Float struct {
	Container
}

// NewFloat creates a float container with its top-left corner at topLeft.
// Any anchor option is ignored.
func NewFloat(a *Arena, topLeft geom.Point, opts ...Option) *Float {
	f := &Float{}
	f.init(a, f, topLeft, nil, append(opts, WithAnchor(geom.TopLeft)))
	f.layout = f
	return f
}

func (f *Float) ArrangeChildren(c *Container) {
	var w, h float64
	for _, child := range c.Children(true) {
		r := child.Rect()
		w = max(w, r.Right())
		h = max(h, r.Bottom())
	}
	c.fit(w, h)
}

func (f *Float) Info() string {
	return f.info([]string{fmt.Sprintf("children amount: %d", f.Len())})
}
