package ui

import (
	"fmt"

	"github.com/OpticalFlyer/pazzles/geom"
)

// Horizontal places its active children in a row, vertically centered.
type Horizontal struct {
	Container
	line Line
}

// NewHorizontal creates a row layout. A justification other than
// JustifyPadding without a length is rejected with ErrConfig.
func NewHorizontal(a *Arena, pos geom.Point, l Line, opts ...Option) (*Horizontal, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	h := &Horizontal{line: l}
	h.init(a, h, pos, nil, opts)
	h.layout = h
	h.RecomputePositions()
	return h, nil
}

func (h *Horizontal) Line() Line { return h.line }

// SetLine replaces the whole configuration.
func (h *Horizontal) SetLine(l Line) error {
	if err := l.validate(); err != nil {
		return err
	}
	h.line = l
	h.RecomputePositions()
	return nil
}

func (h *Horizontal) SetPadding(p float64) {
	h.line.Padding = p
	h.RecomputePositions()
}

func (h *Horizontal) SetLength(length float64) error {
	l := h.line
	l.Length = length
	return h.SetLine(l)
}

func (h *Horizontal) SetJustify(j Justify) error {
	l := h.line
	l.Justify = j
	return h.SetLine(l)
}

func (h *Horizontal) ArrangeChildren(c *Container) {
	children := c.Children(true)
	widths := make([]float64, len(children))
	var height float64
	for i, child := range children {
		s := child.Rect().Size()
		widths[i] = s.X
		height = max(height, s.Y)
	}

	width, gap, x := h.line.spacing(widths)
	c.fit(width, height)

	for i, child := range children {
		child.MoveTo(geom.Pt(x, height/2), geom.Left)
		x += widths[i] + gap
	}
}

func (h *Horizontal) Info() string {
	return h.info(append([]string{fmt.Sprintf("children amount: %d", h.Len())}, h.line.info()...))
}
