package ui

import (
	"fmt"

	"github.com/OpticalFlyer/pazzles/geom"
)

// Vertical places its active children in a column, horizontally centered.
type Vertical struct {
	Container
	line Line
}

// NewVertical creates a column layout. A justification other than
// JustifyPadding without a length is rejected with ErrConfig.
func NewVertical(a *Arena, pos geom.Point, l Line, opts ...Option) (*Vertical, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	v := &Vertical{line: l}
	v.init(a, v, pos, nil, opts)
	v.layout = v
	v.RecomputePositions()
	return v, nil
}

func (v *Vertical) Line() Line { return v.line }

func (v *Vertical) SetLine(l Line) error {
	if err := l.validate(); err != nil {
		return err
	}
	v.line = l
	v.RecomputePositions()
	return nil
}

func (v *Vertical) SetPadding(p float64) {
	v.line.Padding = p
	v.RecomputePositions()
}

func (v *Vertical) SetLength(length float64) error {
	l := v.line
	l.Length = length
	return v.SetLine(l)
}

func (v *Vertical) SetJustify(j Justify) error {
	l := v.line
	l.Justify = j
	return v.SetLine(l)
}

func (v *Vertical) ArrangeChildren(c *Container) {
	children := c.Children(true)
	heights := make([]float64, len(children))
	var width float64
	for i, child := range children {
		s := child.Rect().Size()
		heights[i] = s.Y
		width = max(width, s.X)
	}

	height, gap, y := v.line.spacing(heights)
	c.fit(width, height)

	for i, child := range children {
		child.MoveTo(geom.Pt(width/2, y), geom.Top)
		y += heights[i] + gap
	}
}

func (v *Vertical) Info() string {
	return v.info(append([]string{fmt.Sprintf("children amount: %d", v.Len())}, v.line.info()...))
}
