package ui

import (
	"fmt"

	"github.com/OpticalFlyer/pazzles/geom"
)

// Grid places its active children left to right, top to bottom, in a
// fixed number of columns with uniform cell steps.
type Grid struct {
	Container

	columns int
	padding float64
}

// NewGrid creates a grid with the given number of columns. columns must be
// at least 1.
func NewGrid(a *Arena, pos geom.Point, columns int, padding float64, opts ...Option) (*Grid, error) {
	if columns < 1 {
		return nil, fmt.Errorf("grid with %d columns: %w", columns, ErrConfig)
	}
	g := &Grid{columns: columns, padding: padding}
	g.init(a, g, pos, nil, opts)
	g.layout = g
	g.RecomputePositions()
	return g, nil
}

func (g *Grid) Columns() int { return g.columns }

func (g *Grid) SetColumns(n int) error {
	if n < 1 {
		return fmt.Errorf("grid with %d columns: %w", n, ErrConfig)
	}
	g.columns = n
	g.RecomputePositions()
	return nil
}

func (g *Grid) Padding() float64 { return g.padding }

func (g *Grid) SetPadding(p float64) {
	g.padding = p
	g.RecomputePositions()
}

func (g *Grid) ArrangeChildren(c *Container) {
	children := c.Children(true)
	if len(children) == 0 {
		c.fit(0, 0)
		return
	}

	n, p := g.columns, g.padding
	rows := (len(children) + n - 1) / n

	var contentW, contentH, rowW, rowH float64
	for i, child := range children {
		s := child.Rect().Size()
		if i%n > 0 {
			rowW += p
		}
		rowW += s.X
		rowH = max(rowH, s.Y)
		if (i+1)%n == 0 || i == len(children)-1 {
			contentW = max(contentW, rowW)
			contentH += rowH
			if i < len(children)-1 {
				contentH += p
			}
			rowW, rowH = 0, 0
		}
	}
	c.fit(contentW, contentH)

	stepX := (contentW + p) / float64(n)
	stepY := (contentH + p) / float64(rows)
	for i, child := range children {
		col, row := i%n, i/n
		child.MoveTo(geom.Pt(float64(col)*stepX, float64(row)*stepY), geom.TopLeft)
	}
}

func (g *Grid) Info() string {
	return g.info([]string{
		fmt.Sprintf("children amount: %d", g.Len()),
		fmt.Sprintf("columns: %d", g.columns),
		fmt.Sprintf("padding: %g", g.padding),
	})
}
