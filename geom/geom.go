package geom

import (
	"fmt"
	"strings"
)

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromSize returns a rectangle of the given size with its top-left
// corner at the origin.
func RectFromSize(w, h float64) Rect {
	return Rect{Width: w, Height: h}
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) TopLeft() Point { return Point{r.X, r.Y} }

// Size returns the width and height of the rectangle as a Point.
func (r Rect) Size() Point { return Point{r.Width, r.Height} }

// Move returns the rectangle translated by d.
func (r Rect) Move(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Contains reports whether p lies inside r. The left and top edges are
// inside, the right and bottom edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}

// At returns the coordinate of the named anchor point of r.
func (r Rect) At(a Anchor) Point {
	fx, fy := a.factors()
	return Point{r.X + r.Width*fx, r.Y + r.Height*fy}
}

// Anchored returns r moved so that its anchor point a lies at p.
// The size is unchanged.
func (r Rect) Anchored(a Anchor, p Point) Rect {
	fx, fy := a.factors()
	r.X = p.X - r.Width*fx
	r.Y = p.Y - r.Height*fy
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.X, r.Y, r.Width, r.Height)
}

// Anchor names one of the nine reference points of a rectangle.
type Anchor uint8

const (
	TopLeft Anchor = iota
	Top
	TopRight
	Left
	Center
	Right
	BottomLeft
	Bottom
	BottomRight
)

var anchorNames = [...]string{
	TopLeft:     "topleft",
	Top:         "midtop",
	TopRight:    "topright",
	Left:        "midleft",
	Center:      "center",
	Right:       "midright",
	BottomLeft:  "bottomleft",
	Bottom:      "midbottom",
	BottomRight: "bottomright",
}

func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", uint8(a))
}

// factors returns the fraction of the width and height at which the anchor
// sits, measured from the top-left corner.
func (a Anchor) factors() (fx, fy float64) {
	switch a {
	case TopLeft:
		return 0, 0
	case Top:
		return 0.5, 0
	case TopRight:
		return 1, 0
	case Left:
		return 0, 0.5
	case Right:
		return 1, 0.5
	case BottomLeft:
		return 0, 1
	case Bottom:
		return 0.5, 1
	case BottomRight:
		return 1, 1
	default:
		return 0.5, 0.5
	}
}

// ParseAnchor converts a name such as "center" or "midleft" to an Anchor.
// Matching is case-insensitive and the "mid" prefix is optional.
func ParseAnchor(s string) (Anchor, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range anchorNames {
		if s == name || "mid"+s == name {
			return Anchor(i), nil
		}
	}
	return 0, fmt.Errorf("unknown anchor %q", s)
}

func (a Anchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Anchor) UnmarshalText(b []byte) error {
	v, err := ParseAnchor(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
