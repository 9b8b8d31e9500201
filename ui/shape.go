package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	earcut "github.com/flywave/go-earcut"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/pazzles/geom"
)

var whiteSubImage *ebiten.Image

// fillSource returns a 1x1 white image for DrawTriangles. It is taken from
// the middle of a larger image so sampling never reaches an edge.
func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Shape is a filled simple polygon. The outline is triangulated once at
// construction.
type Shape struct {
	points   []geom.Point
	size     geom.Point
	vertices []ebiten.Vertex
	indices  []uint16
	color    color.Color
}

// NewShape triangulates the polygon given by outline. Points are relative
// to the shape origin and the shape size is the bounding box of the outline
// measured from the origin.
func NewShape(outline []geom.Point, c color.Color) (*Shape, error) {
	if len(outline) < 3 || len(outline) > math.MaxUint16 {
		return nil, fmt.Errorf("shape with %d points: %w", len(outline), ErrConfig)
	}

	flat := make([]float64, 0, 2*len(outline))
	var size geom.Point
	for _, p := range outline {
		flat = append(flat, p.X, p.Y)
		size.X = max(size.X, p.X)
		size.Y = max(size.Y, p.Y)
	}
	tris, err := earcut.Earcut(flat, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulate shape: %w", err)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("degenerate shape: %w", ErrConfig)
	}

	s := &Shape{
		points:   append([]geom.Point(nil), outline...),
		size:     size,
		vertices: make([]ebiten.Vertex, len(outline)),
		indices:  make([]uint16, len(tris)),
	}
	for i, t := range tris {
		s.indices[i] = uint16(t)
	}
	s.SetColor(c)
	return s, nil
}

// RoundedRect builds a w×h rectangle with corners of radius r.
func RoundedRect(w, h, r float64, c color.Color) (*Shape, error) {
	r = min(max(r, 0), w/2, h/2)
	if r == 0 {
		return NewShape([]geom.Point{geom.Pt(0, 0), geom.Pt(w, 0), geom.Pt(w, h), geom.Pt(0, h)}, c)
	}

	const segments = 6
	corners := [4]struct {
		center geom.Point
		start  float64
	}{
		{geom.Pt(w-r, r), -math.Pi / 2},
		{geom.Pt(w-r, h-r), 0},
		{geom.Pt(r, h-r), math.Pi / 2},
		{geom.Pt(r, r), math.Pi},
	}
	outline := make([]geom.Point, 0, 4*(segments+1))
	for _, k := range corners {
		for i := 0; i <= segments; i++ {
			a := k.start + float64(i)*(math.Pi/2)/segments
			outline = append(outline, geom.Pt(k.center.X+r*math.Cos(a), k.center.Y+r*math.Sin(a)))
		}
	}
	return NewShape(outline, c)
}

func (s *Shape) Color() color.Color { return s.color }

func (s *Shape) SetColor(c color.Color) {
	s.color = c
	r, g, b, a := c.RGBA()
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(r) / 0xffff
		v.ColorG = float32(g) / 0xffff
		v.ColorB = float32(b) / 0xffff
		v.ColorA = float32(a) / 0xffff
	}
}

// Triangles returns the number of triangles in the fill.
func (s *Shape) Triangles() int { return len(s.indices) / 3 }

func (s *Shape) Size() (w, h float64) { return s.size.X, s.size.Y }

func (s *Shape) Draw(dst *ebiten.Image, x, y float64) {
	for i, p := range s.points {
		s.vertices[i].DstX = float32(x + p.X)
		s.vertices[i].DstY = float32(y + p.Y)
	}
	dst.DrawTriangles(s.vertices, s.indices, fillSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// ImageContent draws an ebiten image at its natural size.
type ImageContent struct {
	Image *ebiten.Image
}

func (c ImageContent) Size() (w, h float64) {
	if c.Image == nil {
		return 0, 0
	}
	b := c.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c ImageContent) Draw(dst *ebiten.Image, x, y float64) {
	if c.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(c.Image, op)
}
