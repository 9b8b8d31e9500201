package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/pazzles/geom"
	"github.com/OpticalFlyer/pazzles/input"
)

const (
	titleBarHeight = 20.0
	panelAlpha     = 200
)

var _ Parent = (*Panel)(nil)

// Panel is a floating container with a background and a title bar. The
// panel can be dragged around by its title bar with the left button.
// Children are positioned relative to the panel's top-left corner, so the
// first titleBarHeight pixels are covered by the bar.
type Panel struct {
	Float

	Title      string
	Background color.Color
	TitleColor color.Color

	minSize geom.Point
	// bounds limits dragging; zero means unbounded.
	bounds geom.Point

	isDragging bool
	dragLast   geom.Point
}

// NewPanel creates a panel of at least width×height with its top-left
// corner at topLeft.
func NewPanel(a *Arena, topLeft geom.Point, width, height float64, title string, opts ...Option) *Panel {
	p := &Panel{
		Title:      title,
		Background: color.RGBA{100, 100, 100, panelAlpha},
		TitleColor: color.RGBA{60, 60, 60, panelAlpha},
		minSize:    geom.Pt(width, max(height, titleBarHeight)),
	}
	p.init(a, p, topLeft, nil, append(opts, WithAnchor(geom.TopLeft)))
	p.layout = p
	p.RecomputePositions()

	p.Connect().Press(p.onPress)
	p.Connect().Drag(p.onDrag)
	p.Connect().Release(func(Widget, Event) { p.isDragging = false })
	return p
}

// SetBounds keeps the panel inside a width×height surface while dragging.
func (p *Panel) SetBounds(width, height float64) {
	p.bounds = geom.Pt(width, height)
	p.clamp()
}

func (p *Panel) clamp() {
	if p.bounds == (geom.Point{}) {
		return
	}
	r := p.rect
	r.X = min(max(r.X, 0), max(p.bounds.X-r.Width, 0))
	r.Y = min(max(r.Y, 0), max(p.bounds.Y-r.Height, 0))
	p.rect = r
}

// IsDragging reports whether the title bar is being dragged.
func (p *Panel) IsDragging() bool { return p.isDragging }

func (p *Panel) titleBar() geom.Rect {
	r := p.AbsoluteRect()
	r.Height = min(titleBarHeight, r.Height)
	return r
}

func (p *Panel) onPress(_ Widget, e Event) {
	if e.Button != input.ButtonLeft || !p.titleBar().Contains(e.Pointer) {
		return
	}
	p.isDragging = true
	p.dragLast = e.Pointer
}

func (p *Panel) onDrag(_ Widget, e Event) {
	if !p.isDragging || e.Button != input.ButtonLeft {
		return
	}
	p.Move(e.Pointer.Sub(p.dragLast))
	p.clamp()
	p.dragLast = e.Pointer
}

// ArrangeChildren grows the panel to enclose its children, but never below
// its minimum size.
func (p *Panel) ArrangeChildren(c *Container) {
	p.Float.ArrangeChildren(c)
	s := p.rect.Size()
	c.fit(max(s.X, p.minSize.X), max(s.Y, p.minSize.Y))
}

func (p *Panel) Cursor() (ebiten.CursorShapeType, bool) {
	if p.isDragging {
		return ebiten.CursorShapeMove, true
	}
	return ebiten.CursorShapeDefault, false
}

func (p *Panel) Render(dst *ebiten.Image, offset geom.Point) {
	p.render(dst, offset, func() {
		r := p.AbsoluteRect().Move(offset)
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), p.Background, true)
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(titleBarHeight), p.TitleColor, true)
		if p.Title != "" {
			op := &text.DrawOptions{}
			op.GeoM.Translate(r.X+4, r.Y+(titleBarHeight-13)/2)
			text.Draw(dst, p.Title, DefaultFace, op)
		}
		for _, w := range p.Children(false) {
			w.Render(dst, offset)
		}
	})
}
