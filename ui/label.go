package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/pazzles/geom"
)

// DefaultFace is the face used by labels that were not given one.
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// TextContent is multi-line text drawn with an ebiten text face.
type TextContent struct {
	Text       string
	Face       text.Face
	Color      color.Color
	Background color.Color
	// Padding is added around the text on every side.
	Padding float64
	// Wrap is the widest a line may get before it is broken between words.
	// Zero disables wrapping.
	Wrap float64
}

func (t *TextContent) face() text.Face {
	if t.Face == nil {
		return DefaultFace
	}
	return t.Face
}

func (t *TextContent) lineSpacing() float64 {
	m := t.face().Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// wrapped returns the text with line breaks inserted where a line would
// grow past Wrap. A word wider than Wrap gets a line of its own.
func (t *TextContent) wrapped() string {
	if t.Wrap <= 0 {
		return t.Text
	}
	face := t.face()
	var sb strings.Builder
	for i, para := range strings.Split(t.Text, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}
		var line string
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case text.Advance(line+" "+word, face) > t.Wrap:
				sb.WriteString(line)
				sb.WriteByte('\n')
				line = word
			default:
				line += " " + word
			}
		}
		sb.WriteString(line)
	}
	return sb.String()
}

func (t *TextContent) Size() (w, h float64) {
	w, h = text.Measure(t.wrapped(), t.face(), t.lineSpacing())
	return w + 2*t.Padding, h + 2*t.Padding
}

func (t *TextContent) Draw(dst *ebiten.Image, x, y float64) {
	if t.Background != nil {
		w, h := t.Size()
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), t.Background, false)
	}
	op := &text.DrawOptions{}
	op.LineSpacing = t.lineSpacing()
	op.GeoM.Translate(x+t.Padding, y+t.Padding)
	if t.Color != nil {
		op.ColorScale.ScaleWithColor(t.Color)
	}
	text.Draw(dst, t.wrapped(), t.face(), op)
}

// Label is a widget displaying a line or block of text.
type Label struct {
	Base
	text TextContent
}

// NewLabel creates a white label showing s.
func NewLabel(a *Arena, pos geom.Point, s string, opts ...Option) *Label {
	l := &Label{text: TextContent{Text: s, Color: color.White}}
	l.init(a, l, pos, &l.text, opts)
	return l
}

func (l *Label) Text() string { return l.text.Text }

// SetText changes the text keeping the label's anchor point in place.
func (l *Label) SetText(s string) {
	l.text.Text = s
	l.refresh()
}

func (l *Label) SetColor(c color.Color) { l.text.Color = c }

func (l *Label) SetBackground(c color.Color) { l.text.Background = c }

func (l *Label) SetFace(f text.Face) {
	l.text.Face = f
	l.refresh()
}

func (l *Label) SetPadding(p float64) {
	l.text.Padding = p
	l.refresh()
}

// SetWrap breaks lines between words so none is wider than w. Zero
// disables wrapping.
func (l *Label) SetWrap(w float64) {
	l.text.Wrap = w
	l.refresh()
}

func (l *Label) refresh() {
	l.SetContent(&l.text, l.anchor)
}

func (l *Label) Info() string {
	return l.info([]string{fmt.Sprintf("text: %q", l.text.Text)})
}
