package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugMode selects what the debug overlay shows.
type DebugMode uint8

const (
	DebugOff DebugMode = iota
	// DebugFull lists the hovered layers and describes the selected one.
	DebugFull
	DebugInfo
	DebugLayers
	numDebugModes
)

func (m DebugMode) String() string {
	switch m {
	case DebugOff:
		return "off"
	case DebugFull:
		return "full"
	case DebugInfo:
		return "info"
	case DebugLayers:
		return "layers"
	}
	return fmt.Sprintf("DebugMode(%d)", uint8(m))
}

var (
	debugSelectedColor = color.RGBA{255, 50, 50, 255}
	debugLayerColor    = color.RGBA{50, 255, 50, 255}
)

func (c *Controller) DebugMode() DebugMode { return c.debug }

func (c *Controller) SetDebugMode(m DebugMode) {
	c.debug = m % numDebugModes
	c.layer = 0
}

// CycleDebug switches to the next debug mode, wrapping back to DebugOff.
func (c *Controller) CycleDebug() {
	c.SetDebugMode(c.debug + 1)
}

// updateDebug moves the layer selection with keypad plus and minus. The
// selection wraps around the widgets hovered this frame.
func (c *Controller) updateDebug() {
	if c.debug == DebugOff {
		return
	}
	if c.justPressed(ebiten.KeyKPAdd) {
		c.layer++
	}
	if c.justPressed(ebiten.KeyKPSubtract) {
		c.layer--
	}
	if n := len(c.frame.Hovered()); n > 0 {
		c.layer = (c.layer%n + n) % n
	}
}

// DebugLayer returns the index of the selected hovered widget.
func (c *Controller) DebugLayer() int { return c.layer }

// DebugSelected returns the hovered widget the overlay describes, or nil.
func (c *Controller) DebugSelected() Widget {
	hovered := c.frame.Hovered()
	if c.debug == DebugOff || c.layer < 0 || c.layer >= len(hovered) {
		return nil
	}
	return hovered[c.layer]
}

// ShowDebugInfo draws the debug overlay for the current debug mode: frame
// rates, the hovered layers outlined with the selected one highlighted, the
// selected widget's info and a crosshair at the pointer.
func (c *Controller) ShowDebugInfo(screen *ebiten.Image) {
	if c.debug == DebugOff {
		return
	}
	hovered := c.frame.Hovered()
	selected := c.DebugSelected()

	for _, w := range hovered {
		r := w.AbsoluteRect()
		if w == selected {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 3, debugSelectedColor, false)
		} else {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, debugLayerColor, false)
		}
	}

	p := c.mouse.Pos()
	b := screen.Bounds()
	vector.StrokeLine(screen, float32(p.X), 0, float32(p.X), float32(b.Dy()), 1, debugSelectedColor, false)
	vector.StrokeLine(screen, 0, float32(p.Y), float32(b.Dx()), float32(p.Y), 1, debugSelectedColor, false)

	ebitenutil.DebugPrint(screen, c.debugText())
}

func (c *Controller) debugText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FPS: %.2f TPS: %.2f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	if s := c.Current(); s != nil {
		fmt.Fprintf(&sb, "Screen: %s  Widgets: %d\n", s.Name(), c.arena.Len())
	}
	fmt.Fprintf(&sb, "Pointer: %v\n", c.mouse.Pos())

	hovered := c.frame.Hovered()
	if c.debug != DebugInfo && len(hovered) > 0 {
		sb.WriteString("layer: widget\n")
		for i, w := range hovered {
			fmt.Fprintf(&sb, "%-6d: %v\n", i, w)
		}
	}
	if w := c.DebugSelected(); w != nil && c.debug != DebugLayers {
		fmt.Fprintf(&sb, "layer: %d\n%s", c.layer, w.Info())
	}
	return sb.String()
}
