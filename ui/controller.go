package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/pazzles/geom"
	"github.com/OpticalFlyer/pazzles/input"
)

// Screen is one page of the application, such as a menu or the game view.
// Build is called once when the screen is added to a Controller; the
// returned root is updated and rendered while the screen is current.
type Screen interface {
	Name() string
	Build(a *Arena) (Parent, error)
	// Load is called each time the screen becomes current, Clear each time
	// it stops being current.
	Load()
	Clear()
	ProcessEvent(e input.Event)
	// Update and Render run after the widget tree.
	Update(f *Frame)
	Render(dst *ebiten.Image)
}

// ScreenBase provides no-op implementations of the optional Screen methods.
type ScreenBase struct{}

func (ScreenBase) Load()                      {}
func (ScreenBase) Clear()                     {}
func (ScreenBase) ProcessEvent(e input.Event) {}
func (ScreenBase) Update(f *Frame)            {}
func (ScreenBase) Render(dst *ebiten.Image)   {}

type screenEntry struct {
	screen Screen
	root   Parent
}

// Controller manages the screens of the application and drives the widget
// tree of the current one.
type Controller struct {
	arena *Arena
	mouse *input.Mouse
	frame *Frame

	screens []screenEntry
	current int
	pending string

	defaultCursor ebiten.CursorShapeType
	cursor        ebiten.CursorShapeType
	setCursor     func(ebiten.CursorShapeType)

	debug       DebugMode
	layer       int
	justPressed func(ebiten.Key) bool
}

// NewController creates a controller whose widgets live in a and read
// pointer state from m.
func NewController(a *Arena, m *input.Mouse) *Controller {
	return &Controller{
		arena:       a,
		mouse:       m,
		frame:       NewFrame(m),
		current:     -1,
		setCursor:   ebiten.SetCursorShape,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

func (c *Controller) Arena() *Arena { return c.arena }
func (c *Controller) Frame() *Frame { return c.frame }

// AddScreen builds s and registers it. The first screen added becomes the
// current one.
func (c *Controller) AddScreen(s Screen) error {
	if c.index(s.Name()) >= 0 {
		return fmt.Errorf("add screen %q: %w", s.Name(), ErrScreenExists)
	}
	root, err := s.Build(c.arena)
	if err != nil {
		return fmt.Errorf("build screen %q: %w", s.Name(), err)
	}
	c.screens = append(c.screens, screenEntry{screen: s, root: root})
	if c.current < 0 {
		c.current = len(c.screens) - 1
		s.Load()
		c.resetCursor()
	}
	return nil
}

func (c *Controller) index(name string) int {
	for i, e := range c.screens {
		if e.screen.Name() == name {
			return i
		}
	}
	return -1
}

// Names returns the screen names in the order they were added.
func (c *Controller) Names() []string {
	names := make([]string, len(c.screens))
	for i, e := range c.screens {
		names[i] = e.screen.Name()
	}
	return names
}

// Current returns the current screen, or nil before any was added.
func (c *Controller) Current() Screen {
	if c.current < 0 {
		return nil
	}
	return c.screens[c.current].screen
}

// Root returns the widget tree of the current screen.
func (c *Controller) Root() Parent {
	if c.current < 0 {
		return nil
	}
	return c.screens[c.current].root
}

// Switch makes the named screen current. The outgoing screen is cleared,
// the incoming one loaded and the cursor reset.
func (c *Controller) Switch(name string) error {
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("switch to %q (have %s): %w",
			name, strings.Join(c.Names(), ", "), ErrScreenNotFound)
	}
	if c.current >= 0 {
		c.screens[c.current].screen.Clear()
	}
	c.current = i
	c.screens[i].screen.Load()
	c.resetCursor()
	return nil
}

// RequestSwitch schedules a switch for the start of the next Update. It is
// safe to call from listeners running inside the update sweep.
func (c *Controller) RequestSwitch(name string) {
	c.pending = name
}

func (c *Controller) SetDefaultCursor(shape ebiten.CursorShapeType) {
	c.defaultCursor = shape
	c.resetCursor()
}

func (c *Controller) resetCursor() {
	c.cursor = c.defaultCursor
	c.setCursor(c.cursor)
}

// ProcessEvent forwards a raw event to the current screen.
func (c *Controller) ProcessEvent(e input.Event) {
	if s := c.Current(); s != nil {
		s.ProcessEvent(e)
	}
}

// Update runs one update sweep over the current screen. The mouse must
// already hold this frame's sample.
func (c *Controller) Update() error {
	if c.pending != "" {
		name := c.pending
		c.pending = ""
		if err := c.Switch(name); err != nil {
			return err
		}
	}
	if c.current < 0 {
		return ErrNoScreen
	}

	e := c.screens[c.current]
	c.frame.Reset()
	e.root.Update(c.frame)
	e.screen.Update(c.frame)

	if shape := c.frame.Cursor(c.defaultCursor); shape != c.cursor {
		c.cursor = shape
		c.setCursor(shape)
	}
	c.updateDebug()
	return nil
}

// Draw renders the current screen's widget tree, then the screen itself.
func (c *Controller) Draw(screen *ebiten.Image) {
	if c.current < 0 {
		return
	}
	e := c.screens[c.current]
	e.root.Render(screen, geom.Point{})
	e.screen.Render(screen)
}

// IsInteractingWithUI returns true if any widget holds a pressed button
func (c *Controller) IsInteractingWithUI() bool {
	return len(c.frame.Interacted()) > 0
}
