package ui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/pazzles/geom"
	"github.com/OpticalFlyer/pazzles/input"
)

type fakeScreen struct {
	ScreenBase
	name     string
	buildErr error

	root   *Float
	button *Button
	loads  int
	clears int
	events []input.Event
	ticks  int
}

func (s *fakeScreen) Name() string { return s.name }

func (s *fakeScreen) Build(a *Arena) (Parent, error) {
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	s.root = NewFloat(a, geom.Pt(0, 0))
	s.button = NewButton(a, geom.Pt(0, 0), box{10, 10}, WithAnchor(geom.TopLeft))
	return s.root, s.root.Add(s.button)
}

func (s *fakeScreen) Load()                      { s.loads++ }
func (s *fakeScreen) Clear()                     { s.clears++ }
func (s *fakeScreen) ProcessEvent(e input.Event) { s.events = append(s.events, e) }
func (s *fakeScreen) Update(*Frame)              { s.ticks++ }

func newTestController() (*Controller, *input.Mouse, *[]ebiten.CursorShapeType) {
	var shapes []ebiten.CursorShapeType
	m := &input.Mouse{}
	c := NewController(NewArena(), m)
	c.setCursor = func(s ebiten.CursorShapeType) { shapes = append(shapes, s) }
	c.justPressed = func(ebiten.Key) bool { return false }
	return c, m, &shapes
}

func TestControllerScreens(t *testing.T) {
	c, _, _ := newTestController()
	if err := c.Update(); !errors.Is(err, ErrNoScreen) {
		t.Errorf("update without screens: err = %v; want ErrNoScreen", err)
	}

	menu := &fakeScreen{name: "menu"}
	game := &fakeScreen{name: "game"}
	if err := c.AddScreen(menu); err != nil {
		t.Fatal(err)
	}
	if err := c.AddScreen(game); err != nil {
		t.Fatal(err)
	}
	if err := c.AddScreen(&fakeScreen{name: "menu"}); !errors.Is(err, ErrScreenExists) {
		t.Errorf("duplicate screen: err = %v; want ErrScreenExists", err)
	}
	boom := errors.New("boom")
	if err := c.AddScreen(&fakeScreen{name: "broken", buildErr: boom}); !errors.Is(err, boom) {
		t.Errorf("failing build: err = %v", err)
	}

	if c.Current() != Screen(menu) || menu.loads != 1 || game.loads != 0 {
		t.Fatal("first screen not current and loaded")
	}
	if !reflect.DeepEqual(c.Names(), []string{"menu", "game"}) {
		t.Errorf("names = %v", c.Names())
	}

	if err := c.Switch("game"); err != nil {
		t.Fatal(err)
	}
	if menu.clears != 1 || game.loads != 1 || c.Root() != Parent(game.root) {
		t.Error("switch did not clear the outgoing and load the incoming screen")
	}

	err := c.Switch("lobby")
	if !errors.Is(err, ErrScreenNotFound) {
		t.Fatalf("unknown screen: err = %v; want ErrScreenNotFound", err)
	}
	if !strings.Contains(err.Error(), "menu, game") {
		t.Errorf("error %q does not list the screens", err)
	}
	if c.Current() != Screen(game) {
		t.Error("failed switch changed the current screen")
	}
}

func TestControllerRequestSwitch(t *testing.T) {
	c, _, _ := newTestController()
	menu := &fakeScreen{name: "menu"}
	game := &fakeScreen{name: "game"}
	for _, s := range []Screen{menu, game} {
		if err := c.AddScreen(s); err != nil {
			t.Fatal(err)
		}
	}

	menu.button.Connect().PostUpdate(func(Widget, Event) { c.RequestSwitch("game") })
	if err := c.Update(); err != nil {
		t.Fatal(err)
	}
	if c.Current() != Screen(menu) || menu.ticks != 1 {
		t.Fatal("switch applied during the sweep that requested it")
	}
	if err := c.Update(); err != nil {
		t.Fatal(err)
	}
	if c.Current() != Screen(game) || game.ticks != 1 || menu.ticks != 1 {
		t.Error("requested switch not applied at the start of the next update")
	}

	c.RequestSwitch("nowhere")
	if err := c.Update(); !errors.Is(err, ErrScreenNotFound) {
		t.Errorf("bad request: err = %v; want ErrScreenNotFound", err)
	}
}

func TestControllerCursor(t *testing.T) {
	c, m, shapes := newTestController()
	s := &fakeScreen{name: "menu"}
	if err := c.AddScreen(s); err != nil {
		t.Fatal(err)
	}
	s.button.SetCursors(ebiten.CursorShapePointer, ebiten.CursorShapeMove)
	*shapes = nil

	frame := func(feed func(m *input.Mouse)) ebiten.CursorShapeType {
		m.Advance()
		if feed != nil {
			feed(m)
		}
		if err := c.Update(); err != nil {
			t.Fatal(err)
		}
		return c.cursor
	}

	if got := frame(func(m *input.Mouse) { m.MoveTo(geom.Pt(50, 50)) }); got != ebiten.CursorShapeDefault {
		t.Errorf("away from widgets: %v", got)
	}
	if got := frame(func(m *input.Mouse) { m.MoveTo(geom.Pt(5, 5)) }); got != ebiten.CursorShapePointer {
		t.Errorf("hovering button: %v", got)
	}
	if got := frame(func(m *input.Mouse) { m.Press(input.ButtonLeft) }); got != ebiten.CursorShapeMove {
		t.Errorf("pressing button: %v", got)
	}
	if !c.IsInteractingWithUI() {
		t.Error("pressed button not reported as interaction")
	}
	// The press follows the pointer off the button.
	if got := frame(func(m *input.Mouse) { m.MoveTo(geom.Pt(50, 50)) }); got != ebiten.CursorShapeMove {
		t.Errorf("dragging off button: %v", got)
	}
	if got := frame(func(m *input.Mouse) { m.Release(input.ButtonLeft) }); got != ebiten.CursorShapeDefault {
		t.Errorf("after release: %v", got)
	}

	want := []ebiten.CursorShapeType{ebiten.CursorShapePointer, ebiten.CursorShapeMove, ebiten.CursorShapeDefault}
	if !reflect.DeepEqual(*shapes, want) {
		t.Errorf("cursor changes = %v; want %v", *shapes, want)
	}
}

// fixedCursor always wants the same cursor.
type fixedCursor struct {
	Base
	shape ebiten.CursorShapeType
}

func newFixedCursor(a *Arena, shape ebiten.CursorShapeType) *fixedCursor {
	w := &fixedCursor{shape: shape}
	w.init(a, w, geom.Pt(0, 0), box{10, 10}, []Option{WithAnchor(geom.TopLeft)})
	return w
}

func (w *fixedCursor) Cursor() (ebiten.CursorShapeType, bool) { return w.shape, true }

func TestFrameCursorPriority(t *testing.T) {
	a := NewArena()
	hovered1 := newFixedCursor(a, ebiten.CursorShapeText)
	hovered2 := newFixedCursor(a, ebiten.CursorShapeCrosshair)
	pressed := newFixedCursor(a, ebiten.CursorShapeMove)
	silent := NewWidget(a, geom.Pt(0, 0), nil)

	f := NewFrame(&input.Mouse{})
	if got := f.Cursor(ebiten.CursorShapePointer); got != ebiten.CursorShapePointer {
		t.Errorf("empty frame: %v", got)
	}

	f.markHovered(silent)
	f.markHovered(hovered1)
	f.markHovered(hovered2)
	if got := f.Cursor(ebiten.CursorShapeDefault); got != ebiten.CursorShapeText {
		t.Errorf("hovered only: %v; want the first hovered preference", got)
	}

	f.markInteracted(silent)
	f.markInteracted(pressed)
	if got := f.Cursor(ebiten.CursorShapeDefault); got != ebiten.CursorShapeMove {
		t.Errorf("with interaction: %v; want the interacted preference", got)
	}

	f.Reset()
	if len(f.Hovered()) != 0 || len(f.Interacted()) != 0 {
		t.Error("Reset kept widgets")
	}
}

func TestControllerForwardsEvents(t *testing.T) {
	c, _, _ := newTestController()
	s := &fakeScreen{name: "menu"}
	c.ProcessEvent(input.Event{Type: input.EventKeyPress})
	if err := c.AddScreen(s); err != nil {
		t.Fatal(err)
	}
	e := input.Event{Type: input.EventKeyPress, Key: ebiten.KeyEscape}
	c.ProcessEvent(e)
	if !reflect.DeepEqual(s.events, []input.Event{e}) {
		t.Errorf("events = %v", s.events)
	}
}
