package ui

import (
	"reflect"
	"testing"

	"github.com/OpticalFlyer/pazzles/geom"
	"github.com/OpticalFlyer/pazzles/input"
)

var inputKinds = []EventKind{
	EventHover, EventHoverIn, EventHoverOut,
	EventPress, EventHold, EventDrag, EventRelease, EventClick,
	EventScrollUp, EventScrollDown,
}

// record connects a listener for every input event kind of w and returns
// the slice the kinds are appended to.
func record(w Widget) *[]EventKind {
	var got []EventKind
	for _, k := range inputKinds {
		w.Events().Connect(k, func(_ Widget, e Event) { got = append(got, e.Kind) })
	}
	return &got
}

func TestEventSequence(t *testing.T) {
	a := NewArena()
	w := NewWidget(a, geom.Pt(0, 0), box{10, 10}, WithAnchor(geom.TopLeft))
	got := record(w)

	var m input.Mouse
	f := NewFrame(&m)
	steps := []struct {
		name string
		feed func(m *input.Mouse)
		want []EventKind
	}{
		{"enter", func(m *input.Mouse) { m.MoveTo(geom.Pt(5, 5)) }, []EventKind{EventHoverIn}},
		{"press", func(m *input.Mouse) { m.Press(input.ButtonLeft) }, []EventKind{EventHover, EventPress}},
		{"hold", nil, []EventKind{EventHover, EventHold}},
		{"drag", func(m *input.Mouse) { m.MoveTo(geom.Pt(6, 6)) }, []EventKind{EventHover, EventDrag}},
		{"release", func(m *input.Mouse) { m.Release(input.ButtonLeft) }, []EventKind{EventHover, EventRelease, EventClick}},
		{"idle", nil, []EventKind{EventHover}},
		{"scroll", func(m *input.Mouse) { m.Scroll(input.WheelDown) }, []EventKind{EventHover, EventScrollDown}},
		{"leave", func(m *input.Mouse) { m.MoveTo(geom.Pt(20, 20)) }, []EventKind{EventHoverOut}},
		{"outside", func(m *input.Mouse) { m.Scroll(input.WheelUp) }, nil},
	}
	for _, s := range steps {
		*got = nil
		sweep(&m, f, w, s.feed)
		if !reflect.DeepEqual(*got, s.want) {
			t.Errorf("%s: events = %v; want %v", s.name, *got, s.want)
		}
	}
}

func TestReleaseOutsideDoesNotClick(t *testing.T) {
	a := NewArena()
	w := NewWidget(a, geom.Pt(0, 0), box{10, 10}, WithAnchor(geom.TopLeft))
	var m input.Mouse
	f := NewFrame(&m)

	sweep(&m, f, w, func(m *input.Mouse) {
		m.MoveTo(geom.Pt(5, 5))
		m.Press(input.ButtonRight)
	})
	if !w.Pressed(input.ButtonRight) {
		t.Fatal("right button not tracked as pressed")
	}

	got := record(w)
	var release Event
	w.Connect().Release(func(_ Widget, e Event) { release = e })
	sweep(&m, f, w, func(m *input.Mouse) {
		m.MoveTo(geom.Pt(50, 50))
		m.Release(input.ButtonRight)
	})

	want := []EventKind{EventHoverOut, EventRelease}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("events = %v; want %v", *got, want)
	}
	if release.Hit || release.Button != input.ButtonRight {
		t.Errorf("release event = %+v; want right button without hit", release)
	}
	if w.Pressed(input.ButtonRight) {
		t.Error("pressed flag not cleared after release")
	}
}

func TestPressOutsideIsIgnored(t *testing.T) {
	a := NewArena()
	w := NewWidget(a, geom.Pt(0, 0), box{10, 10}, WithAnchor(geom.TopLeft))
	got := record(w)
	var m input.Mouse
	f := NewFrame(&m)

	sweep(&m, f, w, func(m *input.Mouse) {
		m.MoveTo(geom.Pt(50, 50))
		m.Press(input.ButtonLeft)
	})
	// Dragging onto the widget with the button held is not a press.
	sweep(&m, f, w, func(m *input.Mouse) { m.MoveTo(geom.Pt(5, 5)) })
	sweep(&m, f, w, func(m *input.Mouse) { m.Release(input.ButtonLeft) })

	want := []EventKind{EventHoverIn, EventHover}
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("events = %v; want %v", *got, want)
	}
}

func TestClickFollowsReleaseChain(t *testing.T) {
	a := NewArena()
	w := NewWidget(a, geom.Pt(0, 0), box{10, 10}, WithAnchor(geom.TopLeft))
	var order []string
	w.Connect().Release(func(w Widget, e Event) {
		order = append(order, "release-1")
	})
	w.Connect().Click(func(w Widget, e Event) {
		if w.Pressed(e.Button) {
			t.Error("button still pressed when click fires")
		}
		order = append(order, "click")
	})
	w.Connect().Release(func(w Widget, e Event) {
		order = append(order, "release-2")
	})

	var m input.Mouse
	f := NewFrame(&m)
	sweep(&m, f, w, func(m *input.Mouse) {
		m.MoveTo(geom.Pt(1, 1))
		m.Press(input.ButtonMiddle)
	})
	sweep(&m, f, w, func(m *input.Mouse) { m.Release(input.ButtonMiddle) })

	want := []string{"release-1", "release-2", "click"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v; want %v", order, want)
	}
}

func TestDisabledEventSystem(t *testing.T) {
	a := NewArena()
	w := NewWidget(a, geom.Pt(0, 0), box{10, 10}, WithAnchor(geom.TopLeft))
	got := record(w)
	var lifecycle []EventKind
	w.Connect().PreUpdate(func(_ Widget, e Event) { lifecycle = append(lifecycle, e.Kind) })
	w.Connect().PostUpdate(func(_ Widget, e Event) { lifecycle = append(lifecycle, e.Kind) })
	w.SetDisabled(true)

	var m input.Mouse
	f := NewFrame(&m)
	sweep(&m, f, w, func(m *input.Mouse) {
		m.MoveTo(geom.Pt(5, 5))
		m.Press(input.ButtonLeft)
	})

	if len(*got) != 0 {
		t.Errorf("disabled widget emitted %v", *got)
	}
	if want := []EventKind{EventPreUpdate, EventPostUpdate}; !reflect.DeepEqual(lifecycle, want) {
		t.Errorf("lifecycle = %v; want %v", lifecycle, want)
	}
	if len(f.Hovered()) != 0 || len(f.Interacted()) != 0 {
		t.Error("disabled widget marked in frame")
	}
}

func TestFrameMarks(t *testing.T) {
	a := NewArena()
	w := NewWidget(a, geom.Pt(0, 0), box{10, 10}, WithAnchor(geom.TopLeft))
	var m input.Mouse
	f := NewFrame(&m)

	sweep(&m, f, w, func(m *input.Mouse) { m.MoveTo(geom.Pt(5, 5)) })
	if len(f.Hovered()) != 1 || len(f.Interacted()) != 0 {
		t.Fatalf("hover only: hovered=%d interacted=%d", len(f.Hovered()), len(f.Interacted()))
	}

	// Pressing two buttons marks the widget once.
	sweep(&m, f, w, func(m *input.Mouse) {
		m.Press(input.ButtonLeft)
		m.Press(input.ButtonRight)
	})
	if len(f.Interacted()) != 1 {
		t.Errorf("interacted = %d; want 1", len(f.Interacted()))
	}

	// A held button keeps the widget interacted even off its rectangle.
	sweep(&m, f, w, func(m *input.Mouse) { m.MoveTo(geom.Pt(40, 40)) })
	if len(f.Hovered()) != 0 || len(f.Interacted()) != 1 {
		t.Errorf("drag off: hovered=%d interacted=%d", len(f.Hovered()), len(f.Interacted()))
	}
}

func TestConnectAndDisconnect(t *testing.T) {
	a := NewArena()
	w := NewWidget(a, geom.Pt(0, 0), box{10, 10}, WithAnchor(geom.TopLeft))
	var calls []string
	c1 := w.Connect().HoverIn(func(Widget, Event) { calls = append(calls, "one") })
	c2 := w.Connect().HoverIn(func(Widget, Event) { calls = append(calls, "two") })

	if w.Disconnect().Click(c1) {
		t.Error("click disconnector removed a hover-in listener")
	}
	if !w.Disconnect().HoverIn(c1) {
		t.Error("hover-in listener not removed")
	}
	if w.Disconnect().HoverIn(c1) {
		t.Error("removing twice reported success")
	}
	if n := w.Events().Listeners(EventHoverIn); n != 1 {
		t.Errorf("listeners = %d; want 1", n)
	}

	var m input.Mouse
	f := NewFrame(&m)
	sweep(&m, f, w, func(m *input.Mouse) { m.MoveTo(geom.Pt(5, 5)) })
	if !reflect.DeepEqual(calls, []string{"two"}) {
		t.Errorf("calls = %v", calls)
	}
	if c2.Kind() != EventHoverIn {
		t.Errorf("connection kind = %v", c2.Kind())
	}
}

func TestDisconnectDuringDispatch(t *testing.T) {
	a := NewArena()
	w := NewWidget(a, geom.Pt(0, 0), box{10, 10}, WithAnchor(geom.TopLeft))
	var calls int
	var second Connection
	w.Connect().Hover(func(w Widget, _ Event) {
		calls++
		w.Disconnect().Hover(second)
	})
	second = w.Connect().Hover(func(Widget, Event) { calls++ })

	var m input.Mouse
	f := NewFrame(&m)
	sweep(&m, f, w, func(m *input.Mouse) { m.MoveTo(geom.Pt(5, 5)) })
	sweep(&m, f, w, nil)
	if calls != 2 {
		t.Errorf("first hover dispatch: calls = %d; want 2", calls)
	}
	sweep(&m, f, w, nil)
	if calls != 3 {
		t.Errorf("second hover dispatch: calls = %d; want 3", calls)
	}
}

func TestRenderLifecycle(t *testing.T) {
	a := NewArena()
	w := NewWidget(a, geom.Pt(0, 0), nil)
	var got []Event
	w.Connect().PreRender(func(_ Widget, e Event) { got = append(got, e) })
	w.Connect().PostRender(func(_ Widget, e Event) { got = append(got, e) })

	w.Render(nil, geom.Pt(3, 4))
	if len(got) != 2 || got[0].Kind != EventPreRender || got[1].Kind != EventPostRender {
		t.Fatalf("render events = %v", got)
	}
	if got[0].Offset != geom.Pt(3, 4) {
		t.Errorf("offset = %v; want (3, 4)", got[0].Offset)
	}
}

func TestEventKindString(t *testing.T) {
	if got := EventDrag.String(); got != "drag" {
		t.Errorf("EventDrag = %q", got)
	}
	if got := EventKind(99).String(); got != "EventKind(99)" {
		t.Errorf("unknown kind = %q", got)
	}
}
