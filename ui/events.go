package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/pazzles/geom"
	"github.com/OpticalFlyer/pazzles/input"
)

// EventKind enumerates the semantic events a widget can emit.
type EventKind uint8

const (
	EventHover EventKind = iota
	EventHoverIn
	EventHoverOut
	EventPress
	EventHold
	EventDrag
	EventRelease
	EventClick
	EventScrollUp
	EventScrollDown
	EventPreUpdate
	EventPostUpdate
	EventPreRender
	EventPostRender

	numEventKinds
)

var eventKindNames = [numEventKinds]string{
	EventHover:      "hover",
	EventHoverIn:    "hover-in",
	EventHoverOut:   "hover-out",
	EventPress:      "press",
	EventHold:       "hold",
	EventDrag:       "drag",
	EventRelease:    "release",
	EventClick:      "click",
	EventScrollUp:   "scroll-up",
	EventScrollDown: "scroll-down",
	EventPreUpdate:  "pre-update",
	EventPostUpdate: "post-update",
	EventPreRender:  "pre-render",
	EventPostRender: "post-render",
}

func (k EventKind) String() string {
	if k < numEventKinds {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event carries the data of one emitted event.
type Event struct {
	Kind EventKind

	// Button and Hit are set for press, hold, drag, release and click.
	Button input.Button
	Hit    bool

	// Pointer is the pointer position for input events.
	Pointer geom.Point

	// Target and Offset are set for pre-render and post-render.
	Target *ebiten.Image
	Offset geom.Point
}

// Listener is called with the widget that emitted the event.
type Listener func(w Widget, e Event)

// Connection identifies one registered listener. The zero Connection is
// never returned by Connect.
type Connection struct {
	kind EventKind
	id   uint64
}

func (c Connection) Kind() EventKind { return c.kind }

type listenerEntry struct {
	id uint64
	fn Listener
}

// EventSystem turns the per-frame pointer snapshot into widget events and
// dispatches them to listeners in registration order.
type EventSystem struct {
	owner     Widget
	listeners [numEventKinds][]listenerEntry
	nextID    uint64

	disabled bool
	hovered  bool
	pressed  [input.NumButtons]bool
}

func newEventSystem(owner Widget) *EventSystem {
	return &EventSystem{owner: owner}
}

// Connect registers fn for events of kind k.
func (es *EventSystem) Connect(k EventKind, fn Listener) Connection {
	if k >= numEventKinds {
		panic(fmt.Sprintf("ui: connect to unknown event kind %d", k))
	}
	es.nextID++
	es.listeners[k] = append(es.listeners[k], listenerEntry{id: es.nextID, fn: fn})
	return Connection{kind: k, id: es.nextID}
}

// Disconnect removes the listener registered under c. It reports whether
// the listener was still registered.
func (es *EventSystem) Disconnect(c Connection) bool {
	if c.kind >= numEventKinds {
		return false
	}
	list := es.listeners[c.kind]
	for i, l := range list {
		if l.id == c.id {
			// Copy so a dispatch in progress keeps its own snapshot intact.
			next := make([]listenerEntry, 0, len(list)-1)
			next = append(next, list[:i]...)
			es.listeners[c.kind] = append(next, list[i+1:]...)
			return true
		}
	}
	return false
}

// Listeners returns the number of listeners registered for k.
func (es *EventSystem) Listeners(k EventKind) int {
	if k >= numEventKinds {
		return 0
	}
	return len(es.listeners[k])
}

func (es *EventSystem) Disabled() bool { return es.disabled }

// SetDisabled stops or resumes pointer processing. Lifecycle events keep
// firing while disabled.
func (es *EventSystem) SetDisabled(v bool) { es.disabled = v }

// Hovered reports whether the pointer was over the widget on the last update.
func (es *EventSystem) Hovered() bool { return es.hovered }

// Pressed reports whether button b was pressed on the widget and not yet
// released.
func (es *EventSystem) Pressed(b input.Button) bool {
	if b < input.ButtonLeft || b > input.ButtonRight {
		return false
	}
	return es.pressed[b-1]
}

func (es *EventSystem) emit(e Event) {
	// The slice header is captured before the loop: listeners connected or
	// disconnected during dispatch take effect from the next event.
	for _, l := range es.listeners[e.Kind] {
		l.fn(es.owner, e)
	}
}

func (es *EventSystem) update(f *Frame) {
	if es.disabled {
		return
	}

	m := f.Mouse
	pos := m.Pos()
	hit := es.owner.CollidesWithPoint(pos)

	// Hover transitions
	if es.hovered {
		if hit {
			es.emit(Event{Kind: EventHover, Hit: true, Pointer: pos})
		} else {
			es.emit(Event{Kind: EventHoverOut, Pointer: pos})
			es.hovered = false
		}
	} else if hit {
		es.emit(Event{Kind: EventHoverIn, Hit: true, Pointer: pos})
		es.hovered = true
	}

	if es.hovered {
		switch m.Wheel() {
		case input.WheelUp:
			es.emit(Event{Kind: EventScrollUp, Hit: hit, Pointer: pos})
		case input.WheelDown:
			es.emit(Event{Kind: EventScrollDown, Hit: hit, Pointer: pos})
		}
		f.markHovered(es.owner)
	}

	for b := input.ButtonLeft; b <= input.ButtonRight; b++ {
		state := m.State(b)
		e := Event{Button: b, Hit: hit, Pointer: pos}

		if es.pressed[b-1] {
			switch state {
			case input.ButtonHold:
				f.markInteracted(es.owner)
				if m.Moved() {
					e.Kind = EventDrag
				} else {
					e.Kind = EventHold
				}
				es.emit(e)
			case input.ButtonRelease:
				f.markInteracted(es.owner)
				e.Kind = EventRelease
				es.emit(e)
				es.pressed[b-1] = false
				if hit {
					e.Kind = EventClick
					es.emit(e)
				}
			}
		} else if hit && state == input.ButtonPress {
			f.markInteracted(es.owner)
			es.pressed[b-1] = true
			e.Kind = EventPress
			es.emit(e)
		}
	}
}

// Connector registers listeners by event name: w.Connect().Click(fn).
type Connector struct{ es *EventSystem }

func (c Connector) Hover(fn Listener) Connection      { return c.es.Connect(EventHover, fn) }
func (c Connector) HoverIn(fn Listener) Connection    { return c.es.Connect(EventHoverIn, fn) }
func (c Connector) HoverOut(fn Listener) Connection   { return c.es.Connect(EventHoverOut, fn) }
func (c Connector) Press(fn Listener) Connection      { return c.es.Connect(EventPress, fn) }
func (c Connector) Hold(fn Listener) Connection       { return c.es.Connect(EventHold, fn) }
func (c Connector) Drag(fn Listener) Connection       { return c.es.Connect(EventDrag, fn) }
func (c Connector) Release(fn Listener) Connection    { return c.es.Connect(EventRelease, fn) }
func (c Connector) Click(fn Listener) Connection      { return c.es.Connect(EventClick, fn) }
func (c Connector) ScrollUp(fn Listener) Connection   { return c.es.Connect(EventScrollUp, fn) }
func (c Connector) ScrollDown(fn Listener) Connection { return c.es.Connect(EventScrollDown, fn) }
func (c Connector) PreUpdate(fn Listener) Connection  { return c.es.Connect(EventPreUpdate, fn) }
func (c Connector) PostUpdate(fn Listener) Connection { return c.es.Connect(EventPostUpdate, fn) }
func (c Connector) PreRender(fn Listener) Connection  { return c.es.Connect(EventPreRender, fn) }
func (c Connector) PostRender(fn Listener) Connection { return c.es.Connect(EventPostRender, fn) }

// Disconnector removes listeners by event name. Each method only removes a
// connection made for the matching event kind.
type Disconnector struct{ es *EventSystem }

func (d Disconnector) remove(k EventKind, c Connection) bool {
	return c.kind == k && d.es.Disconnect(c)
}

func (d Disconnector) Hover(c Connection) bool      { return d.remove(EventHover, c) }
func (d Disconnector) HoverIn(c Connection) bool    { return d.remove(EventHoverIn, c) }
func (d Disconnector) HoverOut(c Connection) bool   { return d.remove(EventHoverOut, c) }
func (d Disconnector) Press(c Connection) bool      { return d.remove(EventPress, c) }
func (d Disconnector) Hold(c Connection) bool       { return d.remove(EventHold, c) }
func (d Disconnector) Drag(c Connection) bool       { return d.remove(EventDrag, c) }
func (d Disconnector) Release(c Connection) bool    { return d.remove(EventRelease, c) }
func (d Disconnector) Click(c Connection) bool      { return d.remove(EventClick, c) }
func (d Disconnector) ScrollUp(c Connection) bool   { return d.remove(EventScrollUp, c) }
func (d Disconnector) ScrollDown(c Connection) bool { return d.remove(EventScrollDown, c) }
func (d Disconnector) PreUpdate(c Connection) bool  { return d.remove(EventPreUpdate, c) }
func (d Disconnector) PostUpdate(c Connection) bool { return d.remove(EventPostUpdate, c) }
func (d Disconnector) PreRender(c Connection) bool  { return d.remove(EventPreRender, c) }
func (d Disconnector) PostRender(c Connection) bool { return d.remove(EventPostRender, c) }
