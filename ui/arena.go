package ui

import "fmt"

// ID identifies a live widget inside its Arena. The low 32 bits are the
// slot index and the high 32 bits the slot generation, so an ID held after
// its widget was destroyed never resolves to the slot's next occupant.
type ID uint64

func makeID(index, gen uint32) ID { return ID(uint64(gen)<<32 | uint64(index)) }

func (id ID) index() uint32 { return uint32(id) }
func (id ID) gen() uint32   { return uint32(id >> 32) }

func (id ID) String() string {
	return fmt.Sprintf("%d.%d", id.index(), id.gen())
}

type slot struct {
	gen    uint32
	widget Widget
}

// Arena owns the identity of every widget created against it. It is not
// safe for concurrent use; the UI is driven from a single goroutine.
type Arena struct {
	slots []slot
	free  []uint32
	live  int
}

// NewArena creates an empty widget arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) insert(w Widget) ID {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}
	s := &a.slots[index]
	s.gen++
	s.widget = w
	a.live++
	return makeID(index, s.gen)
}

func (a *Arena) remove(id ID) bool {
	i := id.index()
	if int(i) >= len(a.slots) {
		return false
	}
	s := &a.slots[i]
	if s.widget == nil || s.gen != id.gen() {
		return false
	}
	s.widget = nil
	a.free = append(a.free, i)
	a.live--
	return true
}

// Get returns the live widget with the given id.
func (a *Arena) Get(id ID) (Widget, bool) {
	i := id.index()
	if int(i) >= len(a.slots) {
		return nil, false
	}
	s := a.slots[i]
	if s.widget == nil || s.gen != id.gen() {
		return nil, false
	}
	return s.widget, true
}

// Len returns the number of live widgets.
func (a *Arena) Len() int { return a.live }

// All returns every live widget in slot order.
func (a *Arena) All() []Widget {
	out := make([]Widget, 0, a.live)
	for _, s := range a.slots {
		if s.widget != nil {
			out = append(out, s.widget)
		}
	}
	return out
}

// ByTags returns the widgets carrying every one of the given tags.
func (a *Arena) ByTags(tags ...string) []Widget {
	var out []Widget
	for _, s := range a.slots {
		if s.widget != nil && s.widget.HasTags(tags...) {
			out = append(out, s.widget)
		}
	}
	return out
}

// ByType returns the live widgets of a that implement T. T may be a
// concrete widget type such as *Button or an interface such as Parent.
func ByType[T any](a *Arena) []T {
	var out []T
	for _, s := range a.slots {
		if s.widget == nil {
			continue
		}
		if w, ok := s.widget.(T); ok {
			out = append(out, w)
		}
	}
	return out
}
