package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventType identifies a raw, non-pointer event forwarded to screens.
type EventType uint8

const (
	EventKeyPress EventType = iota + 1
	EventKeyRelease
	EventResize
)

// Event is a raw event produced once per frame by AppendEvents.
type Event struct {
	Type EventType
	Key  ebiten.Key

	// Width and Height are set for EventResize.
	Width, Height int
}

// AppendEvents appends this frame's key edges to dst and returns the
// extended slice.
func AppendEvents(dst []Event) []Event {
	var keys []ebiten.Key
	keys = inpututil.AppendJustPressedKeys(keys)
	for _, k := range keys {
		dst = append(dst, Event{Type: EventKeyPress, Key: k})
	}
	keys = inpututil.AppendJustReleasedKeys(keys[:0])
	for _, k := range keys {
		dst = append(dst, Event{Type: EventKeyRelease, Key: k})
	}
	return dst
}
