package ui

import "errors"

var (
	// ErrHasParent is returned when a widget that already belongs to one
	// parent is assigned to another without being detached first.
	ErrHasParent = errors.New("ui: widget already has a parent")

	// ErrNotChild is returned when removing a widget that is not a child of
	// the container.
	ErrNotChild = errors.New("ui: widget is not a child of this container")

	ErrNilWidget = errors.New("ui: nil widget")

	// ErrCycle is returned when a container would become its own ancestor.
	ErrCycle = errors.New("ui: widget would contain itself")

	// ErrConfig is returned by constructors and setters given parameters
	// that cannot produce a layout.
	ErrConfig = errors.New("ui: invalid configuration")

	ErrScreenExists   = errors.New("ui: screen already exists")
	ErrScreenNotFound = errors.New("ui: screen not found")
	ErrNoScreen       = errors.New("ui: no screen has been added")
)
