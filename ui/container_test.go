package ui

import (
	"errors"
	"reflect"
	"testing"

	"github.com/OpticalFlyer/pazzles/geom"
	"github.com/OpticalFlyer/pazzles/input"
)

func leaves(a *Arena, n int) []Widget {
	ws := make([]Widget, n)
	for i := range ws {
		ws[i] = NewWidget(a, geom.Pt(0, 0), box{10, 10}, WithAnchor(geom.TopLeft))
	}
	return ws
}

func TestContainerAddRemove(t *testing.T) {
	a := NewArena()
	c := NewContainer(a, geom.Pt(0, 0))
	ws := leaves(a, 3)

	if err := c.Add(ws...); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 3 || c.ChildIndex(ws[2]) != 2 {
		t.Fatalf("children = %v", c.Children(false))
	}
	for _, w := range ws {
		if w.Parent() != Widget(c) {
			t.Errorf("%v parent = %v", w, w.Parent())
		}
	}

	if err := c.Add(ws[0]); !errors.Is(err, ErrHasParent) {
		t.Errorf("duplicate add: err = %v; want ErrHasParent", err)
	}
	other := NewContainer(a, geom.Pt(0, 0))
	if err := other.Add(ws[1]); !errors.Is(err, ErrHasParent) {
		t.Errorf("add owned widget: err = %v; want ErrHasParent", err)
	}
	if err := c.Add(nil); !errors.Is(err, ErrNilWidget) {
		t.Errorf("add nil: err = %v; want ErrNilWidget", err)
	}

	if err := c.Remove(ws[1]); err != nil {
		t.Fatal(err)
	}
	if ws[1].Parent() != nil || c.ChildIndex(ws[1]) != -1 {
		t.Error("removed widget still attached")
	}
	if err := c.Remove(ws[1]); !errors.Is(err, ErrNotChild) {
		t.Errorf("remove twice: err = %v; want ErrNotChild", err)
	}
	if got := c.Children(false); !reflect.DeepEqual(got, []Widget{ws[0], ws[2]}) {
		t.Errorf("children = %v", got)
	}
}

func TestContainerInsertAt(t *testing.T) {
	a := NewArena()
	src := NewContainer(a, geom.Pt(0, 0))
	dst := NewContainer(a, geom.Pt(0, 0))
	ws := leaves(a, 4)

	if err := dst.Add(ws[0], ws[1]); err != nil {
		t.Fatal(err)
	}
	if err := src.Add(ws[2]); err != nil {
		t.Fatal(err)
	}

	// ws[2] moves out of src; ws[3] has no parent yet.
	if err := dst.InsertAt(1, ws[2], ws[3]); err != nil {
		t.Fatal(err)
	}
	if src.Len() != 0 {
		t.Error("inserted widget still in its old container")
	}
	want := []Widget{ws[0], ws[2], ws[3], ws[1]}
	if got := dst.Children(false); !reflect.DeepEqual(got, want) {
		t.Errorf("children = %v; want %v", got, want)
	}

	extra := leaves(a, 2)
	if err := dst.InsertAt(-5, extra[0]); err != nil {
		t.Fatal(err)
	}
	if err := dst.InsertAt(100, extra[1]); err != nil {
		t.Fatal(err)
	}
	if dst.ChildIndex(extra[0]) != 0 || dst.ChildIndex(extra[1]) != dst.Len()-1 {
		t.Error("out of range index not clamped")
	}
}

func TestContainerChildrenFilter(t *testing.T) {
	a := NewArena()
	c := NewContainer(a, geom.Pt(0, 0))
	ws := leaves(a, 3)
	if err := c.Add(ws...); err != nil {
		t.Fatal(err)
	}
	ws[1].SetActive(false)

	if got := c.Children(true); !reflect.DeepEqual(got, []Widget{ws[0], ws[2]}) {
		t.Errorf("active children = %v", got)
	}
	if got := c.Children(false); len(got) != 3 {
		t.Errorf("all children = %v", got)
	}

	got := c.Children(false)
	got[0] = nil
	if c.Children(false)[0] == nil {
		t.Error("Children returned the internal slice")
	}
}

func TestContainerClear(t *testing.T) {
	a := NewArena()
	c := NewContainer(a, geom.Pt(0, 0))
	ws := leaves(a, 4)
	if err := c.Add(ws...); err != nil {
		t.Fatal(err)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("len after clear = %d", c.Len())
	}
	for _, w := range ws {
		if w.Parent() != nil {
			t.Errorf("%v still has a parent", w)
		}
		if _, ok := a.Get(w.ID()); !ok {
			t.Errorf("%v destroyed by Clear", w)
		}
	}
}

func TestContainerDestroyCascades(t *testing.T) {
	a := NewArena()
	root := NewContainer(a, geom.Pt(0, 0))
	inner := NewContainer(a, geom.Pt(0, 0))
	ws := leaves(a, 2)
	if err := inner.Add(ws...); err != nil {
		t.Fatal(err)
	}
	if err := root.Add(inner); err != nil {
		t.Fatal(err)
	}

	inner.Destroy()
	if a.Len() != 1 {
		t.Errorf("arena len = %d; want only the root", a.Len())
	}
	if root.Len() != 0 {
		t.Error("destroyed container still a child of root")
	}
}

func TestContainerRejectsCycles(t *testing.T) {
	a := NewArena()
	outer := NewContainer(a, geom.Pt(0, 0))
	inner, err := NewVertical(a, geom.Pt(0, 0), Line{Padding: 2})
	if err != nil {
		t.Fatal(err)
	}
	if err := outer.Add(inner); err != nil {
		t.Fatal(err)
	}
	leaf := NewWidget(a, geom.Pt(0, 0), box{10, 10})
	if err := inner.Add(leaf); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		op   func() error
	}{
		{"add self", func() error { return outer.Add(outer) }},
		{"insert self", func() error { return inner.InsertAt(0, inner) }},
		{"add ancestor", func() error { return inner.Add(outer) }},
		{"insert ancestor", func() error { return inner.InsertAt(0, outer) }},
		{"parent under descendant", func() error { return outer.SetParent(leaf) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.op(); !errors.Is(err, ErrCycle) {
				t.Errorf("err = %v; want ErrCycle", err)
			}
		})
	}

	if outer.Parent() != nil || inner.Parent() != outer || leaf.Parent() != inner {
		t.Error("rejected operations changed the tree")
	}
	if got := inner.Children(false); len(got) != 1 || got[0] != leaf {
		t.Errorf("inner children = %v", got)
	}
}

func TestContainerUpdateOrder(t *testing.T) {
	a := NewArena()
	c := NewContainer(a, geom.Pt(0, 0))
	ws := leaves(a, 3)
	if err := c.Add(ws...); err != nil {
		t.Fatal(err)
	}

	var order []Widget
	for _, w := range append([]Widget{c}, ws...) {
		w.Connect().PostUpdate(func(w Widget, _ Event) { order = append(order, w) })
	}
	var m input.Mouse
	f := NewFrame(&m)
	sweep(&m, f, c, nil)

	want := []Widget{ws[2], ws[1], ws[0], c}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("update order = %v; want %v", order, want)
	}

	order = nil
	for _, w := range append([]Widget{c}, ws...) {
		w.Connect().PreRender(func(w Widget, _ Event) { order = append(order, w) })
	}
	c.Render(nil, geom.Point{})
	want = []Widget{c, ws[0], ws[1], ws[2]}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("render order = %v; want %v", order, want)
	}
}

func TestContainerMutationDuringUpdate(t *testing.T) {
	a := NewArena()
	c := NewContainer(a, geom.Pt(0, 0))
	ws := leaves(a, 3)
	if err := c.Add(ws...); err != nil {
		t.Fatal(err)
	}

	// The topmost child removes itself and its siblings when clicked.
	ws[2].Connect().Click(func(Widget, Event) {
		if err := c.Remove(ws[2], ws[1]); err != nil {
			t.Error(err)
		}
	})
	var updated []Widget
	for _, w := range ws {
		w.Connect().PostUpdate(func(w Widget, _ Event) { updated = append(updated, w) })
	}

	var m input.Mouse
	f := NewFrame(&m)
	sweep(&m, f, c, func(m *input.Mouse) {
		m.MoveTo(geom.Pt(5, 5))
		m.Press(input.ButtonLeft)
	})
	updated = nil
	sweep(&m, f, c, func(m *input.Mouse) { m.Release(input.ButtonLeft) })

	if len(updated) != 3 {
		t.Errorf("updated %d children; want the 3 of the snapshot", len(updated))
	}
	if got := c.Children(false); !reflect.DeepEqual(got, []Widget{ws[0]}) {
		t.Errorf("children = %v", got)
	}
}
