// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/rui/access"
	"cogentcore.org/rui/events"
	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
)

// LayoutArgs are the arguments of [View.Layout].
type LayoutArgs struct {

	// Size is the size proposed by the parent.
	Size math32.Vector2

	// Measurer measures text.
	Measurer paint.Measurer
}

// View is a node of the view tree. View trees are ordinary values that
// are rebuilt whenever they are needed; everything that must persist
// between frames is stored in the [Context], keyed by the [ViewID]
// of the [Path] at which the view is visited.
//
// Each method receives the path of the view. A view that recurses
// into a child pushes one segment onto the path before the call and
// pops it after. Positions passed to the methods are in the local
// coordinates of the view.
type View interface {

	// Layout computes the size of the view within the proposed size,
	// records it with [Context.UpdateLayout] and returns it. It lays
	// out children and records their offsets with [Context.SetLayoutOffset].
	Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2

	// Draw draws the view using the layout from the last [View.Layout].
	Draw(p *Path, cx *Context, d paint.Drawer)

	// HitTest returns the id of the topmost view containing pt,
	// or [NoViewID].
	HitTest(p *Path, pt math32.Vector2, cx *Context) ViewID

	// Process handles an event, pushing any resulting actions.
	Process(ev events.Event, p *Path, cx *Context, actions *Actions)

	// Dirty adds the rectangles of changed views to the
	// [Context.DirtyRegion], given the window position off of the view.
	Dirty(p *Path, off math32.Vector2, cx *Context)

	// GC appends the ids of the view and all of its descendants to live.
	GC(p *Path, cx *Context, live *[]ViewID)

	// Access adds accessibility nodes for the view to nodes and returns
	// the id of its node, or [access.NoNode] if it has none.
	Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID
}

// Actions are values pushed by views while processing events,
// to be handled by the caller of [Context.Process].
type Actions []any

// Push adds an action.
func (a *Actions) Push(action any) {
	*a = append(*a, action)
}

// SetTitle is an action requesting a new window title.
type SetTitle struct {
	Title string
}

// SetFullscreen is an action requesting the window to enter or leave fullscreen.
type SetFullscreen struct {
	On bool
}

// single implements [View] for views with one child at segment 0,
// whose offset is recorded in the layout table. Views embed it and
// override the methods they change.
type single struct {
	child View
}

func (s single) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	p.Push(0)
	sz := s.child.Layout(p, cx, args)
	cx.SetLayoutOffset(p, math32.Vector2{})
	p.Pop()
	cx.UpdateLayout(p, math32.B2FromPosSize(math32.Vector2{}, sz))
	return sz
}

func (s single) Draw(p *Path, cx *Context, d paint.Drawer) {
	off := cx.childOffset(p, 0)
	d.Save()
	d.Translate(off)
	p.Push(0)
	s.child.Draw(p, cx, d)
	p.Pop()
	d.Restore()
}

func (s single) HitTest(p *Path, pt math32.Vector2, cx *Context) ViewID {
	off := cx.childOffset(p, 0)
	p.Push(0)
	defer p.Pop()
	return s.child.HitTest(p, pt.Sub(off), cx)
}

func (s single) Process(ev events.Event, p *Path, cx *Context, actions *Actions) {
	off := cx.childOffset(p, 0)
	p.Push(0)
	s.child.Process(ev.Offset(off.Negate()), p, cx, actions)
	p.Pop()
}

func (s single) Dirty(p *Path, off math32.Vector2, cx *Context) {
	coff := cx.childOffset(p, 0)
	p.Push(0)
	s.child.Dirty(p, off.Add(coff), cx)
	p.Pop()
}

func (s single) GC(p *Path, cx *Context, live *[]ViewID) {
	*live = append(*live, cx.ViewID(p))
	p.Push(0)
	s.child.GC(p, cx, live)
	p.Pop()
}

func (s single) Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID {
	p.Push(0)
	defer p.Pop()
	return s.child.Access(p, cx, nodes)
}

// leaf implements the methods of [View] that are the same for all
// views without children.
type leaf struct{}

func (leaf) HitTest(p *Path, pt math32.Vector2, cx *Context) ViewID {
	if cx.GetLayout(p).Rect.ContainsPoint(pt) {
		return cx.ViewID(p)
	}
	return NoViewID
}

func (leaf) Process(ev events.Event, p *Path, cx *Context, actions *Actions) {}

func (leaf) Dirty(p *Path, off math32.Vector2, cx *Context) {}

func (leaf) GC(p *Path, cx *Context, live *[]ViewID) {
	*live = append(*live, cx.ViewID(p))
}

func (leaf) Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID {
	return access.NoNode
}

// accessBounds returns the bounds of the view at p in its parent's coordinates.
func accessBounds(p *Path, cx *Context) math32.Box2 {
	lb := cx.GetLayout(p)
	return lb.Rect.Translate(lb.Offset)
}
