// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/rui/access"
	"cogentcore.org/rui/events"
	"cogentcore.org/rui/math32"
)

// Gestures track pointer contacts through the gesture slots of the
// [Context]: the view that receives the press of a contact owns its
// slot until the release. The owner is stored by id rather than in
// the view, which is rebuilt on every call.

// TapInfo describes a tap.
type TapInfo struct {

	// Pos is the release position in the local coordinates of the view.
	Pos math32.Vector2

	// Button is the mouse button, or [events.NoButton] for touches.
	Button events.Buttons

	// Slot is the gesture slot of the contact.
	Slot int
}

// GestureStates are the states of a continuous gesture.
type GestureStates int32

const (
	// GestureBegan is the state on press.
	GestureBegan GestureStates = iota

	// GestureChanged is the state on each move.
	GestureChanged

	// GestureEnded is the state on release.
	GestureEnded
)

func (gs GestureStates) String() string {
	switch gs {
	case GestureBegan:
		return "Began"
	case GestureChanged:
		return "Changed"
	case GestureEnded:
		return "Ended"
	}
	return "GestureStates(?)"
}

// DragInfo describes one step of a drag.
type DragInfo struct {
	State GestureStates

	// Pos is the position in the local coordinates of the view.
	Pos math32.Vector2

	// Start is the position of the press.
	Start math32.Vector2

	// Delta is the movement since the previous step. It is zero
	// for [GestureBegan] and [GestureEnded].
	Delta math32.Vector2

	Button events.Buttons
	Slot   int
}

// gesture is embedded by the gesture views. Hit tests report the
// view of the child under the point; the gesture itself responds
// wherever its child is hit.
type gesture struct {
	single
}

// hits returns whether pt hits the child.
func (g gesture) hits(p *Path, pt math32.Vector2, cx *Context) bool {
	return g.single.HitTest(p, pt, cx) != NoViewID
}

// press claims the slot of a press event on the view if the
// event hits it and the slot is free, and returns whether it did.
func (g gesture) press(ev events.Event, p *Path, cx *Context) bool {
	slot := ev.Slot()
	if slot < 0 || slot >= len(cx.Touches) || cx.Touches[slot] != NoViewID {
		return false
	}
	if !g.hits(p, ev.Pos, cx) {
		return false
	}
	cx.Touches[slot] = cx.ViewID(p)
	cx.Starts[slot] = ev.Pos
	cx.PreviousPositions[slot] = ev.Pos
	return true
}

// owns returns whether the view owns the slot of the event.
func (g gesture) owns(ev events.Event, p *Path, cx *Context) bool {
	slot := ev.Slot()
	return slot >= 0 && slot < len(cx.Touches) && cx.Touches[slot] == cx.ViewID(p)
}

// Access marks the node of the child as actionable, or exports a
// button node if the child has no node.
func (g gesture) Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID {
	id := g.single.Access(p, cx, nodes)
	if id == access.NoNode {
		id = access.NodeID(cx.ViewID(p))
		nodes.Add(id, access.Node{Role: access.RoleButton, Bounds: accessBounds(p, cx), Actionable: true})
		return id
	}
	n, _ := nodes.ValueByKeyTry(id)
	n.Actionable = true
	nodes.Add(id, n)
	return id
}

type tap struct {
	gesture
	f func(cx *Context, info TapInfo) any
}

// Tap returns a view that calls f when a contact is pressed and
// released on child. A non-nil result of f is pushed as an action.
// The release does not need to be on child.
func Tap(child View, f func(cx *Context, info TapInfo) any) View {
	return &tap{gesture: gesture{single{child}}, f: f}
}

// TapAction returns a view that pushes action when child is tapped.
func TapAction(child View, action any) View {
	return Tap(child, func(cx *Context, info TapInfo) any { return action })
}

// Process handles the event after the child, so that nested
// gestures take precedence.
func (tp *tap) Process(ev events.Event, p *Path, cx *Context, actions *Actions) {
	tp.single.Process(ev, p, cx, actions)
	switch {
	case ev.Type.IsPress():
		tp.press(ev, p, cx)
	case ev.Type.IsRelease():
		if !tp.owns(ev, p, cx) {
			return
		}
		cx.Touches[ev.Slot()] = NoViewID
		if a := tp.f(cx, TapInfo{Pos: ev.Pos, Button: ev.Button, Slot: ev.Slot()}); a != nil {
			actions.Push(a)
		}
	}
}

type drag struct {
	gesture
	f func(cx *Context, info DragInfo) any
}

// Drag returns a view that calls f as a contact pressed on child
// moves, with the [GestureBegan] state on press, [GestureChanged] on
// every move and [GestureEnded] on release. A non-nil result of f is
// pushed as an action.
func Drag(child View, f func(cx *Context, info DragInfo) any) View {
	return &drag{gesture: gesture{single{child}}, f: f}
}

// DragState is like [Drag], but passes f the state of h for modification.
func DragState[S any](child View, h StateHandle[S], f func(s *S, info DragInfo)) View {
	return Drag(child, func(cx *Context, info DragInfo) any {
		f(h.GetMut(cx), info)
		return nil
	})
}

func (dr *drag) fire(cx *Context, info DragInfo, actions *Actions) {
	if a := dr.f(cx, info); a != nil {
		actions.Push(a)
	}
}

func (dr *drag) Process(ev events.Event, p *Path, cx *Context, actions *Actions) {
	dr.single.Process(ev, p, cx, actions)
	slot := ev.Slot()
	switch {
	case ev.Type.IsPress():
		if dr.press(ev, p, cx) {
			dr.fire(cx, DragInfo{State: GestureBegan, Pos: ev.Pos, Start: ev.Pos, Button: ev.Button, Slot: slot}, actions)
		}
	case ev.Type.IsMove():
		if !dr.owns(ev, p, cx) {
			return
		}
		cx.PreviousPositions[slot] = ev.Pos
		dr.fire(cx, DragInfo{State: GestureChanged, Pos: ev.Pos, Start: cx.Starts[slot], Delta: ev.Delta, Slot: slot}, actions)
	case ev.Type.IsRelease():
		if !dr.owns(ev, p, cx) {
			return
		}
		cx.Touches[slot] = NoViewID
		dr.fire(cx, DragInfo{State: GestureEnded, Pos: ev.Pos, Start: cx.Starts[slot], Button: ev.Button, Slot: slot}, actions)
	}
}

type hover struct {
	gesture
	f func(cx *Context, inside bool) any
}

// Hover returns a view that calls f when the cursor enters or
// leaves child. Whether the cursor is inside is kept in the state
// store. A non-nil result of f is pushed as an action.
func Hover(child View, f func(cx *Context, inside bool) any) View {
	return &hover{gesture: gesture{single{child}}, f: f}
}

func (hv *hover) Process(ev events.Event, p *Path, cx *Context, actions *Actions) {
	hv.single.Process(ev, p, cx, actions)
	if ev.Type != events.CursorMove && ev.Type != events.CursorLeft {
		return
	}
	id := cx.ViewID(p)
	h := InitState(cx, id, func() bool { return false })
	inside := ev.Type == events.CursorMove && hv.hits(p, ev.Pos, cx)
	if h.Get(cx) == inside {
		return
	}
	h.Set(cx, inside)
	if a := hv.f(cx, inside); a != nil {
		actions.Push(a)
	}
}

// Access exports the node of the child unchanged.
func (hv *hover) Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID {
	return hv.single.Access(p, cx, nodes)
}

type onKey struct {
	single
	f func(cx *Context, ev events.Event) any
}

// OnKey returns a view that calls f with every key event that reaches
// child. A non-nil result of f is pushed as an action.
func OnKey(child View, f func(cx *Context, ev events.Event) any) View {
	return &onKey{single: single{child}, f: f}
}

func (ky *onKey) Process(ev events.Event, p *Path, cx *Context, actions *Actions) {
	if ev.Type.IsKey() {
		if a := ky.f(cx, ev); a != nil {
			actions.Push(a)
		}
	}
	ky.single.Process(ev, p, cx, actions)
}

type animate struct {
	single
	f func(cx *Context, dt float32)
}

// Animate returns a view that calls f at the start of every update
// with the time in seconds since the previous update.
func Animate(child View, f func(cx *Context, dt float32)) View {
	return &animate{single: single{child}, f: f}
}

func (an *animate) Process(ev events.Event, p *Path, cx *Context, actions *Actions) {
	if ev.Type == events.Anim {
		an.f(cx, ev.Dt)
	}
	an.single.Process(ev, p, cx, actions)
}
