// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"cogentcore.org/rui/access"
	"cogentcore.org/rui/base/errors"
	"cogentcore.org/rui/events"
	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
)

var (
	// ErrMissingState is returned when a [StateHandle] refers to
	// an id that has no entry in the state store.
	ErrMissingState = errors.New("core: missing state")

	// ErrTypeMismatch is returned when a [StateHandle] is used with
	// a type different from the type of the stored state.
	ErrTypeMismatch = errors.New("core: state type mismatch")
)

// StateHandle is a typed key into the state store of a [Context].
// Handles are small values that can be copied freely and used on
// any later frame while the view that owns the state is alive.
type StateHandle[S any] struct {
	ID ViewID
}

// InitState stores the result of init as the state of the given id
// if there is no state for it yet, and returns a handle to the state.
// It is called on every visit of a view, so init only runs once.
func InitState[S any](cx *Context, id ViewID, init func() S) StateHandle[S] {
	if _, ok := cx.states[id]; !ok {
		v := init()
		cx.states[id] = &stateEntry{value: &v}
	}
	return StateHandle[S]{ID: id}
}

// Lookup returns the current state, or an error if there is none
// or it has a different type.
func (h StateHandle[S]) Lookup(cx *Context) (S, error) {
	p, err := h.lookup(cx)
	if err != nil {
		var zv S
		return zv, err
	}
	return *p, nil
}

func (h StateHandle[S]) lookup(cx *Context) (*S, error) {
	e, ok := cx.states[h.ID]
	if !ok {
		return nil, fmt.Errorf("%w: view %d", ErrMissingState, h.ID)
	}
	p, ok := e.value.(*S)
	if !ok {
		return nil, fmt.Errorf("%w: view %d has %T, not %v", ErrTypeMismatch, h.ID, e.value, reflect.TypeFor[*S]())
	}
	return p, nil
}

// Get returns the current state. It panics if the state is missing
// or has a different type.
func (h StateHandle[S]) Get(cx *Context) S {
	return *errors.Must1(h.lookup(cx))
}

// GetMut returns a pointer to the state for modification, marking
// the state and the context dirty. Calling it marks dirty whether or
// not the state is then changed. The pointer must not be kept beyond
// the current call. It panics if the state is missing or has a
// different type.
func (h StateHandle[S]) GetMut(cx *Context) *S {
	p := errors.Must1(h.lookup(cx))
	cx.states[h.ID].dirty = true
	cx.dirty = true
	return p
}

// Set sets the state, marking it and the context dirty.
func (h StateHandle[S]) Set(cx *Context, v S) {
	*h.GetMut(cx) = v
}

// IsDirty returns whether the state has been mutated since the last update.
func (h StateHandle[S]) IsDirty(cx *Context) bool {
	e, ok := cx.states[h.ID]
	return ok && e.dirty
}

// stateView is a view with state that persists across frames.
type stateView[S any] struct {
	init  func() S
	build func(h StateHandle[S], cx *Context) View
}

// State returns a view with state of type S, initialized with init the
// first time the view is seen. The body of the view is rebuilt by
// calling build with a handle to the state every time it is needed.
//
// Layout of the body is skipped and the previous layout is reused
// while none of the recorded dependencies of the view are dirty: its
// own state, the state of enclosing State views, the states within
// its body, and the environment values read by its body.
func State[S any](init func() S, build func(h StateHandle[S], cx *Context) View) View {
	return &stateView[S]{init: init, build: build}
}

func (sv *stateView[S]) body(p *Path, cx *Context) (ViewID, View) {
	id := cx.ViewID(p)
	h := InitState(cx, id, sv.init)
	return id, sv.build(h, cx)
}

func (sv *stateView[S]) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	id := cx.ViewID(p)
	InitState(cx, id, sv.init)
	if sl, ok := cx.deps[id]; ok && sl.size == args.Size && !cx.anyDirty(sl.deps) && !cx.envChanged(sl.env) {
		cx.noteEnvReads(sl.env)
		return cx.GetLayout(p).Rect.Size()
	}
	if cx.Settings.LayoutTrace {
		slog.Info("layout", "view", id, "path", p, "size", args.Size)
	}

	cx.idStack = append(cx.idStack, id)
	cx.envReads = append(cx.envReads, map[reflect.Type]struct{}{})

	_, child := sv.body(p, cx)
	p.Push(0)
	sz := child.Layout(p, cx, args)
	cx.SetLayoutOffset(p, math32.Vector2{})
	var live []ViewID
	child.GC(p, cx, &live)
	p.Pop()

	deps := append(slices.Clone(cx.idStack), live...)
	slices.Sort(deps)
	reads := cx.envReads[len(cx.envReads)-1]
	cx.envReads = cx.envReads[:len(cx.envReads)-1]
	cx.idStack = cx.idStack[:len(cx.idStack)-1]

	env := make(map[reflect.Type]any, len(reads))
	for t := range reads {
		env[t] = cx.env[t]
	}
	cx.noteEnvReads(env)
	cx.deps[id] = &stateLayout{deps: slices.Compact(deps), size: args.Size, env: env}

	cx.UpdateLayout(p, math32.B2FromPosSize(math32.Vector2{}, sz))
	return sz
}

func (sv *stateView[S]) Draw(p *Path, cx *Context, d paint.Drawer) {
	_, child := sv.body(p, cx)
	p.Push(0)
	child.Draw(p, cx, d)
	p.Pop()
}

func (sv *stateView[S]) HitTest(p *Path, pt math32.Vector2, cx *Context) ViewID {
	_, child := sv.body(p, cx)
	p.Push(0)
	defer p.Pop()
	return child.HitTest(p, pt, cx)
}

func (sv *stateView[S]) Process(ev events.Event, p *Path, cx *Context, actions *Actions) {
	_, child := sv.body(p, cx)
	p.Push(0)
	child.Process(ev, p, cx, actions)
	p.Pop()
}

func (sv *stateView[S]) Dirty(p *Path, off math32.Vector2, cx *Context) {
	id, child := sv.body(p, cx)
	if cx.states[id].dirty {
		cx.DirtyRegion.Add(cx.GetLayout(p).Rect.Translate(off))
		return
	}
	p.Push(0)
	child.Dirty(p, off, cx)
	p.Pop()
}

func (sv *stateView[S]) GC(p *Path, cx *Context, live *[]ViewID) {
	id, child := sv.body(p, cx)
	*live = append(*live, id)
	p.Push(0)
	child.GC(p, cx, live)
	p.Pop()
}

func (sv *stateView[S]) Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID {
	_, child := sv.body(p, cx)
	p.Push(0)
	defer p.Pop()
	return child.Access(p, cx, nodes)
}
