// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"reflect"
	"slices"
	"time"

	"cogentcore.org/rui/access"
	"cogentcore.org/rui/math32"
)

// ViewID is the stable identity of a view, derived from its [Path].
// Ids are allocated in increasing order the first time a path is
// seen and are never reused.
type ViewID uint64

// NoViewID is the [ViewID] of no view, as returned by a hit test
// that does not hit anything.
const NoViewID ViewID = 0

// LayoutBox is the layout of a view in the coordinates of its parent.
type LayoutBox struct {

	// Rect is the rectangle occupied by the view, relative to its own origin.
	Rect math32.Box2

	// Offset is the translation from the parent origin to the view origin,
	// as set by the parent with [Context.SetLayoutOffset].
	Offset math32.Vector2
}

// stateEntry is a value in the state store.
type stateEntry struct {
	value any
	dirty bool
}

// stateLayout is the cached layout input of a stateful view,
// used to decide whether its layout can be skipped.
type stateLayout struct {

	// deps are the ids whose dirtiness invalidates the layout.
	deps []ViewID

	// size is the proposed size the layout was computed for.
	size math32.Vector2

	// env are the environment values read during the layout.
	env map[reflect.Type]any
}

// Context holds all of the state of a view tree that persists
// across frames: view ids, view state, environment values, layouts,
// dependencies, the dirty region and the gesture slots. Views are
// rebuilt on every call, so everything they need to remember lives
// here, keyed by [ViewID].
//
// A Context is owned by the frame thread; it is not safe for
// concurrent use. Other goroutines can reach it through a
// scheduler that runs closures on the frame thread.
type Context struct {

	// Settings are the settings in effect. Use [Context.SetSettings]
	// to change them.
	Settings Settings

	// Touches are the gesture slots: the view that owns each
	// active pointer contact, or [NoViewID].
	Touches []ViewID

	// Starts are the local positions at which the contacts in
	// Touches started.
	Starts []math32.Vector2

	// PreviousPositions are the last local positions of the
	// contacts in Touches.
	PreviousPositions []math32.Vector2

	// WindowSize is the size of the window as of the last update.
	WindowSize math32.Vector2

	// RootOffset is the window position of the root view.
	RootOffset math32.Vector2

	// DirtyRegion is the region to redraw at the next render,
	// in window coordinates.
	DirtyRegion DirtyRegion

	ids     map[string]ViewID
	paths   map[ViewID]string
	nextID  ViewID
	states  map[ViewID]*stateEntry
	env     map[reflect.Type]any
	layouts map[ViewID]LayoutBox
	deps    map[ViewID]*stateLayout

	// moved holds the previous layout of the stack children whose
	// offset or rectangle changed in the current layout pass.
	moved map[ViewID]LayoutBox

	// idStack holds the ids of the stateful views whose layout
	// is being computed, outermost first.
	idStack []ViewID

	// envReads holds the environment types read within each
	// stateful layout being computed, innermost last.
	envReads []map[reflect.Type]struct{}

	dirty      bool
	lastUpdate time.Time
	lastAccess *access.Tree
}

// NewContext returns a new [Context] with the given settings,
// or the default settings if s is nil.
func NewContext(s *Settings) *Context {
	cx := &Context{
		ids:     map[string]ViewID{},
		paths:   map[ViewID]string{},
		states:  map[ViewID]*stateEntry{},
		env:     map[reflect.Type]any{},
		layouts: map[ViewID]LayoutBox{},
		deps:    map[ViewID]*stateLayout{},
		moved:   map[ViewID]LayoutBox{},
	}
	if s == nil {
		s = &Settings{}
		s.Defaults()
	}
	cx.SetSettings(s)
	return cx
}

// SetSettings applies the given settings. Gesture slots are kept up
// to the new capacity and everything is laid out again at the next update.
func (cx *Context) SetSettings(s *Settings) {
	cx.Settings = *s
	n := max(s.TouchSlots, 1)
	cx.Touches = resize(cx.Touches, n)
	cx.Starts = resize(cx.Starts, n)
	cx.PreviousPositions = resize(cx.PreviousPositions, n)
	clear(cx.deps)
	cx.dirty = true
}

func resize[T any](s []T, n int) []T {
	if len(s) >= n {
		return s[:n:n]
	}
	return append(s, make([]T, n-len(s))...)
}

// ViewID returns the id of the view at the given path, allocating
// a new one if the path has not been seen before.
func (cx *Context) ViewID(p *Path) ViewID {
	key := p.bytes()
	if id, ok := cx.ids[string(key)]; ok {
		return id
	}
	cx.nextID++
	id := cx.nextID
	if old, ok := cx.paths[id]; ok {
		panic(fmt.Sprintf("core.Context: view id %d allocated for path %v is already used by path %x", id, p, old))
	}
	k := string(key)
	cx.ids[k] = id
	cx.paths[id] = k
	return id
}

// GetLayout returns the layout of the view at the given path.
// A view that has not been laid out has a zero layout.
func (cx *Context) GetLayout(p *Path) LayoutBox {
	return cx.layouts[cx.ViewID(p)]
}

// UpdateLayout records the rectangle of the view at the given path,
// keeping its offset.
func (cx *Context) UpdateLayout(p *Path, r math32.Box2) {
	id := cx.ViewID(p)
	lb := cx.layouts[id]
	lb.Rect = r
	cx.layouts[id] = lb
}

// SetLayoutOffset records the translation of the view at the given
// path within its parent, keeping its rectangle.
func (cx *Context) SetLayoutOffset(p *Path, off math32.Vector2) {
	id := cx.ViewID(p)
	lb := cx.layouts[id]
	lb.Offset = off
	cx.layouts[id] = lb
}

// noteMoved records prev as the previous layout of the view at p
// if the view had a layout and it changed.
func (cx *Context) noteMoved(p *Path, prev LayoutBox, had bool) {
	id := cx.ViewID(p)
	if had && cx.layouts[id] != prev {
		cx.moved[id] = prev
	}
}

// childOffset returns the offset of the child of p with the given segment.
func (cx *Context) childOffset(p *Path, seg uint64) math32.Vector2 {
	p.Push(seg)
	off := cx.GetLayout(p).Offset
	p.Pop()
	return off
}

// IsDirty returns whether any state has been mutated since the last update.
func (cx *Context) IsDirty() bool {
	return cx.dirty
}

// SetDirty marks the context dirty, so that the next update
// runs garbage collection and layout.
func (cx *Context) SetDirty() {
	cx.dirty = true
}

// ClearDirty clears the global dirty flag and the dirty flags of
// all state entries.
func (cx *Context) ClearDirty() {
	cx.dirty = false
	for _, e := range cx.states {
		e.dirty = false
	}
}

// NumStates returns the number of entries in the state store.
func (cx *Context) NumStates() int {
	return len(cx.states)
}

// HasState returns whether the state store has an entry for the given id.
func (cx *Context) HasState(id ViewID) bool {
	_, ok := cx.states[id]
	return ok
}

// HasLayout returns whether the layout table has an entry for the given id.
func (cx *Context) HasLayout(id ViewID) bool {
	_, ok := cx.layouts[id]
	return ok
}

// Deps returns the recorded dependency set of the stateful view with
// the given id, and false if none is recorded.
func (cx *Context) Deps(id ViewID) ([]ViewID, bool) {
	sl, ok := cx.deps[id]
	if !ok {
		return nil, false
	}
	return slices.Clone(sl.deps), true
}

// GC evicts the state, layout and dependency entries of all ids not
// in live, and forgets the paths of those ids. Ids are not reused.
func (cx *Context) GC(live []ViewID) {
	keep := make(map[ViewID]struct{}, len(live))
	for _, id := range live {
		keep[id] = struct{}{}
	}
	has := func(id ViewID) bool {
		_, ok := keep[id]
		return ok
	}
	for id := range cx.states {
		if !has(id) {
			delete(cx.states, id)
		}
	}
	for id := range cx.layouts {
		if !has(id) {
			delete(cx.layouts, id)
		}
	}
	for id := range cx.deps {
		if !has(id) {
			delete(cx.deps, id)
		}
	}
	for id, key := range cx.paths {
		if !has(id) {
			delete(cx.paths, id)
			delete(cx.ids, key)
		}
	}
}

// anyDirty returns whether any of the given ids has a dirty state entry.
func (cx *Context) anyDirty(ids []ViewID) bool {
	for _, id := range ids {
		if e, ok := cx.states[id]; ok && e.dirty {
			return true
		}
	}
	return false
}
