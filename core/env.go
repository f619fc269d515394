// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"
	"reflect"

	"cogentcore.org/rui/access"
	"cogentcore.org/rui/events"
	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
)

// TextSize is the environment value for the font size of [Text] views.
// Without it, [Settings.TextSize] is used.
type TextSize float32

// TextColor is the environment value for the color of [Text] views.
type TextColor color.RGBA

// Font is the environment value for the font name of [Text] views.
// Without it, [Settings.DefaultFont] is used.
type Font string

// InitEnv returns the environment value of type E, first setting it
// to the result of init if there is none.
func InitEnv[E any](cx *Context, init func() E) E {
	t := reflect.TypeFor[E]()
	cx.readEnv(t)
	if v, ok := cx.env[t]; ok {
		return v.(E)
	}
	v := init()
	cx.env[t] = v
	return v
}

// GetEnv returns the environment value of type E, and false
// if there is none.
func GetEnv[E any](cx *Context) (E, bool) {
	t := reflect.TypeFor[E]()
	cx.readEnv(t)
	v, ok := cx.env[t]
	if !ok {
		var zv E
		return zv, false
	}
	return v.(E), true
}

// SetEnv sets the environment value of type E, returning the
// previous value and whether there was one, for restoring it
// with [RestoreEnv].
func SetEnv[E any](cx *Context, v E) (old E, had bool) {
	t := reflect.TypeFor[E]()
	if o, ok := cx.env[t]; ok {
		old, had = o.(E), true
	}
	cx.env[t] = v
	return
}

// RestoreEnv restores the environment value of type E returned by [SetEnv].
func RestoreEnv[E any](cx *Context, old E, had bool) {
	t := reflect.TypeFor[E]()
	if had {
		cx.env[t] = old
		return
	}
	delete(cx.env, t)
}

// readEnv records a read of the given environment type
// by the innermost stateful layout being computed.
func (cx *Context) readEnv(t reflect.Type) {
	if n := len(cx.envReads); n > 0 {
		cx.envReads[n-1][t] = struct{}{}
	}
}

// noteEnvReads passes the environment reads of a nested stateful
// view up to the enclosing one.
func (cx *Context) noteEnvReads(env map[reflect.Type]any) {
	for t := range env {
		cx.readEnv(t)
	}
}

// envChanged returns whether any of the given environment values
// differs from the current one.
func (cx *Context) envChanged(env map[reflect.Type]any) bool {
	for t, v := range env {
		if !reflect.DeepEqual(v, cx.env[t]) {
			return true
		}
	}
	return false
}

// envView sets an environment value for its child.
type envView[E any] struct {
	value E
	child View
}

// Env returns a view that sets the environment value of type E
// for child and everything below it.
func Env[E any](value E, child View) View {
	return &envView[E]{value: value, child: child}
}

func (ev *envView[E]) scope(p *Path, cx *Context, f func()) {
	old, had := SetEnv(cx, ev.value)
	p.Push(0)
	f()
	p.Pop()
	RestoreEnv(cx, old, had)
}

func (ev *envView[E]) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	var sz math32.Vector2
	ev.scope(p, cx, func() {
		sz = ev.child.Layout(p, cx, args)
		cx.SetLayoutOffset(p, math32.Vector2{})
	})
	cx.UpdateLayout(p, math32.B2FromPosSize(math32.Vector2{}, sz))
	return sz
}

func (ev *envView[E]) Draw(p *Path, cx *Context, d paint.Drawer) {
	ev.scope(p, cx, func() { ev.child.Draw(p, cx, d) })
}

func (ev *envView[E]) HitTest(p *Path, pt math32.Vector2, cx *Context) ViewID {
	id := NoViewID
	ev.scope(p, cx, func() { id = ev.child.HitTest(p, pt, cx) })
	return id
}

func (ev *envView[E]) Process(e events.Event, p *Path, cx *Context, actions *Actions) {
	ev.scope(p, cx, func() { ev.child.Process(e, p, cx, actions) })
}

func (ev *envView[E]) Dirty(p *Path, off math32.Vector2, cx *Context) {
	ev.scope(p, cx, func() { ev.child.Dirty(p, off, cx) })
}

func (ev *envView[E]) GC(p *Path, cx *Context, live *[]ViewID) {
	*live = append(*live, cx.ViewID(p))
	ev.scope(p, cx, func() { ev.child.GC(p, cx, live) })
}

func (ev *envView[E]) Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID {
	id := access.NoNode
	ev.scope(p, cx, func() { id = ev.child.Access(p, cx, nodes) })
	return id
}

// EnvReader returns a view built by f from the current environment
// value of type E, or its zero value if there is none.
func EnvReader[E any](f func(v E, cx *Context) View) View {
	return &envReader[E]{build: f}
}

type envReader[E any] struct {
	build func(v E, cx *Context) View
}

func (er *envReader[E]) body(cx *Context) View {
	v, _ := GetEnv[E](cx)
	return er.build(v, cx)
}

func (er *envReader[E]) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	return single{er.body(cx)}.Layout(p, cx, args)
}

func (er *envReader[E]) Draw(p *Path, cx *Context, d paint.Drawer) {
	single{er.body(cx)}.Draw(p, cx, d)
}

func (er *envReader[E]) HitTest(p *Path, pt math32.Vector2, cx *Context) ViewID {
	return single{er.body(cx)}.HitTest(p, pt, cx)
}

func (er *envReader[E]) Process(ev events.Event, p *Path, cx *Context, actions *Actions) {
	single{er.body(cx)}.Process(ev, p, cx, actions)
}

func (er *envReader[E]) Dirty(p *Path, off math32.Vector2, cx *Context) {
	single{er.body(cx)}.Dirty(p, off, cx)
}

func (er *envReader[E]) GC(p *Path, cx *Context, live *[]ViewID) {
	single{er.body(cx)}.GC(p, cx, live)
}

func (er *envReader[E]) Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID {
	return single{er.body(cx)}.Access(p, cx, nodes)
}
