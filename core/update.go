// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/rui/access"
	"cogentcore.org/rui/events"
	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
	"github.com/google/go-cmp/cmp"
)

// checkPath panics if a tree walk did not leave the root path as it found it.
func checkPath(p *Path, op string) {
	if p.Len() != 1 {
		panic(fmt.Sprintf("core.Context: %s left path %v unbalanced", op, p))
	}
}

// Update runs one frame update of the view tree v in a window of the
// given size. It sends an [events.Anim] event with the time since the
// previous update, and then, if any state is dirty or the size changed:
// evicts the state and layout of views no longer in the tree, lays out
// the tree, sends the accessibility tree to sink if it changed, adds
// the changed areas to the [Context.DirtyRegion], and clears the dirty flags.
// Actions pushed by the animation tick are added to actions.
// The sink may be nil. It returns whether the tree was laid out,
// in which case it needs to be rendered.
func (cx *Context) Update(v View, size math32.Vector2, m paint.Measurer, actions *Actions, sink access.Sink) bool {
	now := time.Now()
	var dt float32
	if !cx.lastUpdate.IsZero() {
		dt = float32(now.Sub(cx.lastUpdate).Seconds())
	}
	cx.lastUpdate = now
	cx.Process(v, events.NewAnim(dt), actions)

	if size != cx.WindowSize {
		cx.WindowSize = size
		clear(cx.deps)
		cx.dirty = true
	}
	if !cx.dirty {
		return false
	}
	if cx.Settings.UpdateTrace {
		slog.Info("update", "size", size, "states", len(cx.states))
	}

	p := NewPath()
	var live []ViewID
	v.GC(p, cx, &live)
	checkPath(p, "GC")
	cx.GC(live)

	// areas the changed views covered before the layout
	clear(cx.moved)
	v.Dirty(p, cx.RootOffset, cx)
	v.Layout(p, cx, LayoutArgs{Size: size, Measurer: m})
	checkPath(p, "Layout")
	// areas they cover now, and both areas of views that moved
	v.Dirty(p, cx.RootOffset, cx)
	checkPath(p, "Dirty")
	clear(cx.moved)

	nodes := &access.Nodes{}
	root := v.Access(p, cx, nodes)
	checkPath(p, "Access")
	tree := &access.Tree{Nodes: nodes.Order, Root: root}
	if cx.lastAccess == nil || !cmp.Equal(cx.lastAccess, tree) {
		cx.lastAccess = tree
		if sink != nil {
			sink.UpdateAccess(tree)
		}
	}

	cx.ClearDirty()
	return true
}

// Render draws the view tree v with the layout of the last update,
// translated by the [Context.RootOffset], and then clears the dirty
// region. With [Settings.PartialRedraw], drawing is clipped to the
// bounds of the dirty region if it is not empty.
func (cx *Context) Render(v View, d paint.Drawer) {
	if cx.Settings.RenderTrace {
		slog.Info("render", "dirty", len(cx.DirtyRegion.Rects))
	}
	d.Save()
	if cx.Settings.PartialRedraw && !cx.DirtyRegion.IsEmpty() {
		d.ClipRect(cx.DirtyRegion.Bounds())
	}
	d.Translate(cx.RootOffset)
	p := NewPath()
	v.Draw(p, cx, d)
	checkPath(p, "Draw")
	d.Restore()
	cx.DirtyRegion.Reset()
}

// Process delivers an event in window coordinates to the view tree v,
// pushing the resulting actions. A press starts a new contact, so it
// releases the slot of any earlier contact that never ended.
func (cx *Context) Process(v View, ev events.Event, actions *Actions) {
	if cx.Settings.EventTrace && ev.Type != events.Anim {
		slog.Info("event", "event", ev)
	}
	if ev.Type.IsPress() {
		if slot := ev.Slot(); slot >= 0 && slot < len(cx.Touches) {
			cx.Touches[slot] = NoViewID
		}
	}
	p := NewPath()
	v.Process(ev.Offset(cx.RootOffset.Negate()), p, cx, actions)
	checkPath(p, "Process")
}

// HitTest returns the id of the topmost view of v at the given
// point in window coordinates, or [NoViewID].
func (cx *Context) HitTest(v View, pt math32.Vector2) ViewID {
	p := NewPath()
	id := v.HitTest(p, pt.Sub(cx.RootOffset), cx)
	checkPath(p, "HitTest")
	return id
}
