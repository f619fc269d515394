// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"cogentcore.org/rui/access"
	"cogentcore.org/rui/events"
	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
)

// StackOrientations are the orientations of a stack.
type StackOrientations int32

const (
	// Horizontal places children left to right.
	Horizontal StackOrientations = iota

	// Vertical places children top to bottom.
	Vertical

	// Depth places children on top of each other, back to front.
	Depth
)

// dim returns the main axis of a horizontal or vertical stack.
func (so StackOrientations) dim() math32.Dims {
	if so == Vertical {
		return math32.Y
	}
	return math32.X
}

// Aligns are the cross-axis alignments of stack children.
type Aligns int32

const (
	// Start aligns children to the top or left.
	Start Aligns = iota

	// Center centers children.
	Center

	// End aligns children to the bottom or right.
	End
)

// offset returns the position of an item of the given size within avail.
func (al Aligns) offset(size, avail float32) float32 {
	switch al {
	case Center:
		return (avail - size) / 2
	case End:
		return avail - size
	}
	return 0
}

// children is a sequence of child views with their path segments.
type children interface {
	len() int
	seg(i int) uint64
	view(i int) View
}

type viewSlice []View

func (vs viewSlice) len() int         { return len(vs) }
func (vs viewSlice) seg(i int) uint64 { return uint64(i) }
func (vs viewSlice) view(i int) View  { return vs[i] }

// stack lays out a sequence of children along an axis.
type stack struct {
	orient StackOrientations
	align  Aligns
	role   access.Roles
	items  children
}

// HStack returns a view that places children left to right,
// aligned vertically by align.
func HStack(align Aligns, children ...View) View {
	return &stack{orient: Horizontal, align: align, role: access.RoleGroup, items: viewSlice(children)}
}

// VStack returns a view that places children top to bottom,
// aligned horizontally by align.
func VStack(align Aligns, children ...View) View {
	return &stack{orient: Vertical, align: align, role: access.RoleGroup, items: viewSlice(children)}
}

// ZStack returns a view that places children on top of each other,
// each with the full size of the stack.
func ZStack(children ...View) View {
	return &stack{orient: Depth, role: access.RoleGroup, items: viewSlice(children)}
}

// Layout divides the proposed size evenly among the children on the
// main axis, lays them out, and then places them one after another,
// aligned within the proposed size on the cross axis. The stack is as
// large as the sum of the children on the main axis and the largest
// child on the cross axis.
func (st *stack) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	n := st.items.len()
	checkSegs(p, st.items)
	var sz math32.Vector2
	if st.orient == Depth {
		for i := range n {
			p.Push(st.items.seg(i))
			prev, had := cx.layouts[cx.ViewID(p)]
			csz := st.items.view(i).Layout(p, cx, args)
			cx.SetLayoutOffset(p, math32.Vector2{})
			cx.noteMoved(p, prev, had)
			p.Pop()
			sz.SetMax(csz)
		}
		cx.UpdateLayout(p, math32.B2FromPosSize(math32.Vector2{}, sz))
		return sz
	}

	dim := st.orient.dim()
	cross := dim.Other()
	if n > 0 {
		prop := args
		prop.Size.SetDim(dim, args.Size.Dim(dim)/float32(n))
		sizes := make([]math32.Vector2, n)
		prevs := make([]LayoutBox, n)
		hads := make([]bool, n)
		for i := range n {
			p.Push(st.items.seg(i))
			prevs[i], hads[i] = cx.layouts[cx.ViewID(p)]
			sizes[i] = st.items.view(i).Layout(p, cx, prop)
			p.Pop()
		}
		var pos, maxCross float32
		for i, csz := range sizes {
			var off math32.Vector2
			off.SetDim(dim, pos)
			off.SetDim(cross, st.align.offset(csz.Dim(cross), args.Size.Dim(cross)))
			p.Push(st.items.seg(i))
			cx.SetLayoutOffset(p, off)
			cx.noteMoved(p, prevs[i], hads[i])
			p.Pop()
			pos += csz.Dim(dim)
			maxCross = max(maxCross, csz.Dim(cross))
		}
		sz.SetDim(dim, pos)
		sz.SetDim(cross, maxCross)
	}
	cx.UpdateLayout(p, math32.B2FromPosSize(math32.Vector2{}, sz))
	return sz
}

// checkSegs panics if two items have the same path segment,
// which would make them share their state and layout.
func checkSegs(p *Path, items children) {
	if _, ok := items.(viewSlice); ok {
		return
	}
	n := items.len()
	if n < 2 {
		return
	}
	seen := make(map[uint64]int, n)
	for i := range n {
		s := items.seg(i)
		if j, ok := seen[s]; ok {
			panic(fmt.Sprintf("core: items %d and %d of list %v have the same id", j, i, p))
		}
		seen[s] = i
	}
}

func (st *stack) Draw(p *Path, cx *Context, d paint.Drawer) {
	for i := range st.items.len() {
		p.Push(st.items.seg(i))
		d.Save()
		d.Translate(cx.GetLayout(p).Offset)
		st.items.view(i).Draw(p, cx, d)
		d.Restore()
		p.Pop()
	}
}

// HitTest tests the children from the top (last) down.
func (st *stack) HitTest(p *Path, pt math32.Vector2, cx *Context) ViewID {
	for i := st.items.len() - 1; i >= 0; i-- {
		p.Push(st.items.seg(i))
		id := st.items.view(i).HitTest(p, pt.Sub(cx.GetLayout(p).Offset), cx)
		p.Pop()
		if id != NoViewID {
			return id
		}
	}
	return NoViewID
}

// Process delivers the event to every child, from the top (last)
// down, so that the topmost gesture claims a press first.
func (st *stack) Process(ev events.Event, p *Path, cx *Context, actions *Actions) {
	for i := st.items.len() - 1; i >= 0; i-- {
		p.Push(st.items.seg(i))
		st.items.view(i).Process(ev.Offset(cx.GetLayout(p).Offset.Negate()), p, cx, actions)
		p.Pop()
	}
}

// Dirty adds the previous and the current area of every child that
// moved or changed size in the last layout, and asks the others.
func (st *stack) Dirty(p *Path, off math32.Vector2, cx *Context) {
	for i := range st.items.len() {
		p.Push(st.items.seg(i))
		lb := cx.GetLayout(p)
		if prev, ok := cx.moved[cx.ViewID(p)]; ok {
			cx.DirtyRegion.Add(prev.Rect.Translate(off.Add(prev.Offset)))
			cx.DirtyRegion.Add(lb.Rect.Translate(off.Add(lb.Offset)))
		} else {
			st.items.view(i).Dirty(p, off.Add(lb.Offset), cx)
		}
		p.Pop()
	}
}

func (st *stack) GC(p *Path, cx *Context, live *[]ViewID) {
	*live = append(*live, cx.ViewID(p))
	for i := range st.items.len() {
		p.Push(st.items.seg(i))
		st.items.view(i).GC(p, cx, live)
		p.Pop()
	}
}

// Access exports a node with the nodes of the children as its
// children, or nothing if no child has a node.
func (st *stack) Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID {
	var kids []access.NodeID
	for i := range st.items.len() {
		p.Push(st.items.seg(i))
		if id := st.items.view(i).Access(p, cx, nodes); id != access.NoNode {
			kids = append(kids, id)
		}
		p.Pop()
	}
	if len(kids) == 0 {
		return access.NoNode
	}
	id := access.NodeID(cx.ViewID(p))
	nodes.Add(id, access.Node{Role: st.role, Bounds: accessBounds(p, cx), Children: kids})
	return id
}
