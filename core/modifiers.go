// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"

	"cogentcore.org/rui/base/errors"
	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
)

type padding struct {
	single
	amount float32
}

// Padding returns a view that surrounds child with the given amount
// of space on every side.
func Padding(amount float32, child View) View {
	return &padding{single: single{child}, amount: amount}
}

func (pd *padding) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	inner := args
	inner.Size = args.Size.SubScalar(2 * pd.amount).Max(math32.Vector2{})
	p.Push(0)
	csz := pd.child.Layout(p, cx, inner)
	cx.SetLayoutOffset(p, math32.Vector2Scalar(pd.amount))
	p.Pop()
	sz := csz.AddScalar(2 * pd.amount)
	cx.UpdateLayout(p, math32.B2FromPosSize(math32.Vector2{}, sz))
	return sz
}

type offset struct {
	single
	off math32.Vector2
}

// Offset returns a view that moves child by off without changing its size.
func Offset(off math32.Vector2, child View) View {
	return &offset{single: single{child}, off: off}
}

func (of *offset) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	p.Push(0)
	sz := of.child.Layout(p, cx, args)
	cx.SetLayoutOffset(p, of.off)
	p.Pop()
	cx.UpdateLayout(p, math32.B2FromPosSize(math32.Vector2{}, sz))
	return sz
}

type fixedSize struct {
	single
	size math32.Vector2
}

// Size returns a view that proposes the given size to child and
// occupies exactly that size.
func Size(size math32.Vector2, child View) View {
	return &fixedSize{single: single{child}, size: size}
}

func (fs *fixedSize) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	args.Size = fs.size
	p.Push(0)
	fs.child.Layout(p, cx, args)
	cx.SetLayoutOffset(p, math32.Vector2{})
	p.Pop()
	cx.UpdateLayout(p, math32.B2FromPosSize(math32.Vector2{}, fs.size))
	return fs.size
}

type background struct {
	single
	fill   color.Color
	radius float32
}

// Background returns a view that draws a rectangle of the given color
// and corner radius behind child, with the size of child.
func Background(fill color.Color, radius float32, child View) View {
	return &background{single: single{child}, fill: fill, radius: radius}
}

func (bg *background) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	prev, had := cx.layouts[cx.ViewID(p)]
	sz := bg.single.Layout(p, cx, args)
	cx.noteMoved(p, prev, had)
	return sz
}

// Dirty adds both areas of the background if its size changed,
// since it is drawn under siblings of the changed view too.
func (bg *background) Dirty(p *Path, off math32.Vector2, cx *Context) {
	if prev, ok := cx.moved[cx.ViewID(p)]; ok {
		cx.DirtyRegion.Add(prev.Rect.Translate(off))
		cx.DirtyRegion.Add(cx.GetLayout(p).Rect.Translate(off))
		return
	}
	bg.single.Dirty(p, off, cx)
}

func (bg *background) Draw(p *Path, cx *Context, d paint.Drawer) {
	r := paint.Rect{Box: cx.GetLayout(p).Rect, Radius: bg.radius}
	errors.Log(d.DrawShape(r, paint.Fill(bg.fill)))
	bg.single.Draw(p, cx, d)
}

// HitTest hits the child, or the background itself.
func (bg *background) HitTest(p *Path, pt math32.Vector2, cx *Context) ViewID {
	if id := bg.single.HitTest(p, pt, cx); id != NoViewID {
		return id
	}
	if cx.GetLayout(p).Rect.ContainsPoint(pt) {
		return cx.ViewID(p)
	}
	return NoViewID
}
