// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"

	"cogentcore.org/rui/access"
	"cogentcore.org/rui/base/errors"
	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
)

// text is a view that draws a string.
type text struct {
	leaf
	text string
}

// Text returns a view that draws s, wrapped at word boundaries to the
// proposed width. Its font, size and color come from the [Font],
// [TextSize] and [TextColor] environment values.
func Text(s string) View {
	return &text{text: s}
}

func (tx *text) style(cx *Context) (font string, size float32, c color.Color) {
	font = cx.Settings.DefaultFont
	if f, ok := GetEnv[Font](cx); ok {
		font = string(f)
	}
	size = cx.Settings.TextSize
	if s, ok := GetEnv[TextSize](cx); ok {
		size = float32(s)
	}
	c = color.Black
	if tc, ok := GetEnv[TextColor](cx); ok {
		c = color.RGBA(tc)
	}
	return
}

// Layout measures the text. If the measurement fails, the error is
// logged and the text takes no space.
func (tx *text) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	font, size, _ := tx.style(cx)
	sz, err := args.Measurer.TextBounds(tx.text, args.Size.X, font, size)
	if errors.Log(err) != nil {
		sz = math32.Vector2{}
	}
	cx.UpdateLayout(p, math32.B2FromPosSize(math32.Vector2{}, sz))
	return sz
}

func (tx *text) Draw(p *Path, cx *Context, d paint.Drawer) {
	font, size, c := tx.style(cx)
	r := cx.GetLayout(p).Rect
	if !r.HasArea() {
		return
	}
	errors.Log(d.DrawText(tx.text, r.Min, font, size, r.Size().X, c))
}

func (tx *text) Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID {
	id := access.NodeID(cx.ViewID(p))
	nodes.Add(id, access.Node{Role: access.RoleLabel, Name: tx.text, Bounds: accessBounds(p, cx)})
	return id
}

// shape is a view that fills the proposed size with a shape.
type shape struct {
	leaf
	fill   color.Color
	radius float32
	circle bool
}

// Rectangle returns a view that fills the proposed size with a
// rectangle of the given color and corner radius.
func Rectangle(fill color.Color, radius float32) View {
	return &shape{fill: fill, radius: radius}
}

// Circle returns a view that draws a circle of the given color,
// as large as fits in the proposed size.
func Circle(fill color.Color) View {
	return &shape{fill: fill, circle: true}
}

func (sh *shape) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	cx.UpdateLayout(p, math32.B2FromPosSize(math32.Vector2{}, args.Size))
	return args.Size
}

func (sh *shape) paintShape(r math32.Box2) paint.Shape {
	if sh.circle {
		sz := r.Size()
		return paint.Circle{Center: r.Center(), Radius: min(sz.X, sz.Y) / 2}
	}
	return paint.Rect{Box: r, Radius: sh.radius}
}

func (sh *shape) Draw(p *Path, cx *Context, d paint.Drawer) {
	errors.Log(d.DrawShape(sh.paintShape(cx.GetLayout(p).Rect), paint.Fill(sh.fill)))
}

func (sh *shape) Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID {
	id := access.NodeID(cx.ViewID(p))
	nodes.Add(id, access.Node{Role: access.RoleImage, Bounds: accessBounds(p, cx)})
	return id
}

// spacer takes up the proposed size and draws nothing.
type spacer struct {
	leaf
}

// Spacer returns a view that takes up the proposed size.
func Spacer() View {
	return spacer{}
}

func (spacer) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	cx.UpdateLayout(p, math32.B2FromPosSize(math32.Vector2{}, args.Size))
	return args.Size
}

func (spacer) Draw(p *Path, cx *Context, d paint.Drawer) {}

func (spacer) HitTest(p *Path, pt math32.Vector2, cx *Context) ViewID {
	return NoViewID
}

// empty has no size.
type empty struct {
	spacer
}

// Empty returns a view that takes no space.
func Empty() View {
	return empty{}
}

func (empty) Layout(p *Path, cx *Context, args LayoutArgs) math32.Vector2 {
	cx.UpdateLayout(p, math32.Box2{})
	return math32.Vector2{}
}
