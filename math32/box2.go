// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Box2 is an axis-aligned rectangle between Min and Max.
// Layout rectangles have Min at the view origin, so
// [Box2.Size] is the view size.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns the box from (x0, y0) to (x1, y1).
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2FromPosSize returns the box at pos with the given size.
func B2FromPosSize(pos, size Vector2) Box2 {
	return Box2{pos, pos.Add(size)}
}

// B2Empty returns an inverted box that any [Box2.ExpandByBox]
// or [Box2.ExpandByPoint] replaces.
func B2Empty() Box2 {
	var b Box2
	b.SetEmpty()
	return b
}

// SetEmpty sets Min to +Inf and Max to -Inf.
func (b *Box2) SetEmpty() {
	b.Min = Vec2(Infinity, Infinity)
	b.Max = Vec2(-Infinity, -Infinity)
}

// IsEmpty returns whether the box is inverted on either axis.
// A zero-size box is not empty; see [Box2.HasArea].
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// HasArea returns whether the box is strictly positive on both axes.
func (b Box2) HasArea() bool {
	return b.Max.X > b.Min.X && b.Max.Y > b.Min.Y
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// ToRect returns the smallest [image.Rectangle] covering the box.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}

// Canon returns the box with Min and Max swapped on any inverted axis.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// ExpandByPoint grows the box to include pt.
func (b *Box2) ExpandByPoint(pt Vector2) {
	b.Min.SetMin(pt)
	b.Max.SetMax(pt)
}

// ExpandByBox grows the box to include o.
func (b *Box2) ExpandByBox(o Box2) {
	b.ExpandByPoint(o.Min)
	b.ExpandByPoint(o.Max)
}

func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns whether pt is inside the box,
// edges included.
func (b Box2) ContainsPoint(pt Vector2) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X && pt.Y >= b.Min.Y && pt.Y <= b.Max.Y
}

// Intersect returns the overlap of the two boxes, which is
// inverted when they do not overlap.
func (b Box2) Intersect(o Box2) Box2 {
	b.Min.SetMax(o.Min)
	b.Max.SetMin(o.Max)
	return b
}

// Union returns the smallest box covering both boxes.
func (b Box2) Union(o Box2) Box2 {
	b.ExpandByBox(o)
	return b
}

func (b Box2) Translate(off Vector2) Box2 {
	return Box2{b.Min.Add(off), b.Max.Add(off)}
}

// Inset returns the box shrunk by amount on every side.
// It never inverts: an axis that would invert collapses to zero size.
func (b Box2) Inset(amount float32) Box2 {
	nb := Box2{b.Min.AddScalar(amount), b.Max.SubScalar(amount)}
	nb.Max.SetMax(nb.Min)
	return nb
}
