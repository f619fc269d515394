// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"cogentcore.org/rui/math32"
)

// PathOps are the commands of a [Path].
type PathOps int32

const (
	MoveTo PathOps = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

// PathCmd is one path command with its points. MoveTo and LineTo
// use one point, QuadTo two and CubeTo three.
type PathCmd struct {
	Op     PathOps
	Points [3]math32.Vector2
}

// Path is a sequence of path commands, like the SVG path element.
type Path []PathCmd

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(pt math32.Vector2) {
	*p = append(*p, PathCmd{Op: MoveTo, Points: [3]math32.Vector2{pt}})
}

// LineTo adds a line to the given point.
func (p *Path) LineTo(pt math32.Vector2) {
	*p = append(*p, PathCmd{Op: LineTo, Points: [3]math32.Vector2{pt}})
}

// QuadTo adds a quadratic Bézier curve with control point c to end point pt.
func (p *Path) QuadTo(c, pt math32.Vector2) {
	*p = append(*p, PathCmd{Op: QuadTo, Points: [3]math32.Vector2{c, pt}})
}

// CubeTo adds a cubic Bézier curve with control points c1 and c2 to end point pt.
func (p *Path) CubeTo(c1, c2, pt math32.Vector2) {
	*p = append(*p, PathCmd{Op: CubeTo, Points: [3]math32.Vector2{c1, c2, pt}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	*p = append(*p, PathCmd{Op: Close})
}

// Shape is a fillable geometry.
type Shape interface {

	// Bounds returns the bounding box of the shape.
	Bounds() math32.Box2

	// Path returns the outline of the shape.
	Path() Path
}

// Rect is a rectangle with optionally rounded corners.
type Rect struct {
	Box    math32.Box2
	Radius float32
}

func (r Rect) Bounds() math32.Box2 { return r.Box }

func (r Rect) Path() Path {
	b := r.Box
	sz := b.Size()
	rad := math32.Min(r.Radius, 0.5*math32.Min(sz.X, sz.Y))
	var p Path
	if rad <= 0 {
		p.MoveTo(b.Min)
		p.LineTo(math32.Vec2(b.Max.X, b.Min.Y))
		p.LineTo(b.Max)
		p.LineTo(math32.Vec2(b.Min.X, b.Max.Y))
		p.Close()
		return p
	}
	x0, y0, x1, y1 := b.Min.X, b.Min.Y, b.Max.X, b.Max.Y
	p.MoveTo(math32.Vec2(x0+rad, y0))
	p.LineTo(math32.Vec2(x1-rad, y0))
	p.QuadTo(math32.Vec2(x1, y0), math32.Vec2(x1, y0+rad))
	p.LineTo(math32.Vec2(x1, y1-rad))
	p.QuadTo(math32.Vec2(x1, y1), math32.Vec2(x1-rad, y1))
	p.LineTo(math32.Vec2(x0+rad, y1))
	p.QuadTo(math32.Vec2(x0, y1), math32.Vec2(x0, y1-rad))
	p.LineTo(math32.Vec2(x0, y0+rad))
	p.QuadTo(math32.Vec2(x0, y0), math32.Vec2(x0+rad, y0))
	p.Close()
	return p
}

// Circle is a circle.
type Circle struct {
	Center math32.Vector2
	Radius float32
}

func (c Circle) Bounds() math32.Box2 {
	return math32.Box2{Min: c.Center.SubScalar(c.Radius), Max: c.Center.AddScalar(c.Radius)}
}

// kappa is the control point distance for approximating
// a quarter circle with a cubic Bézier curve.
const kappa = 0.5522847498

func (c Circle) Path() Path {
	r := c.Radius
	k := r * kappa
	cx, cy := c.Center.X, c.Center.Y
	var p Path
	p.MoveTo(math32.Vec2(cx+r, cy))
	p.CubeTo(math32.Vec2(cx+r, cy+k), math32.Vec2(cx+k, cy+r), math32.Vec2(cx, cy+r))
	p.CubeTo(math32.Vec2(cx-k, cy+r), math32.Vec2(cx-r, cy+k), math32.Vec2(cx-r, cy))
	p.CubeTo(math32.Vec2(cx-r, cy-k), math32.Vec2(cx-k, cy-r), math32.Vec2(cx, cy-r))
	p.CubeTo(math32.Vec2(cx+k, cy-r), math32.Vec2(cx+r, cy-k), math32.Vec2(cx+r, cy))
	p.Close()
	return p
}
