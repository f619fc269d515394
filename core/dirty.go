// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "cogentcore.org/rui/math32"

// DirtyRegion is a set of rectangles in window coordinates
// that need to be redrawn.
type DirtyRegion struct {
	Rects []math32.Box2
}

// Add adds a rectangle. Rectangles without area are ignored.
func (dr *DirtyRegion) Add(r math32.Box2) {
	if !r.HasArea() {
		return
	}
	dr.Rects = append(dr.Rects, r)
}

// IsEmpty returns whether there are no rectangles.
func (dr *DirtyRegion) IsEmpty() bool {
	return len(dr.Rects) == 0
}

// Bounds returns the smallest rectangle containing all rectangles.
func (dr *DirtyRegion) Bounds() math32.Box2 {
	b := math32.B2Empty()
	for _, r := range dr.Rects {
		b.ExpandByBox(r)
	}
	return b
}

// Reset removes all rectangles.
func (dr *DirtyRegion) Reset() {
	dr.Rects = dr.Rects[:0]
}
