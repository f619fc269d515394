// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the measurement and drawing backend
// interfaces used by views, the shapes and paints they draw with,
// and an in-memory [Recorder] backend.
package paint

import (
	"errors"
	"image/color"

	"cogentcore.org/rui/math32"
)

// Backend errors. They are recoverable: the view that hits one
// renders nothing for the affected primitive.
var (
	// ErrMissingFont is returned when a font name is not known to the backend.
	ErrMissingFont = errors.New("paint: missing font")

	// ErrMissingPaint is returned when a shape is drawn without a fill color.
	ErrMissingPaint = errors.New("paint: missing paint")
)

// DefaultFont is the font name used when a view does not specify one.
const DefaultFont = "regular"

// Measurer measures text for layout. It must be deterministic
// for a given backend state so that layout is reproducible.
type Measurer interface {

	// TextBounds returns the size of the given text in the given
	// font and size, wrapped at word boundaries to maxWidth
	// when maxWidth is positive.
	TextBounds(text string, maxWidth float32, font string, size float32) (math32.Vector2, error)
}

// Drawer is a drawing backend. Coordinates passed to the drawing
// methods are local: they are translated by the accumulated
// [Drawer.Translate] offsets of the current state.
type Drawer interface {
	Measurer

	// Save pushes a copy of the current transform and clip.
	Save()

	// Restore pops the state pushed by the matching Save.
	Restore()

	// Translate moves the origin of the current state.
	Translate(off math32.Vector2)

	// CurrentTransform returns the accumulated translation.
	CurrentTransform() math32.Vector2

	// ClipRect intersects the current clip with the given local rectangle.
	ClipRect(r math32.Box2)

	// DrawShape fills the given shape.
	DrawShape(s Shape, p Paint) error

	// DrawText draws text with its top-left corner at pos,
	// wrapped like [Measurer.TextBounds].
	DrawText(text string, pos math32.Vector2, font string, size, maxWidth float32, c color.Color) error
}

// Paint specifies how a shape is filled.
type Paint struct {

	// Fill is the fill color. A nil Fill is an error at draw time.
	Fill color.Color
}

// Fill returns a [Paint] filling with the given color.
func Fill(c color.Color) Paint {
	return Paint{Fill: c}
}
