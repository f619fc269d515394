// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/rui/base/iox/imagex"
	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{255, 0, 0, 255}

func newCanvas(w, h int) *Canvas {
	return NewCanvas(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func TestDrawShape(t *testing.T) {
	c := newCanvas(20, 20)
	c.Save()
	c.Translate(math32.Vec2(5, 5))
	require.NoError(t, c.DrawShape(paint.Rect{Box: math32.B2(0, 0, 10, 10)}, paint.Fill(red)))
	c.Restore()

	assert.Equal(t, red, c.Image.RGBAAt(10, 10))
	assert.Equal(t, red, c.Image.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, c.Image.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, c.Image.RGBAAt(16, 16))

	assert.ErrorIs(t, c.DrawShape(paint.Rect{Box: math32.B2(0, 0, 10, 10)}, paint.Paint{}), paint.ErrMissingPaint)
}

func TestClip(t *testing.T) {
	c := newCanvas(20, 20)
	c.Save()
	c.ClipRect(math32.B2(0, 0, 10, 20))
	require.NoError(t, c.DrawShape(paint.Circle{Center: math32.Vec2(10, 10), Radius: 8}, paint.Fill(red)))
	c.Restore()

	assert.Equal(t, red, c.Image.RGBAAt(6, 10))
	assert.Equal(t, color.RGBA{}, c.Image.RGBAAt(14, 10), "right half is clipped")

	c.ClipRect(math32.B2(30, 30, 40, 40))
	require.NoError(t, c.DrawShape(paint.Rect{Box: math32.B2(0, 0, 20, 20)}, paint.Fill(red)), "fully clipped draws are not errors")
}

func TestText(t *testing.T) {
	c := newCanvas(100, 40)
	sz, err := c.TextBounds("hello", 0, "", 16)
	require.NoError(t, err)
	assert.Greater(t, sz.X, float32(10))
	assert.Greater(t, sz.Y, float32(10))

	wrapped, err := c.TextBounds("hello hello", sz.X+1, "", 16)
	require.NoError(t, err)
	assert.Equal(t, sz.X, wrapped.X)
	assert.Greater(t, wrapped.Y, sz.Y)

	require.NoError(t, c.DrawText("hello", math32.Vec2(2, 2), "", 16, 0, color.Black))
	inked := 0
	for y := range 40 {
		for x := range 100 {
			if c.Image.RGBAAt(x, y).A > 0 {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 0)

	_, err = c.TextBounds("hello", 0, "missing", 16)
	assert.ErrorIs(t, err, paint.ErrMissingFont)
	assert.ErrorIs(t, c.DrawText("hello", math32.Vector2{}, "missing", 16, 0, color.Black), paint.ErrMissingFont)
}

func TestMeasureOnly(t *testing.T) {
	c := NewCanvas(nil)
	sz, err := c.TextBounds("mono", 0, "mono", 10)
	require.NoError(t, err)
	assert.Greater(t, sz.X, float32(0))
	assert.NoError(t, c.DrawShape(paint.Rect{Box: math32.B2(0, 0, 1, 1)}, paint.Fill(red)))
}

func drawScene(c *Canvas) {
	c.Clear(color.White)
	c.DrawShape(paint.Rect{Box: math32.B2(2, 2, 30, 14), Radius: 3}, paint.Fill(red))
	c.DrawText("ok", math32.Vec2(4, 2), "", 10, 0, color.Black)
}

func TestRenderStable(t *testing.T) {
	a := newCanvas(40, 20)
	b := newCanvas(40, 20)
	drawScene(a)
	drawScene(b)
	_, bad := imagex.Mismatch(a.Image, b.Image, 0)
	assert.False(t, bad)

	fn := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, imagex.Save(a.Image, fn))
	saved, f, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	_, bad = imagex.Mismatch(a.Image, saved, 0)
	assert.False(t, bad)

	b.Clear(color.White)
	pt, bad := imagex.Mismatch(a.Image, b.Image, 10)
	assert.True(t, bad)
	assert.True(t, pt.In(image.Rect(2, 2, 30, 14)))
}
