// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a software [paint.Drawer] that
// rasterizes shapes and text into an [image.RGBA].
package raster

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas is a [paint.Drawer] rendering into an [image.RGBA].
// Shapes are filled with a [vector.Rasterizer] and text is drawn
// with OpenType faces. The Go fonts are registered as "regular",
// "bold", "italic" and "mono"; more can be added with [Canvas.AddFont].
// A Canvas with a nil Image can still be used as a [paint.Measurer].
type Canvas struct {

	// Image is the render target.
	Image *image.RGBA

	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
	state canvasState
	stack []canvasState
}

type faceKey struct {
	font string
	size float32
}

type canvasState struct {
	offset math32.Vector2
	clip   image.Rectangle
}

// NewCanvas returns a new [Canvas] rendering into the given image.
func NewCanvas(img *image.RGBA) *Canvas {
	c := &Canvas{Image: img, fonts: map[string]*opentype.Font{}, faces: map[faceKey]font.Face{}}
	for name, ttf := range map[string][]byte{
		paint.DefaultFont: goregular.TTF,
		"bold":            gobold.TTF,
		"italic":          goitalic.TTF,
		"mono":            gomono.TTF,
	} {
		if err := c.AddFont(name, ttf); err != nil {
			panic(err) // embedded fonts always parse
		}
	}
	c.Reset()
	return c
}

// AddFont parses the given TrueType or OpenType data
// and registers it under the given name.
func (c *Canvas) AddFont(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("raster: parsing font %q: %w", name, err)
	}
	c.fonts[name] = f
	for k := range c.faces {
		if k.font == name {
			delete(c.faces, k)
		}
	}
	return nil
}

// Reset clears the transform stack and resets the clip
// to the image bounds.
func (c *Canvas) Reset() {
	c.stack = c.stack[:0]
	c.state = canvasState{}
	if c.Image != nil {
		c.state.clip = c.Image.Bounds()
	}
}

// Clear fills the whole image with the given color.
func (c *Canvas) Clear(col color.Color) {
	if c.Image == nil {
		return
	}
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// face returns the cached face for the given font and size.
func (c *Canvas) face(name string, size float32) (font.Face, error) {
	if name == "" {
		name = paint.DefaultFont
	}
	k := faceKey{name, size}
	if fc, ok := c.faces[k]; ok {
		return fc, nil
	}
	f, ok := c.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", paint.ErrMissingFont, name)
	}
	fc, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, err
	}
	c.faces[k] = fc
	return fc, nil
}

func advance(fc font.Face) func(s string) float32 {
	return func(s string) float32 {
		return math32.FromFixed(font.MeasureString(fc, s))
	}
}

// TextBounds returns the size of text in the given font and size,
// wrapped at maxWidth if it is positive.
func (c *Canvas) TextBounds(text string, maxWidth float32, fontName string, size float32) (math32.Vector2, error) {
	fc, err := c.face(fontName, size)
	if err != nil {
		return math32.Vector2{}, err
	}
	adv := advance(fc)
	lines := paint.WrapLines(text, maxWidth, adv)
	var w float32
	for _, ln := range lines {
		w = math32.Max(w, adv(ln))
	}
	h := math32.FromFixed(fc.Metrics().Height)
	return math32.Vec2(math32.Ceil(w), math32.Ceil(h*float32(len(lines)))), nil
}

// Save pushes the current transform and clip.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the transform and clip pushed by the matching [Canvas.Save].
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		panic("raster.Canvas: Restore without Save")
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// Translate moves the origin by off.
func (c *Canvas) Translate(off math32.Vector2) {
	c.state.offset.SetAdd(off)
}

// CurrentTransform returns the current origin in image coordinates.
func (c *Canvas) CurrentTransform() math32.Vector2 {
	return c.state.offset
}

// ClipRect intersects the clip with r, given in current coordinates.
func (c *Canvas) ClipRect(r math32.Box2) {
	c.state.clip = c.state.clip.Intersect(r.Translate(c.state.offset).ToRect())
}

// DrawShape fills s with the fill color of p, within the clip.
func (c *Canvas) DrawShape(s paint.Shape, p paint.Paint) error {
	if p.Fill == nil {
		return paint.ErrMissingPaint
	}
	if c.Image == nil {
		return nil
	}
	clip := c.state.clip.Intersect(s.Bounds().Translate(c.state.offset).ToRect())
	if clip.Empty() {
		return nil
	}
	// the rasterizer covers only the clip, with its origin at clip.Min
	org := c.state.offset.Sub(math32.Vector2FromPoint(clip.Min))
	z := vector.NewRasterizer(clip.Dx(), clip.Dy())
	for _, cmd := range s.Path() {
		pt := func(i int) (float32, float32) {
			v := cmd.Points[i].Add(org)
			return v.X, v.Y
		}
		switch cmd.Op {
		case paint.MoveTo:
			z.MoveTo(pt(0))
		case paint.LineTo:
			z.LineTo(pt(0))
		case paint.QuadTo:
			bx, by := pt(0)
			cx, cy := pt(1)
			z.QuadTo(bx, by, cx, cy)
		case paint.CubeTo:
			bx, by := pt(0)
			cx, cy := pt(1)
			dx, dy := pt(2)
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case paint.Close:
			z.ClosePath()
		}
	}
	mask := image.NewAlpha(image.Rect(0, 0, clip.Dx(), clip.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(c.Image, clip, image.NewUniform(p.Fill), image.Point{}, mask, image.Point{}, draw.Over)
	return nil
}

// DrawText draws text with its top left corner at pos, wrapped
// at maxWidth if it is positive, within the clip.
func (c *Canvas) DrawText(text string, pos math32.Vector2, fontName string, size, maxWidth float32, col color.Color) error {
	fc, err := c.face(fontName, size)
	if err != nil {
		return err
	}
	if col == nil {
		return paint.ErrMissingPaint
	}
	if c.Image == nil || c.state.clip.Empty() {
		return nil
	}
	dst := c.Image.SubImage(c.state.clip).(*image.RGBA)
	m := fc.Metrics()
	d := font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: fc}
	org := pos.Add(c.state.offset)
	for i, ln := range paint.WrapLines(text, maxWidth, advance(fc)) {
		d.Dot = org.ToFixed()
		d.Dot.Y += m.Ascent + m.Height*fixed.Int26_6(i)
		d.DrawString(ln)
	}
	return nil
}
