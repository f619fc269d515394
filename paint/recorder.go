// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image/color"
	"slices"
	"unicode/utf8"

	"cogentcore.org/rui/math32"
)

// RecordKinds are the kinds of [Record]ed draw operations.
type RecordKinds int32

const (
	RecordShape RecordKinds = iota
	RecordText
	RecordClip
)

// Record is one draw operation captured by a [Recorder],
// in window coordinates.
type Record struct {
	Kind RecordKinds

	// Bounds are the shape bounds, text bounds or clip rectangle,
	// translated by the transform in effect.
	Bounds math32.Box2

	// Text is the drawn text for [RecordText].
	Text string

	// Color is the fill or text color.
	Color color.Color
}

func (r Record) String() string {
	switch r.Kind {
	case RecordText:
		return fmt.Sprintf("text %q %v", r.Text, r.Bounds)
	case RecordClip:
		return fmt.Sprintf("clip %v", r.Bounds)
	}
	return fmt.Sprintf("shape %v", r.Bounds)
}

// Recorder is a [Drawer] that records draw operations instead of
// rasterizing them, with fixed-advance text metrics: every rune
// advances CharWidth times the font size and every line is
// LineHeight times the font size tall. It is used for headless
// rendering and for tests.
type Recorder struct {

	// Records are the recorded draw operations, in order.
	Records []Record

	// Fonts, if non-nil, are the only font names that are available;
	// any other font results in [ErrMissingFont].
	Fonts []string

	// CharWidth is the advance of each rune relative to the font size.
	CharWidth float32

	// LineHeight is the height of each line relative to the font size.
	LineHeight float32

	state recorderState
	stack []recorderState
}

type recorderState struct {
	offset math32.Vector2
	clip   *math32.Box2
}

// NewRecorder returns a new [Recorder] with a CharWidth of 0.5
// and a LineHeight of 1.
func NewRecorder() *Recorder {
	return &Recorder{CharWidth: 0.5, LineHeight: 1}
}

// Reset clears the records and the transform state.
func (r *Recorder) Reset() {
	r.Records = r.Records[:0]
	r.state = recorderState{}
	r.stack = r.stack[:0]
}

func (r *Recorder) checkFont(font string) error {
	if font == "" || r.Fonts == nil || slices.Contains(r.Fonts, font) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrMissingFont, font)
}

func (r *Recorder) advance(size float32) func(s string) float32 {
	return func(s string) float32 {
		return float32(utf8.RuneCountInString(s)) * r.CharWidth * size
	}
}

func (r *Recorder) TextBounds(text string, maxWidth float32, font string, size float32) (math32.Vector2, error) {
	if err := r.checkFont(font); err != nil {
		return math32.Vector2{}, err
	}
	adv := r.advance(size)
	lines := WrapLines(text, maxWidth, adv)
	var w float32
	for _, ln := range lines {
		w = math32.Max(w, adv(ln))
	}
	return math32.Vec2(w, float32(len(lines))*r.LineHeight*size), nil
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.state)
}

func (r *Recorder) Restore() {
	n := len(r.stack)
	if n == 0 {
		panic("paint.Recorder: Restore without Save")
	}
	r.state = r.stack[n-1]
	r.stack = r.stack[:n-1]
}

func (r *Recorder) Translate(off math32.Vector2) {
	r.state.offset.SetAdd(off)
}

func (r *Recorder) CurrentTransform() math32.Vector2 {
	return r.state.offset
}

func (r *Recorder) ClipRect(b math32.Box2) {
	b = b.Translate(r.state.offset)
	if r.state.clip != nil {
		b = r.state.clip.Intersect(b)
	}
	r.state.clip = &b
	r.Records = append(r.Records, Record{Kind: RecordClip, Bounds: b})
}

// Clip returns the current clip rectangle in window coordinates,
// and false if there is none.
func (r *Recorder) Clip() (math32.Box2, bool) {
	if r.state.clip == nil {
		return math32.Box2{}, false
	}
	return *r.state.clip, true
}

func (r *Recorder) DrawShape(s Shape, p Paint) error {
	if p.Fill == nil {
		return ErrMissingPaint
	}
	r.Records = append(r.Records, Record{Kind: RecordShape, Bounds: s.Bounds().Translate(r.state.offset), Color: p.Fill})
	return nil
}

func (r *Recorder) DrawText(text string, pos math32.Vector2, font string, size, maxWidth float32, c color.Color) error {
	sz, err := r.TextBounds(text, maxWidth, font, size)
	if err != nil {
		return err
	}
	b := math32.B2FromPosSize(pos, sz).Translate(r.state.offset)
	r.Records = append(r.Records, Record{Kind: RecordText, Bounds: b, Text: text, Color: c})
	return nil
}

// Kind returns the records of the given kind.
func (r *Recorder) Kind(kind RecordKinds) []Record {
	var rs []Record
	for _, rec := range r.Records {
		if rec.Kind == kind {
			rs = append(rs, rec)
		}
	}
	return rs
}
