// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"
	"testing"

	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
	"github.com/stretchr/testify/assert"
)

func box(w, h float32) View {
	return Size(math32.Vec2(w, h), Rectangle(color.Black, 0))
}

func layout(cx *Context, v View, size math32.Vector2) math32.Vector2 {
	p := NewPath()
	sz := v.Layout(p, cx, LayoutArgs{Size: size, Measurer: paint.NewRecorder()})
	checkPath(p, "Layout")
	return sz
}

func TestHStackAlignment(t *testing.T) {
	cx := NewContext(nil)
	v := HStack(Center, box(10, 10), box(20, 10))
	sz := layout(cx, v, math32.Vec2(100, 20))
	assert.Equal(t, math32.Vec2(30, 10), sz)
	assert.Equal(t, math32.Vec2(0, 5), cx.GetLayout(pathOf(0)).Offset)
	assert.Equal(t, math32.Vec2(10, 5), cx.GetLayout(pathOf(1)).Offset)
	assert.Equal(t, math32.Vec2(30, 10), cx.GetLayout(NewPath()).Rect.Size())
}

func TestVStackAlignment(t *testing.T) {
	cx := NewContext(nil)
	v := VStack(End, box(10, 10), box(20, 5), box(30, 5))
	sz := layout(cx, v, math32.Vec2(50, 90))
	assert.Equal(t, math32.Vec2(30, 20), sz)
	assert.Equal(t, math32.Vec2(40, 0), cx.GetLayout(pathOf(0)).Offset)
	assert.Equal(t, math32.Vec2(30, 10), cx.GetLayout(pathOf(1)).Offset)
	assert.Equal(t, math32.Vec2(20, 15), cx.GetLayout(pathOf(2)).Offset)

	cx = NewContext(nil)
	layout(cx, VStack(Start, box(10, 10), box(20, 5)), math32.Vec2(50, 90))
	assert.Equal(t, math32.Vec2(0, 10), cx.GetLayout(pathOf(1)).Offset)
}

func TestStackProposal(t *testing.T) {
	cx := NewContext(nil)
	sz := layout(cx, HStack(Start, Spacer(), Spacer(), Spacer(), Spacer()), math32.Vec2(100, 20))
	assert.Equal(t, math32.Vec2(100, 20), sz)
	assert.Equal(t, math32.Vec2(25, 20), cx.GetLayout(pathOf(2)).Rect.Size())
	assert.Equal(t, math32.Vec2(75, 0), cx.GetLayout(pathOf(3)).Offset)

	cx = NewContext(nil)
	assert.Equal(t, math32.Vector2{}, layout(cx, HStack(Center), math32.Vec2(100, 20)))
}

func TestZStack(t *testing.T) {
	cx := NewContext(nil)
	sz := layout(cx, ZStack(box(10, 30), Spacer(), box(20, 5)), math32.Vec2(40, 50))
	assert.Equal(t, math32.Vec2(40, 50), sz)
	assert.Equal(t, math32.Vec2(40, 50), cx.GetLayout(pathOf(1)).Rect.Size())
	assert.Equal(t, math32.Vector2{}, cx.GetLayout(pathOf(2)).Offset)

	cx = NewContext(nil)
	assert.Equal(t, math32.Vec2(20, 30), layout(cx, ZStack(box(10, 30), box(20, 5)), math32.Vec2(40, 50)))
}

func TestModifiers(t *testing.T) {
	cx := NewContext(nil)
	sz := layout(cx, Padding(5, box(10, 10)), math32.Vec2(100, 100))
	assert.Equal(t, math32.Vec2(20, 20), sz)
	assert.Equal(t, math32.Vec2(5, 5), cx.GetLayout(pathOf(0)).Offset)

	cx = NewContext(nil)
	sz = layout(cx, Padding(5, Spacer()), math32.Vec2(100, 40))
	assert.Equal(t, math32.Vec2(100, 40), sz)
	assert.Equal(t, math32.Vec2(90, 30), cx.GetLayout(pathOf(0)).Rect.Size())

	cx = NewContext(nil)
	sz = layout(cx, Offset(math32.Vec2(7, 8), box(10, 10)), math32.Vec2(100, 100))
	assert.Equal(t, math32.Vec2(10, 10), sz)
	assert.Equal(t, math32.Vec2(7, 8), cx.GetLayout(pathOf(0)).Offset)

	cx = NewContext(nil)
	assert.Equal(t, math32.Vector2{}, layout(cx, Empty(), math32.Vec2(100, 100)))
}

func TestStackHitTest(t *testing.T) {
	cx := NewContext(nil)
	v := HStack(Center, box(10, 10), box(20, 10))
	layout(cx, v, math32.Vec2(100, 20))
	first := cx.ViewID(pathOf(0, 0))
	second := cx.ViewID(pathOf(1, 0))
	assert.Equal(t, first, cx.HitTest(v, math32.Vec2(5, 10)))
	assert.Equal(t, second, cx.HitTest(v, math32.Vec2(25, 10)))
	assert.Equal(t, NoViewID, cx.HitTest(v, math32.Vec2(25, 2)))
	assert.Equal(t, NoViewID, cx.HitTest(v, math32.Vec2(60, 10)))

	cx.RootOffset = math32.Vec2(100, 0)
	assert.Equal(t, second, cx.HitTest(v, math32.Vec2(125, 10)))

	cx = NewContext(nil)
	z := ZStack(box(10, 10), box(10, 10))
	layout(cx, z, math32.Vec2(100, 100))
	assert.Equal(t, cx.ViewID(pathOf(1, 0)), cx.HitTest(z, math32.Vec2(5, 5)))
}

func TestStackDraw(t *testing.T) {
	cx := NewContext(nil)
	v := Padding(2, HStack(Center, box(10, 10), box(20, 10)))
	update(cx, v)
	rec := paint.NewRecorder()
	cx.Render(v, rec)
	shapes := rec.Kind(paint.RecordShape)
	if assert.Len(t, shapes, 2) {
		assert.Equal(t, math32.B2(2, 45, 12, 55), shapes[0].Bounds)
		assert.Equal(t, math32.B2(12, 45, 32, 55), shapes[1].Bounds)
	}
	assert.Equal(t, math32.Vector2{}, rec.CurrentTransform())
}

func TestList(t *testing.T) {
	cx := NewContext(nil)
	v := List([]string{"a", "b"}, func(id string) View { return box(10, 10) })
	sz := layout(cx, v, math32.Vec2(100, 100))
	assert.Equal(t, math32.Vec2(10, 20), sz)

	seg := listItems[string]{ids: []string{"b"}}.seg(0)
	p := pathOf(seg)
	assert.Equal(t, math32.Vec2(45, 10), cx.GetLayout(p).Offset)

	h := HList([]int{1, 2, 3}, func(id int) View { return box(float32(id), 4) })
	cx = NewContext(nil)
	assert.Equal(t, math32.Vec2(6, 4), layout(cx, h, math32.Vec2(100, 100)))

	dup := List([]int{1, 2, 1}, func(id int) View { return box(10, 10) })
	assert.PanicsWithValue(t, "core: items 0 and 2 of list [0] have the same id", func() {
		layout(NewContext(nil), dup, math32.Vec2(100, 100))
	})
}
