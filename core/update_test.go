// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"cogentcore.org/rui/access"
	"cogentcore.org/rui/events"
	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessExport(t *testing.T) {
	cx := NewContext(nil)
	var trees []*access.Tree
	sink := access.SinkFunc(func(tree *access.Tree) { trees = append(trees, tree) })
	var h StateHandle[string]
	v := State(func() string { return "hello" }, func(s StateHandle[string], cx *Context) View {
		h = s
		return VStack(Start, Text(s.Get(cx)), Button("ok", func(cx *Context) any { return nil }), Spacer())
	})
	size := math32.Vec2(100, 100)
	rec := paint.NewRecorder()
	var actions Actions
	cx.Update(v, size, rec, &actions, sink)
	require.Len(t, trees, 1)
	tree := trees[0]
	require.Len(t, tree.Nodes, 3)
	assert.Equal(t, access.RoleLabel, tree.Nodes[0].Value.Role)
	assert.Equal(t, "hello", tree.Nodes[0].Value.Name)
	assert.Equal(t, access.RoleButton, tree.Nodes[1].Value.Role)
	assert.Equal(t, "ok", tree.Nodes[1].Value.Name)
	assert.True(t, tree.Nodes[1].Value.Actionable)
	root := tree.Nodes[2]
	assert.Equal(t, tree.Root, root.Key)
	assert.Equal(t, access.RoleGroup, root.Value.Role)
	assert.Equal(t, []access.NodeID{tree.Nodes[0].Key, tree.Nodes[1].Key}, root.Value.Children)

	// unchanged trees are not sent again
	cx.SetDirty()
	cx.Update(v, size, rec, &actions, sink)
	assert.Len(t, trees, 1)

	h.Set(cx, "bye")
	cx.Update(v, size, rec, &actions, sink)
	require.Len(t, trees, 2)
	assert.Equal(t, "bye", trees[1].Nodes[0].Value.Name)
}

func TestDirtyRegion(t *testing.T) {
	cx := NewContext(nil)
	cx.Settings.PartialRedraw = true
	var ha StateHandle[int]
	var builds int
	var hb StateHandle[int]
	v := Padding(5, HStack(Start, counter(&builds, &ha), counter(&builds, &hb)))
	update(cx, v)
	rec := paint.NewRecorder()
	cx.Render(v, rec)
	assert.Empty(t, rec.Kind(paint.RecordClip))
	assert.True(t, cx.DirtyRegion.IsEmpty())

	hb.Set(cx, 20)
	update(cx, v)
	// before: 10 wide at x 15, after: 20 wide at x 15
	assert.Equal(t, math32.B2(15, 5, 35, 15), cx.DirtyRegion.Bounds())
	rec.Reset()
	cx.Render(v, rec)
	clips := rec.Kind(paint.RecordClip)
	if assert.Len(t, clips, 1) {
		assert.Equal(t, math32.B2(15, 5, 35, 15), clips[0].Bounds)
	}
	assert.Len(t, rec.Kind(paint.RecordShape), 2)
	assert.True(t, cx.DirtyRegion.IsEmpty())
}

func TestDirtyRegionMoved(t *testing.T) {
	cx := NewContext(nil)
	cx.Settings.PartialRedraw = true
	var builds int
	var h StateHandle[int]
	v := HStack(Start, counter(&builds, &h), box(5, 10))
	update(cx, v)
	assert.True(t, cx.DirtyRegion.IsEmpty())

	h.Set(cx, 30)
	update(cx, v)
	moved := cx.GetLayout(pathOf(1))
	assert.Equal(t, math32.B2(30, 0, 35, 10), moved.Rect.Translate(moved.Offset))
	// the box moved from x 10 to x 30, so both of its areas are redrawn
	assert.Equal(t, math32.B2(0, 0, 35, 10), cx.DirtyRegion.Bounds())

	rec := paint.NewRecorder()
	cx.Render(v, rec)
	clips := rec.Kind(paint.RecordClip)
	if assert.Len(t, clips, 1) {
		shapes := rec.Kind(paint.RecordShape)
		if assert.Len(t, shapes, 2) {
			assert.Equal(t, math32.B2(30, 0, 35, 10), shapes[1].Bounds)
			assert.Equal(t, shapes[1].Bounds, clips[0].Bounds.Intersect(shapes[1].Bounds))
		}
	}

	// nothing moves when the size is set back and forth within one frame
	h.Set(cx, 20)
	h.Set(cx, 30)
	update(cx, v)
	assert.Equal(t, math32.B2(0, 0, 30, 10), cx.DirtyRegion.Bounds())
}

func TestDirtyRegionBackground(t *testing.T) {
	cx := NewContext(nil)
	cx.Settings.PartialRedraw = true
	var h StateHandle[int]
	tall := State(func() int { return 10 }, func(s StateHandle[int], cx *Context) View {
		h = s
		return box(10, float32(s.Get(cx)))
	})
	v := Background(color.Black, 0, HStack(Start, tall, box(5, 10)))
	update(cx, v)
	assert.Equal(t, math32.B2(0, 0, 15, 10), cx.GetLayout(NewPath()).Rect)

	h.Set(cx, 30)
	update(cx, v)
	// the background grew under the box, which did not move
	assert.Equal(t, math32.B2(0, 0, 15, 30), cx.DirtyRegion.Bounds())
}

func TestResize(t *testing.T) {
	cx := NewContext(nil)
	var builds int
	var h StateHandle[int]
	v := State(func() int { return 0 }, func(s StateHandle[int], cx *Context) View {
		builds++
		h = s
		return Spacer()
	})
	var actions Actions
	rec := paint.NewRecorder()
	cx.Update(v, math32.Vec2(100, 50), rec, &actions, nil)
	assert.Equal(t, math32.Vec2(100, 50), cx.GetLayout(NewPath()).Rect.Size())
	cx.Update(v, math32.Vec2(60, 40), rec, &actions, nil)
	assert.Equal(t, math32.Vec2(60, 40), cx.GetLayout(NewPath()).Rect.Size())
	assert.Equal(t, math32.Vec2(60, 40), cx.WindowSize)
	assert.False(t, h.IsDirty(cx))
}

func TestProcessRootOffset(t *testing.T) {
	cx := NewContext(nil)
	cx.RootOffset = math32.Vec2(100, 100)
	v := TapAction(box(10, 10), SetTitle{"tapped"})
	update(cx, v)
	assert.Empty(t, process(cx, v, press(5, 5), release(5, 5)))
	assert.Equal(t, Actions{SetTitle{"tapped"}}, process(cx, v, press(105, 105), release(105, 105)))

	rec := paint.NewRecorder()
	cx.Render(v, rec)
	shapes := rec.Kind(paint.RecordShape)
	require.Len(t, shapes, 1)
	assert.Equal(t, math32.B2(100, 100, 110, 110), shapes[0].Bounds)
}

func TestSettings(t *testing.T) {
	var s Settings
	s.Defaults()
	assert.Equal(t, 16, s.TouchSlots)
	assert.Equal(t, float32(60), s.FrameRate)
	assert.Equal(t, paint.DefaultFont, s.DefaultFont)

	dir := t.TempDir()
	for _, name := range []string{"settings.toml", "settings.yaml"} {
		fn := filepath.Join(dir, name)
		s.TouchSlots = 4
		s.PartialRedraw = true
		s.LayoutTrace = true
		require.NoError(t, SaveSettings(&s, fn))
		var o Settings
		require.NoError(t, OpenSettings(&o, fn))
		assert.Equal(t, s, o, name)
	}

	var o Settings
	assert.Error(t, OpenSettings(&o, filepath.Join(dir, "missing.toml")))
	assert.Equal(t, 16, o.TouchSlots)
}

// randomView returns a random view tree of the given depth.
func randomView(r *rand.Rand, depth int) View {
	if depth == 0 {
		switch r.IntN(5) {
		case 0:
			return Text(fmt.Sprintf("item %d text", r.IntN(100)))
		case 1:
			return Rectangle(color.Black, 2)
		case 2:
			return Circle(color.White)
		case 3:
			return Spacer()
		default:
			return box(float32(r.IntN(30)), float32(r.IntN(30)))
		}
	}
	kids := func() []View {
		vs := make([]View, r.IntN(4))
		for i := range vs {
			vs[i] = randomView(r, depth-1)
		}
		return vs
	}
	switch r.IntN(14) {
	case 0:
		return HStack(Aligns(r.IntN(3)), kids()...)
	case 1:
		return VStack(Aligns(r.IntN(3)), kids()...)
	case 2:
		return ZStack(kids()...)
	case 3:
		return Padding(float32(r.IntN(5)), randomView(r, depth-1))
	case 4:
		return Offset(math32.Vec2(float32(r.IntN(20)), float32(r.IntN(20))), randomView(r, depth-1))
	case 5:
		return TapAction(randomView(r, depth-1), SetTitle{"tap"})
	case 6:
		child := randomView(r, depth-1)
		return State(func() int { return 0 }, func(h StateHandle[int], cx *Context) View {
			return DragState(child, h, func(s *int, info DragInfo) { *s++ })
		})
	case 7:
		return Env(TextSize(r.IntN(30)+1), randomView(r, depth-1))
	case 8:
		vs := kids()
		ids := make([]int, len(vs))
		for i := range ids {
			ids[i] = i * 7
		}
		return List(ids, func(id int) View { return vs[id/7] })
	case 9:
		return Button("button", func(cx *Context) any { return nil })
	case 10:
		return Hover(randomView(r, depth-1), func(cx *Context, inside bool) any { return nil })
	case 11:
		return Background(color.White, 3, randomView(r, depth-1))
	case 12:
		child := randomView(r, depth-1)
		return EnvReader(func(v TextSize, cx *Context) View { return child })
	default:
		return OnKey(randomView(r, depth-1), func(cx *Context, ev events.Event) any { return nil })
	}
}

func randomEvent(r *rand.Rand) events.Event {
	pos := math32.Vec2(r.Float32()*200, r.Float32()*200)
	switch r.IntN(6) {
	case 0:
		return events.NewMouse(events.MousePress, events.Left, pos)
	case 1:
		return events.NewMouse(events.MouseUnpress, events.Left, pos)
	case 2:
		return events.NewCursorMove(pos, math32.Vec2(1, 1))
	case 3:
		return events.NewTouch(events.TouchBegin, r.IntN(20), pos, math32.Vector2{})
	case 4:
		return events.NewTouch(events.TouchEnd, r.IntN(20), pos, math32.Vector2{})
	}
	return events.NewKey(events.KeyPress, 0, 'k', 0)
}

func TestPathBalance(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		cx := NewContext(nil)
		v := randomView(r, 1+r.IntN(5))
		rec := paint.NewRecorder()
		for range 10 {
			assert.NotPanics(t, func() {
				var actions Actions
				size := math32.Vec2(50+r.Float32()*150, 50+r.Float32()*150)
				cx.Update(v, size, rec, &actions, nil)
				for range 5 {
					cx.Process(v, randomEvent(r), &actions)
				}
				cx.Render(v, rec)
				cx.HitTest(v, math32.Vec2(r.Float32()*200, r.Float32()*200))
			})
			p := NewPath()
			args := LayoutArgs{Size: math32.Vec2(100, 100), Measurer: rec}
			v.Layout(p, cx, args)
			assert.Equal(t, 1, p.Len())
			v.Draw(p, cx, rec)
			assert.Equal(t, 1, p.Len())
			var live []ViewID
			v.GC(p, cx, &live)
			assert.Equal(t, 1, p.Len())
			v.Dirty(p, math32.Vector2{}, cx)
			assert.Equal(t, 1, p.Len())
			v.Access(p, cx, &access.Nodes{})
			assert.Equal(t, 1, p.Len())
		}
		rec.Reset()
	}
}
