// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
	"github.com/stretchr/testify/assert"
)

type theme string

func TestEnvScope(t *testing.T) {
	cx := NewContext(nil)
	got := map[string]theme{}
	reader := func(name string) View {
		return EnvReader(func(v theme, cx *Context) View {
			got[name] = v
			return Empty()
		})
	}
	v := Env(theme("V1"), HStack(Start,
		Env(theme("V2"), VStack(Start, Text("x"), reader("descendant"))),
		reader("sibling"),
	))
	update(cx, v)
	assert.Equal(t, theme("V2"), got["descendant"])
	assert.Equal(t, theme("V1"), got["sibling"])
	_, ok := GetEnv[theme](cx)
	assert.False(t, ok)

	clear(got)
	cx.Render(v, paint.NewRecorder())
	assert.Equal(t, theme("V2"), got["descendant"])
	assert.Equal(t, theme("V1"), got["sibling"])

	clear(got)
	layout(cx, reader("bare"), math32.Vec2(10, 10))
	assert.Equal(t, theme(""), got["bare"])
}

func TestEnvStore(t *testing.T) {
	cx := NewContext(nil)
	calls := 0
	init := func() theme {
		calls++
		return "a"
	}
	assert.Equal(t, theme("a"), InitEnv(cx, init))
	assert.Equal(t, theme("a"), InitEnv(cx, init))
	assert.Equal(t, 1, calls)

	old, had := SetEnv(cx, theme("b"))
	assert.True(t, had)
	assert.Equal(t, theme("a"), old)
	v, _ := GetEnv[theme](cx)
	assert.Equal(t, theme("b"), v)
	RestoreEnv(cx, old, had)
	v, _ = GetEnv[theme](cx)
	assert.Equal(t, theme("a"), v)

	old2, had2 := SetEnv(cx, TextSize(10))
	assert.False(t, had2)
	RestoreEnv(cx, old2, had2)
	_, ok := GetEnv[TextSize](cx)
	assert.False(t, ok)
}

func TestEnvDependency(t *testing.T) {
	cx := NewContext(nil)
	size := TextSize(10)
	root := func() View {
		return Env(size, State(func() int { return 0 }, func(h StateHandle[int], cx *Context) View {
			return Text("abcd")
		}))
	}
	update(cx, root())
	assert.Equal(t, math32.Vec2(20, 10), cx.GetLayout(NewPath()).Rect.Size())

	// the state is clean, but the environment it read changed
	size = 20
	cx.SetDirty()
	update(cx, root())
	assert.Equal(t, math32.Vec2(40, 20), cx.GetLayout(NewPath()).Rect.Size())

	id := cx.ViewID(pathOf(0))
	before := cx.deps[id]
	cx.SetDirty()
	update(cx, root())
	assert.Same(t, before, cx.deps[id])
}

func TestTextEnv(t *testing.T) {
	cx := NewContext(nil)
	v := Env(Font("mono"), Env(TextColor{R: 255, A: 255}, Text("hi there")))
	rec := paint.NewRecorder()
	var actions Actions
	cx.Update(v, math32.Vec2(100, 100), rec, &actions, nil)
	cx.Render(v, rec)
	texts := rec.Kind(paint.RecordText)
	if assert.Len(t, texts, 1) {
		assert.Equal(t, "hi there", texts[0].Text)
		assert.Equal(t, math32.B2(0, 0, 64, 16), texts[0].Bounds)
	}

	// a missing font lays out and draws nothing
	rec = paint.NewRecorder()
	rec.Fonts = []string{"regular"}
	cx = NewContext(nil)
	cx.Update(v, math32.Vec2(100, 100), rec, &actions, nil)
	assert.Equal(t, math32.Vector2{}, cx.GetLayout(NewPath()).Rect.Size())
	cx.Render(v, rec)
	assert.Empty(t, rec.Kind(paint.RecordText))
}
