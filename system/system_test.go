// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"context"
	"image/color"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"cogentcore.org/rui/core"
	"cogentcore.org/rui/events"
	"cogentcore.org/rui/math32"
	"cogentcore.org/rui/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler(t *testing.T) {
	s := NewScheduler()
	var woken int
	s.OnWake = func() { woken++ }
	var got []int
	for i := range 3 {
		s.Enqueue(func(cx *core.Context) { got = append(got, i) })
	}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, woken)
	select {
	case <-s.Woken():
	default:
		t.Fatal("scheduler not woken")
	}
	assert.Equal(t, 3, s.Drain(core.NewContext(nil)))
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 0, s.Drain(core.NewContext(nil)))
}

func TestSchedulerConcurrent(t *testing.T) {
	s := NewScheduler()
	cx := core.NewContext(nil)
	var wg sync.WaitGroup
	n := 0
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s.Enqueue(func(cx *core.Context) { n++ })
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, s.Drain(cx))
	assert.Equal(t, 800, n)
}

type custom struct{}

func newTestLoop(root core.View) (*Loop, *Offscreen, *paint.Recorder) {
	win := NewOffscreen(math32.Vec2(100, 100))
	rec := paint.NewRecorder()
	return NewLoop(root, core.NewContext(nil), rec, win), win, rec
}

func TestLoopFrame(t *testing.T) {
	root := core.VStack(core.Start,
		core.TapAction(core.Size(math32.Vec2(20, 20), core.Rectangle(color.Black, 0)), core.SetTitle{Title: "hello"}),
		core.TapAction(core.Size(math32.Vec2(20, 20), core.Rectangle(color.White, 0)), core.SetFullscreen{On: true}),
		core.TapAction(core.Size(math32.Vec2(20, 20), core.Rectangle(color.Black, 0)), custom{}),
	)
	l, win, rec := newTestLoop(root)
	var others []any
	l.OnAction = func(a any) { others = append(others, a) }

	assert.True(t, l.Frame())
	assert.Len(t, rec.Kind(paint.RecordShape), 3)
	assert.False(t, l.Frame())
	assert.Equal(t, 1, l.Frames)

	click := func(x, y float32) {
		l.Send(events.NewMouse(events.MousePress, events.Left, math32.Vec2(x, y)))
		l.Send(events.NewMouse(events.MouseUnpress, events.Left, math32.Vec2(x, y)))
	}
	click(5, 5)
	click(5, 25)
	click(5, 45)
	l.Frame()
	assert.Equal(t, "hello", win.Title())
	assert.True(t, win.IsFullscreen())
	assert.Equal(t, []any{custom{}}, others)

	// a resize relayouts and renders
	win.SetSize(math32.Vec2(50, 50))
	assert.True(t, l.Frame())
	assert.Equal(t, math32.Vec2(50, 50), l.Context.WindowSize)
}

func TestLoopScheduler(t *testing.T) {
	var h core.StateHandle[int]
	root := core.State(func() int { return 1 }, func(s core.StateHandle[int], cx *core.Context) core.View {
		h = s
		return core.Size(math32.Vec2(float32(s.Get(cx)), 10), core.Empty())
	})
	l, _, _ := newTestLoop(root)
	l.Frame()
	l.Scheduler.Enqueue(func(cx *core.Context) { h.Set(cx, 30) })
	assert.True(t, l.Frame())
	assert.Equal(t, 30, h.Get(l.Context))
}

func TestLoopRun(t *testing.T) {
	l, win, _ := newTestLoop(core.Text("x"))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	l.Scheduler.Enqueue(func(cx *core.Context) { win.SetTitle("ran") })
	require.Eventually(t, func() bool { return win.Title() == "ran" }, 5*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestWatchSettings(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "settings.toml")
	var s core.Settings
	s.Defaults()
	require.NoError(t, core.SaveSettings(&s, fn))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched := NewScheduler()
	require.NoError(t, WatchSettings(ctx, fn, sched))

	s.TouchSlots = 3
	s.FrameRate = 30
	require.NoError(t, core.SaveSettings(&s, fn))
	require.Eventually(t, func() bool { return sched.Len() > 0 }, 5*time.Second, 10*time.Millisecond)

	cx := core.NewContext(nil)
	// several write events may be queued for one save
	require.Eventually(t, func() bool {
		sched.Drain(cx)
		return cx.Settings.TouchSlots == 3
	}, 5*time.Second, 10*time.Millisecond)
	assert.Len(t, cx.Touches, 3)
	assert.Equal(t, float32(30), cx.Settings.FrameRate)
}
