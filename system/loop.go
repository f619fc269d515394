// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/rui/access"
	"cogentcore.org/rui/core"
	"cogentcore.org/rui/events"
	"cogentcore.org/rui/paint"
)

// Loop runs the frames of a view tree: each frame drains the
// [Scheduler], processes the queued input events, updates the
// [core.Context], handles the resulting actions and renders if
// anything changed. All of this happens on the goroutine that
// calls [Loop.Frame] or [Loop.Run].
type Loop struct {

	// Root is the root of the view tree.
	Root core.View

	// Context is the context of the view tree.
	Context *core.Context

	// Events is the input event queue, which the platform
	// layer may send to from any goroutine.
	Events events.Queue

	// Scheduler runs functions from other goroutines on the frame thread.
	Scheduler *Scheduler

	// Drawer is the drawing and measurement backend.
	Drawer paint.Drawer

	// Window is the window rendered into.
	Window Window

	// Access, if set, receives accessibility tree updates.
	Access access.Sink

	// OnAction, if set, is called with every action
	// other than [core.SetTitle] and [core.SetFullscreen].
	OnAction func(action any)

	// OnRender, if set, is called after every render,
	// to present the result.
	OnRender func()

	// Frames is the number of frames rendered.
	Frames int

	rendered bool
}

// NewLoop returns a new [Loop] for the given root view.
func NewLoop(root core.View, cx *core.Context, d paint.Drawer, w Window) *Loop {
	l := &Loop{Root: root, Context: cx, Scheduler: NewScheduler(), Drawer: d, Window: w}
	l.Events.Init()
	return l
}

// Send queues an input event and wakes the loop.
// It is safe to call from any goroutine.
func (l *Loop) Send(ev events.Event) {
	l.Events.Send(ev)
	l.Scheduler.Wake()
}

// Frame runs one frame and returns whether it rendered.
func (l *Loop) Frame() bool {
	cx := l.Context
	l.Scheduler.Drain(cx)
	var actions core.Actions
	for {
		ev, ok := l.Events.NextEvent()
		if !ok {
			break
		}
		cx.Process(l.Root, ev, &actions)
	}
	changed := cx.Update(l.Root, l.Window.Size(), l.Drawer, &actions, l.Access)
	for _, a := range actions {
		l.handleAction(a)
	}
	if !changed && l.rendered {
		return false
	}
	cx.Render(l.Root, l.Drawer)
	l.rendered = true
	l.Frames++
	if l.OnRender != nil {
		l.OnRender()
	}
	return true
}

func (l *Loop) handleAction(a any) {
	switch a := a.(type) {
	case core.SetTitle:
		l.Window.SetTitle(a.Title)
	case core.SetFullscreen:
		l.Window.SetFullscreen(a.On)
	default:
		if l.OnAction != nil {
			l.OnAction(a)
			return
		}
		slog.Debug("unhandled action", "action", a)
	}
}

// framePeriod returns the time between frames at the given rate,
// defaulting to 60 frames per second.
func framePeriod(rate float32) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(float32(time.Second) / rate)
}

// Run runs frames at [core.Settings.FrameRate], and immediately
// whenever the [Scheduler] is woken, until ctx is done.
// It returns the error of ctx.
func (l *Loop) Run(ctx context.Context) error {
	rate := l.Context.Settings.FrameRate
	tick := time.NewTicker(framePeriod(rate))
	defer tick.Stop()
	l.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		case <-l.Scheduler.Woken():
		}
		l.Frame()
		if r := l.Context.Settings.FrameRate; r != rate {
			rate = r
			tick.Reset(framePeriod(rate))
		}
	}
}
