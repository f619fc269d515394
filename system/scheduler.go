// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the frame loop that drives a view tree:
// a [Scheduler] through which other goroutines run code on the frame
// thread, the [Window] interface for the platform window, and [Loop].
package system

import (
	"sync"

	"cogentcore.org/rui/core"
)

// Scheduler runs functions on the frame thread on behalf of other
// goroutines. Functions are queued with [Scheduler.Enqueue], which
// wakes the frame loop, and run in order by [Scheduler.Drain] before
// the next frame. A Scheduler is created by whatever runs the frame
// loop and passed to the code that needs it.
type Scheduler struct {
	mu    sync.Mutex
	queue []func(cx *core.Context)
	wake  chan struct{}

	// OnWake, if set, is called by [Scheduler.Wake] in addition to
	// signaling [Scheduler.Woken], for waking a platform event loop.
	// It must be safe to call from any goroutine.
	OnWake func()
}

// NewScheduler returns a new [Scheduler].
func NewScheduler() *Scheduler {
	return &Scheduler{wake: make(chan struct{}, 1)}
}

// Enqueue queues f to run on the frame thread and wakes the frame loop.
// It is safe to call from any goroutine.
func (s *Scheduler) Enqueue(f func(cx *core.Context)) {
	s.mu.Lock()
	s.queue = append(s.queue, f)
	s.mu.Unlock()
	s.Wake()
}

// Wake wakes the frame loop so that it runs a frame without waiting
// for the next tick. It never blocks.
func (s *Scheduler) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
	if s.OnWake != nil {
		s.OnWake()
	}
}

// Woken returns the channel that receives a value after [Scheduler.Wake].
func (s *Scheduler) Woken() <-chan struct{} {
	return s.wake
}

// Len returns the number of queued functions.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Drain runs all queued functions with the given context, in the order
// they were queued, and returns how many it ran. Functions queued while
// draining run at the next drain.
func (s *Scheduler) Drain(cx *core.Context) int {
	s.mu.Lock()
	q := s.queue
	s.queue = nil
	s.mu.Unlock()
	for _, f := range q {
		f(cx)
	}
	return len(q)
}
