// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"log/slog"
	"sync"
)

// TraceCompression can be set to true to log when move events
// are merged into the one still waiting in the queue.
var TraceCompression = false

// Queue is a FIFO event queue that the windowing layer may
// [Queue.Send] to from any goroutine, while the frame thread
// drains it with [Queue.NextEvent].
//
// Move events are not unique: a [CursorMove], or a [TouchMove]
// in the same slot, sent while the previous event of the queue
// is a move of the same kind replaces it, with the deltas summed.
// This keeps a slow frame from replaying every intermediate move.
type Queue struct {
	mu     sync.Mutex
	events []Event
	head   int
}

// Init empties the queue.
func (q *Queue) Init() {
	q.mu.Lock()
	q.events = q.events[:0]
	q.head = 0
	q.mu.Unlock()
}

// compressible returns whether ev may replace prev.
func compressible(prev, ev Event) bool {
	if prev.Type != ev.Type {
		return false
	}
	switch ev.Type {
	case CursorMove:
		return true
	case TouchMove:
		return prev.Touch == ev.Touch
	}
	return false
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.events); n > q.head {
		prev := &q.events[n-1]
		if compressible(*prev, ev) {
			if TraceCompression {
				slog.Info("compressed event", "event", ev)
			}
			ev.Delta = prev.Delta.Add(ev.Delta)
			*prev = ev
			return
		}
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns false if the queue is empty.
func (q *Queue) NextEvent() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.head >= len(q.events) {
		return Event{}, false
	}
	ev := q.events[q.head]
	q.head++
	if q.head == len(q.events) {
		q.events = q.events[:0]
		q.head = 0
	}
	return ev, true
}

// Len returns the number of events waiting in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events) - q.head
}
