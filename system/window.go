// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"sync"

	"cogentcore.org/rui/math32"
)

// Window is the platform window that a [Loop] renders into.
type Window interface {

	// Size returns the size of the content area of the window.
	Size() math32.Vector2

	// SetTitle sets the title of the window.
	SetTitle(title string)

	// SetFullscreen sets whether the window is fullscreen.
	SetFullscreen(on bool)
}

// Offscreen is a [Window] without a platform window, for rendering
// into an image and for tests.
type Offscreen struct {
	mu         sync.Mutex
	size       math32.Vector2
	title      string
	fullscreen bool
}

// NewOffscreen returns a new [Offscreen] window of the given size.
func NewOffscreen(size math32.Vector2) *Offscreen {
	return &Offscreen{size: size}
}

func (w *Offscreen) Size() math32.Vector2 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// SetSize resizes the window.
func (w *Offscreen) SetSize(size math32.Vector2) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.size = size
}

func (w *Offscreen) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
}

// Title returns the title of the window.
func (w *Offscreen) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

func (w *Offscreen) SetFullscreen(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fullscreen = on
}

// IsFullscreen returns whether the window is fullscreen.
func (w *Offscreen) IsFullscreen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fullscreen
}
