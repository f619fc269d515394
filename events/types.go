// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of input event. Events arrive normalized
// from the windowing layer: mouse and touch input, keyboard input,
// text input from an input method, and window focus and cursor
// presence changes. [Anim] is sent by the frame driver itself
// at the start of every frame.
type Types int32

const (
	// NoEvent is the zero value, an event that carries nothing.
	NoEvent Types = iota

	// MousePress happens when a mouse button is pressed down.
	// See [Event.Button] for which. It uses gesture slot 0.
	MousePress

	// MouseUnpress happens when a mouse button is released.
	MouseUnpress

	// CursorMove is sent whenever the mouse cursor moves,
	// with [Event.Delta] holding the movement since the last one.
	CursorMove

	// TouchBegin is the start of a touch contact in slot [Event.Touch].
	TouchBegin

	// TouchMove is the movement of a touch contact.
	TouchMove

	// TouchEnd is the end of a touch contact.
	TouchEnd

	// KeyPress is when a key is pressed down, with the key code
	// in [Event.Key] and the produced character, if any, in [Event.Rune].
	KeyPress

	// KeyUnpress is when a key is released.
	KeyUnpress

	// Ime is composed text from an input method, in [Event.Text].
	Ime

	// Focused reports a change in window focus, in [Event.Focused].
	Focused

	// CursorEntered is when the cursor enters the window.
	CursorEntered

	// CursorLeft is when the cursor leaves the window.
	CursorLeft

	// Anim is the animation tick, with [Event.Dt] holding the
	// elapsed time in seconds since the last tick.
	Anim

	typesN
)

var typesNames = [...]string{"NoEvent", "MousePress", "MouseUnpress", "CursorMove",
	"TouchBegin", "TouchMove", "TouchEnd", "KeyPress", "KeyUnpress", "Ime",
	"Focused", "CursorEntered", "CursorLeft", "Anim"}

func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return "Types(" + strconv.Itoa(int(tp)) + ")"
	}
	return typesNames[tp]
}

// IsPress returns whether the type starts a pointer contact.
func (tp Types) IsPress() bool {
	return tp == MousePress || tp == TouchBegin
}

// IsMove returns whether the type moves a pointer.
func (tp Types) IsMove() bool {
	return tp == CursorMove || tp == TouchMove
}

// IsRelease returns whether the type ends a pointer contact.
func (tp Types) IsRelease() bool {
	return tp == MouseUnpress || tp == TouchEnd
}

// IsKey returns whether the type is a keyboard event.
func (tp Types) IsKey() bool {
	return tp == KeyPress || tp == KeyUnpress
}

// HasPos returns whether events of this type carry a position.
func (tp Types) HasPos() bool {
	return tp.IsPress() || tp.IsMove() || tp.IsRelease()
}
