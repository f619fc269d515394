// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the normalized input events delivered
// to the view tree, and a queue for passing them from the
// windowing layer to the frame thread.
package events

import (
	"fmt"

	"cogentcore.org/rui/events/key"
	"cogentcore.org/rui/math32"
)

// Event is one normalized input event. Only the fields
// relevant to its [Event.Type] are meaningful.
// Events are small values and are passed by value, so
// that each view can translate positions into its own
// coordinate space without affecting its siblings.
type Event struct {

	// Type is the type of event.
	Type Types

	// Button is the mouse button for [MousePress] and [MouseUnpress].
	Button Buttons

	// Pos is the pointer position, in the local coordinates
	// of the view currently receiving the event.
	Pos math32.Vector2

	// Delta is the pointer movement for [CursorMove] and [TouchMove].
	Delta math32.Vector2

	// Touch is the gesture slot of a touch event. Mouse
	// events always use slot 0.
	Touch int

	// Key is the key code for [KeyPress] and [KeyUnpress].
	Key key.Codes

	// Rune is the character produced by a key press, or 0.
	Rune rune

	// Mods are the active keyboard modifiers.
	Mods key.Modifiers

	// Text is the composed text for [Ime].
	Text string

	// Focused is the new window focus state for [Focused].
	Focused bool

	// Dt is the elapsed time in seconds for [Anim].
	Dt float32
}

// NewMouse returns a new mouse press or release event.
func NewMouse(typ Types, but Buttons, pos math32.Vector2) Event {
	return Event{Type: typ, Button: but, Pos: pos}
}

// NewCursorMove returns a new [CursorMove] event.
func NewCursorMove(pos, delta math32.Vector2) Event {
	return Event{Type: CursorMove, Pos: pos, Delta: delta}
}

// NewTouch returns a new touch event in the given slot.
func NewTouch(typ Types, slot int, pos, delta math32.Vector2) Event {
	return Event{Type: typ, Touch: slot, Pos: pos, Delta: delta}
}

// NewKey returns a new key event.
func NewKey(typ Types, code key.Codes, r rune, mods key.Modifiers) Event {
	return Event{Type: typ, Key: code, Rune: r, Mods: mods}
}

// NewAnim returns a new animation tick event.
func NewAnim(dt float32) Event {
	return Event{Type: Anim, Dt: dt}
}

// Slot returns the gesture slot of a pointer event.
func (ev Event) Slot() int {
	if ev.Type == TouchBegin || ev.Type == TouchMove || ev.Type == TouchEnd {
		return ev.Touch
	}
	return 0
}

// Offset returns a copy of the event with its position translated
// by the given offset. Deltas are relative movements, so they are
// unaffected. Events without a position are returned unchanged.
func (ev Event) Offset(off math32.Vector2) Event {
	if ev.Type.HasPos() {
		ev.Pos = ev.Pos.Add(off)
	}
	return ev
}

func (ev Event) String() string {
	switch {
	case ev.Type.HasPos():
		return fmt.Sprintf("%v{Button: %v, Slot: %d, Pos: %v, Delta: %v}", ev.Type, ev.Button, ev.Slot(), ev.Pos, ev.Delta)
	case ev.Type.IsKey():
		return fmt.Sprintf("%v{Key: %v, Rune: %q, Mods: %v}", ev.Type, ev.Key, ev.Rune, ev.Mods)
	case ev.Type == Ime:
		return fmt.Sprintf("%v{Text: %q}", ev.Type, ev.Text)
	case ev.Type == Focused:
		return fmt.Sprintf("%v{%v}", ev.Type, ev.Focused)
	case ev.Type == Anim:
		return fmt.Sprintf("%v{Dt: %v}", ev.Type, ev.Dt)
	}
	return ev.Type.String()
}
