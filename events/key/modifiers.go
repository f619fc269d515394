// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "strings"

// Modifiers are used as bitflags representing a set of modifier keys.
type Modifiers int64

const (
	// Shift is the Shift key.
	Shift Modifiers = 1 << iota

	// Control is the Control key.
	Control

	// Alt is the Alt or Option key.
	Alt

	// Meta is the Command, Windows or Super key.
	Meta
)

var modifierNames = []string{"Shift", "Control", "Alt", "Meta"}

// HasFlag returns whether the given modifier is set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f != 0
}

// SetFlag sets or clears the given modifiers.
func (m *Modifiers) SetFlag(on bool, f ...Modifiers) {
	for _, fl := range f {
		if on {
			*m |= fl
		} else {
			*m &^= fl
		}
	}
}

func (m Modifiers) String() string {
	var names []string
	for i, nm := range modifierNames {
		if m.HasFlag(1 << i) {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "+")
}
