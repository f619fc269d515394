// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the key codes and modifier flags
// carried by keyboard events.
package key

import "strconv"

// Codes is a key code for a physical or logical key,
// independent of the character it produces.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeCharacter
	CodeEnter
	CodeEscape
	CodeBackspace
	CodeDelete
	CodeTab
	CodeSpace
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeF11

	codesN
)

var codesNames = [...]string{"Unknown", "Character", "Enter", "Escape",
	"Backspace", "Delete", "Tab", "Space", "LeftArrow", "RightArrow",
	"UpArrow", "DownArrow", "Home", "End", "PageUp", "PageDown", "F11"}

func (c Codes) String() string {
	if c < 0 || c >= codesN {
		return "Codes(" + strconv.Itoa(int(c)) + ")"
	}
	return codesNames[c]
}
