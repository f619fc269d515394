// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right

	// buttonOther is the first of the additional buttons,
	// see [OtherButton].
	buttonOther
)

// OtherButton returns the button for the n-th additional
// button beyond [Left], [Middle] and [Right].
func OtherButton(n int) Buttons {
	return buttonOther + Buttons(n)
}

func (b Buttons) String() string {
	switch b {
	case NoButton:
		return "NoButton"
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "Other" + strconv.Itoa(int(b-buttonOther))
}
