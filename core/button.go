// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"

	"cogentcore.org/rui/access"
)

// buttonColor is the background color of buttons.
var buttonColor = color.RGBA{0xd0, 0xe4, 0xff, 0xff}

type button struct {
	single
	label string
}

// Button returns a view that draws label on a rounded background and
// calls f when tapped. A non-nil result of f is pushed as an action.
func Button(label string, f func(cx *Context) any) View {
	body := Tap(Background(buttonColor, 6, Padding(8, Text(label))), func(cx *Context, info TapInfo) any {
		return f(cx)
	})
	return &button{single: single{body}, label: label}
}

// Access exports a single button node named by the label.
func (bt *button) Access(p *Path, cx *Context, nodes *access.Nodes) access.NodeID {
	id := access.NodeID(cx.ViewID(p))
	nodes.Add(id, access.Node{Role: access.RoleButton, Name: bt.label, Bounds: accessBounds(p, cx), Actionable: true})
	return id
}
