// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package access defines the accessibility nodes exported
// from a view tree and the sink that receives them.
package access

import (
	"cogentcore.org/rui/base/ordmap"
	"cogentcore.org/rui/math32"
)

// NodeID identifies an exported accessibility node.
// The zero value means no node.
type NodeID uint64

// NoNode is the [NodeID] of no node.
const NoNode NodeID = 0

// Roles are the roles of accessibility nodes.
type Roles int32

const (
	RoleUnknown Roles = iota
	RoleWindow
	RoleGroup
	RoleLabel
	RoleButton
	RoleList
	RoleListItem
	RoleImage
)

var rolesNames = [...]string{"Unknown", "Window", "Group", "Label", "Button", "List", "ListItem", "Image"}

func (r Roles) String() string {
	if r < 0 || int(r) >= len(rolesNames) {
		return "Unknown"
	}
	return rolesNames[r]
}

// Node is one exported accessibility node.
type Node struct {
	Role Roles

	// Name is the accessible name, such as the text of a label.
	Name string

	// Bounds are the layout bounds of the node in its parent's coordinates.
	Bounds math32.Box2

	// Children are the ids of the child nodes, in order.
	Children []NodeID

	// Actionable is whether the node responds to a default action (tap).
	Actionable bool
}

// Nodes is the ordered list of nodes produced in one export pass.
type Nodes = ordmap.Map[NodeID, Node]

// Tree is one complete export: all nodes plus the root id.
type Tree struct {
	Nodes []ordmap.KeyValue[NodeID, Node]
	Root  NodeID
}

// Sink receives accessibility tree updates. It is only
// called when the exported tree differs from the previous one.
type Sink interface {
	UpdateAccess(tree *Tree)
}

// SinkFunc adapts an ordinary function to a [Sink].
type SinkFunc func(tree *Tree)

func (f SinkFunc) UpdateAccess(tree *Tree) { f(tree) }
