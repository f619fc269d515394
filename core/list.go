// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"hash/maphash"

	"cogentcore.org/rui/access"
)

// listSeed is the seed of the path segments of list items. It is
// fixed for the process so that segments are stable across frames.
var listSeed = maphash.MakeSeed()

// listItems are the items of a [List].
type listItems[ID comparable] struct {
	ids   []ID
	build func(id ID) View
}

func (li listItems[ID]) len() int         { return len(li.ids) }
func (li listItems[ID]) seg(i int) uint64 { return maphash.Comparable(listSeed, li.ids[i]) }
func (li listItems[ID]) view(i int) View  { return li.build(li.ids[i]) }

// List returns a view that builds one item view per id with f and
// stacks the items vertically, centered horizontally. Item paths are
// derived from the ids rather than their positions, so the state of
// an item follows its id when items are inserted, removed or
// reordered. Ids must be unique; duplicates panic at layout.
func List[ID comparable](ids []ID, f func(id ID) View) View {
	return &stack{orient: Vertical, align: Center, role: access.RoleList, items: listItems[ID]{ids: ids, build: f}}
}

// HList is like [List], but stacks the items horizontally.
func HList[ID comparable](ids []ID, f func(id ID) View) View {
	return &stack{orient: Horizontal, align: Center, role: access.RoleList, items: listItems[ID]{ids: ids, build: f}}
}
