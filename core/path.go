// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"encoding/binary"
	"fmt"
)

// Path is the structural path of a view: the sequence of segments
// from the root of the view tree down to the view. A segment is a
// child index, or a hash of the item id for children of a [List].
//
// Every view that recurses into a child must [Path.Push] exactly one
// segment before the call and [Path.Pop] it after, so that the length
// of the path is the same on return as it was on entry.
type Path struct {
	segs []uint64

	// key is a scratch buffer for the encoded form of segs.
	key []byte
}

// NewPath returns a new root path, which has a single zero segment.
func NewPath() *Path {
	return &Path{segs: []uint64{0}}
}

// Push appends a segment.
func (p *Path) Push(seg uint64) {
	p.segs = append(p.segs, seg)
}

// Pop removes the last segment. It panics on the root path,
// which means that a push and pop were unbalanced.
func (p *Path) Pop() {
	n := len(p.segs)
	if n <= 1 {
		panic("core.Path: Pop without matching Push")
	}
	p.segs = p.segs[:n-1]
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segs)
}

// Last returns the last segment.
func (p *Path) Last() uint64 {
	return p.segs[len(p.segs)-1]
}

func (p *Path) String() string {
	return fmt.Sprint(p.segs)
}

// bytes returns the segments encoded as varints. The result
// is only valid until the next call.
func (p *Path) bytes() []byte {
	p.key = p.key[:0]
	for _, s := range p.segs {
		p.key = binary.AppendUvarint(p.key, s)
	}
	return p.key
}
