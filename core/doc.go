// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package core provides a small reactive UI kernel: declarative view trees
that are rebuilt as ordinary values whenever they are needed, with all
persistent state kept in a [Context].

A [View] is visited at a [Path], the sequence of child segments from the
root. The [Context] maps each path to a stable [ViewID], and keys by that
id the state of [State] views, the layout of every view, the dependencies
of cached layouts and the gesture slots. One frame is driven by
[Context.Process] for each input event, [Context.Update] to collect garbage
and lay out what changed, and [Context.Render] to draw.

	counter := core.State(func() int { return 0 }, func(h core.StateHandle[int], cx *core.Context) core.View {
		return core.VStack(core.Center,
			core.Text(fmt.Sprint(h.Get(cx))),
			core.Button("Increment", func(cx *core.Context) any {
				*h.GetMut(cx)++
				return nil
			}),
		)
	})
*/
package core
