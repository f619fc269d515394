// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import "strings"

// WrapLines splits text into lines no wider than maxWidth,
// breaking at spaces, using the given function to measure
// the advance of a string. Explicit newlines always break.
// A single word wider than maxWidth gets a line of its own.
// If maxWidth is not positive, only newlines break.
func WrapLines(text string, maxWidth float32, advance func(s string) float32) []string {
	var lines []string
	for para := range strings.SplitSeq(text, "\n") {
		if maxWidth <= 0 {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			try := cur + " " + w
			if advance(try) > maxWidth {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = try
		}
		lines = append(lines, cur)
	}
	return lines
}
