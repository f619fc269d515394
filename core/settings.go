// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"path/filepath"
	"strings"

	"cogentcore.org/rui/base/iox/tomlx"
	"cogentcore.org/rui/base/iox/yamlx"
	"cogentcore.org/rui/paint"
)

// Settings are the settings of a [Context].
type Settings struct {

	// TouchSlots is the number of gesture slots, which is the
	// number of pointer contacts that can be tracked at once.
	TouchSlots int

	// FrameRate is the number of frames per second run by a frame loop.
	FrameRate float32

	// PartialRedraw clips rendering to the bounds of the dirty region.
	PartialRedraw bool

	// TextSize is the default size of text.
	TextSize float32

	// DefaultFont is the default font name.
	DefaultFont string

	// Print a trace of updates
	UpdateTrace bool

	// Print a trace of the stateful views whose layout is recomputed
	LayoutTrace bool

	// Print a trace of event processing
	EventTrace bool

	// Print a trace of rendering
	RenderTrace bool
}

// Defaults sets the default values of the settings.
func (s *Settings) Defaults() {
	s.TouchSlots = 16
	s.FrameRate = 60
	s.TextSize = 16
	s.DefaultFont = paint.DefaultFont
}

// isYAML returns whether the filename has a YAML extension.
func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// OpenSettings sets the given settings to their defaults and then
// reads them from the given file. The file is YAML if it has a .yaml
// or .yml extension, and TOML otherwise. Fields missing from the file
// keep their default values.
func OpenSettings(s *Settings, filename string) error {
	s.Defaults()
	if isYAML(filename) {
		return yamlx.Open(s, filename)
	}
	return tomlx.Open(s, filename)
}

// SaveSettings saves the given settings to the given file,
// encoded as for [OpenSettings].
func SaveSettings(s *Settings, filename string) error {
	if isYAML(filename) {
		return yamlx.Save(s, filename)
	}
	return tomlx.Save(s, filename)
}
