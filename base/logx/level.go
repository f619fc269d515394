// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger
// setup and verbosity levels.
package logx

import "log/slog"

// UserLevel is the minimum level the default [Handler] prints.
// It defaults to [slog.LevelWarn] and is usually set from
// command line flags with [LevelFromFlags].
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the usual -vv, -v and -q flags to a level:
// Debug, Info and Error respectively, and Warn when none is set.
// The most verbose flag wins.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	}
	return slog.LevelWarn
}
