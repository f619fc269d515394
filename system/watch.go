// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/rui/core"
	"github.com/fsnotify/fsnotify"
)

// WatchSettings watches the given settings file and, whenever it is
// written, reads it and applies it to the context on the frame thread
// through sched. Files that fail to read are logged and ignored.
// It returns once the watch is set up; watching stops when ctx is done.
func WatchSettings(ctx context.Context, filename string, sched *Scheduler) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// the directory is watched so that editors that replace the file are seen
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		watcher.Close()
		return err
	}
	name := filepath.Clean(filename)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != name || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				var s core.Settings
				if err := core.OpenSettings(&s, filename); err != nil {
					slog.Error("error reading settings file", "file", filename, "err", err)
					continue
				}
				sched.Enqueue(func(cx *core.Context) {
					cx.SetSettings(&s)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("settings watcher error: " + err.Error())
			}
		}
	}()
	return nil
}
