// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/logx"
	"github.com/fsnotify/fsnotify"
)

// watchLoop re-runs run whenever filename changes, until the watcher
// is closed or fails. It watches the containing directory because many
// editors save by renaming a new file over the old one, which drops a
// watch held on the file itself.
func watchLoop(filename string, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "lexcat: watching %s\n", filename)
	var last time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(filename) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// editors fire bursts of events per save
			if time.Since(last) < 100*time.Millisecond {
				continue
			}
			last = time.Now()
			logx.PrintlnDebug("lexcat: grammar changed:", event.Name)
			if err := run(); err != nil {
				logx.PrintlnError(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logx.PrintlnError(err)
		}
	}
}
