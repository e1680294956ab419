// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"cogentcore.org/glshader/system"
)

// Watch recompiles each of the given files on ctx when it is written
// or replaced, reporting to w, until wctx is done. The directories of
// the files are watched so that editors that save by renaming are seen.
func Watch(wctx context.Context, ctx *system.Context, cfg *Config, files []string, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := map[string]string{} // abs path -> path as given
	dirs := map[string]bool{}
	for _, fn := range files {
		abs, err := filepath.Abs(fn)
		if err != nil {
			return err
		}
		watched[abs] = fn
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}
	slog.Info("watching shader files", "files", len(watched), "dirs", len(dirs))

	for {
		select {
		case <-wctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fn, ok := watched[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			slog.Debug("shader file changed", "file", fn, "op", event.Op)
			Report(w, []Result{CompileFile(ctx, cfg, fn)})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", "err", err)
		}
	}
}
