// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers for locating config and
// source files.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/glshader/base/errors"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ExpandHome expands a leading ~ in the given path to the user's
// home directory.
func ExpandHome(path string) (string, error) {
	return homedir.Expand(path)
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
// Paths are expanded with [ExpandHome]. Absolute file names are
// returned as is when they exist.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, fn := range files {
		fn = errors.Log1(ExpandHome(fn))
		if filepath.IsAbs(fn) {
			if ok, _ := FileExists(fn); ok {
				res = append(res, fn)
			}
			continue
		}
		for _, path := range paths {
			path = errors.Log1(ExpandHome(path))
			fp := filepath.Join(path, fn)
			ok, _ := FileExists(fp)
			if !ok {
				continue
			}
			if afp, err := filepath.Abs(fp); err == nil {
				fp = afp
			}
			res = append(res, fp)
		}
	}
	return res
}
