// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"cogentcore.org/glshader/base/fsx"
	"cogentcore.org/glshader/base/tomlx"
)

// Open reads the config struct from the given TOML config file,
// looking for it on the given paths (in order) when it is relative.
// Each file found is opened in turn, so later paths override earlier
// ones. It returns an error if the file is not found on any path.
func Open(cfg any, file string, paths ...string) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files := fsx.FindFilesOnPaths(paths, file)
	if len(files) == 0 {
		return fmt.Errorf("cli.Open: no files found for %q", file)
	}
	return tomlx.OpenFiles(cfg, files...)
}

// Save writes the config struct to the given TOML file.
func Save(cfg any, file string) error {
	fn, err := fsx.ExpandHome(file)
	if err != nil {
		return err
	}
	return tomlx.Save(cfg, fn)
}
