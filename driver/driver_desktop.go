// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package driver

import (
	"testing"

	"cogentcore.org/glshader/driver/base"
	"cogentcore.org/glshader/driver/desktop"
	"cogentcore.org/glshader/driver/offscreen"
	"cogentcore.org/glshader/system"
)

func driverMain(opts *base.Options, f func(ctx *system.Context)) error {
	// tests run without a display
	if testing.Testing() {
		offscreen.Main(opts, f)
		return nil
	}
	return desktop.Main(opts, f)
}
