// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver provides the context driver for the current platform:
// a real OpenGL context on desktop platforms, and the software
// context of package offscreen in tests, with the offscreen build tag,
// and on platforms without a desktop driver.
package driver

import (
	"cogentcore.org/glshader/driver/base"
	"cogentcore.org/glshader/system"
)

// Main creates a context with the given options, runs its owning loop on
// the calling goroutine, which must be the main goroutine, and calls f
// with the context on another goroutine. It returns when f returns.
func Main(opts *base.Options, f func(ctx *system.Context)) error {
	return driverMain(opts, f)
}
