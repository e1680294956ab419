// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system marshals GL work onto the single owning thread of a
// graphics context, and provides the [Context] that shader code runs
// against on that thread.
//
// GL calls may only be issued from the thread a context is current on,
// while clients call in from arbitrary goroutines. A [Runner] accepts
// closures from any goroutine and runs each exactly once on the owning
// thread, either blocking the caller until it is done ([Runner.RunOnMain])
// or returning immediately ([Runner.GoRunOnMain]). [Call] builds a
// result-returning request on top of that.
package system

// Runner runs functions on the owning thread of a graphics context.
type Runner interface {

	// RunOnMain runs the given function on the owning thread
	// and returns after it has finished.
	RunOnMain(f func())

	// GoRunOnMain submits the given function to run on the owning
	// thread and returns immediately, without waiting for it to run.
	GoRunOnMain(f func())
}
