// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"log/slog"
	"sync"

	"cogentcore.org/glshader/gl"
)

// Context is a live graphics context as seen by the shader core:
// its capabilities, its native function table, and the [Runner] that
// owns its thread. A Context is shared by every object created from it
// and must outlive them all.
//
// Caps is set when the context is created and not changed afterwards,
// so it may be read from any goroutine. GL must only be used from inside
// functions run on the owning thread through [Context.Exec],
// [Context.GoExec] or [Call].
type Context struct {

	// Caps is the capability state of the context.
	Caps gl.Caps

	// GL is the native function table bound to the context.
	GL gl.Functions

	// Runner owns the thread the context is current on.
	Runner Runner

	// CompileLock is held around each shader compile call.
	// It defaults to the process wide [CompileLock].
	CompileLock sync.Locker

	// Logger receives diagnostics. It defaults to [slog.Default].
	Logger *slog.Logger
}

// NewContext returns a new [Context] with the default compile lock and logger.
func NewContext(caps gl.Caps, fns gl.Functions, r Runner) *Context {
	return &Context{
		Caps:        caps,
		GL:          fns,
		Runner:      r,
		CompileLock: CompileLock,
		Logger:      slog.Default(),
	}
}

// Exec runs f on the owning thread and waits for it to finish.
func (c *Context) Exec(f func(c *Context)) {
	c.Runner.RunOnMain(func() { f(c) })
}

// GoExec submits f to the owning thread and returns immediately.
func (c *Context) GoExec(f func(c *Context)) {
	c.Runner.GoRunOnMain(func() { f(c) })
}

// Lock returns the compile lock for this context.
func (c *Context) Lock() sync.Locker {
	if c.CompileLock == nil {
		return CompileLock
	}
	return c.CompileLock
}

// Log returns the logger for this context.
func (c *Context) Log() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// AssertCore panics unless shader objects are available through the core API.
// Reaching it with a context that lacks the capability means a handle was
// created for a different path than the one now being used.
func (c *Context) AssertCore() {
	if !c.Caps.CorePath() {
		panic("system: core shader call on a GL " + c.Caps.Version.String() + " context (need " + gl.MinCoreVersion.String() + ")")
	}
}

// AssertARB panics unless GL_ARB_shader_objects is supported.
func (c *Context) AssertARB() {
	if !c.Caps.ARBPath() {
		panic("system: " + gl.ARBShaderObjects + " call on a context without the extension")
	}
}
