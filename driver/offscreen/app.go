// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a software GL context that runs without
// any display or GPU, for testing and for checking shader handling
// logic on machines without a usable driver. It implements shader
// objects in memory with a configurable compile outcome.
package offscreen

import (
	"runtime"

	"cogentcore.org/glshader/driver/base"
	"cogentcore.org/glshader/gl"
	"cogentcore.org/glshader/system"
)

// NewContext returns a new software context backed by g, with its own
// owning thread. If g is nil a new [GL] is used. Call [Stop] with the
// context to end its thread when done.
func NewContext(opts *base.Options, g *GL) (*system.Context, error) {
	if opts == nil {
		opts = &base.Options{Version: gl.Version{Major: 3, Minor: 3}}
	}
	if g == nil {
		g = NewGL()
	}
	mq, err := system.StartMainThread(nil)
	if err != nil {
		return nil, err
	}
	ctx := system.NewContext(opts.Caps(), g, mq)
	if opts.Logger != nil {
		ctx.Logger = opts.Logger
	}
	ctx.Log().Debug("offscreen context created", "version", opts.Version, "es", opts.ES, "extensions", ctx.Caps.ExtensionList())
	return ctx, nil
}

// Stop ends the owning thread of a context returned by [NewContext].
// Work already submitted with Exec still runs; pending blocked calls
// on the context are never answered.
func Stop(ctx *system.Context) {
	if mq, ok := ctx.Runner.(*system.MainQueue); ok {
		mq.Stop()
	}
}

// GLOf returns the software GL of a context returned by [NewContext].
func GLOf(ctx *system.Context) *GL {
	g, _ := ctx.GL.(*GL)
	return g
}

// Main runs the owning loop of a new software context on the calling
// goroutine, which should be the main goroutine, and calls f with the
// context on another goroutine. When f returns, the loop stops, runs
// any work f submitted with Exec that is still pending, and Main returns.
func Main(opts *base.Options, f func(ctx *system.Context)) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer func() { base.HandleRecover(recover()) }()
	if opts == nil {
		opts = &base.Options{Version: gl.Version{Major: 3, Minor: 3}}
	}
	mq := system.NewMainQueue()
	ctx := system.NewContext(opts.Caps(), NewGL(), mq)
	if opts.Logger != nil {
		ctx.Logger = opts.Logger
	}
	go func() {
		defer mq.Stop()
		f(ctx)
	}()
	mq.MainLoop()
}
