// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package desktop provides a real OpenGL context on desktop platforms,
// created with glfw on a hidden window and loaded with go-gl.
package desktop

import (
	"fmt"
	"runtime"

	"cogentcore.org/glshader/base/errors"
	"cogentcore.org/glshader/driver/base"
	"cogentcore.org/glshader/gl"
	"cogentcore.org/glshader/system"
	ngl "github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// some operating systems require us to be on the main thread
	runtime.LockOSThread()
}

// ErrES is returned when an ES context is requested from the desktop driver.
var ErrES = errors.New("desktop: OpenGL ES contexts are not supported by the desktop driver")

// newWindow creates the hidden window whose context is used for all GL work.
func newWindow(opts *base.Options) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	if opts.Version.Major > 0 {
		glfw.WindowHint(glfw.ContextVersionMajor, opts.Version.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, opts.Version.Minor)
	}
	if opts.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	return glfw.CreateWindow(16, 16, "glshader", nil, nil)
}

// Main creates a context on a hidden window and runs its owning loop on
// the calling goroutine, which must be the main goroutine (the package
// locks it to the main thread at init). It calls f with the context on
// another goroutine, and returns once f has returned, the work f
// submitted with Exec has run, and the window has been destroyed.
func Main(opts *base.Options, f func(ctx *system.Context)) error {
	if opts == nil {
		opts = &base.Options{Version: gl.Version{Major: 3, Minor: 3}}
	}
	if opts.ES {
		return ErrES
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("desktop: failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	win, err := newWindow(opts)
	if err != nil {
		return fmt.Errorf("desktop: failed to create context window: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()

	if err := ngl.Init(); err != nil {
		return fmt.Errorf("desktop: failed to load GL: %w", err)
	}
	caps, err := ReadCaps(opts.CoreProfile)
	if err != nil {
		return err
	}
	if !caps.SupportsShaders() {
		return fmt.Errorf("desktop: GL %v has neither core shaders nor %s", caps.Version, gl.ARBShaderObjects)
	}

	mq := system.NewMainQueue()
	ctx := system.NewContext(caps, Functions{}, mq)
	if opts.Logger != nil {
		ctx.Logger = opts.Logger
	}
	ctx.Log().Info("desktop context created", "version", caps.Version, "core", caps.CorePath(), "renderer", ngl.GoStr(ngl.GetString(ngl.RENDERER)))
	ctx.Log().Debug("desktop context extensions", "extensions", caps.ExtensionList())

	go func() {
		defer mq.Stop()
		f(ctx)
	}()
	mq.MainLoop()
	return nil
}
