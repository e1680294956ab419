// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base contains the options and helpers shared by the
// context drivers.
package base

import (
	"log/slog"
	"runtime/debug"

	"cogentcore.org/glshader/gl"
)

// Options are the options for creating a context.
type Options struct {

	// Version is the requested context version. Desktop drivers pass it
	// as a creation hint; the software driver reports it verbatim.
	Version gl.Version `default:"3.3"`

	// CoreProfile requests a core (forward compatible) profile
	// on desktop drivers. It requires Version 3.2 or later.
	CoreProfile bool

	// ES requests an OpenGL ES (restricted) profile.
	ES bool

	// Extensions are additional extensions the software driver reports.
	Extensions []string

	// Logger is the logger for the context; nil uses [slog.Default].
	Logger *slog.Logger
}

// Caps returns the capabilities that a software context created
// with these options reports.
func (o *Options) Caps() gl.Caps {
	exts := make(map[string]bool, len(o.Extensions))
	for _, e := range o.Extensions {
		exts[e] = true
	}
	return gl.Caps{Version: o.Version, ES: o.ES, Extensions: exts}
}

// HandleRecover takes the given value of recover, and, if it is not nil,
// logs a panic message and a stack trace before re-panicking. Owning
// thread loops defer it so that a contract violation inside a submitted
// function is reported with the stack of the owning thread.
//
//	defer func() { base.HandleRecover(recover()) }()
func HandleRecover(r any) {
	if r == nil {
		return
	}
	slog.Error("panic on owning thread", "panic", r, "stack", string(debug.Stack()))
	panic(r)
}
