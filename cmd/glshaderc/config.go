// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/glshader/driver/base"
	"cogentcore.org/glshader/gl"
)

// Config is the configuration for glshaderc. It is filled from
// `default:` tags, then the config file, then command line flags.
type Config struct {

	// Version is the requested OpenGL version.
	Version gl.Version `default:"3.3" flag:"gl-version" desc:"requested OpenGL version"`

	// CoreProfile requests a core profile context.
	CoreProfile bool `flag:"core" desc:"request a core profile context"`

	// ES requests an OpenGL ES context.
	ES bool `flag:"es" desc:"request an OpenGL ES context"`

	// Extensions are extra extensions reported by the software context.
	Extensions []string `desc:"extensions reported by the software context (comma separated)"`

	// Offscreen uses the software context instead of a real driver.
	Offscreen bool `desc:"use the software context instead of a real driver"`

	// Watch recompiles files when they change, until interrupted.
	Watch bool `desc:"recompile files when they change"`

	// EntryPoint is the WGSL entry point; empty uses the first one
	// of the file's stage.
	EntryPoint string `flag:"entry" desc:"WGSL entry point (default: first entry point of the file's stage)"`

	// Jobs is the maximum number of files compiled concurrently.
	Jobs int `default:"4" desc:"maximum number of files compiled concurrently"`

	// LogLevel is the level of log messages shown.
	LogLevel slog.Level `default:"WARN" flag:"log-level" desc:"log level (DEBUG, INFO, WARN, ERROR)"`

	// VeryVerbose, Verbose and Quiet override LogLevel with the
	// debug, info and error levels.
	VeryVerbose bool `flag:"vv" toml:"-" desc:"show debug log messages"`
	Verbose     bool `flag:"v" toml:"-" desc:"show info log messages"`
	Quiet       bool `flag:"q" toml:"-" desc:"only show error log messages"`

	// Files are the shader source files, from the command arguments.
	Files []string `flag:"-" toml:"-"`
}

// Options returns the context options for the config.
func (c *Config) Options() *base.Options {
	return &base.Options{
		Version:     c.Version,
		CoreProfile: c.CoreProfile,
		ES:          c.ES,
		Extensions:  c.Extensions,
	}
}
