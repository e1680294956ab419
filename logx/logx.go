// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default log level and a colored
// terminal handler for [log/slog].
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through exec to the value of the standard -v and -q flags.
// It defaults to [slog.LevelInfo], except with the debug build tag,
// where it is [slog.LevelDebug], and the release build tag, where it
// is [slog.LevelWarn].
var UserLevel = defaultUserLevel

// SetDefaultLogger sets the default logger to one that writes colored
// output to stderr at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// NewLogger returns a logger writing to w with a [Handler] at [UserLevel].
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(NewHandler(w, &slog.HandlerOptions{Level: &UserLevel}))
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
