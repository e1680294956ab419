// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l.Info("shader created", "type", "VertexShader", "handle", "Core(1)")
	assert.Equal(t, "INFO  shader created type=VertexShader handle=Core(1)\n", buf.String())

	buf.Reset()
	l.With("ctx", 2).WithGroup("gl").Warn("slow", "ms", 12, slog.Group("v", "major", 3))
	assert.Equal(t, "WARN  slow ctx=2 gl.ms=12 gl.v.major=3\n", buf.String())

	buf.Reset()
	l.Debug("log", "text", "ERROR: bad thing")
	assert.Equal(t, "DEBUG log text=\"ERROR: bad thing\"\n", buf.String())
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	l.Info("hidden")
	assert.Empty(t, buf.String())
	l.Error("shown")
	assert.Equal(t, "ERROR shown\n", buf.String())
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, "1", LevelColor(slog.LevelError))
	assert.Equal(t, "3", LevelColor(slog.LevelWarn))
	assert.Equal(t, "2", LevelColor(slog.LevelInfo))
	assert.Equal(t, "4", LevelColor(slog.LevelDebug))
}
