// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"strings"
	"testing"
	"time"

	"cogentcore.org/glshader/driver/offscreen"
	"cogentcore.org/glshader/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShaders(t *testing.T) {
	g := offscreen.NewGL()
	ctx := newContext(t, nil, g)
	shs, err := NewShaders(ctx, map[gl.ShaderTypes]string{
		gl.VertexShader:   vertexSrc,
		gl.FragmentShader: "#version 330 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n",
	})
	require.NoError(t, err)
	require.Len(t, shs, 2)
	assert.Equal(t, gl.VertexShader, shs[gl.VertexShader].Type())
	assert.Equal(t, gl.FragmentShader, shs[gl.FragmentShader].Type())
	assert.Equal(t, 2, g.Live())
	for _, sh := range shs {
		sh.Release()
	}
	assert.Eventually(t, func() bool { return g.Live() == 0 }, 5*time.Second, time.Millisecond)
}

func TestNewShadersFailure(t *testing.T) {
	g := &offscreen.GL{Compile: func(xtype uint32, src string) (bool, string) {
		if strings.Contains(src, "broken") {
			return false, "ERROR: broken"
		}
		return true, ""
	}}
	ctx := newContext(t, nil, g)
	shs, err := NewShaders(ctx, map[gl.ShaderTypes]string{
		gl.VertexShader:   vertexSrc,
		gl.FragmentShader: "broken",
	})
	assert.Nil(t, shs)
	var ce *CompilationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, gl.FragmentShader, ce.Type)
	// the vertex shader that did compile is released again
	assert.Eventually(t, func() bool { return g.Live() == 0 }, 5*time.Second, time.Millisecond)
}
