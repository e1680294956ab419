// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"testing"

	"cogentcore.org/glshader/driver/base"
	"cogentcore.org/glshader/gl"
	"cogentcore.org/glshader/shader"
	"cogentcore.org/glshader/system"
	"github.com/stretchr/testify/assert"
)

func TestMainCreatesShader(t *testing.T) {
	var err error
	var h shader.Handle
	assert.NoError(t, Main(&base.Options{Version: gl.Version{Major: 3, Minor: 3}}, func(ctx *system.Context) {
		var sh *shader.Shader
		sh, err = shader.NewShader(ctx, gl.VertexShader, "void main() {}")
		if err == nil {
			h = sh.Handle()
			sh.Release()
		}
	}))
	assert.NoError(t, err)
	assert.Equal(t, shader.CoreHandleKind, h.Kind())
	assert.False(t, h.IsNull())
}
