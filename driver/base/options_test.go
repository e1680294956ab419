// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"testing"

	"cogentcore.org/glshader/gl"
	"github.com/stretchr/testify/assert"
)

func TestOptionsCaps(t *testing.T) {
	o := &Options{Version: gl.Version{Major: 1, Minor: 5}, Extensions: []string{gl.ARBShaderObjects, "GL_ARB_multitexture"}}
	caps := o.Caps()
	assert.Equal(t, gl.Version{Major: 1, Minor: 5}, caps.Version)
	assert.False(t, caps.ES)
	assert.True(t, caps.ARBPath())
	assert.True(t, caps.Has("GL_ARB_multitexture"))

	es := (&Options{Version: gl.Version{Major: 3, Minor: 0}, ES: true}).Caps()
	assert.True(t, es.ES)
	assert.True(t, es.CorePath())
}

func TestHandleRecover(t *testing.T) {
	assert.NotPanics(t, func() { HandleRecover(nil) })
	assert.PanicsWithValue(t, "boom", func() { HandleRecover("boom") })
}
