// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"sync"
	"testing"

	"cogentcore.org/glshader/gl"
	"github.com/stretchr/testify/assert"
)

func TestNewContextDefaults(t *testing.T) {
	c := NewContext(gl.Caps{Version: gl.Version{Major: 3, Minor: 3}}, nil, &MainQueue{})
	assert.Same(t, CompileLock, c.Lock())
	assert.NotNil(t, c.Log())

	mu := &sync.Mutex{}
	c.CompileLock = mu
	assert.Same(t, mu, c.Lock())

	var zero Context
	assert.Same(t, CompileLock, zero.Lock())
	assert.NotNil(t, zero.Log())
}

func TestContextExec(t *testing.T) {
	c := NewContext(gl.Caps{Version: gl.Version{Major: 3, Minor: 3}}, nil, &MainQueue{})
	var got *Context
	c.Exec(func(c *Context) { got = c })
	assert.Same(t, c, got)
	got = nil
	c.GoExec(func(c *Context) { got = c })
	assert.Same(t, c, got)
}

func TestAssertCaps(t *testing.T) {
	core := NewContext(gl.Caps{Version: gl.Version{Major: 3, Minor: 3}}, nil, nil)
	assert.NotPanics(t, core.AssertCore)
	assert.Panics(t, core.AssertARB)

	arb := NewContext(gl.Caps{Version: gl.Version{Major: 1, Minor: 5}, Extensions: map[string]bool{gl.ARBShaderObjects: true}}, nil, nil)
	assert.Panics(t, arb.AssertCore)
	assert.NotPanics(t, arb.AssertARB)
}
