// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package desktop

import (
	"strings"

	"cogentcore.org/glshader/gl"
	ngl "github.com/go-gl/gl/v2.1/gl"
)

// Functions is the [gl.Functions] table of the current context,
// loaded by go-gl. Both the core and the ARB entry points are
// available from the compatibility bindings.
type Functions struct{}

var _ gl.Functions = Functions{}

// cstrs returns a NUL terminated C string array of one element.
func cstrs(s string) (**uint8, func()) {
	if !strings.HasSuffix(s, "\x00") {
		s += "\x00"
	}
	return ngl.Strs(s)
}

func (Functions) CreateShader(xtype uint32) uint32 {
	return ngl.CreateShader(xtype)
}

func (Functions) ShaderSource(shader uint32, source string) {
	csrc, free := cstrs(source)
	defer free()
	ngl.ShaderSource(shader, 1, csrc, nil)
}

func (Functions) CompileShader(shader uint32) {
	ngl.CompileShader(shader)
}

func (Functions) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	ngl.GetShaderiv(shader, pname, &v)
	return v
}

func (Functions) GetShaderInfoLog(shader uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	ngl.GetShaderInfoLog(shader, int32(len(buf)), &n, &buf[0])
	return n
}

func (Functions) DeleteShader(shader uint32) {
	ngl.DeleteShader(shader)
}

func (Functions) CreateShaderObjectARB(xtype uint32) gl.HandleARB {
	return gl.HandleARB(ngl.CreateShaderObjectARB(xtype))
}

func (Functions) ShaderSourceARB(obj gl.HandleARB, source string) {
	csrc, free := cstrs(source)
	defer free()
	ngl.ShaderSourceARB(uintptr(obj), 1, csrc, nil)
}

func (Functions) CompileShaderARB(obj gl.HandleARB) {
	ngl.CompileShaderARB(uintptr(obj))
}

func (Functions) GetObjectParameterivARB(obj gl.HandleARB, pname uint32) int32 {
	var v int32
	ngl.GetObjectParameterivARB(uintptr(obj), pname, &v)
	return v
}

func (Functions) GetInfoLogARB(obj gl.HandleARB, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	ngl.GetInfoLogARB(uintptr(obj), int32(len(buf)), &n, &buf[0])
	return n
}

func (Functions) DeleteObjectARB(obj gl.HandleARB) {
	ngl.DeleteObjectARB(uintptr(obj))
}

// ReadCaps reads the capabilities of the current context.
// It must be called on the owning thread after [ngl.Init].
func ReadCaps(coreProfile bool) (gl.Caps, error) {
	vs := ngl.GoStr(ngl.GetString(ngl.VERSION))
	v, es, err := gl.ParseVersion(vs)
	if err != nil {
		return gl.Caps{}, err
	}
	caps := gl.Caps{Version: v, ES: es}
	// GL_EXTENSIONS is not a valid glGetString name in core profiles;
	// those are always at or above the core shader version anyway.
	if !coreProfile {
		caps.Extensions = gl.ParseExtensions(ngl.GoStr(ngl.GetString(ngl.EXTENSIONS)))
	}
	return caps, nil
}
