// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"cogentcore.org/glshader/base/errors"
	"cogentcore.org/glshader/gl"
)

// ErrShaderTypeNotSupported is returned when the requested stage cannot
// be created on the context: either the profile does not have the stage
// at all (geometry shaders on ES), or the driver returned a null object.
var ErrShaderTypeNotSupported = errors.New("shader: shader type not supported")

// CompilationError is returned when the shader object was created but
// failed to compile.
type CompilationError struct {

	// Type is the stage that failed.
	Type gl.ShaderTypes

	// Log is the raw info log reported by the driver.
	Log string
}

func (e *CompilationError) Error() string {
	return "shader: " + e.Type.String() + " compilation failed: " + e.Log
}

// TranslationError is returned when WGSL source could not be
// translated to GLSL.
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string {
	return "shader: WGSL translation failed: " + e.Err.Error()
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
