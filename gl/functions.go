// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Functions is the table of native shader entry points of a context.
// It carries both call conventions: the core API (GL 2.0 and later,
// and all ES 2.0+ contexts) identified by uint32 names, and the
// GL_ARB_shader_objects extension identified by [HandleARB] objects.
// Callers pick one convention per object based on [Caps] and never mix them.
//
// All methods must be called on the owning thread of the context
// the table was loaded from.
type Functions interface {

	// CreateShader is glCreateShader. It returns 0 on failure.
	CreateShader(xtype uint32) uint32

	// ShaderSource is glShaderSource with a single NUL terminated
	// source string and no length array.
	ShaderSource(shader uint32, source string)

	// CompileShader is glCompileShader.
	CompileShader(shader uint32)

	// GetShaderiv is glGetShaderiv for a single integer parameter.
	GetShaderiv(shader uint32, pname uint32) int32

	// GetShaderInfoLog is glGetShaderInfoLog. It fills buf with at most
	// len(buf) bytes of the info log and returns the number of bytes
	// written, excluding the NUL terminator.
	GetShaderInfoLog(shader uint32, buf []byte) int32

	// DeleteShader is glDeleteShader.
	DeleteShader(shader uint32)

	// CreateShaderObjectARB is glCreateShaderObjectARB.
	// It returns [NullHandleARB] on failure.
	CreateShaderObjectARB(xtype uint32) HandleARB

	// ShaderSourceARB is glShaderSourceARB with a single NUL terminated
	// source string and no length array.
	ShaderSourceARB(obj HandleARB, source string)

	// CompileShaderARB is glCompileShaderARB.
	CompileShaderARB(obj HandleARB)

	// GetObjectParameterivARB is glGetObjectParameterivARB for a single
	// integer parameter.
	GetObjectParameterivARB(obj HandleARB, pname uint32) int32

	// GetInfoLogARB is glGetInfoLogARB, with the same buffer
	// semantics as GetShaderInfoLog.
	GetInfoLogARB(obj HandleARB, buf []byte) int32

	// DeleteObjectARB is glDeleteObjectARB.
	DeleteObjectARB(obj HandleARB)
}
