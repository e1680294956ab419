// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// GL enumerants used by the shader core. Values are from the Khronos registry.
const (
	FALSE = 0
	TRUE  = 1

	VERSION    = 0x1F02
	EXTENSIONS = 0x1F03

	FRAGMENT_SHADER        = 0x8B30
	VERTEX_SHADER          = 0x8B31
	GEOMETRY_SHADER        = 0x8DD9
	TESS_EVALUATION_SHADER = 0x8E87
	TESS_CONTROL_SHADER    = 0x8E88
	COMPUTE_SHADER         = 0x91B9

	COMPILE_STATUS  = 0x8B81
	INFO_LOG_LENGTH = 0x8B84

	OBJECT_COMPILE_STATUS_ARB  = 0x8B81
	OBJECT_INFO_LOG_LENGTH_ARB = 0x8B84
)

// HandleARB is the GLhandleARB object type of the GL_ARB_shader_objects
// extension. It is pointer sized because some platforms define it as one.
type HandleARB uintptr

// NullHandleARB is the invalid GLhandleARB value.
const NullHandleARB HandleARB = 0
