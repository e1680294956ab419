// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl describes the OpenGL state that the shader core reads
// from a context: the reported [Version], the restricted (ES) profile
// flag, the extension set, and the native shader entry points for
// both the core and the GL_ARB_shader_objects call conventions.
//
// Nothing in this package issues GL calls itself; a driver supplies
// a [Functions] implementation bound to a live context, and all calls
// through it must happen on that context's owning thread.
package gl
