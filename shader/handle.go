// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"

	"cogentcore.org/glshader/gl"
	"cogentcore.org/glshader/system"
)

// HandleKinds are the call conventions a [Handle] can belong to.
type HandleKinds uint8

const (
	// CoreHandleKind is a uint32 shader name from glCreateShader.
	CoreHandleKind HandleKinds = iota

	// ARBHandleKind is a GLhandleARB object from glCreateShaderObjectARB.
	ARBHandleKind
)

func (k HandleKinds) String() string {
	switch k {
	case CoreHandleKind:
		return "Core"
	case ARBHandleKind:
		return "ARB"
	}
	return fmt.Sprintf("HandleKinds(%d)", uint8(k))
}

// Handle identifies a native shader object under exactly one of the two
// call conventions. Handles are comparable: two handles are equal only if
// they have the same kind and the same value. The zero Handle is a null
// core handle.
type Handle struct {
	kind HandleKinds
	id   uint32
	obj  gl.HandleARB
}

// CoreHandle returns a core [Handle] for the given shader name.
func CoreHandle(id uint32) Handle {
	return Handle{kind: CoreHandleKind, id: id}
}

// ARBHandle returns a GL_ARB_shader_objects [Handle] for the given object.
func ARBHandle(obj gl.HandleARB) Handle {
	return Handle{kind: ARBHandleKind, obj: obj}
}

// Kind returns the call convention of the handle.
func (h Handle) Kind() HandleKinds {
	return h.kind
}

// IsNull returns whether the handle is the null value of its kind:
// name 0 for core handles and [gl.NullHandleARB] for ARB handles.
func (h Handle) IsNull() bool {
	switch h.kind {
	case CoreHandleKind:
		return h.id == 0
	case ARBHandleKind:
		return h.obj == gl.NullHandleARB
	}
	panic(badKind(h))
}

// CoreID returns the core shader name, after asserting that h is a core
// handle and that c supports the core path. It panics otherwise.
func (h Handle) CoreID(c *system.Context) uint32 {
	if h.kind != CoreHandleKind {
		panic(fmt.Sprintf("shader: CoreID of %v handle", h.kind))
	}
	c.AssertCore()
	return h.id
}

// ARBObject returns the GLhandleARB object, after asserting that h is an
// ARB handle and that c supports GL_ARB_shader_objects. It panics otherwise.
func (h Handle) ARBObject(c *system.Context) gl.HandleARB {
	if h.kind != ARBHandleKind {
		panic(fmt.Sprintf("shader: ARBObject of %v handle", h.kind))
	}
	c.AssertARB()
	return h.obj
}

func (h Handle) String() string {
	switch h.kind {
	case CoreHandleKind:
		return fmt.Sprintf("Core(%d)", h.id)
	case ARBHandleKind:
		return fmt.Sprintf("ARB(%#x)", uintptr(h.obj))
	}
	return badKind(h)
}

// dispatch calls core or arb with the payload of h, according to its kind,
// asserting the matching capability of c first. Every native call on a
// handle goes through here.
func (h Handle) dispatch(c *system.Context, core func(id uint32), arb func(obj gl.HandleARB)) {
	switch h.kind {
	case CoreHandleKind:
		core(h.CoreID(c))
	case ARBHandleKind:
		arb(h.ARBObject(c))
	default:
		panic(badKind(h))
	}
}

func badKind(h Handle) string {
	return fmt.Sprintf("shader: invalid handle kind %d", uint8(h.kind))
}
