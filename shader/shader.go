// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shader creates and destroys GL shader objects on the owning
// thread of a [system.Context], through whichever of the core API or
// GL_ARB_shader_objects the context supports.
package shader

import (
	"runtime"
	"sync"
	"unicode/utf8"

	"cogentcore.org/glshader/gl"
	"cogentcore.org/glshader/system"
)

// Shader is a compiled native shader object owned by a context.
// It must be released with [Shader.Release] when no longer needed;
// a Shader that becomes unreachable without being released is
// released by the garbage collector.
type Shader struct {
	ctx     *system.Context
	typ     gl.ShaderTypes
	handle  Handle
	rel     *releaser
	cleanup runtime.Cleanup
}

// Context returns the context the shader belongs to.
func (sh *Shader) Context() *system.Context {
	return sh.ctx
}

// Type returns the stage of the shader.
func (sh *Shader) Type() gl.ShaderTypes {
	return sh.typ
}

// Handle returns the native object, for attaching to a program.
// It is not valid after [Shader.Release].
func (sh *Shader) Handle() Handle {
	return sh.handle
}

// Release deletes the native object. Deletion is submitted to the owning
// thread without waiting for it to run. Only the first call has any effect.
func (sh *Shader) Release() {
	sh.cleanup.Stop()
	sh.rel.release()
}

// releaser is kept apart from [Shader] so that the garbage collection
// cleanup does not keep the Shader reachable.
type releaser struct {
	once   sync.Once
	ctx    *system.Context
	handle Handle
}

func (r *releaser) release() {
	r.once.Do(func() {
		h := r.handle
		r.ctx.GoExec(func(c *system.Context) {
			deleteHandle(c, h)
		})
	})
}

func newShader(ctx *system.Context, typ gl.ShaderTypes, h Handle) *Shader {
	sh := &Shader{ctx: ctx, typ: typ, handle: h}
	sh.rel = &releaser{ctx: ctx, handle: h}
	sh.cleanup = runtime.AddCleanup(sh, func(r *releaser) { r.release() }, sh.rel)
	return sh
}

// outcome is the result of a creation request, sent back from the owning thread.
type outcome struct {
	handle Handle
	err    error
}

// NewShader creates and compiles a shader of the given stage from GLSL
// source on the owning thread of ctx, and waits for the result. It can be
// called from any goroutine except the owning thread itself.
//
// It returns [ErrShaderTypeNotSupported] if the stage cannot be created
// on ctx, and a [*CompilationError] with the driver info log if the
// source does not compile.
func NewShader(ctx *system.Context, typ gl.ShaderTypes, src string) (*Shader, error) {
	res := system.Call(ctx.Runner, func() outcome {
		return build(ctx, typ, src)
	})
	if res.err != nil {
		ctx.Log().Warn("shader creation failed", "type", typ, "err", res.err)
		return nil, res.err
	}
	ctx.Log().Debug("shader created", "type", typ, "handle", res.handle)
	return newShader(ctx, typ, res.handle), nil
}

// build runs the whole creation sequence on the owning thread.
func build(c *system.Context, typ gl.ShaderTypes, src string) outcome {
	if typ == gl.GeometryShader && c.Caps.ES {
		return outcome{err: ErrShaderTypeNotSupported}
	}

	var h Handle
	switch {
	case c.Caps.CorePath():
		h = CoreHandle(c.GL.CreateShader(typ.GLEnum()))
	case c.Caps.ARBPath():
		h = ARBHandle(c.GL.CreateShaderObjectARB(typ.GLEnum()))
	default:
		panic("shader: context " + c.Caps.Version.String() + " supports neither core shaders nor " + gl.ARBShaderObjects)
	}
	if h.IsNull() {
		return outcome{err: ErrShaderTypeNotSupported}
	}

	h.dispatch(c,
		func(id uint32) { c.GL.ShaderSource(id, src) },
		func(obj gl.HandleARB) { c.GL.ShaderSourceARB(obj, src) })

	compile(c, h)

	var status int32
	h.dispatch(c,
		func(id uint32) { status = c.GL.GetShaderiv(id, gl.COMPILE_STATUS) },
		func(obj gl.HandleARB) { status = c.GL.GetObjectParameterivARB(obj, gl.OBJECT_COMPILE_STATUS_ARB) })
	if status == gl.FALSE {
		log := infoLog(c, h)
		deleteHandle(c, h)
		return outcome{err: &CompilationError{Type: typ, Log: log}}
	}
	return outcome{handle: h}
}

// compile holds the compile lock for the compile call only.
func compile(c *system.Context, h Handle) {
	lk := c.Lock()
	lk.Lock()
	defer lk.Unlock()
	h.dispatch(c,
		func(id uint32) { c.GL.CompileShader(id) },
		func(obj gl.HandleARB) { c.GL.CompileShaderARB(obj) })
}

// infoLog reads the info log of h into a buffer of exactly the
// reported length. The driver must return valid UTF-8.
func infoLog(c *system.Context, h Handle) string {
	var n int32
	h.dispatch(c,
		func(id uint32) { n = c.GL.GetShaderiv(id, gl.INFO_LOG_LENGTH) },
		func(obj gl.HandleARB) { n = c.GL.GetObjectParameterivARB(obj, gl.OBJECT_INFO_LOG_LENGTH_ARB) })
	buf := make([]byte, max(n, 0))
	var written int32
	h.dispatch(c,
		func(id uint32) { written = c.GL.GetShaderInfoLog(id, buf) },
		func(obj gl.HandleARB) { written = c.GL.GetInfoLogARB(obj, buf) })
	buf = buf[:min(max(written, 0), int32(len(buf)))]
	if !utf8.Valid(buf) {
		panic("shader: driver returned an info log that is not valid UTF-8")
	}
	return string(buf)
}

func deleteHandle(c *system.Context, h Handle) {
	h.dispatch(c,
		func(id uint32) { c.GL.DeleteShader(id) },
		func(obj gl.HandleARB) { c.GL.DeleteObjectARB(obj) })
}
