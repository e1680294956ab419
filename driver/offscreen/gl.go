// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/glshader/gl"
)

// CompileFunc decides the outcome of compiling the given source for the
// given GL shader type. It returns whether compilation succeeded and the
// info log text.
type CompileFunc func(xtype uint32, src string) (ok bool, log string)

// DefaultCompile accepts any non-empty source that does not contain an
// #error directive, in which case it reports the directive the way
// glslang does.
func DefaultCompile(xtype uint32, src string) (bool, string) {
	if strings.TrimSpace(src) == "" {
		return false, "ERROR: 0:1: '' : syntax error: empty source\n"
	}
	for i, line := range strings.Split(src, "\n") {
		t := strings.TrimSpace(line)
		if msg, ok := strings.CutPrefix(t, "#error"); ok {
			return false, fmt.Sprintf("ERROR: 0:%d: '#error' : %s\nERROR: 1 compilation errors.  No code generated.\n", i+1, strings.TrimSpace(msg))
		}
	}
	return true, ""
}

type object struct {
	xtype    uint32
	arb      bool
	src      string
	compiled bool
	ok       bool
	log      string
}

// GL is a software implementation of [gl.Functions] that keeps shader
// objects in memory and records every call. It is safe for concurrent
// use, so one GL can back several contexts.
type GL struct {

	// Compile decides compile outcomes. nil uses [DefaultCompile].
	Compile CompileFunc

	// Unsupported are GL shader types for which object creation
	// returns the null object.
	Unsupported map[uint32]bool

	// CompileDelay is how long each compile call takes.
	CompileDelay time.Duration

	// Hook, if set, is called with the name of each GL function
	// before it runs.
	Hook func(name string)

	mu      sync.Mutex
	next    uint32
	objects map[uint32]*object
	calls   map[string]int
	deleted []uint32

	compiling  atomic.Int32
	maxCompile atomic.Int32
}

// NewGL returns a new software GL with default behavior.
func NewGL() *GL {
	return &GL{}
}

var _ gl.Functions = (*GL)(nil)

func (g *GL) record(name string) {
	if g.Hook != nil {
		g.Hook(name)
	}
	g.mu.Lock()
	if g.calls == nil {
		g.calls = map[string]int{}
	}
	g.calls[name]++
	g.mu.Unlock()
}

// Calls returns how many times the named GL function has been called.
func (g *GL) Calls(name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[name]
}

// Deleted returns the names of the deleted objects, in deletion order.
// ARB objects are reported by their handle value.
func (g *GL) Deleted() []uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]uint32(nil), g.deleted...)
}

// Live returns the number of objects that have not been deleted.
func (g *GL) Live() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.objects)
}

// Source returns the source set on the named object.
func (g *GL) Source(id uint32) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if o := g.objects[id]; o != nil {
		return o.src
	}
	return ""
}

// MaxConcurrentCompiles returns the largest number of compile calls
// that were ever running at the same time.
func (g *GL) MaxConcurrentCompiles() int {
	return int(g.maxCompile.Load())
}

func (g *GL) create(xtype uint32, arb bool) uint32 {
	if g.Unsupported[xtype] || xtype == 0 {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.objects == nil {
		g.objects = map[uint32]*object{}
	}
	g.next++
	g.objects[g.next] = &object{xtype: xtype, arb: arb}
	return g.next
}

func (g *GL) object(id uint32, arb bool) *object {
	g.mu.Lock()
	defer g.mu.Unlock()
	o := g.objects[id]
	if o == nil {
		panic(fmt.Sprintf("offscreen: no shader object %d", id))
	}
	if o.arb != arb {
		panic(fmt.Sprintf("offscreen: shader object %d used with the wrong call convention", id))
	}
	return o
}

func (g *GL) setSource(id uint32, arb bool, src string) {
	o := g.object(id, arb)
	g.mu.Lock()
	o.src = src
	g.mu.Unlock()
}

func (g *GL) compile(id uint32, arb bool) {
	o := g.object(id, arb)
	n := g.compiling.Add(1)
	for {
		m := g.maxCompile.Load()
		if n <= m || g.maxCompile.CompareAndSwap(m, n) {
			break
		}
	}
	if g.CompileDelay > 0 {
		time.Sleep(g.CompileDelay)
	}
	cf := g.Compile
	if cf == nil {
		cf = DefaultCompile
	}
	g.mu.Lock()
	src, xtype := o.src, o.xtype
	g.mu.Unlock()
	ok, log := cf(xtype, src)
	g.mu.Lock()
	o.compiled, o.ok, o.log = true, ok, log
	g.mu.Unlock()
	g.compiling.Add(-1)
}

func (g *GL) param(id uint32, arb bool, pname uint32) int32 {
	o := g.object(id, arb)
	g.mu.Lock()
	defer g.mu.Unlock()
	switch pname {
	case gl.COMPILE_STATUS:
		if o.compiled && o.ok {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if o.log == "" {
			return 0
		}
		return int32(len(o.log) + 1)
	}
	panic(fmt.Sprintf("offscreen: unknown shader parameter %#x", pname))
}

// infoLog copies the log the way GL does: at most len(buf)-1 bytes
// followed by a NUL, returning the count without the NUL.
func (g *GL) infoLog(id uint32, arb bool, buf []byte) int32 {
	o := g.object(id, arb)
	if len(buf) == 0 {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	n := copy(buf[:len(buf)-1], o.log)
	buf[n] = 0
	return int32(n)
}

func (g *GL) delete(id uint32, arb bool) {
	g.object(id, arb)
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.objects, id)
	g.deleted = append(g.deleted, id)
}

func (g *GL) CreateShader(xtype uint32) uint32 {
	g.record("CreateShader")
	return g.create(xtype, false)
}

func (g *GL) ShaderSource(shader uint32, source string) {
	g.record("ShaderSource")
	g.setSource(shader, false, source)
}

func (g *GL) CompileShader(shader uint32) {
	g.record("CompileShader")
	g.compile(shader, false)
}

func (g *GL) GetShaderiv(shader uint32, pname uint32) int32 {
	g.record("GetShaderiv")
	return g.param(shader, false, pname)
}

func (g *GL) GetShaderInfoLog(shader uint32, buf []byte) int32 {
	g.record("GetShaderInfoLog")
	return g.infoLog(shader, false, buf)
}

func (g *GL) DeleteShader(shader uint32) {
	g.record("DeleteShader")
	g.delete(shader, false)
}

func (g *GL) CreateShaderObjectARB(xtype uint32) gl.HandleARB {
	g.record("CreateShaderObjectARB")
	return gl.HandleARB(g.create(xtype, true))
}

func (g *GL) ShaderSourceARB(obj gl.HandleARB, source string) {
	g.record("ShaderSourceARB")
	g.setSource(uint32(obj), true, source)
}

func (g *GL) CompileShaderARB(obj gl.HandleARB) {
	g.record("CompileShaderARB")
	g.compile(uint32(obj), true)
}

func (g *GL) GetObjectParameterivARB(obj gl.HandleARB, pname uint32) int32 {
	g.record("GetObjectParameterivARB")
	return g.param(uint32(obj), true, pname)
}

func (g *GL) GetInfoLogARB(obj gl.HandleARB, buf []byte) int32 {
	g.record("GetInfoLogARB")
	return g.infoLog(uint32(obj), true, buf)
}

func (g *GL) DeleteObjectARB(obj gl.HandleARB) {
	g.record("DeleteObjectARB")
	g.delete(uint32(obj), true)
}
