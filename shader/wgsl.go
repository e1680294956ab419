// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"

	"cogentcore.org/glshader/gl"
	"cogentcore.org/glshader/system"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"
)

// Lowest context versions that WGSL can be translated for: GLSL 330
// on desktop and GLSL 300 es on ES.
var (
	MinWGSLVersion   = gl.Version{Major: 3, Minor: 3}
	MinWGSLESVersion = gl.Version{Major: 3, Minor: 0}
)

// GLSLVersion returns the GLSL version that WGSL is translated to for
// the given capabilities and stage. It returns a [*TranslationError]
// for contexts below [MinWGSLVersion] (or [MinWGSLESVersion] on ES).
func GLSLVersion(caps *gl.Caps, typ gl.ShaderTypes) (glsl.Version, error) {
	if caps.ES {
		if caps.Version.Less(MinWGSLESVersion) {
			return glsl.Version{}, &TranslationError{Err: fmt.Errorf("OpenGL ES %v context is below ES %v", caps.Version, MinWGSLESVersion)}
		}
		if typ == gl.ComputeShader || caps.Version.AtLeast(gl.Version{Major: 3, Minor: 1}) {
			return glsl.VersionES310, nil
		}
		return glsl.VersionES300, nil
	}
	if caps.Version.Less(MinWGSLVersion) {
		return glsl.Version{}, &TranslationError{Err: fmt.Errorf("OpenGL %v context is below %v", caps.Version, MinWGSLVersion)}
	}
	switch {
	case typ == gl.ComputeShader || caps.Version.AtLeast(gl.Version{Major: 4, Minor: 3}):
		return glsl.Version430, nil
	case caps.Version.AtLeast(gl.Version{Major: 4, Minor: 1}):
		return glsl.Version410, nil
	}
	return glsl.Version330, nil
}

var wgslStages = map[gl.ShaderTypes]ir.ShaderStage{
	gl.VertexShader:   ir.StageVertex,
	gl.FragmentShader: ir.StageFragment,
	gl.ComputeShader:  ir.StageCompute,
}

// EntryPoint returns the name of the entry point of module to compile
// for the given stage. If name is empty, it is the first entry point
// of that stage; otherwise the named entry point must exist and be of
// that stage.
func EntryPoint(module *ir.Module, typ gl.ShaderTypes, name string) (string, error) {
	stage, ok := wgslStages[typ]
	if !ok {
		return "", &TranslationError{Err: fmt.Errorf("WGSL has no %v stage", typ)}
	}
	for _, ep := range module.EntryPoints {
		if name != "" && ep.Name != name {
			continue
		}
		if ep.Stage != stage {
			if name != "" {
				return "", &TranslationError{Err: fmt.Errorf("entry point %q is not a %v entry point", name, typ)}
			}
			continue
		}
		return ep.Name, nil
	}
	if name != "" {
		return "", &TranslationError{Err: fmt.Errorf("no entry point %q", name)}
	}
	return "", &TranslationError{Err: fmt.Errorf("no %v entry point", typ)}
}

// TranslateWGSL translates WGSL source to GLSL for the given capabilities.
// Only the entry point selected by [EntryPoint] is emitted, as main.
func TranslateWGSL(caps *gl.Caps, typ gl.ShaderTypes, src, entryPoint string) (string, error) {
	version, err := GLSLVersion(caps, typ)
	if err != nil {
		return "", err
	}
	ast, err := naga.Parse(src)
	if err != nil {
		return "", &TranslationError{Err: err}
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return "", &TranslationError{Err: err}
	}
	entry, err := EntryPoint(module, typ, entryPoint)
	if err != nil {
		return "", err
	}
	opts := glsl.DefaultOptions()
	opts.LangVersion = version
	opts.EntryPoint = entry
	code, _, err := glsl.Compile(module, opts)
	if err != nil {
		return "", &TranslationError{Err: err}
	}
	return code, nil
}

// NewShaderWGSL translates WGSL source to GLSL for ctx and then calls
// [NewShader] with the result. Translation happens on the calling goroutine.
func NewShaderWGSL(ctx *system.Context, typ gl.ShaderTypes, src, entryPoint string) (*Shader, error) {
	code, err := TranslateWGSL(&ctx.Caps, typ, src, entryPoint)
	if err != nil {
		return nil, err
	}
	return NewShader(ctx, typ, code)
}
