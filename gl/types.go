// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"path/filepath"
	"strconv"
	"strings"
)

// ShaderTypes is a list of GPU shader stages.
type ShaderTypes int32

const (
	UnknownShader ShaderTypes = iota

	// VertexShader runs per vertex.
	VertexShader

	// FragmentShader runs per fragment (pixel).
	FragmentShader

	// GeometryShader runs per primitive. Not available on ES contexts.
	GeometryShader

	// ComputeShader runs general purpose compute work.
	ComputeShader

	// TessCtrlShader is the tessellation control stage.
	TessCtrlShader

	// TessEvalShader is the tessellation evaluation stage.
	TessEvalShader
)

var shaderEnums = map[ShaderTypes]uint32{
	VertexShader:   VERTEX_SHADER,
	FragmentShader: FRAGMENT_SHADER,
	GeometryShader: GEOMETRY_SHADER,
	ComputeShader:  COMPUTE_SHADER,
	TessCtrlShader: TESS_CONTROL_SHADER,
	TessEvalShader: TESS_EVALUATION_SHADER,
}

var shaderNames = map[ShaderTypes]string{
	UnknownShader:  "UnknownShader",
	VertexShader:   "VertexShader",
	FragmentShader: "FragmentShader",
	GeometryShader: "GeometryShader",
	ComputeShader:  "ComputeShader",
	TessCtrlShader: "TessCtrlShader",
	TessEvalShader: "TessEvalShader",
}

// GLEnum returns the GL shader type enumerant for the stage,
// or 0 for [UnknownShader].
func (st ShaderTypes) GLEnum() uint32 {
	return shaderEnums[st]
}

func (st ShaderTypes) String() string {
	if nm, ok := shaderNames[st]; ok {
		return nm
	}
	return "ShaderTypes(" + strconv.Itoa(int(st)) + ")"
}

// ShaderTypeFromExt returns the stage for the conventional GLSL file
// extensions used by glslang (.vert, .frag, .geom, .comp, .tesc, .tese).
// The extension may be given with or without the dot, or as a full path.
func ShaderTypeFromExt(ext string) ShaderTypes {
	if strings.Contains(ext, ".") {
		ext = filepath.Ext(ext)
	}
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "vert", "vs":
		return VertexShader
	case "frag", "fs":
		return FragmentShader
	case "geom", "gs":
		return GeometryShader
	case "comp", "cs":
		return ComputeShader
	case "tesc":
		return TessCtrlShader
	case "tese":
		return TessEvalShader
	}
	return UnknownShader
}
