// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"slices"
	"strings"
)

// ARBShaderObjects is the name of the legacy shader object extension,
// used when the context version is below [MinCoreVersion].
const ARBShaderObjects = "GL_ARB_shader_objects"

// Caps is the capability state of a context, read once at context
// creation and immutable afterwards.
type Caps struct {

	// Version is the context version reported by GL_VERSION.
	Version Version

	// ES is set for OpenGL ES (mobile / embedded) contexts.
	ES bool

	// Extensions is the set of supported extension names.
	Extensions map[string]bool
}

// Has returns whether the named extension is supported.
func (c *Caps) Has(ext string) bool {
	return c.Extensions[ext]
}

// CorePath returns whether shader objects are available through the core API.
func (c *Caps) CorePath() bool {
	return c.Version.AtLeast(MinCoreVersion)
}

// ARBPath returns whether shader objects are available through
// GL_ARB_shader_objects. It is only consulted when [Caps.CorePath] is false.
func (c *Caps) ARBPath() bool {
	return c.Has(ARBShaderObjects)
}

// SupportsShaders returns whether at least one shader path is available.
func (c *Caps) SupportsShaders() bool {
	return c.CorePath() || c.ARBPath()
}

// ExtensionList returns the supported extensions, sorted.
func (c *Caps) ExtensionList() []string {
	exts := make([]string, 0, len(c.Extensions))
	for e, ok := range c.Extensions {
		if ok {
			exts = append(exts, e)
		}
	}
	slices.Sort(exts)
	return exts
}

// ParseExtensions turns a space separated GL_EXTENSIONS string
// into an extension set.
func ParseExtensions(s string) map[string]bool {
	fields := strings.Fields(s)
	exts := make(map[string]bool, len(fields))
	for _, f := range fields {
		exts[f] = true
	}
	return exts
}
