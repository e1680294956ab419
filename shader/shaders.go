// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"sync"

	"cogentcore.org/glshader/gl"
	"cogentcore.org/glshader/system"
	"golang.org/x/sync/errgroup"
)

// NewShaders creates one shader per stage in srcs, submitting all of
// them at once. If any stage fails, the shaders that were created are
// released and the first error is returned.
func NewShaders(ctx *system.Context, srcs map[gl.ShaderTypes]string) (map[gl.ShaderTypes]*Shader, error) {
	var mu sync.Mutex
	shs := make(map[gl.ShaderTypes]*Shader, len(srcs))
	var g errgroup.Group
	for typ, src := range srcs {
		g.Go(func() error {
			sh, err := NewShader(ctx, typ, src)
			if err != nil {
				return err
			}
			mu.Lock()
			shs[typ] = sh
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, sh := range shs {
			sh.Release()
		}
		return nil, err
	}
	return shs, nil
}
