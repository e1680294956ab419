// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"cogentcore.org/glshader/base/errors"
	"cogentcore.org/glshader/base/indent"
	"cogentcore.org/glshader/gl"
	"cogentcore.org/glshader/shader"
	"cogentcore.org/glshader/system"
)

// Result is the outcome of compiling one file.
type Result struct {
	File string
	Type gl.ShaderTypes
	Err  error
}

// Stage returns the shader stage of the given file from its extension,
// and whether it is WGSL. WGSL files name the stage with an inner
// extension, as in "sky.frag.wgsl".
func Stage(file string) (gl.ShaderTypes, bool, error) {
	base := filepath.Base(file)
	wgsl := strings.EqualFold(filepath.Ext(base), ".wgsl")
	if wgsl {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	typ := gl.ShaderTypeFromExt(filepath.Ext(base))
	if typ == gl.UnknownShader {
		return typ, wgsl, fmt.Errorf("%s: unknown shader stage for extension %q", file, filepath.Ext(base))
	}
	return typ, wgsl, nil
}

// CompileFile compiles one file on ctx and releases the resulting shader.
func CompileFile(ctx *system.Context, cfg *Config, file string) Result {
	typ, wgsl, err := Stage(file)
	res := Result{File: file, Type: typ, Err: err}
	if err != nil {
		return res
	}
	b, err := os.ReadFile(file)
	if err != nil {
		res.Err = err
		return res
	}
	var sh *shader.Shader
	if wgsl {
		sh, err = shader.NewShaderWGSL(ctx, typ, string(b), cfg.EntryPoint)
	} else {
		sh, err = shader.NewShader(ctx, typ, string(b))
	}
	if err != nil {
		res.Err = err
		return res
	}
	sh.Release()
	return res
}

// CompileFiles compiles the given files concurrently, at most cfg.Jobs
// at a time, returning results in file order.
func CompileFiles(ctx *system.Context, cfg *Config, files []string) []Result {
	res := make([]Result, len(files))
	var g errgroup.Group
	if cfg.Jobs > 0 {
		g.SetLimit(cfg.Jobs)
	}
	for i, fn := range files {
		g.Go(func() error {
			res[i] = CompileFile(ctx, cfg, fn)
			return nil
		})
	}
	g.Wait()
	return res
}

// Report writes the results to w, colored when w is a terminal,
// and returns the number of failures.
func Report(w io.Writer, results []Result) int {
	out := termenv.NewOutput(w)
	failed := 0
	for _, r := range results {
		if r.Err == nil {
			fmt.Fprintf(out, "%s %s (%s)\n", out.String("ok  ").Foreground(out.Color("2")), r.File, r.Type)
			continue
		}
		failed++
		fmt.Fprintf(out, "%s %s\n", out.String("FAIL").Foreground(out.Color("1")).Bold(), r.File)
		fmt.Fprintln(out, indent.Lines(diagnostic(r.Err), indent.Space, 1, 4))
	}
	return failed
}

// diagnostic returns the text reported for a compile error: the driver
// log for compilation failures and the error message otherwise.
func diagnostic(err error) string {
	var ce *shader.CompilationError
	if errors.As(err, &ce) {
		if strings.TrimSpace(ce.Log) == "" {
			return "compilation failed (empty log)"
		}
		return ce.Log
	}
	if errors.Is(err, shader.ErrShaderTypeNotSupported) {
		return "shader stage not supported by this context"
	}
	return err.Error()
}
