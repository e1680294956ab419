// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glshaderc compiles GLSL and WGSL shader files on an OpenGL
// context and reports the driver diagnostics for each one. The stage
// is taken from the file extension (.vert, .frag, .geom, .comp, .tesc,
// .tese), and WGSL files name it with an inner extension, as in
// sky.frag.wgsl.
//
//	glshaderc [flags] files...
//
// Settings are read from glshaderc.toml in the current directory or
// ~/.config/glshaderc when present, and flags override them.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"cogentcore.org/glshader/base/errors"
	"cogentcore.org/glshader/base/fsx"
	"cogentcore.org/glshader/base/tomlx"
	gcli "cogentcore.org/glshader/cli"
	"cogentcore.org/glshader/driver"
	"cogentcore.org/glshader/driver/offscreen"
	"cogentcore.org/glshader/logx"
	"cogentcore.org/glshader/system"
)

// ConfigFile is the name of the config file looked up on ConfigPaths.
const ConfigFile = "glshaderc.toml"

// ConfigPaths are the directories searched for [ConfigFile], in
// increasing priority.
var ConfigPaths = []string{"~/.config/glshaderc", "."}

var configFlag = &cli.StringFlag{
	Name:  "config",
	Usage: "config file (default " + ConfigFile + " on the config paths)",
}

// errFailed is returned when at least one file failed to compile.
var errFailed = cli.Exit("", 1)

// newApp returns the command line app, filling cfg when it runs.
func newApp(cfg *Config, stdout io.Writer) *cli.App {
	errors.Must(gcli.SetFromDefaults(cfg))
	b := gcli.NewBinder(cfg)
	return &cli.App{
		Name:      "glshaderc",
		Usage:     "compile shader files on an OpenGL context and report diagnostics",
		ArgsUsage: "files...",
		Flags:     append(b.Flags(), configFlag),
		Writer:    stdout,
		Action: func(c *cli.Context) error {
			if err := loadConfig(c, cfg); err != nil {
				return err
			}
			if err := b.Reapply(c); err != nil {
				return err
			}
			cfg.Files = c.Args().Slice()
			if len(cfg.Files) == 0 {
				return cli.Exit("glshaderc: no files given", 2)
			}
			if cfg.VeryVerbose || cfg.Verbose || cfg.Quiet {
				cfg.LogLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
			}
			logx.UserLevel = cfg.LogLevel
			return run(cfg, stdout)
		},
	}
}

// loadConfig opens the config file named by the config flag, or the
// default config file when it exists.
func loadConfig(c *cli.Context, cfg *Config) error {
	if file := c.String(configFlag.Name); file != "" {
		return gcli.Open(cfg, file, ".")
	}
	files := fsx.FindFilesOnPaths(ConfigPaths, ConfigFile)
	if len(files) == 0 {
		return nil
	}
	return tomlx.OpenFiles(cfg, files...)
}

// run compiles the configured files on a new context, then watches
// them if requested.
func run(cfg *Config, w io.Writer) error {
	var err error
	work := func(ctx *system.Context) {
		failed := Report(w, CompileFiles(ctx, cfg, cfg.Files))
		if cfg.Watch {
			wctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			err = Watch(wctx, ctx, cfg, cfg.Files, w)
			return
		}
		if failed > 0 {
			fmt.Fprintf(w, "%d of %d files failed\n", failed, len(cfg.Files))
			err = errFailed
		}
	}
	if cfg.Offscreen {
		offscreen.Main(cfg.Options(), work)
		return err
	}
	if derr := driver.Main(cfg.Options(), work); derr != nil {
		return derr
	}
	return err
}

func main() {
	logx.SetDefaultLogger()
	app := newApp(&Config{}, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
