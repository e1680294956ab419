// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ucli "github.com/urfave/cli/v2"

	"cogentcore.org/glshader/gl"
)

type testConfig struct {
	Version gl.Version `default:"3.3" flag:"gl-version" desc:"requested GL version"`
	Watch   bool       `desc:"recompile on change"`
	Jobs    int        `default:"2"`
	Defines []string
	Output  struct {
		Color bool `default:"true"`
	}
	Files []string `flag:"-"`
}

func TestSetFromDefaults(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, gl.Version{Major: 3, Minor: 3}, cfg.Version)
	assert.Equal(t, 2, cfg.Jobs)
	assert.True(t, cfg.Output.Color)
	assert.False(t, cfg.Watch)
}

func runApp(t *testing.T, cfg *testConfig, args ...string) *Binder {
	b := NewBinder(cfg)
	app := &ucli.App{
		Name:  "test",
		Flags: b.Flags(),
		Action: func(c *ucli.Context) error {
			cfg.Files = c.Args().Slice()
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"test"}, args...)))
	return b
}

func TestBinderFlags(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	runApp(t, cfg, "-gl-version", "4.1", "-watch", "-defines", "A,B", "-output-color=false", "a.vert", "b.frag")
	assert.Equal(t, gl.Version{Major: 4, Minor: 1}, cfg.Version)
	assert.True(t, cfg.Watch)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, []string{"A", "B"}, cfg.Defines)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, []string{"a.vert", "b.frag"}, cfg.Files)
}

func TestBinderBadValue(t *testing.T) {
	cfg := &testConfig{}
	b := NewBinder(cfg)
	app := &ucli.App{Name: "test", Flags: b.Flags()}
	assert.Error(t, app.Run([]string{"test", "-jobs", "lots"}))
}

func TestOpenReapply(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "glshaderc.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Version = \"4.6\"\nWatch = true\nJobs = 8\n"), 0o644))

	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	b := NewBinder(cfg)
	app := &ucli.App{
		Name:  "test",
		Flags: b.Flags(),
		Action: func(c *ucli.Context) error {
			if err := Open(cfg, "glshaderc.toml", dir); err != nil {
				return err
			}
			return b.Reapply(c)
		},
	}
	require.NoError(t, app.Run([]string{"test", "-jobs", "1"}))
	assert.Equal(t, gl.Version{Major: 4, Minor: 6}, cfg.Version)
	assert.True(t, cfg.Watch)
	assert.Equal(t, 1, cfg.Jobs)
}

func TestOpenMissing(t *testing.T) {
	assert.Error(t, Open(&testConfig{}, "missing.toml", t.TempDir()))
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.toml")
	cfg := &testConfig{Version: gl.Version{Major: 4, Minor: 1}, Jobs: 3}
	require.NoError(t, Save(cfg, fn))
	got := &testConfig{}
	require.NoError(t, Open(got, fn))
	assert.Equal(t, cfg.Version, got.Version)
	assert.Equal(t, 3, got.Jobs)
}
