// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Jobs  int
	Files []string
}

func TestWriteRead(t *testing.T) {
	in := &testStruct{Name: "glshaderc", Jobs: 4, Files: []string{"a.vert", "b.frag"}}
	b, err := WriteBytes(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Name = 'glshaderc'")

	out := &testStruct{}
	require.NoError(t, ReadBytes(out, b))
	assert.Equal(t, in, out)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(a, []byte("Name = 'a'\nJobs = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("Jobs = 2\n"), 0o644))

	v := &testStruct{}
	require.NoError(t, OpenFiles(v, a, b))
	assert.Equal(t, "a", v.Name)
	assert.Equal(t, 2, v.Jobs)

	err := OpenFiles(v, a, filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, Save(&testStruct{Jobs: 9}, fn))
	v := &testStruct{}
	require.NoError(t, Open(v, fn))
	assert.Equal(t, 9, v.Jobs)
}
