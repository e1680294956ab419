// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/glshader/gl"
)

type nested struct {
	Delay time.Duration `default:"250ms"`
}

type testConfig struct {
	Name    string     `default:"glshaderc"`
	Verbose bool       `default:"true"`
	Jobs    int        `default:"4"`
	Scale   float32    `default:"1.5"`
	Version gl.Version `default:"4.1"`
	Exts    []string   `default:"GL_ARB_shader_objects, GL_ARB_compute_shader"`
	Untaged string
	Watch   nested
	unexp   int
}

func TestSetFromDefaultTags(t *testing.T) {
	cfg := &testConfig{Untaged: "keep"}
	require.NoError(t, SetFromDefaultTags(cfg))
	assert.Equal(t, "glshaderc", cfg.Name)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, float32(1.5), cfg.Scale)
	assert.Equal(t, gl.Version{Major: 4, Minor: 1}, cfg.Version)
	assert.Equal(t, []string{"GL_ARB_shader_objects", "GL_ARB_compute_shader"}, cfg.Exts)
	assert.Equal(t, "keep", cfg.Untaged)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Delay)
	assert.Zero(t, cfg.unexp)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	type bad struct {
		Jobs int `default:"many"`
		Ok   int `default:"2"`
	}
	b := &bad{}
	err := SetFromDefaultTags(b)
	assert.ErrorContains(t, err, "field Jobs")
	assert.Equal(t, 2, b.Ok)

	assert.Error(t, SetFromDefaultTags(bad{}))
	assert.NoError(t, SetFromDefaultTags(nil))
}

func TestWalkFields(t *testing.T) {
	var paths []string
	WalkFields(&testConfig{}, func(path string, f reflect.StructField, v reflect.Value) {
		paths = append(paths, path)
	})
	assert.Equal(t, []string{"Name", "Verbose", "Jobs", "Scale", "Version", "Exts", "Untaged", "Watch.Delay"}, paths)
}

func TestNonPointer(t *testing.T) {
	i := 3
	p := &i
	pp := &p
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeOf(pp)))
	assert.Equal(t, 3, NonPointerValue(reflect.ValueOf(pp)).Interface())
	assert.Equal(t, p, PointerValue(reflect.ValueOf(p).Elem()).Interface())
}
