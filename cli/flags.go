// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	ucli "github.com/urfave/cli/v2"

	"cogentcore.org/glshader/base/reflectx"
)

// Binder binds command line flags to the fields of a config struct.
// Flag names come from the `flag:` struct tag, or the lowercased
// field path; `desc:` gives the usage text. Fields tagged `flag:"-"`
// get no flag.
type Binder struct {
	bindings []*binding
}

type binding struct {
	name  string
	info  reflect.StructField
	field reflect.Value
	raw   *fieldValue // nil for bool fields
}

// NewBinder returns a [Binder] for the given struct pointer.
func NewBinder(cfg any) *Binder {
	b := &Binder{}
	reflectx.WalkFields(cfg, func(path string, f reflect.StructField, fv reflect.Value) {
		name, ok := f.Tag.Lookup("flag")
		if name == "-" {
			return
		}
		if !ok || name == "" {
			name = strings.ToLower(strings.ReplaceAll(path, ".", "-"))
		}
		bd := &binding{name: name, info: f, field: fv}
		if fv.Kind() != reflect.Bool {
			bd.raw = &fieldValue{field: fv}
		}
		b.bindings = append(b.bindings, bd)
	})
	return b
}

// Flags returns the flags for all bound fields. Parsing them sets the
// fields directly.
func (b *Binder) Flags() []ucli.Flag {
	flags := make([]ucli.Flag, 0, len(b.bindings))
	for _, bd := range b.bindings {
		usage := bd.info.Tag.Get("desc")
		if bd.raw == nil {
			flags = append(flags, &ucli.BoolFlag{
				Name:        bd.name,
				Usage:       usage,
				Value:       bd.field.Bool(),
				Destination: bd.field.Addr().Interface().(*bool),
			})
			continue
		}
		flags = append(flags, &ucli.GenericFlag{
			Name:  bd.name,
			Usage: usage,
			Value: bd.raw,
		})
	}
	return flags
}

// Reapply sets again the fields of all flags explicitly set in c, so
// that command line values take precedence over values loaded from a
// config file after parsing.
func (b *Binder) Reapply(c *ucli.Context) error {
	for _, bd := range b.bindings {
		if !c.IsSet(bd.name) {
			continue
		}
		if bd.raw == nil {
			bd.field.SetBool(c.Bool(bd.name))
			continue
		}
		if err := reflectx.SetFromString(bd.field, bd.raw.last); err != nil {
			return fmt.Errorf("flag -%s: %w", bd.name, err)
		}
	}
	return nil
}

// fieldValue is a [ucli.Generic] setting a struct field from a string.
type fieldValue struct {
	field reflect.Value
	last  string
}

func (v *fieldValue) Set(s string) error {
	if err := reflectx.SetFromString(v.field, s); err != nil {
		return err
	}
	v.last = s
	return nil
}

func (v *fieldValue) String() string {
	if !v.field.IsValid() {
		return ""
	}
	if m, ok := v.field.Interface().(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		if err == nil {
			return string(b)
		}
	}
	if v.field.Kind() == reflect.Slice {
		parts := make([]string, v.field.Len())
		for i := range parts {
			parts[i] = v.field.Index(i).String()
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v.field.Interface())
}
