// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides the reflection helpers used to fill
// configuration structs from struct tags and strings.
package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/glshader/base/errors"
)

// WalkFields calls fun for each exported leaf field of the given struct
// pointer, descending into embedded and nested structs that do not
// implement [encoding.TextUnmarshaler]. The field path is dot-separated.
func WalkFields(obj any, fun func(path string, field reflect.StructField, value reflect.Value)) {
	walkFields(NonPointerValue(reflect.ValueOf(obj)), "", fun)
}

func walkFields(val reflect.Value, prefix string, fun func(path string, field reflect.StructField, value reflect.Value)) {
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		path := prefix + f.Name
		if NonPointerType(f.Type).Kind() == reflect.Struct && !isTextUnmarshaler(fv) {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					fv.Set(reflect.New(f.Type.Elem()))
				}
				fv = fv.Elem()
			}
			walkFields(fv, path+".", fun)
			continue
		}
		fun(path, f, fv)
	}
}

func isTextUnmarshaler(v reflect.Value) bool {
	_, ok := PointerValue(v).Interface().(encoding.TextUnmarshaler)
	return ok
}

// SetFromDefaultTags sets the values of fields in the given struct pointer
// based on `default:` struct field tag values. Fields without a tag are
// left unchanged. It returns the joined errors for all fields that could
// not be set.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return fmt.Errorf("SetFromDefaultTags: expected a non-nil struct pointer, not %T", obj)
	}
	var errs []error
	WalkFields(obj, func(path string, f reflect.StructField, fv reflect.Value) {
		def, ok := f.Tag.Lookup("default")
		if !ok {
			return
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaultTags: field %s from %q: %w", path, def, err))
		}
	})
	return errors.Join(errs...)
}

// SetFromString sets the given addressable value from its string
// representation. Values implementing [encoding.TextUnmarshaler] use it;
// string slices are comma separated.
func SetFromString(v reflect.Value, s string) error {
	if u, ok := PointerValue(v).Interface().(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(s))
	}
	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %v", v.Type())
		}
		var parts []string
		if s != "" {
			parts = strings.Split(s, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
		}
		v.Set(reflect.ValueOf(parts).Convert(v.Type()))
	default:
		return fmt.Errorf("unsupported type %v", v.Type())
	}
	return nil
}
