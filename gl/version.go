// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is a GL API version as a (major, minor) pair.
type Version struct {
	Major int
	Minor int
}

// MinCoreVersion is the lowest context version at which shader objects
// are part of the core API (glCreateShader and friends).
var MinCoreVersion = Version{2, 0}

// AtLeast returns whether v is greater than or equal to o.
func (v Version) AtLeast(o Version) bool {
	return !v.Less(o)
}

// Less returns whether v is strictly lower than o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses a GL_VERSION string as returned by glGetString,
// for example "4.6.0 NVIDIA 535.54.03" or "OpenGL ES 3.2 Mesa 23.0.4".
// It returns the version and whether the string names an OpenGL ES
// (restricted) profile.
func ParseVersion(s string) (Version, bool, error) {
	es := false
	rest := strings.TrimSpace(s)
	if after, ok := strings.CutPrefix(rest, "OpenGL ES"); ok {
		es = true
		rest = strings.TrimSpace(after)
		// "OpenGL ES-CM 1.1" and "OpenGL ES-CL 1.1" profile suffixes
		if strings.HasPrefix(rest, "-") {
			if i := strings.IndexByte(rest, ' '); i >= 0 {
				rest = strings.TrimSpace(rest[i:])
			}
		}
	}
	tok, _, _ := strings.Cut(rest, " ")
	if tok == "" {
		return Version{}, es, fmt.Errorf("gl: empty version string %q", s)
	}
	sv, err := semver.NewVersion(tok)
	if err != nil {
		return Version{}, es, fmt.Errorf("gl: invalid version string %q: %w", s, err)
	}
	return Version{Major: int(sv.Major()), Minor: int(sv.Minor())}, es, nil
}

// MarshalText encodes the version as "major.minor".
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a version written as "major.minor" or any
// GL_VERSION string accepted by [ParseVersion].
func (v *Version) UnmarshalText(text []byte) error {
	pv, _, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}
