// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "\t\t", String(Tab, 2, 4))
	assert.Equal(t, "      ", String(Space, 2, 3))
	assert.Equal(t, "", String(Space, 0, 4))
}

func TestLines(t *testing.T) {
	log := "ERROR: 0:2: x\n\nERROR: 0:3: y\n"
	assert.Equal(t, "    ERROR: 0:2: x\n\n    ERROR: 0:3: y", Lines(log, Space, 1, 4))
	assert.Equal(t, "\tone", Lines("one", Tab, 1, 0))
}
