// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package system

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestMainThreadAffinity(t *testing.T) {
	var owner int
	mq, err := StartMainThread(func() error {
		owner = unix.Gettid()
		return nil
	})
	require.NoError(t, err)
	defer mq.Stop()

	var wg sync.WaitGroup
	tids := make([]int, 16)
	for i := range tids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				tids[i] = Call(mq, unix.Gettid)
			} else {
				mq.RunOnMain(func() { tids[i] = unix.Gettid() })
			}
		}()
	}
	wg.Wait()
	for _, tid := range tids {
		assert.Equal(t, owner, tid)
	}
}
