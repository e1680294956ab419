// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startQueue(t *testing.T) *MainQueue {
	mq, err := StartMainThread(nil)
	require.NoError(t, err)
	t.Cleanup(mq.Stop)
	return mq
}

func TestRunOnMainWaits(t *testing.T) {
	mq := startQueue(t)
	ran := false
	mq.RunOnMain(func() { ran = true })
	assert.True(t, ran)
}

func TestRunOnMainOrder(t *testing.T) {
	mq := startQueue(t)
	var got []int
	for i := range 10 {
		mq.RunOnMain(func() { got = append(got, i) })
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestGoRunOnMainDoesNotBlock(t *testing.T) {
	mq := startQueue(t)
	release := make(chan struct{})
	busy := make(chan struct{})
	ran := make(chan struct{})
	// occupy the loop so that nothing else can run
	mq.GoRunOnMain(func() {
		close(busy)
		<-release
	})
	<-busy
	mq.GoRunOnMain(func() { close(ran) })
	select {
	case <-ran:
		t.Fatal("function ran while the loop was busy")
	default:
	}
	close(release)
	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("submitted function never ran")
	}
}

func TestCall(t *testing.T) {
	mq := startQueue(t)
	assert.Equal(t, 42, Call(mq, func() int { return 42 }))

	var wg sync.WaitGroup
	var sum atomic.Int64
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sum.Add(int64(Call(mq, func() int { return i })))
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(50*49/2), sum.Load())
}

func TestCallExactlyOnce(t *testing.T) {
	mq := startQueue(t)
	var n atomic.Int32
	for range 20 {
		Call(mq, func() struct{} {
			n.Add(1)
			return struct{}{}
		})
	}
	assert.Equal(t, int32(20), n.Load())
}

func TestZeroMainQueueInline(t *testing.T) {
	var mq MainQueue
	ran := 0
	mq.RunOnMain(func() { ran++ })
	mq.GoRunOnMain(func() { ran++ })
	assert.Equal(t, 2, ran)
	assert.Equal(t, "x", Call(&mq, func() string { return "x" }))
	assert.NotPanics(t, mq.Stop)
}

func TestStartMainThreadInitError(t *testing.T) {
	mq, err := StartMainThread(func() error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, mq)
}

func TestStopTwice(t *testing.T) {
	mq := startQueue(t)
	mq.Stop()
	assert.NotPanics(t, mq.Stop)
}

func TestStopRunsSubmitted(t *testing.T) {
	mq, err := StartMainThread(nil)
	require.NoError(t, err)
	release := make(chan struct{})
	busy := make(chan struct{})
	mq.GoRunOnMain(func() {
		close(busy)
		<-release
	})
	<-busy
	var n atomic.Int32
	for range 20 {
		mq.GoRunOnMain(func() { n.Add(1) })
	}
	mq.Stop()
	close(release)
	select {
	case <-mq.Drained:
	case <-time.After(5 * time.Second):
		t.Fatal("queue never drained")
	}
	assert.Equal(t, int32(20), n.Load())
}

func TestGoRunOnMainAfterDrain(t *testing.T) {
	mq, err := StartMainThread(nil)
	require.NoError(t, err)
	mq.Stop()
	<-mq.Drained

	before := runtime.NumGoroutine()
	ran := false
	for range 50 {
		mq.GoRunOnMain(func() { ran = true })
	}
	assert.LessOrEqual(t, runtime.NumGoroutine(), before)
	assert.False(t, ran)
}
