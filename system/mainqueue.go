// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"runtime"
	"sync"
)

// FuncRun is a function to run on the owning thread, with an
// optional channel that is signaled once it has run.
type FuncRun struct {
	F    func()
	Done chan struct{}

	// async is set for functions submitted with GoRunOnMain, which
	// are counted in MainQueue.pending until they have run.
	async bool
}

// MainQueue is a [Runner] backed by a loop that must be running on
// the owning thread: see [MainQueue.MainLoop]. A zero MainQueue has no
// Queue and runs all functions inline on the calling goroutine, which
// is only correct when that goroutine is the owning thread.
type MainQueue struct {

	// Queue receives the functions to run.
	Queue chan FuncRun

	// Stopped is closed when the loop has been asked to stop.
	Stopped chan struct{}

	// Drained is closed once the loop has stopped and run every
	// function submitted with GoRunOnMain before that point.
	Drained chan struct{}

	mu      sync.Mutex
	pending int
}

// NewMainQueue returns a new queue whose loop has not started yet.
func NewMainQueue() *MainQueue {
	return &MainQueue{
		Queue:   make(chan FuncRun),
		Stopped: make(chan struct{}),
		Drained: make(chan struct{}),
	}
}

// RunOnMain runs the given function on the owning thread and waits for it.
func (mq *MainQueue) RunOnMain(f func()) {
	if mq.Queue == nil {
		f()
		return
	}
	done := make(chan struct{})
	mq.Queue <- FuncRun{F: f, Done: done}
	<-done
}

// GoRunOnMain submits the given function to the owning thread and
// returns immediately. Functions submitted this way run in no particular
// order relative to each other. A function submitted before the loop
// stops always runs; one submitted after the loop has drained is dropped.
func (mq *MainQueue) GoRunOnMain(f func()) {
	if mq.Queue == nil {
		f()
		return
	}
	mq.mu.Lock()
	select {
	case <-mq.Drained:
		mq.mu.Unlock()
		return
	default:
	}
	mq.pending++
	mq.mu.Unlock()
	go func() {
		mq.Queue <- FuncRun{F: f, async: true}
	}()
}

// MainLoop runs queued functions until [MainQueue.Stop] is called.
// It must be called on the owning thread (typically the main goroutine
// after [runtime.LockOSThread]), and it does not return until stopped.
// Before returning it runs the functions still pending from
// [MainQueue.GoRunOnMain] and then closes [MainQueue.Drained].
func (mq *MainQueue) MainLoop() {
	for {
		select {
		case <-mq.Stopped:
			mq.drain()
			return
		case f := <-mq.Queue:
			mq.run(f)
		}
	}
}

func (mq *MainQueue) run(f FuncRun) {
	f.F()
	if f.Done != nil {
		f.Done <- struct{}{}
	}
	if f.async {
		mq.mu.Lock()
		mq.pending--
		mq.mu.Unlock()
	}
}

// drain runs queued functions until no GoRunOnMain submission is left.
func (mq *MainQueue) drain() {
	for {
		mq.mu.Lock()
		if mq.pending == 0 {
			close(mq.Drained)
			mq.mu.Unlock()
			return
		}
		mq.mu.Unlock()
		mq.run(<-mq.Queue)
	}
}

// Stop asks the loop to return. Functions already submitted with
// [MainQueue.GoRunOnMain] still run before the loop returns, but a
// [MainQueue.RunOnMain] caller that has not been received stays blocked.
func (mq *MainQueue) Stop() {
	mq.mu.Lock()
	defer mq.mu.Unlock()
	if mq.Stopped == nil {
		return
	}
	select {
	case <-mq.Stopped:
	default:
		close(mq.Stopped)
	}
}

// StartMainThread starts a new goroutine locked to its own OS thread,
// calls init on it, and then runs the queue loop there. It returns the
// result of init after the loop is ready to accept work; if init fails
// the loop is not started.
func StartMainThread(init func() error) (*MainQueue, error) {
	mq := NewMainQueue()
	errc := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if init != nil {
			if err := init(); err != nil {
				errc <- err
				return
			}
		}
		errc <- nil
		mq.MainLoop()
	}()
	if err := <-errc; err != nil {
		return nil, err
	}
	return mq, nil
}
