// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

// Call runs f on the owning thread of r and returns its result to the
// calling goroutine. The function is submitted with [Runner.GoRunOnMain]
// and the result comes back over a single use channel, so exactly one
// value is delivered for each Call and the sending side never holds on
// to the channel after the send.
//
// Call waits without a timeout: if the owning thread never runs f
// (for example because its loop was stopped first), Call never returns.
// Keeping the context alive until all calls are answered is up to the caller.
func Call[T any](r Runner, f func() T) T {
	res := make(chan T, 1)
	r.GoRunOnMain(func() {
		res <- f()
	})
	return <-res
}
