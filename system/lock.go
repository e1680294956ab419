// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "sync"

// CompileLock serializes shader compile calls across the whole process.
// Some drivers are not thread safe in glCompileShader even when the rest
// of their API is, including across separate contexts. Contexts use it
// unless another lock is set on [Context.CompileLock]. It is held only
// around the single compile call.
var CompileLock sync.Locker = &sync.Mutex{}
