// This file is part of srb2input.
//
// srb2input is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// srb2input is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with srb2input.  If not, see <https://www.gnu.org/licenses/>.

// Package assert checks conditions that can not be expressed in the type
// system. Currently, that a function is being called from the main thread.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GoroutineID returns a number identifying the calling goroutine. The number
// differs between goroutines and is stable for any one goroutine. It should
// only be used for checks and debugging.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

var mainThread atomic.Uint64

// SetMainThread records the calling goroutine as the main thread. It should
// be called at the start of main().
func SetMainThread() {
	mainThread.Store(GoroutineID())
}

// MainThread panics if it is not called from the goroutine recorded by
// SetMainThread(). It does nothing if SetMainThread() has not been called.
func MainThread(what string) {
	id := mainThread.Load()
	if id != 0 && id != GoroutineID() {
		panic(what + " must only be called from the main thread")
	}
}
