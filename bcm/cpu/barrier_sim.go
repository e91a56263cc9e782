//go:build !rpi

package cpu

import "sync/atomic"

// barrierCalls makes loop iterations observable to tests.
var barrierCalls atomic.Uint64

// Barrier is an opaque call with unknown side effects. Placing it in
// the body of a busy-wait loop keeps the loop from being optimized
// away as dead code.
//
//go:noinline
func Barrier() {
	barrierCalls.Add(1)
}
