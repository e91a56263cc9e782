//go:build rpi

package cpu

// Barrier is an opaque call with unknown side effects. Placing it in
// the body of a busy-wait loop keeps the loop from being optimized
// away as dead code.
//
//go:noinline
//go:nosplit
func Barrier() {}
