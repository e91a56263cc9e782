package cpu

// Spin busy-waits without touching any peripheral. Use it where a
// timer is not available yet, e.g. during early boot or in the GPIO
// pull-up/down sequence.
//
// The loop counts from 1 up to but not including cycles, so Spin(0)
// and Spin(1) both perform zero iterations and Spin(n) performs n-1.
// The delay grows monotonically with cycles but is not calibrated to
// wall-clock time.
//
//go:nosplit
func Spin(cycles uint32) {
	for i := uint32(1); i < cycles; i++ {
		Barrier()
	}
}
