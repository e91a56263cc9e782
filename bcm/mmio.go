//go:build rpi

package bcm

import "embedded/mmio"

// T32 constrains the value types usable with [R32].
type T32 = mmio.T32

// Use for MMIO on the BCM2835 peripheral bus (0x2000_0000 to
// 0x20ff_ffff physical). Accesses are volatile: they reach the bus in
// program order and are never elided or cached by the compiler.
//
// Note that the VideoCore bus does not guarantee ordering of accesses
// to *different* peripherals. Issue a dummy read from the old
// peripheral before switching to a new one.
type U32 struct {
	r mmio.U32
}

func (r *U32) Store(v uint32) {
	r.r.Store(v)
}

func (r *U32) Load() uint32 {
	return r.r.Load()
}

func (r *U32) Addr() uintptr {
	return r.r.Addr()
}

// R32 is a [U32] with a typed bit field.
type R32[T T32] struct {
	r mmio.R32[T]
}

func (r *R32[T]) Store(v T) {
	r.r.Store(v)
}

func (r *R32[T]) Load() T {
	return r.r.Load()
}

func (r *R32[T]) Addr() uintptr {
	return r.r.Addr()
}
