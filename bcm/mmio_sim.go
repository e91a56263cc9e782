//go:build !rpi

package bcm

import "unsafe"

// T32 constrains the value types usable with [R32].
type T32 interface{ ~uint32 }

// U32 is a 32-bit register cell. On the host it is backed by the
// simulated peripheral bus, see [Sim]. The cell itself is never
// dereferenced, its address is the bus address.
type U32 struct {
	r uint32
}

func (r *U32) Store(v uint32) {
	sim.store(r.Addr(), v)
}

func (r *U32) Load() uint32 {
	return sim.load(r.Addr())
}

func (r *U32) Addr() uintptr {
	return uintptr(unsafe.Pointer(r))
}

// R32 is a [U32] with a typed bit field.
type R32[T T32] struct {
	r T
}

func (r *R32[T]) Store(v T) {
	sim.store(r.Addr(), uint32(v))
}

func (r *R32[T]) Load() T {
	return T(sim.load(r.Addr()))
}

func (r *R32[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(r))
}
