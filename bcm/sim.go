//go:build !rpi

package bcm

import "sync"

// Write is a single store observed by the simulated bus.
type Write struct {
	Addr uintptr
	Data uint32
}

// Bus is a process-global model of the peripheral bus for host builds.
// It keeps the last stored value per register and an ordered trace of
// all stores, so tests can assert exact write sequences against the
// documented register map.
type Bus struct {
	mu     sync.Mutex
	mem    map[uintptr]uint32
	writes []Write
}

var sim = &Bus{mem: make(map[uintptr]uint32)}

// Sim returns the simulated peripheral bus.
func Sim() *Bus {
	return sim
}

// Reset clears all register values and the write trace.
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.mem)
	b.writes = b.writes[:0]
}

// Writes returns a copy of the write trace in store order.
func (b *Bus) Writes() []Write {
	b.mu.Lock()
	defer b.mu.Unlock()
	w := make([]Write, len(b.writes))
	copy(w, b.writes)
	return w
}

// Load returns the last value stored to addr, or zero.
func (b *Bus) Load(addr uintptr) uint32 {
	return b.load(addr)
}

// Poke sets a register value without recording a write. Use it to
// emulate hardware-updated registers, e.g. status bits a driver polls.
func (b *Bus) Poke(addr uintptr, v uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mem[addr] = v
}

func (b *Bus) store(addr uintptr, v uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mem[addr] = v
	b.writes = append(b.writes, Write{addr, v})
}

func (b *Bus) load(addr uintptr) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mem[addr]
}
