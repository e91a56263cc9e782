//go:build !rpi

package bcm_test

import (
	"slices"
	"testing"
	"unsafe"

	"github.com/blinken/rpi/bcm"
	rpitesting "github.com/blinken/rpi/testing"
)

func TestMain(m *testing.M) { rpitesting.TestMain(m) }

type flags uint32

type testRegs struct {
	a bcm.U32
	b bcm.U32
	c bcm.R32[flags]
}

const testBase = uintptr(0x0400_0000)

var regs *testRegs = (*testRegs)(unsafe.Pointer(testBase))

func TestRegisterLayout(t *testing.T) {
	if got := regs.a.Addr(); got != testBase {
		t.Errorf("a at %#x, want %#x", got, testBase)
	}
	if got := regs.b.Addr(); got != testBase+4 {
		t.Errorf("b at %#x, want %#x", got, testBase+4)
	}
	if got := regs.c.Addr(); got != testBase+8 {
		t.Errorf("c at %#x, want %#x", got, testBase+8)
	}
}

func TestStoreTrace(t *testing.T) {
	sim := bcm.Sim()
	sim.Reset()

	regs.a.Store(1)
	regs.b.Store(2)
	regs.c.Store(flags(1 << 15))
	regs.a.Store(3)

	want := []bcm.Write{
		{Addr: testBase, Data: 1},
		{Addr: testBase + 4, Data: 2},
		{Addr: testBase + 8, Data: 1 << 15},
		{Addr: testBase, Data: 3},
	}
	if got := sim.Writes(); !slices.Equal(got, want) {
		t.Fatalf("writes %#v, want %#v", got, want)
	}

	if got := regs.a.Load(); got != 3 {
		t.Errorf("a = %d, want 3", got)
	}
	if got := regs.c.Load(); got != 1<<15 {
		t.Errorf("c = %#x, want %#x", got, 1<<15)
	}
}

func TestPoke(t *testing.T) {
	sim := bcm.Sim()
	sim.Reset()

	sim.Poke(regs.b.Addr(), 42)
	if got := regs.b.Load(); got != 42 {
		t.Errorf("b = %d, want 42", got)
	}
	if got := sim.Writes(); len(got) != 0 {
		t.Errorf("poke recorded writes: %#v", got)
	}
}
