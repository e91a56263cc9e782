//go:build !rpi

package gpio_test

import (
	"slices"
	"testing"

	"github.com/blinken/rpi/bcm"
	"github.com/blinken/rpi/bcm/gpio"
	rpitesting "github.com/blinken/rpi/testing"
)

func TestMain(m *testing.M) { rpitesting.TestMain(m) }

const base = uintptr(0x2020_0000)

func TestSetClear(t *testing.T) {
	sim := bcm.Sim()

	for _, tc := range []struct {
		pin  gpio.Pin
		set  uintptr
		clr  uintptr
		data uint32
	}{
		{47, base + 0x20, base + 0x2c, 1 << 15}, // ACT led, bank 1
		{16, base + 0x1c, base + 0x28, 1 << 16}, // bank 0
		{32, base + 0x20, base + 0x2c, 1 << 0},  // first pin of bank 1
	} {
		sim.Reset()
		tc.pin.Set()
		tc.pin.Clear()

		want := []bcm.Write{
			{Addr: tc.set, Data: tc.data},
			{Addr: tc.clr, Data: tc.data},
		}
		if got := sim.Writes(); !slices.Equal(got, want) {
			t.Errorf("pin %d: writes %#v, want %#v", tc.pin, got, want)
		}
	}
}

func TestSetFunc(t *testing.T) {
	sim := bcm.Sim()
	sim.Reset()

	gpio.Pin(47).SetFunc(gpio.Output)

	fsel4 := base + 0x10
	want := []bcm.Write{{Addr: fsel4, Data: 1 << 21}}
	if got := sim.Writes(); !slices.Equal(got, want) {
		t.Fatalf("writes %#v, want %#v", got, want)
	}

	// Read-modify-write must preserve the other pins' functions.
	gpio.Pin(44).SetFunc(gpio.Alt0)
	if got, want := sim.Load(fsel4), uint32(1<<21|0b100<<12); got != want {
		t.Errorf("fsel4 = %#x, want %#x", got, want)
	}
}

func TestLoad(t *testing.T) {
	sim := bcm.Sim()
	sim.Reset()

	if gpio.Pin(47).Load() {
		t.Error("pin 47 high, want low")
	}
	sim.Poke(base+0x38, 1<<15)
	if !gpio.Pin(47).Load() {
		t.Error("pin 47 low, want high")
	}
}

func TestSetPull(t *testing.T) {
	sim := bcm.Sim()
	sim.Reset()

	gpio.Pin(47).SetPull(gpio.PullUp)

	// The busy-waits between the control writes must not touch the
	// bus.
	want := []bcm.Write{
		{Addr: base + 0x94, Data: uint32(gpio.PullUp)},
		{Addr: base + 0x9c, Data: 1 << 15},
		{Addr: base + 0x94, Data: uint32(gpio.PullOff)},
		{Addr: base + 0x9c, Data: 0},
	}
	if got := sim.Writes(); !slices.Equal(got, want) {
		t.Errorf("writes %#v, want %#v", got, want)
	}
}
