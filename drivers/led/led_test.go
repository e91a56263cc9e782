//go:build !rpi

package led_test

import (
	"slices"
	"testing"

	"github.com/blinken/rpi/bcm"
	"github.com/blinken/rpi/drivers/led"
	rpitesting "github.com/blinken/rpi/testing"
)

func TestMain(m *testing.M) { rpitesting.TestMain(m) }

const (
	gpset1 = uintptr(0x2020_0020)
	gpclr1 = uintptr(0x2020_002c)
)

func TestBlink(t *testing.T) {
	sim := bcm.Sim()
	sim.Reset()

	// Two blinks must produce exactly the alternating set/clear
	// sequence on the ACT pin's bank 1 registers. The busy-waits in
	// between must not write to the bus.
	led.ACT().Blink(2, 500000)

	want := []bcm.Write{
		{Addr: gpset1, Data: 1 << 15},
		{Addr: gpclr1, Data: 1 << 15},
		{Addr: gpset1, Data: 1 << 15},
		{Addr: gpclr1, Data: 1 << 15},
	}
	if got := sim.Writes(); !slices.Equal(got, want) {
		t.Fatalf("writes %#v, want %#v", got, want)
	}
}

func TestOnOff(t *testing.T) {
	sim := bcm.Sim()
	sim.Reset()

	act := led.ACT()
	act.On()
	act.Off()

	want := []bcm.Write{
		{Addr: gpset1, Data: 1 << 15},
		{Addr: gpclr1, Data: 1 << 15},
	}
	if got := sim.Writes(); !slices.Equal(got, want) {
		t.Fatalf("writes %#v, want %#v", got, want)
	}
}

func TestActiveLow(t *testing.T) {
	sim := bcm.Sim()
	sim.Reset()

	l := led.New(16, true)
	l.On()
	l.Set(false)

	want := []bcm.Write{
		{Addr: 0x2020_0028, Data: 1 << 16}, // clear drives the pin low, LED on
		{Addr: 0x2020_001c, Data: 1 << 16}, // set drives it high, LED off
	}
	if got := sim.Writes(); !slices.Equal(got, want) {
		t.Fatalf("writes %#v, want %#v", got, want)
	}
}
