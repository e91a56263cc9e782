// Package led drives LEDs connected to GPIO pins, including the
// board's activity LED.
package led

import (
	"github.com/blinken/rpi/bcm/cpu"
	"github.com/blinken/rpi/bcm/gpio"
)

// LED is a single LED behind a GPIO pin.
type LED struct {
	pin       gpio.Pin
	activeLow bool
}

// ACT returns the green activity LED. Wired to GPIO 47 on the
// Raspberry Pi 1 B+ and driven high to light up.
func ACT() LED {
	return LED{pin: 47}
}

// New returns an LED connected to pin. Set activeLow for LEDs wired
// between the pin and 3V3.
func New(pin gpio.Pin, activeLow bool) LED {
	return LED{pin, activeLow}
}

// Init configures the pin as an output. The LED state afterwards is
// whatever the pin was left at.
func (l LED) Init() {
	l.pin.SetFunc(gpio.Output)
}

func (l LED) On() {
	l.pin.Store(!l.activeLow)
}

func (l LED) Off() {
	l.pin.Store(l.activeLow)
}

func (l LED) Set(on bool) {
	l.pin.Store(on != l.activeLow)
}

// Blink switches the LED on and off n times, busy-waiting for cycles
// after each edge. It leaves the LED off.
func (l LED) Blink(n int, cycles uint32) {
	for i := 0; i < n; i++ {
		l.On()
		cpu.Spin(cycles)
		l.Off()
		cpu.Spin(cycles)
	}
}
