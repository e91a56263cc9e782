// Package gpio provides access to the general purpose I/O lines of the
// BCM2835.
//
// There is deliberately no validation at this level: storing to a set
// or clear register has no program-visible effect, only the hardware
// observes it. A wrong pin number toggles the wrong physical line
// instead of returning an error.
package gpio

import "github.com/blinken/rpi/bcm/cpu"

// NumPins is the number of GPIO lines of the BCM2835.
const NumPins = 54

// Pin is a single GPIO line, numbered as in the datasheet.
type Pin uint8

// Func selects the function of a pin. Which peripheral is behind an
// alternative function differs per pin, see datasheet chapter 6.2.
type Func uint32

const (
	Input  Func = 0b000
	Output Func = 0b001
	Alt0   Func = 0b100
	Alt1   Func = 0b101
	Alt2   Func = 0b110
	Alt3   Func = 0b111
	Alt4   Func = 0b011
	Alt5   Func = 0b010
)

// Pull configures the internal pull resistor of a pin.
type Pull uint32

const (
	PullOff  Pull = 0
	PullDown Pull = 1
	PullUp   Pull = 2
)

// SetFunc switches the pin's function. All pins reset to Input.
func (p Pin) SetFunc(f Func) {
	r := &regs.fsel[p/10]
	shift := uint32(p) % 10 * 3
	r.Store(r.Load()&^(0b111<<shift) | uint32(f)<<shift)
}

// Set drives the pin high. Has no effect unless the pin is an Output.
func (p Pin) Set() {
	regs.set[p>>5].Store(1 << (p & 31))
}

// Clear drives the pin low. Has no effect unless the pin is an Output.
func (p Pin) Clear() {
	regs.clr[p>>5].Store(1 << (p & 31))
}

// Store drives the pin high or low.
func (p Pin) Store(v bool) {
	if v {
		p.Set()
	} else {
		p.Clear()
	}
}

// Load returns the current level of the pin.
func (p Pin) Load() bool {
	return regs.lev[p>>5].Load()&(1<<(p&31)) != 0
}

// SetPull reconfigures the pin's pull resistor. The control register
// is shared by all pins and needs a fixed setup and hold time, see the
// GPPUD sequence in the datasheet.
func (p Pin) SetPull(pull Pull) {
	regs.pud.Store(pull)
	cpu.Spin(150)
	regs.clk[p>>5].Store(1 << (p & 31))
	cpu.Spin(150)
	regs.pud.Store(PullOff)
	regs.clk[p>>5].Store(0)
}
