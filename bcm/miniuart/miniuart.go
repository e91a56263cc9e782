// Package miniuart drives the AUX mini UART, the usual serial console
// of the Raspberry Pi on GPIO 14/15.
//
// The mini UART has no own clock divider and derives its baudrate from
// the VideoCore core clock. All transfers are polled, there is no
// interrupt or DMA support.
package miniuart

import (
	"github.com/blinken/rpi/bcm/cpu"
	"github.com/blinken/rpi/bcm/gpio"
	"github.com/blinken/rpi/debug"
)

const (
	enableMiniUART = 1 << 0

	lcr8Bit = 0b11

	cntlRxEnable = 1 << 0
	cntlTxEnable = 1 << 1

	iirClearFIFOs = 0b11 << 1
)

// Setup enables the mini UART with 8N1 framing at the given baudrate
// and routes it to GPIO 14/15.
func Setup(baudrate uint32) {
	// The baudrate counter is 16 bit wide.
	debug.Assert(baudrate >= uint32(cpu.CoreClockSpeed)/(8*0x1_0000), "baudrate too low")

	gpio.Pin(14).SetFunc(gpio.Alt5)
	gpio.Pin(15).SetFunc(gpio.Alt5)
	gpio.Pin(14).SetPull(gpio.PullOff)
	gpio.Pin(15).SetPull(gpio.PullOff)

	regs.enables.Store(regs.enables.Load() | enableMiniUART)
	regs.ier.Store(0)
	regs.cntl.Store(0)
	regs.lcr.Store(lcr8Bit)
	regs.mcr.Store(0)
	regs.iir.Store(iirClearFIFOs)
	regs.baud.Store(BaudReg(baudrate))
	regs.cntl.Store(cntlRxEnable | cntlTxEnable)
}

// BaudReg returns the value of the baudrate counter register for the
// given baudrate: baudrate = core clock / (8 * (reg + 1)).
func BaudReg(baudrate uint32) uint32 {
	return uint32(cpu.CoreClockSpeed)/(8*baudrate) - 1
}

// WriteByte busy-waits until there is space in the transmit FIFO, then
// queues c.
func WriteByte(c byte) {
	for regs.lsr.Load()&txEmpty == 0 {
	}
	regs.io.Store(uint32(c))
}

// ReadByte busy-waits until the receive FIFO holds a byte and returns
// it.
func ReadByte() byte {
	for regs.lsr.Load()&rxReady == 0 {
	}
	return byte(regs.io.Load())
}

// Flush busy-waits until the transmitter is idle and the FIFO drained.
func Flush() {
	for regs.lsr.Load()&txIdle == 0 {
	}
}

type uart int

// Default implements io.Reader and io.Writer on the mini UART, e.g.
// for mounting a console filesystem.
const Default uart = 0

func (uart) Write(p []byte) (int, error) {
	for _, c := range p {
		if c == '\n' {
			WriteByte('\r')
		}
		WriteByte(c)
	}
	return len(p), nil
}

func (uart) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = ReadByte()
	return 1, nil
}
