//go:build rpi

package machine

import (
	"unsafe"

	"github.com/blinken/rpi/bcm"
	"github.com/blinken/rpi/bcm/cpu"
)

var auxRegs *auxRegisters = (*auxRegisters)(unsafe.Pointer(auxBase))

var auxBase = uintptr(cpu.PhysicalAddress(cpu.AUX))

// Deliberately not shared with bcm/miniuart: this writer must work
// even if the driver was never set up or its state is corrupted.
type auxRegisters struct {
	_       bcm.U32
	enables bcm.U32
	_       [14]bcm.U32
	io      bcm.U32
	_       [4]bcm.U32
	lsr     bcm.U32
}

const (
	auxEnableMiniUART = 1 << 0
	auxTxEmpty        = 1 << 5
)

// Writes to the mini UART, byte by byte and fully polled. Rather slow,
// only intended as a fail safe logger in very early boot and for
// panics.
//
//go:nowritebarrierrec
//go:nosplit
//go:linkname DefaultWrite runtime.defaultWrite
func DefaultWrite(fd int, p []byte) int {
	if auxRegs.enables.Load()&auxEnableMiniUART == 0 {
		// Console was never brought up, drop the output.
		return len(p)
	}

	for _, c := range p {
		if c == '\n' {
			putByte('\r')
		}
		putByte(c)
	}

	return len(p)
}

//go:nosplit
func putByte(c byte) {
	for auxRegs.lsr.Load()&auxTxEmpty == 0 {
		// wait
	}
	auxRegs.io.Store(uint32(c))
}

type defaultWriter int

const DefaultWriter defaultWriter = 0

func (v defaultWriter) Write(p []byte) (int, error) {
	return DefaultWrite(int(v), p), nil
}
