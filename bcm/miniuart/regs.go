package miniuart

import (
	"unsafe"

	"github.com/blinken/rpi/bcm"
	"github.com/blinken/rpi/bcm/cpu"
)

var regs *registers = (*registers)(unsafe.Pointer(baseAddr))

var baseAddr = uintptr(cpu.PhysicalAddress(cpu.AUX))

type lsrFlags uint32

const (
	rxReady lsrFlags = 1 << 0
	txEmpty lsrFlags = 1 << 5
	txIdle  lsrFlags = 1 << 6
)

// AUX register block. The SPI1/SPI2 registers at 0x80 and 0xc0 are not
// declared, only the mini UART is used.
type registers struct {
	irq     bcm.U32 // 0x00
	enables bcm.U32 // 0x04
	_       [14]bcm.U32
	io      bcm.U32           // 0x40 rx/tx data
	ier     bcm.U32           // 0x44 interrupt enable
	iir     bcm.U32           // 0x48 interrupt identify, fifo clear
	lcr     bcm.U32           // 0x4c line control
	mcr     bcm.U32           // 0x50 modem control
	lsr     bcm.R32[lsrFlags] // 0x54 line status
	msr     bcm.U32           // 0x58 modem status
	scratch bcm.U32           // 0x5c
	cntl    bcm.U32           // 0x60 extra control
	stat    bcm.U32           // 0x64 extra status
	baud    bcm.U32           // 0x68 baudrate counter
}
