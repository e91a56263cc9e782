package gpio

import (
	"unsafe"

	"github.com/blinken/rpi/bcm"
	"github.com/blinken/rpi/bcm/cpu"
)

var regs *registers = (*registers)(unsafe.Pointer(baseAddr))

var baseAddr = uintptr(cpu.PhysicalAddress(cpu.GPIO))

// Byte offsets follow the BCM2835 datasheet, chapter 6. The 54 lines
// are spread over two banks: bank 0 holds pins 0-31, bank 1 pins
// 32-53.
type registers struct {
	fsel [6]bcm.U32 // 0x00 function select, 3 bits per pin
	_    bcm.U32
	set  [2]bcm.U32 // 0x1c output set, write-only
	_    bcm.U32
	clr  [2]bcm.U32 // 0x28 output clear, write-only
	_    bcm.U32
	lev  [2]bcm.U32 // 0x34 pin level, read-only
	_    bcm.U32
	eds  [2]bcm.U32 // 0x40 event detect status
	_    bcm.U32
	ren  [2]bcm.U32 // 0x4c rising edge detect enable
	_    bcm.U32
	fen  [2]bcm.U32 // 0x58 falling edge detect enable
	_    bcm.U32
	hen  [2]bcm.U32 // 0x64 high level detect enable
	_    bcm.U32
	len  [2]bcm.U32 // 0x70 low level detect enable
	_    bcm.U32
	aren [2]bcm.U32 // 0x7c async rising edge detect enable
	_    bcm.U32
	afen [2]bcm.U32 // 0x88 async falling edge detect enable
	_    bcm.U32
	pud  bcm.R32[Pull] // 0x94 pull-up/down control
	clk  [2]bcm.U32    // 0x98 pull-up/down clock
}
