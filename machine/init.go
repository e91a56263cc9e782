//go:build rpi

package machine

import (
	"unsafe"

	"github.com/blinken/rpi/bcm/miniuart"
)

func init() {
	miniuart.Setup(Baudrate)
}

// The firmware assembles the ATAG list at a fixed address before it
// jumps to the kernel.
const atagsAddr uintptr = 0x100

// HaveAtags reports whether the firmware left an ATAG_CORE tag at the
// conventional address.
var HaveAtags bool = *(*uint32)(unsafe.Pointer(atagsAddr + 4)) == 0x5441_0001
