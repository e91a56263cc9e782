// Package machine is imported by the runtime and allows the target to
// implement some hooks, most importantly rt0.
package machine

// LoadAddr is the fixed address the firmware loads kernel.img at
// before jumping to its first byte. The flat image must therefore
// start with the entry point.
const LoadAddr = 0x8000

// EntrySymbol is the externally visible symbol the linked image is
// entered through. tools/img refuses to build an image whose ELF entry
// point is not exactly this symbol.
const EntrySymbol = "_rt0_arm_noos"

// Baudrate of the boot console on the mini UART.
const Baudrate = 115200
