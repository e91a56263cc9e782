// The bcm package provides a hardware abstraction layer for the BCM2835,
// the SoC of the first generation Raspberry Pi.
//
// It implements low-level access to the memory mapped peripherals. All
// hardware capabilities are directly exposed and in general unsafe. Use
// the higher level libraries to write applications instead.
//
// Peripheral register blocks are declared as structs of register cells
// and mapped at their fixed physical base address. On the rpi target
// the cells are backed by embedded/mmio; on the host they are backed by
// a simulated peripheral bus, so drivers can be tested without the
// hardware.
package bcm

// Broadcom BCM2835 ARM Peripherals
// https://datasheets.raspberrypi.com/bcm2835/bcm2835-peripherals.pdf
