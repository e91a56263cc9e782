package cpu

// The CPU's clock speed
const ClockSpeed = 700e6

// CoreClockSpeed is the VideoCore clock, which drives the AUX
// peripherals.
const CoreClockSpeed = 250e6

// MMIOBase is the physical base address of the peripheral register
// window as seen by the ARM. BusBase is the same window as seen from
// the VideoCore bus, which is what the datasheet's register addresses
// refer to.
const (
	MMIOBase uintptr = 0x2000_0000
	BusBase  uintptr = 0x7e00_0000
)

// Peripheral block addresses as given in the datasheet, i.e. on the
// VideoCore bus. Translate with [PhysicalAddress] before mapping a
// register struct. Later SoCs move the ARM window but keep the bus
// addresses.
const (
	SystemTimer Addr = 0x7e00_3000
	Interrupt   Addr = 0x7e00_b200
	Mailbox     Addr = 0x7e00_b880
	GPIO        Addr = 0x7e20_0000
	UART        Addr = 0x7e20_1000
	AUX         Addr = 0x7e21_5000
)

// Addr represents a physical memory address
type Addr uint32

// PhysicalAddress returns the physical address of a peripheral bus
// address from the datasheet.
func PhysicalAddress(bus Addr) Addr {
	return bus&0x00ff_ffff | Addr(MMIOBase)
}

// BusAddress is the inverse of [PhysicalAddress].
func BusAddress(phys Addr) Addr {
	return phys&0x00ff_ffff | Addr(BusBase)
}
