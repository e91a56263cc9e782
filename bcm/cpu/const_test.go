package cpu

import "testing"

func TestPhysicalAddress(t *testing.T) {
	tests := []struct {
		bus  Addr
		phys Addr
	}{
		{GPIO, 0x2020_0000},
		{AUX, 0x2021_5000},
		{UART, 0x2020_1000},
		{SystemTimer, 0x2000_3000},
		{Mailbox, 0x2000_b880},
	}
	for _, tt := range tests {
		if got := PhysicalAddress(tt.bus); got != tt.phys {
			t.Errorf("PhysicalAddress(%#x) = %#x, want %#x", tt.bus, got, tt.phys)
		}
		if got := BusAddress(tt.phys); got != tt.bus {
			t.Errorf("BusAddress(%#x) = %#x, want %#x", tt.phys, got, tt.bus)
		}
	}
}
