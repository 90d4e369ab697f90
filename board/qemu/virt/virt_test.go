package virt

import "testing"

func TestGuestEntryWithinGuestRegion(t *testing.T) {
	const oneGB = 1 << 30
	if GuestEntry < GuestRegion || GuestEntry >= GuestRegion+oneGB {
		t.Errorf("GuestEntry 0x%x is not within the 1GB GuestRegion at 0x%x", GuestEntry, GuestRegion)
	}
}

func TestUARTWindowDoesNotOverlapGuestRegion(t *testing.T) {
	if UARTBase+UARTSize > GuestRegion {
		t.Errorf("UART MMIO window [0x%x, 0x%x) overlaps GuestRegion at 0x%x", UARTBase, UARTBase+UARTSize, GuestRegion)
	}
}
