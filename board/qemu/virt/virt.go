// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package virt holds the memory layout constants of the QEMU "virt"
// machine this hypervisor targets. A linker script and assembly entry
// stub outside this module are expected to agree with these values.
package virt

const (
	// UARTBase is the physical base address of the primary PL011.
	UARTBase = 0x09000000
	// UARTSize is the MMIO window size reserved for the PL011.
	UARTSize = 0x1000

	// GuestRegion is the physical base of the 1GB region the guest is
	// loaded into and stage-2 identity-maps.
	GuestRegion = 0x40000000
	// GuestEntry is the physical address firmware/QEMU preloads the
	// guest kernel image at.
	GuestEntry = 0x40400000
)
