// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package mmu builds the ARMv8 VMSA LPAE page-table descriptors and trees
// this hypervisor uses for its own stage-1 translation and for the guest's
// stage-2 translation.
package mmu

import "github.com/cortexhv/hypervisor/internal/bits"

// maxOutputAddress is the largest output address a Cortex-A53 descriptor
// can encode, bounded by its 40-bit physical address range.
const maxOutputAddress = 1 << 40

const (
	pteValid = 1 // bit 0
	pteTable = 2 // bit 1, set for table/page descriptors

	// stage-1 block descriptor fields (level 3, 4KB page)
	s1AttrIndxShift = 2 // bits [4:2], attribute index into MAIR
	s1NS            = 1 << 5
	s1APShift       = 6 // bits [7:6]
	s1APRWEL2Only   = 0b00
	s1SHShift       = 8 // bits [9:8]
	s1SHInner       = 0b11
	s1AF            = 1 << 10
	s1NG            = 1 << 11

	// stage-1 table descriptor fields
	s1TableNS = 1 << 63

	// stage-2 descriptor fields
	s2AF       = 1 << 10
	s2SHShift  = 8
	s2SHNormal = 0b10
	s2APShift  = 6
	s2APRW     = 0b11
	s2NS       = 1 << 5
)

var tableRes0 = bits.Bitfield(51, 48) | bits.Bitfield(62, 61)

// PageTableEntry is an opaque 64-bit LPAE descriptor.
type PageTableEntry uint64

// ValidOutputAddress reports whether addr is a legal 4KB-aligned output
// address within the Cortex-A53's 40-bit physical address range. It is
// exposed separately from the fatal-on-violation constructors below so it
// can be exercised without triggering the unrecoverable halt.
func ValidOutputAddress(addr uint64) bool {
	return addr < maxOutputAddress && addr&0xfff == 0
}

func checkOutputAddress(addr uint64) {
	if addr >= maxOutputAddress {
		fatal("mmu: output address exceeds Cortex-A53 PARange")
	}
	if addr&0xfff != 0 {
		fatal("mmu: output address not 4KB aligned")
	}
}

// Stage1Table builds a stage-1 table descriptor pointing at the next-level
// table located at tableAddr (a physical address of a PageTable belonging
// to the same tree).
func Stage1Table(tableAddr uint64) PageTableEntry {
	checkOutputAddress(tableAddr)

	d := uint64(tableAddr&bits.Bitfield(47, 12)) | s1TableNS | pteTable | pteValid

	if d&tableRes0 != 0 {
		fatal("mmu: stage-1 table descriptor sets a RES0 bit")
	}

	return PageTableEntry(d)
}

// Stage1Block builds a stage-1 level-3 block (page) descriptor mapping a
// single 4KB page at the given physical address, using attribute index
// NormalWBWA, EL2-only read/write access, and inner shareability.
func Stage1Block(addr uint64) PageTableEntry {
	checkOutputAddress(addr)

	d := addr & bits.Bitfield(47, 12)
	d |= pteTable | pteValid
	d |= 0 << s1AttrIndxShift // attribute index 0, NormalWBWA
	d |= s1NS
	d |= uint64(s1APRWEL2Only) << s1APShift
	d |= uint64(s1SHInner) << s1SHShift
	d |= s1AF
	// nG left clear: no ASIDs in use.

	return PageTableEntry(d)
}

// Stage2Block builds a stage-2 block descriptor mapping a 1GB region at
// addr, aligned down to the 1GB granule.
func Stage2Block(addr uint64) PageTableEntry {
	aligned := addr &^ (oneGB - 1)
	checkOutputAddress(aligned)

	d := aligned & bits.Bitfield(47, 30)
	d |= pteValid // bit 1 (table) left clear: this is a block
	d |= s2AF
	d |= uint64(s2APRW) << s2APShift
	d |= uint64(s2SHNormal) << s2SHShift
	d |= s2NS

	return PageTableEntry(d)
}

const oneGB = 1 << 30
