// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mmu

// PageTableTree is the hypervisor's own stage-1 translation tree: four
// page tables, one per LPAE level, each owned exclusively by this tree.
// It is constructed once in statically reserved storage and its root is
// published to TTBR0_EL2 and never mutated again.
type PageTableTree struct {
	Zeroeth PageTable
	First   PageTable
	Second  PageTable
	Third   PageTable
}

// RootAddr returns the physical address to load into TTBR0_EL2.
func (t *PageTableTree) RootAddr() uint64 {
	return tableAddr(&t.Zeroeth)
}

// Map installs a level-3 block mapping from vaddr to paddr, creating table
// descriptors at levels 0-2 as needed. Calling Map twice with identical
// arguments is idempotent; mapping a vaddr that was previously mapped to a
// different paddr is not supported and is the caller's responsibility to
// avoid.
func (t *PageTableTree) Map(vaddr, paddr uint64) {
	i0 := index(vaddr, idxShift0)
	i1 := index(vaddr, idxShift1)
	i2 := index(vaddr, idxShift2)
	i3 := index(vaddr, idxShift3)

	if t.Zeroeth[i0] == 0 {
		t.Zeroeth[i0] = Stage1Table(tableAddr(&t.First))
	}
	if t.First[i1] == 0 {
		t.First[i1] = Stage1Table(tableAddr(&t.Second))
	}
	if t.Second[i2] == 0 {
		t.Second[i2] = Stage1Table(tableAddr(&t.Third))
	}

	t.Third[i3] = Stage1Block(paddr)
}

// Mapped reports whether vaddr has a level-3 entry installed.
func (t *PageTableTree) Mapped(vaddr uint64) bool {
	i0 := index(vaddr, idxShift0)
	i1 := index(vaddr, idxShift1)
	i2 := index(vaddr, idxShift2)
	i3 := index(vaddr, idxShift3)

	return t.Zeroeth[i0] != 0 && t.First[i1] != 0 && t.Second[i2] != 0 && t.Third[i3] != 0
}

// PageTableTreeStage2 is a guest's stage-2 translation tree. With
// VTCR_EL2.SL0 set to start the walk at level 1, the two-table
// concatenated root IS the level-1 table: its 1024 entries, indexed by
// IPA bits [39:30], hold 1GB block descriptors directly. No deeper level
// is needed for a guest whose physical layout fits in whole 1GB regions.
type PageTableTreeStage2 struct {
	Root PageTableConcat
}

// RootAddr returns the (8KB-aligned) physical address to mask into
// VTTBR_EL2.
func (t *PageTableTreeStage2) RootAddr() uint64 {
	return concatAddr(&t.Root)
}

// Map installs a 1GB block mapping from the guest intermediate physical
// address vaddr to output address paddr.
func (t *PageTableTreeStage2) Map(vaddr, paddr uint64) {
	rootIdx := int((vaddr >> idxShift1) & (2*entriesPerTable - 1))
	t.Root[rootIdx] = Stage2Block(paddr)
}
