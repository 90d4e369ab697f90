// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mmu

import "unsafe"

// entriesPerTable is the number of 64-bit descriptors in one 4KB LPAE
// table (512 entries * 8 bytes = one page).
const entriesPerTable = 512

// PageTable is one 4KB-aligned, 512-entry LPAE table. Its storage is a
// plain array: no heap allocation is involved, since this hypervisor has
// no allocator before (or after) the MMU is enabled.
type PageTable [entriesPerTable]PageTableEntry

// PageTableConcat is a stage-2 root of two concatenated tables, used as
// the level-1 table when VTCR_EL2.SL0 starts the walk at level 1 with a
// wider-than-512-entry root (see PageTableTreeStage2).
type PageTableConcat [2 * entriesPerTable]PageTableEntry

func tableAddr(t *PageTable) uint64 {
	return uint64(uintptr(unsafe.Pointer(t)))
}

func concatAddr(t *PageTableConcat) uint64 {
	return uint64(uintptr(unsafe.Pointer(t)))
}

const (
	idxShift0 = 39
	idxShift1 = 30
	idxShift2 = 21
	idxShift3 = 12
	idxMask   = 0x1ff
)

func index(vaddr uint64, shift uint) int {
	return int((vaddr >> shift) & idxMask)
}
