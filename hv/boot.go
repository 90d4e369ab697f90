// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package hv implements the hypervisor boot sequencer: the ordered
// register and page-table programming that takes the processor from a
// freshly reset EL2 to a running guest at EL1 under stage-2 translation.
package hv

import (
	"io"

	"github.com/cortexhv/hypervisor/cpu"
	"github.com/cortexhv/hypervisor/mmu"
	"github.com/cortexhv/hypervisor/trap"
	"github.com/cortexhv/hypervisor/uart"
)

const pageSize = 1 << 12
const maxImageSize = 2 << 20 // one stage-1 tree's worth: 512 * 4KB pages

// HCR_EL2 bits.
const (
	hcrVM  = 1 << 0
	hcrAMO = 1 << 5
	hcrFMO = 1 << 4
	hcrIMO = 1 << 3
	hcrRW  = 1 << 31
	hcrE2H = 1 << 34
)

// TCR_EL2 bits (non-VHE layout).
const (
	tcrT0SZShift     = 0
	tcrIRGN0WBWA     = 1 << 8
	tcrORGN0WBWA     = 1 << 10
	tcrSH0InnerShift = 12
	tcrPSShift       = 16
	tcrRES1          = (1 << 23) | (1 << 31)
)

// SCTLR_EL2 bits.
const (
	sctlrM    = 1 << 0
	sctlrC    = 1 << 2
	sctlrSA   = 1 << 3
	sctlrI    = 1 << 12
	sctlrRES1 = (1 << 4) | (1 << 5) | (1 << 11) | (1 << 16) | (1 << 18) | (1 << 22) | (1 << 23) | (1 << 28) | (1 << 29)
)

// VTCR_EL2 fields (4KB granule, concatenated start-level-1 root).
const (
	vtcrT0SZ      = 24           // 40-bit IPA space
	vtcrSL0       = 0b01 << 6    // start level 1: the concatenated root is the level-1 table
	vtcrIRGN0WBWA = 1 << 8
	vtcrORGN0WBWA = 1 << 10
	vtcrSH0Inner  = 0b11 << 12
	vtcrTG0_4K    = 0b00 << 14
	vtcrPSShift   = 16
	vtcrRES1      = 1 << 31
)

// spsrEL1hMaskedDAIF is the saved program state the guest is entered
// with: target EL1h, all DAIF bits masked, AArch64 execution state.
const spsrEL1hMaskedDAIF = 0x1c5

// fortyEightBitMask bounds a 48-bit physical address.
const fortyEightBitMask = (1 << 48) - 1

// panicLoop prints msg (if a UART has been initialized) and halts. Used
// for precondition and invariant violations the boot sequencer itself
// detects, before any exception has occurred.
func panicLoop(w io.Writer, msg string) {
	if w != nil {
		io.WriteString(w, msg+"\n")
	}
	for {
	}
}

// StartHypervisor receives control from the assembly entry stub with the
// hypervisor's own physical image bounds, its virtual-physical offset (0
// if none), and the physical address of the exception vector table. It
// never returns: it either transfers control to the guest via ERET or
// halts on a precondition violation.
func StartHypervisor(start, end, offset, vectorBase uint64) {
	if cpu.CurrentEL() != 2 {
		panicLoop(nil, "hv: must be entered at EL2")
	}

	cpu.MaskAllInterrupts()
	disableHostAtEL2()

	initTCR()
	initSCTLRPreMMU()

	cpu.UseSPEL2()

	installVectors(vectorBase)

	tree := buildBootPageTables(start, end, offset)

	uartVirt := (end + pageSize) &^ (pageSize - 1)
	tree.Map(uartVirt, uartPhysBase)

	cpu.InitMAIR()
	cpu.TLBIAlle2()
	cpu.DSB(cpu.NonShareable)

	cpu.SetTTBR0EL2(tree.RootAddr())
	cpu.ISB()

	cpu.DSB(cpu.FullSystem)
	cpu.SetSCTLREL2(cpu.SCTLREL2() | sctlrM)
	cpu.ISB()

	uart.Default.Init(uartVirt)
	mmu.Diagnostics = &uart.Default
	uart.Default.WriteString("UART mapped\n")

	enableVirtualization()

	loadGuest()

	for {
	}
}

func disableHostAtEL2() {
	cpu.SetHCREL2(cpu.HCREL2() &^ hcrE2H)
}

func initTCR() {
	v := uint64(tcrRES1)
	v |= tcrIRGN0WBWA | tcrORGN0WBWA
	v |= 0b11 << tcrSH0InnerShift
	v |= (cpu.PARange() & 0x7) << tcrPSShift
	v |= uint64(64-48) << tcrT0SZShift

	cpu.SetTCREL2(v)
}

func initSCTLRPreMMU() {
	v := uint64(sctlrRES1)
	v |= sctlrC | sctlrSA | sctlrI

	cpu.SetSCTLREL2(v)
}

func installVectors(vectorBase uint64) {
	if vectorBase&^fortyEightBitMask != 0 {
		panicLoop(nil, "hv: vector base exceeds 48-bit physical address space")
	}

	cpu.SetVBAREL2(vectorBase)
	cpu.ISB()
	cpu.SetVBAREL1(vectorBase)
	cpu.ISB()
}

func alignUp4K(addr uint64) uint64 {
	return (addr + pageSize - 1) &^ (pageSize - 1)
}

func buildBootPageTables(start, end, offset uint64) *mmu.PageTableTree {
	if end-start > maxImageSize {
		panicLoop(nil, "hv: hypervisor image exceeds one boot page table's reach")
	}
	if offset != 0 && offset%(1<<30) != 0 {
		panicLoop(nil, "hv: virtual offset must be a multiple of 1GB")
	}

	tree := &mmu.PageTableTree{}

	for p := start; p < end; p += pageSize {
		tree.Map(p, p)
	}

	if offset != 0 {
		for p := start; p < end; p += pageSize {
			tree.Map(p+offset, p)
		}
	}

	return tree
}

func enableVirtualization() {
	v := cpu.HCREL2()
	v |= hcrVM | hcrIMO | hcrFMO | hcrAMO | hcrRW
	cpu.SetHCREL2(v)
}

const uartPhysBase = 0x09000000
const guestRegion = 0x40000000
const guestEntry = 0x40400000

func loadGuest() {
	stage2 := &mmu.PageTableTreeStage2{}
	stage2.Map(guestRegion, guestRegion)

	initVTCR()

	vttbr := stage2.RootAddr() &^ ((1 << 13) - 1)
	cpu.SetVTTBREL2(vttbr)
	cpu.ISB()

	cpu.SetSCTLREL1(0)
	cpu.MaskIRQ()
	cpu.SetELREL2(guestEntry)
	cpu.SetSPSREL2(spsrEL1hMaskedDAIF)
	cpu.ISB()

	cpu.TLBIAlle2()
	cpu.DSB(cpu.NonShareable)

	cpu.ERET()
}

func initVTCR() {
	v := uint64(vtcrRES1)
	v |= vtcrIRGN0WBWA | vtcrORGN0WBWA
	v |= vtcrSH0Inner
	v |= vtcrTG0_4K
	v |= uint64(vtcrT0SZ)
	v |= vtcrSL0
	v |= (cpu.PARange() & 0x7) << vtcrPSShift

	cpu.SetVTCREL2(v)
}

// ExceptionHandler is this hypervisor's sole synchronous exception entry
// point. The external exception-vector assembly stub reads SPSR_EL2 and
// ELR_EL2 for the trap and calls this function with them.
func ExceptionHandler(spsr, elr uint64) {
	trap.Handle(&uart.Default, spsr, elr)
}
