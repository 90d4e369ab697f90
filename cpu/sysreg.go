// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cpu

// defined in cpu_asm.s
func readTCREL2() uint64
func writeTCREL2(uint64)
func readSCTLREL2() uint64
func writeSCTLREL2(uint64)
func writeSCTLREL1(uint64)
func readTTBR0EL2() uint64
func writeTTBR0EL2(uint64)
func readVTCREL2() uint64
func writeVTCREL2(uint64)
func writeVTTBREL2(uint64)
func readHCREL2() uint64
func writeHCREL2(uint64)
func readMAIREL2() uint64
func writeMAIREL2(uint64)
func readESREL2() uint64
func writeELREL2(uint64)
func writeSPSREL2(uint64)
func writeVBAREL2(uint64)
func writeVBAREL1(uint64)
func readIDAA64MMFR0EL1() uint64
func daifSetAll()
func daifMaskIRQ()
func spSelEL()

// TCREL2 reads TCR_EL2.
func TCREL2() uint64 { return readTCREL2() }

// SetTCREL2 writes TCR_EL2.
func SetTCREL2(v uint64) { writeTCREL2(v) }

// SCTLREL2 reads SCTLR_EL2.
func SCTLREL2() uint64 { return readSCTLREL2() }

// SetSCTLREL2 writes SCTLR_EL2.
func SetSCTLREL2(v uint64) { writeSCTLREL2(v) }

// SetSCTLREL1 writes SCTLR_EL1, used to leave the guest's stage-1 MMU off
// at the moment control is handed to it.
func SetSCTLREL1(v uint64) { writeSCTLREL1(v) }

// TTBR0EL2 reads TTBR0_EL2.
func TTBR0EL2() uint64 { return readTTBR0EL2() }

// SetTTBR0EL2 writes TTBR0_EL2.
func SetTTBR0EL2(v uint64) { writeTTBR0EL2(v) }

// VTCREL2 reads VTCR_EL2.
func VTCREL2() uint64 { return readVTCREL2() }

// SetVTCREL2 writes VTCR_EL2.
func SetVTCREL2(v uint64) { writeVTCREL2(v) }

// SetVTTBREL2 writes VTTBR_EL2.
func SetVTTBREL2(v uint64) { writeVTTBREL2(v) }

// HCREL2 reads HCR_EL2.
func HCREL2() uint64 { return readHCREL2() }

// SetHCREL2 writes HCR_EL2.
func SetHCREL2(v uint64) { writeHCREL2(v) }

// MAIREL2 reads MAIR_EL2.
func MAIREL2() uint64 { return readMAIREL2() }

// SetMAIREL2 writes MAIR_EL2.
func SetMAIREL2(v uint64) { writeMAIREL2(v) }

// ESREL2 reads ESR_EL2, the exception syndrome of the most recent trap.
func ESREL2() uint64 { return readESREL2() }

// SetELREL2 writes ELR_EL2, the exception-return address.
func SetELREL2(v uint64) { writeELREL2(v) }

// SetSPSREL2 writes SPSR_EL2, the exception-return processor state.
func SetSPSREL2(v uint64) { writeSPSREL2(v) }

// SetVBAREL2 installs the EL2 exception vector base. The caller must ensure
// v fits the 48-bit physical address space; callers are expected to check
// this before calling (see hv.StartHypervisor).
func SetVBAREL2(v uint64) { writeVBAREL2(v) }

// SetVBAREL1 installs the EL1 exception vector base (trapped to EL2 for
// this hypervisor, set for completeness and for a guest that later wants
// its own EL1 vectors).
func SetVBAREL1(v uint64) { writeVBAREL1(v) }

// IDAA64MMFR0EL1 reads ID_AA64MMFR0_EL1, used to derive PARange.
func IDAA64MMFR0EL1() uint64 { return readIDAA64MMFR0EL1() }

// PARange returns the CPU's supported physical address range encoding,
// ID_AA64MMFR0_EL1[3:0].
func PARange() uint64 {
	return readIDAA64MMFR0EL1() & 0xf
}

// MaskAllInterrupts sets all four DAIF mask bits (D, A, I, F).
func MaskAllInterrupts() {
	daifSetAll()
}

// MaskIRQ sets only the I bit of DAIF, matching the "IRQs masked at guest
// entry" state this hypervisor hands off to the guest.
func MaskIRQ() {
	daifMaskIRQ()
}

// UseSPEL2 selects SP_ELx as the active stack pointer instead of SP_EL0.
func UseSPEL2() {
	spSelEL()
}
