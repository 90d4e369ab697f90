// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package trap decodes ESR_EL2 syndromes for the hypervisor's exception
// handler and for offline crash-log triage (see cmd/esrdecode).
package trap

const (
	ecShift = 26
	ecMask  = 0x3f

	ifscMask = 0x3f
)

// Exception Class values, ESR_ELx[31:26]. Names follow the architectural
// abbreviations.
const (
	ecUnknown           = 0x00
	ecWFx               = 0x01
	ecCP15RT            = 0x03
	ecCP15RRT           = 0x04
	ecCP14RT            = 0x05
	ecCP14DT            = 0x06
	ecFPASIMD           = 0x07
	ecCP10ID            = 0x08
	ecPAC               = 0x09
	ecCP14RRT           = 0x0c
	ecBTI               = 0x0d
	ecIllegalState      = 0x0e
	ecSVC32             = 0x11
	ecHVC32             = 0x12
	ecSMC32             = 0x13
	ecSVC64             = 0x15
	ecHVC64             = 0x16
	ecSMC64             = 0x17
	ecSYS64             = 0x18
	ecSVE               = 0x19
	ecERET              = 0x1a
	ecImplDefEL3        = 0x1f
	ecIabtLower         = 0x20
	ecIabtCurrent       = 0x21
	ecPCAlignment       = 0x22
	ecDabtLower         = 0x24
	ecDabtCurrent       = 0x25
	ecSPAlignment       = 0x26
	ecFPExc32           = 0x28
	ecFPExc64           = 0x2c
	ecSError            = 0x2f
	ecBreakpointLower   = 0x30
	ecBreakpointCurrent = 0x31
	ecSoftStepLower     = 0x32
	ecSoftStepCurrent   = 0x33
	ecWatchpointLower   = 0x34
	ecWatchpointCurrent = 0x35
	ecBKPT32            = 0x38
	ecVectorCatch32     = 0x3a
	ecBRK64             = 0x3c
)

var ecNames = map[uint64]string{
	ecUnknown:           "Unknown reason",
	ecWFx:               "Trapped WFI or WFE instruction",
	ecCP15RT:            "Trapped MCR or MRC access (CP15, AArch32)",
	ecCP15RRT:           "Trapped MCRR or MRRC access (CP15, AArch32)",
	ecCP14RT:            "Trapped MCR or MRC access (CP14, AArch32)",
	ecCP14DT:            "Trapped LDC or STC access (CP14, AArch32)",
	ecFPASIMD:           "Access to SVE, Advanced SIMD, or floating-point trapped",
	ecCP10ID:            "Trapped access to CP10 ID registers",
	ecPAC:               "Trapped pointer authentication instruction",
	ecCP14RRT:           "Trapped MRRC access (CP14, AArch32)",
	ecBTI:               "Branch target exception",
	ecIllegalState:      "Illegal execution state",
	ecSVC32:             "SVC instruction execution in AArch32",
	ecHVC32:             "HVC instruction execution in AArch32",
	ecSMC32:             "SMC instruction execution in AArch32",
	ecSVC64:             "SVC instruction execution in AArch64",
	ecHVC64:             "HVC instruction execution in AArch64",
	ecSMC64:             "SMC instruction execution in AArch64",
	ecSYS64:             "Trapped MSR, MRS, or System instruction (AArch64)",
	ecSVE:               "Access to SVE functionality trapped",
	ecERET:              "Trapped ERET, ERETAA, or ERETAB instruction",
	ecImplDefEL3:        "Implementation defined exception to EL3",
	ecIabtLower:         "Instruction Abort from a lower Exception level",
	ecIabtCurrent:       "Instruction Abort taken without a change in Exception level",
	ecPCAlignment:       "PC alignment fault exception",
	ecDabtLower:         "Data Abort from a lower Exception level",
	ecDabtCurrent:       "Data Abort taken without a change in Exception level",
	ecSPAlignment:       "SP alignment fault exception",
	ecFPExc32:           "Trapped floating-point exception (AArch32)",
	ecFPExc64:           "Trapped floating-point exception (AArch64)",
	ecSError:            "SError interrupt",
	ecBreakpointLower:   "Breakpoint exception from a lower Exception level",
	ecBreakpointCurrent: "Breakpoint exception taken without a change in Exception level",
	ecSoftStepLower:     "Software Step exception from a lower Exception level",
	ecSoftStepCurrent:   "Software Step exception taken without a change in Exception level",
	ecWatchpointLower:   "Watchpoint exception from a lower Exception level",
	ecWatchpointCurrent: "Watchpoint exception taken without a change in Exception level",
	ecBKPT32:            "BKPT instruction execution (AArch32)",
	ecVectorCatch32:     "Vector Catch exception (AArch32)",
	ecBRK64:             "BRK instruction execution (AArch64)",
}

// faultStatusNames classifies the low 6 bits of ISS (IFSC for instruction
// aborts, DFSC for data aborts - the encodings are shared) for the two
// classes this hypervisor is expected to actually see at EL2: instruction
// and data aborts taken without a change in exception level.
var faultStatusNames = map[uint64]string{
	0b000000: "Address size fault, level 0",
	0b000001: "Address size fault, level 1",
	0b000010: "Address size fault, level 2",
	0b000011: "Address size fault, level 3",
	0b000100: "Translation fault, level 0",
	0b000101: "Translation fault, level 1",
	0b000110: "Translation fault, level 2",
	0b000111: "Translation fault, level 3",
	0b001001: "Access flag fault, level 1",
	0b001010: "Access flag fault, level 2",
	0b001011: "Access flag fault, level 3",
	0b001101: "Permission fault, level 1",
	0b001110: "Permission fault, level 2",
	0b001111: "Permission fault, level 3",
	0b010000: "Synchronous external abort, not on translation table walk",
	0b010100: "Synchronous external abort on translation table walk, level 0",
	0b010101: "Synchronous external abort on translation table walk, level 1",
	0b010110: "Synchronous external abort on translation table walk, level 2",
	0b010111: "Synchronous external abort on translation table walk, level 3",
	0b011000: "Synchronous parity or ECC error, not on translation table walk",
	0b011100: "Synchronous parity or ECC error on translation table walk, level 0",
	0b011101: "Synchronous parity or ECC error on translation table walk, level 1",
	0b011110: "Synchronous parity or ECC error on translation table walk, level 2",
	0b011111: "Synchronous parity or ECC error on translation table walk, level 3",
	0b110000: "TLB conflict abort",
}

// EC extracts the Exception Class from a raw ESR_ELx value.
func EC(esr uint64) uint64 {
	return (esr >> ecShift) & ecMask
}

// ECName returns the human readable name of an Exception Class, falling
// back to a labeled unknown string for values this module does not
// recognize rather than an empty one.
func ECName(ec uint64) string {
	if name, ok := ecNames[ec]; ok {
		return name
	}
	return "Unknown Exception Class"
}

// FaultStatus extracts the low 6 bits of ISS (IFSC/DFSC) from a raw
// ESR_ELx value.
func FaultStatus(esr uint64) uint64 {
	return esr & ifscMask
}

// FaultStatusName returns the human readable classification of a fault
// status code, or "Other" when the code is not one this hypervisor
// decodes (reserved or implementation-defined codes outside of aborts
// taken without a change in exception level).
func FaultStatusName(code uint64) string {
	if name, ok := faultStatusNames[code]; ok {
		return name
	}
	return "Other"
}

// IsAbortCurrentEL reports whether ec is an instruction or data abort
// taken without a change in exception level - the only abort classes
// whose fault status code this hypervisor further decodes.
func IsAbortCurrentEL(ec uint64) bool {
	return ec == ecIabtCurrent || ec == ecDabtCurrent
}
