// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package cpu provides the privileged ARMv8-A register and barrier
// primitives the boot sequencer and exception decoder are built from. Every
// function in this file is a thin Go declaration backed by hand-written
// ARM64 assembly, following the same split used throughout this module's
// reference framework for anything that cannot be expressed in portable Go.
package cpu

// Shareability selects the domain a data barrier applies to.
type Shareability int

const (
	NonShareable Shareability = iota
	InnerShareable
	OuterShareable
	FullSystem
)

// defined in cpu_asm.s
func currentEL() uint64
func isb()
func dsbNSH()
func dsbISH()
func dsbOSH()
func dsbSY()
func tlbiAlle2()
func eret()

// CurrentEL returns the current exception level, one of {0,1,2,3}.
func CurrentEL() uint64 {
	return (currentEL() >> 2) & 0x3
}

// ISB issues an instruction synchronization barrier.
func ISB() {
	isb()
}

// DSB issues a data synchronization barrier over the given shareability
// domain.
func DSB(sh Shareability) {
	switch sh {
	case NonShareable:
		dsbNSH()
	case InnerShareable:
		dsbISH()
	case OuterShareable:
		dsbOSH()
	default:
		dsbSY()
	}
}

// TLBIAlle2 invalidates all EL2-owned TLB entries (stage-1, EL2 regime).
func TLBIAlle2() {
	tlbiAlle2()
}

// ERET performs an architectural exception return to ELR_EL2/SPSR_EL2.
// It never returns to its caller.
func ERET() {
	eret()
}
