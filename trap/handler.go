// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm64

package trap

import (
	"io"

	"github.com/cortexhv/hypervisor/cpu"
	"github.com/cortexhv/hypervisor/internal/bits"
)

// spsrModeNames decodes SPSR_ELx[3:0], the M field.
var spsrModeNames = map[uint64]string{
	0b0000: "EL0t",
	0b0100: "EL1t",
	0b0101: "EL1h",
	0b1000: "EL2t",
	0b1001: "EL2h",
}

// Handle is the hypervisor's synchronous exception handler. It reads the
// syndrome of the most recent trap, prints a diagnostic to w, and spins -
// this is a boot-only hypervisor with no fault recovery.
func Handle(w io.Writer, spsr, elr uint64) {
	esr := cpu.ESREL2()
	ec := EC(esr)

	io.WriteString(w, "hypervisor trap\n")
	io.WriteString(w, "  current EL: "+bits.Hex64(cpu.CurrentEL())+"\n")

	mode := spsr & 0xf
	modeName, ok := spsrModeNames[mode]
	if !ok {
		modeName = "unknown"
	}
	io.WriteString(w, "  SPSR_EL2 mode: "+modeName+"\n")
	io.WriteString(w, "  ELR_EL2: "+bits.Hex64(elr)+"\n")
	io.WriteString(w, "  ESR_EL2: "+bits.Hex64(esr)+"\n")
	io.WriteString(w, "  "+ECName(ec)+"\n")

	if IsAbortCurrentEL(ec) {
		fsc := FaultStatus(esr)
		io.WriteString(w, "  "+FaultStatusName(fsc)+"\n")
	}

	for {
	}
}
