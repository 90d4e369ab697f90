// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package uart drives the PL011-compatible primary serial port of the
// QEMU "virt" machine, the hypervisor's only diagnostic output.
package uart

import "github.com/cortexhv/hypervisor/internal/mmio"

// Physical and size constants for the QEMU "virt" machine's primary PL011.
const (
	PhysBase = 0x09000000
	Size     = 0x1000
)

const (
	regData = 0x00 // UARTDR
	regFlag = 0x18 // UARTFR

	flagTXFFBit = 5 // UARTFR.TXFF: transmit FIFO full
)

// UART is a single PL011 instance. The zero value is a no-op writer until
// Init has been called, matching the fact that most of the boot sequence
// runs before any UART mapping exists.
type UART struct {
	virt uint64
}

// Default is the hypervisor's one serial port. Modeled as a single struct
// value rather than scattered package globals so there is one clear owner
// of the process-wide UART state.
var Default UART

// Init records the virtual address the hypervisor mapped the UART's
// register bank to. Before this is called, Write is a silent no-op.
func (u *UART) Init(virt uint64) {
	u.virt = virt
}

// Write implements io.Writer, polling the transmit FIFO before each byte.
func (u *UART) Write(p []byte) (int, error) {
	if u.virt == 0 {
		return len(p), nil
	}

	for _, b := range p {
		mmio.Wait(u.virt+regFlag, flagTXFFBit, 1, 0)
		mmio.Write(u.virt+regData, uint32(b))
	}

	return len(p), nil
}

// WriteString is a convenience wrapper matching the boot sequencer's and
// handler's preference for plain strings over []byte.
func (u *UART) WriteString(s string) {
	u.Write([]byte(s))
}
