// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mmu

import "io"

// Diagnostics is the UART (or any io.Writer) the hypervisor has wired up by
// the time an invariant check in this package can fail. It is nil until the
// boot sequencer initializes the UART, matching the fact that most
// precondition violations here happen before the MMU (and therefore the
// UART mapping) exists.
var Diagnostics io.Writer

// fatal reports an unrecoverable invariant violation and halts. There is no
// way to recover a misconfigured page table; a fault here means the
// hypervisor's own translation would be unsound.
func fatal(msg string) {
	if Diagnostics != nil {
		io.WriteString(Diagnostics, msg+"\n")
	}
	for {
	}
}
