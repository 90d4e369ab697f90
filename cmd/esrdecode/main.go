// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Command esrdecode classifies a raw ESR_EL2 value captured from a crash
// log, without requiring a target board. It prints the same Exception
// Class and, for current-EL aborts, Fault Status Code text the
// hypervisor's own trap handler prints at fault time.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/cortexhv/hypervisor/trap"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <esr_el2 hex value>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	esr, err := strconv.ParseUint(flag.Arg(0), 0, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "esrdecode: %v\n", err)
		os.Exit(1)
	}

	ec := trap.EC(esr)
	fmt.Printf("ESR_EL2: 0x%016x\n", esr)
	fmt.Printf("Exception Class: 0x%02x (%s)\n", ec, trap.ECName(ec))

	if trap.IsAbortCurrentEL(ec) {
		fsc := trap.FaultStatus(esr)
		fmt.Printf("Fault Status Code: 0x%02x (%s)\n", fsc, trap.FaultStatusName(fsc))
	}
}
