// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cpu

// NormalWBWA is the MAIR attribute index this module reserves for Normal,
// inner and outer write-back write-allocate memory. All stage-1 and
// stage-2 block descriptors are built against this single index; the
// hypervisor never needs Device or non-cacheable attributes of its own.
const NormalWBWA = 0

// normalWBWAEncoding is the MAIR_EL2 attribute byte for Normal WBWA memory
// (inner and outer write-back, read/write allocate): 0b1111_1111.
const normalWBWAEncoding = 0xff

// InitMAIR programs MAIR_EL2 so that attribute index NormalWBWA selects
// Normal write-back write-allocate memory. It must run before the MMU is
// enabled.
func InitMAIR() {
	SetMAIREL2(normalWBWAEncoding << (8 * NormalWBWA))
}
