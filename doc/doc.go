// https://github.com/cortexhv/hypervisor
//
// Copyright (c) The Hypervisor Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// stub for pkg.go.dev coverage
//go:build !tamago

// Package doc describes the runtime entry points a freestanding build of
// this module must provide for target `GOOS=tamago GOARCH=arm64`.
//
// This package is documentation only: the real hooks live in the
// assembly entry stub outside this module (see the memory-layout
// constants in board/qemu/virt), which calls hv.StartHypervisor with the image bounds,
// virtual offset, and exception vector base it was linked with.
package doc

// Hwinit0 is the pre-World-start hook the assembly entry stub invokes
// before any Go runtime initialization has occurred. At this point there
// is no heap, no goroutine scheduler, and no stack beyond the one the
// stub itself set up; only assembly and allocation-free Go are safe to
// run here.
//
// The entry stub is expected to call hv.StartHypervisor directly from
// this hook rather than falling through to a hosted runtime: this
// hypervisor never returns to a Go "main" in the conventional sense, it
// diverges into the guest or into a fault spin-loop.
func Hwinit0()
