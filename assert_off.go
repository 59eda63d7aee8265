// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

//go:build !debugassert

package datealgo

// assert compiles to a no-op without the debugassert build tag, so normal
// builds carry no range checks in the conversion paths.
func assert(bool, string) {}
