// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

//go:build debugassert

package datealgo

// assert panics with msg when cond does not hold. Only compiled in with the
// debugassert build tag.
func assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
