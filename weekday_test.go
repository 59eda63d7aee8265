// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package datealgo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRdToWeekday(t *testing.T) {
	require.Equal(t, Thursday, RdToWeekday(0))
	require.Equal(t, Friday, RdToWeekday(DateToRd(2023, 5, 12)))
	require.Equal(t, Sunday, RdToWeekday(DateToRd(2023, 1, 1)))
	require.Equal(t, Wednesday, RdToWeekday(-1))
	require.Equal(t, Saturday, RdToWeekday(DateToRd(2000, 1, 1)))
}

func TestDateToWeekday(t *testing.T) {
	require.Equal(t, Thursday, DateToWeekday(1970, 1, 1))
	require.Equal(t, Friday, DateToWeekday(2023, 5, 12))
	require.Equal(t, Sunday, DateToWeekday(2023, 1, 1))
	require.Equal(t, Monday, DateToWeekday(1970, 1, 5))
	require.Equal(t, Saturday, DateToWeekday(2000, 1, 1))
}

// The two weekday derivations are independent formulas and must agree for
// every valid date.
func TestWeekdayAgreement(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < randIterations; i++ {
		y, m, d := randDate(r)
		direct := DateToWeekday(y, m, d)
		viaRd := RdToWeekday(DateToRd(y, m, d))
		if direct != viaRd {
			t.Fatalf("date %d-%d-%d: DateToWeekday %d, via rata die %d", y, m, d, direct, viaRd)
		}
		if direct < WeekdayMin || direct > WeekdayMax {
			t.Fatalf("date %d-%d-%d: weekday %d out of range", y, m, d, direct)
		}
	}
}

// The truncated-reciprocal multiply only approximates division by 7; the
// approximation error must never flip the extracted top bits anywhere in the
// supported day range. Verified against the true modulus for every single
// day count, not spot-checked.
func TestRdToWeekdayExhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("full-range weekday sweep skipped in short mode")
	}
	for n := int64(RdMin); n <= RdMax; n++ {
		want := uint8((n-RdMin)%7) + 1
		if got := RdToWeekday(int32(n)); got != want {
			t.Fatalf("rd %d: got weekday %d, want %d", n, got, want)
		}
	}
}

// Weekday cycles with period 7 across the epoch and both range endpoints.
func TestWeekdayCycle(t *testing.T) {
	for _, base := range []int32{RdMin, -3, 0, 19489, RdMax - 7} {
		wd := RdToWeekday(base)
		for i := int32(1); i <= 7 && base+i <= RdMax; i++ {
			next := RdToWeekday(base + i)
			want := wd%7 + 1
			require.Equal(t, want, next, "rd %d", base+i)
			wd = next
		}
	}
}
