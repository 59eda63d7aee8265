// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package datealgo

// IsLeapYear reports whether the given year is a Gregorian leap year:
// divisible by 4, except years divisible by 100 that are not divisible
// by 400.
//
// Year must be between YearMin and YearMax inclusive; out-of-range input
// produces an unspecified result.
func IsLeapYear(y int32) bool {
	assert(y >= YearMin && y <= YearMax, "datealgo: year out of range")
	// `% 25` is functionally equivalent to `% 100` here, since the bitmask
	// tests below reject the extra multiples of 25, and a little cheaper to
	// compute. The common not-a-multiple case then needs only `& 3`.
	if y%25 != 0 {
		return y&3 == 0
	}
	return y&15 == 0
}

// DaysInMonth returns the number of days in the given month of the given
// year, between 28 and 31.
//
// Year must be between YearMin and YearMax and month between 1 and 12;
// out-of-range input produces an unspecified result.
func DaysInMonth(y int32, m uint8) uint8 {
	assert(m >= MonthMin && m <= MonthMax, "datealgo: month out of range")
	if m != February {
		// The low bit of m^(m>>3) distinguishes 30 from 31 day months for
		// every month number without a lookup table.
		return 30 | (m ^ (m >> 3))
	}
	if IsLeapYear(y) {
		return 29
	}
	return 28
}
