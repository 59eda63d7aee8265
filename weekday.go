// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package datealgo

const (
	// p64OverSeven is (1 << 64) / 7 truncated
	p64OverSeven uint64 = ((1 << 63) / 7) << 1

	// p32OverSeven is (1 << 32) / 7 truncated
	p32OverSeven uint32 = ((1 << 31) / 7) << 1
)

// RdToWeekday converts a day count from the Unix epoch to a day of week
// between 1 and 7, with 1 meaning Monday and 7 meaning Sunday. Day 0, the
// epoch itself, is a Thursday and yields 4.
//
// The argument must be between RdMin and RdMax inclusive; out-of-range
// input produces an unspecified result.
//
// In essence the function calculates (n + offset) % 7 + 1 with an offset
// making the operand non-negative, but evaluates the modulus through the
// binary representation of the reciprocal of 7, C = (0.001_001_001...)_2:
// the bits of (m + 1) * C repeat in groups of three and each group equals
// m % 7 + 1. Multiplying by the truncated (1 << 64) / 7 and taking the top
// three bits of the product therefore yields the weekday directly. The
// truncation error never flips the top three bits within the supported day
// range, which the tests verify against the true modulus.
func RdToWeekday(n int32) uint8 {
	assert(n >= RdMin && n <= RdMax, "datealgo: rata die out of range")
	return uint8(((uint64(n-RdMin) + 1) * p64OverSeven) >> 61)
}

// DateToWeekday converts a Gregorian (year, month, day) triple to a day of
// week between 1 and 7, with 1 meaning Monday and 7 meaning Sunday.
//
// Year must be between YearMin and YearMax, month between 1 and 12 and day
// between 1 and DaysInMonth(year, month); out-of-range input produces an
// unspecified result.
//
// Adaptation of DateToRd to modulus 7 arithmetic: the year term 5*y/4-c+c/4
// and month term (979*m - 2855)/32 keep the sum congruent to the day count
// mod 7 without computing it, and the weekday is extracted with the same
// reciprocal-of-7 multiply as RdToWeekday, in 32 bits since the sum is
// small.
func DateToWeekday(y int32, m, d uint8) uint8 {
	c, ys, ms, ds := dateToInternal(y, m, d)
	// year
	ys = 5*ys/4 - c + c/4
	// month
	ms = (979*ms - 2855) / 32
	// result
	n := ys + ms + ds
	return uint8((n * p32OverSeven) >> 29)
}
