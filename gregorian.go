// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package datealgo

// RdToDate converts a day count from the Unix epoch to a Gregorian
// (year, month, day) triple.
//
// The argument must be between RdMin and RdMax inclusive; out-of-range
// input produces an unspecified result.
//
// The conversion is the Neri-Schneider algorithm using Euclidean affine
// functions. Century, year, month and day are each extracted with a single
// multiply and shift against a fixed constant; the only branch is the
// January/February remap, which is unavoidable because month numbering is
// not affine across the year boundary.
func RdToDate(n int32) (year int32, month, day uint8) {
	assert(n >= RdMin && n <= RdMax, "datealgo: rata die out of range")
	u := uint32(n + dayOffset)
	// century
	u = 4*u + 3
	c := u / daysInEra
	r := u % daysInEra
	// year of century, and the day of year scaled by 2939745
	u = r | 3
	p := 2939745 * uint64(u)
	z := uint32(p >> 32)
	u = uint32(p) / 2939745 / 4
	jf := u >= 306
	y := 100*c + z
	if jf {
		y++
	}
	// month and day
	u = 2141*u + 197913
	m := u >> 16
	d := (u % (1 << 16)) / 2141
	// map back from the computational calendar
	year = int32(y) - yearOffset
	if jf {
		m -= 12
	}
	return year, uint8(m), uint8(d + 1)
}

// DateToRd converts a Gregorian (year, month, day) triple to the day count
// from the Unix epoch. Dates before the epoch produce negative values.
//
// Year must be between YearMin and YearMax, month between 1 and 12 and day
// between 1 and DaysInMonth(year, month); out-of-range input produces an
// unspecified result.
//
// The date is first shifted to a calendar whose year begins March 1st, which
// makes leap day placement trivial. The year contribution is the closed
// form 1461*y/4 - c + c/4 and the month contribution (979*m - 2919)/32, an
// integer approximation of the cumulative month lengths exact for the
// shifted numbering. No loops, no tables, no divisions by non-constants.
func DateToRd(y int32, m, d uint8) int32 {
	c, ys, ms, ds := dateToInternal(y, m, d)
	ds--
	// year
	ys = 1461*ys/4 - c + c/4
	// month
	ms = (979*ms - 2919) / 32
	// result
	return int32(ys+ms+ds) - dayOffset
}

// NextDate returns the Gregorian date one calendar day after the given one.
//
// The given date must be valid and must not be the maximum representable
// date (YearMax, 12, 31); out-of-range input produces an unspecified
// result.
func NextDate(y int32, m, d uint8) (int32, uint8, uint8) {
	assert(y >= YearMin && y <= YearMax, "datealgo: year out of range")
	assert(m >= MonthMin && m <= MonthMax, "datealgo: month out of range")
	assert(d >= DayMin && d <= DaysInMonth(y, m), "datealgo: day out of range")
	assert(y != YearMax || m != MonthMax || d != DayMax, "datealgo: next date out of range")
	if d < 28 || d < DaysInMonth(y, m) {
		return y, m, d + 1
	}
	if m < December {
		return y, m + 1, 1
	}
	return y + 1, 1, 1
}

// PrevDate returns the Gregorian date one calendar day before the given
// one.
//
// The given date must be valid and must not be the minimum representable
// date (YearMin, 1, 1); out-of-range input produces an unspecified result.
func PrevDate(y int32, m, d uint8) (int32, uint8, uint8) {
	assert(y >= YearMin && y <= YearMax, "datealgo: year out of range")
	assert(m >= MonthMin && m <= MonthMax, "datealgo: month out of range")
	assert(d >= DayMin && d <= DaysInMonth(y, m), "datealgo: day out of range")
	assert(y != YearMin || m != MonthMin || d != DayMin, "datealgo: previous date out of range")
	if d > 1 {
		return y, m, d - 1
	}
	if m > January {
		return y, m - 1, DaysInMonth(y, m-1)
	}
	return y - 1, 12, 31
}
