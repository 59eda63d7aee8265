// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package datealgo

const (
	// eraOffset is the adjustment from the Unix epoch, in eras, that makes
	// all internal calculations use non-negative integers. An era is 400
	// years, the period of the proleptic Gregorian calendar. The value is
	// selected to place the Unix epoch roughly in the center of the value
	// space; within type limits it could be arbitrary.
	eraOffset = 3670

	// daysInEra is the number of days in every era
	daysInEra = 146097

	// yearsInEra is the number of years in every era
	yearsInEra = 400

	// daysToUnixEpoch is the number of days from 0000-03-01 to 1970-01-01
	daysToUnixEpoch = 719468

	// dayOffset is added to day counts before internal calculations
	dayOffset = eraOffset*daysInEra + daysToUnixEpoch

	// yearOffset is added to year values before internal calculations
	yearOffset = eraOffset * yearsInEra

	// secsInDay is the number of seconds in a single 24 hour calendar day
	secsInDay = 86400

	// secsOffset is added to second counts before internal calculations
	secsOffset = dayOffset * secsInDay
)

const (
	// YearMin is the minimum supported year. Earlier years are out of
	// contract and likely produce incorrect results.
	YearMin = -1467999

	// YearMax is the maximum supported year. Later years are out of
	// contract and likely produce incorrect results.
	YearMax = 1471744

	// RdMin is the minimum supported day count, equal to
	// DateToRd(YearMin, 1, 1).
	RdMin = -536895152

	// RdMax is the maximum supported day count, equal to
	// DateToRd(YearMax, 12, 31).
	RdMax = 536824295

	// RdSecondsMin is the minimum supported second count, equal to
	// RdMin * 86400.
	RdSecondsMin = RdMin * secsInDay

	// RdSecondsMax is the maximum supported second count, equal to
	// RdMax * 86400 + 86399.
	RdSecondsMax = RdMax*secsInDay + secsInDay - 1
)

// dateToInternal shifts a Gregorian date to the computational calendar in
// which the year begins on March 1st. January and February count as months
// 13 and 14 of the previous year, which places the possible leap day at the
// very end of the year. Returns the century, the shifted year, the shifted
// month and the day, all offset to non-negative values that fit 32-bit
// unsigned arithmetic.
func dateToInternal(y int32, m, d uint8) (c, ys, ms, ds uint32) {
	assert(y >= YearMin && y <= YearMax, "datealgo: year out of range")
	assert(m >= MonthMin && m <= MonthMax, "datealgo: month out of range")
	assert(d >= DayMin && d <= DaysInMonth(y, m), "datealgo: day out of range")
	ys = uint32(y + yearOffset)
	var jf uint32
	if m < March {
		jf = 1
	}
	ys -= jf
	c = ys / 100
	ms = uint32(m) + 12*jf
	ds = uint32(d)
	return
}
