// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package datealgo

// RdToISOWeekdate converts a day count from the Unix epoch to an ISO week
// date (year, week, day of week). Weeks start on Monday and week 1 is the
// week containing the year's first Thursday, so the first days of a
// Gregorian year may belong to the last week of the previous ISO year and
// vice versa. Day of week is between 1 (Monday) and 7 (Sunday).
//
// The argument must be between RdMin and RdMax inclusive; out-of-range
// input produces an unspecified result.
//
// The day is shifted to the Thursday of its week; the Gregorian year of
// that Thursday is the ISO year, and the week number is the week offset
// from that year's January 1st.
func RdToISOWeekdate(rd int32) (year int32, week, weekday uint8) {
	assert(rd >= RdMin && rd <= RdMax, "datealgo: rata die out of range")
	wd := RdToWeekday(rd)
	rdt := rd + (4-int32(wd))%7
	y, _, _ := RdToDate(rdt)
	ys := DateToRd(y, 1, 1)
	w := (rdt-ys)/7 + 1
	return y, uint8(w), wd
}

// ISOWeekdateToRd converts an ISO week date (year, week, day of week) to
// the day count from the Unix epoch. Dates before the epoch produce
// negative values.
//
// Year must be between YearMin and YearMax, week between 1 and
// ISOWeeksInYear(year) and day of week between 1 and 7; out-of-range input
// produces an unspecified result.
//
// January 4th falls in week 1 by the ISO definition; stepping back from it
// to the Monday of its week anchors the whole year.
func ISOWeekdateToRd(y int32, week, weekday uint8) int32 {
	assert(y >= YearMin && y <= YearMax, "datealgo: year out of range")
	assert(week >= WeekMin && week <= ISOWeeksInYear(y), "datealgo: week out of range")
	assert(weekday >= WeekdayMin && weekday <= WeekdayMax, "datealgo: weekday out of range")
	assert(y != YearMax || week != WeekMax || weekday <= Thursday,
		"datealgo: weekday out of range for last week of range")
	rd4 := DateToRd(y, 1, 4)
	wd4 := RdToWeekday(rd4)
	ys := rd4 - int32(wd4-1)
	return ys + (int32(week)-1)*7 + (int32(weekday) - 1)
}

// DateToISOWeekdate converts a Gregorian (year, month, day) triple to an
// ISO week date. Composition of DateToRd and RdToISOWeekdate.
//
// The date must be valid per DateToRd; out-of-range input produces an
// unspecified result.
func DateToISOWeekdate(y int32, m, d uint8) (year int32, week, weekday uint8) {
	return RdToISOWeekdate(DateToRd(y, m, d))
}

// ISOWeekdateToDate converts an ISO week date to a Gregorian (year, month,
// day) triple. Composition of ISOWeekdateToRd and RdToDate.
//
// The week date must be valid per ISOWeekdateToRd; out-of-range input
// produces an unspecified result.
func ISOWeekdateToDate(y int32, week, weekday uint8) (int32, uint8, uint8) {
	return RdToDate(ISOWeekdateToRd(y, week, weekday))
}

// ISOWeeksInYear returns the number of ISO weeks in the given year, 52 or
// 53. A year has 53 weeks when its January 1st is a Thursday, or a
// Wednesday in a leap year.
//
// Year must be between YearMin and YearMax inclusive; out-of-range input
// produces an unspecified result.
func ISOWeeksInYear(y int32) uint8 {
	assert(y >= YearMin && y <= YearMax, "datealgo: year out of range")
	switch wd := DateToWeekday(y, 1, 1); {
	case wd == Thursday:
		return 53
	case wd == Wednesday && IsLeapYear(y):
		return 53
	default:
		return 52
	}
}
