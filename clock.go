// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package datealgo

// SecsToDhms splits total seconds from the Unix epoch into a day count and
// the time of day as (days, hours, minutes, seconds). Negative inputs
// borrow from the day count, so SecsToDhms(-1) is (-1, 23, 59, 59).
//
// The argument must be between RdSecondsMin and RdSecondsMax inclusive;
// out-of-range input produces an unspecified result.
//
// After adding the epoch offset the remainder arithmetic never sees a
// negative value. The per-60 splits use the identities
//
//	n / 60 = 71582789 * n / 2^32
//	n % 60 = 71582789 * n % 2^32 / 71582789
//
// valid for all n below 97612919, which the day remainder is by
// construction.
func SecsToDhms(secs int64) (days int32, hour, min, sec uint8) {
	assert(secs >= RdSecondsMin && secs <= RdSecondsMax, "datealgo: seconds out of range")
	if secs > RdSecondsMax {
		secs = 0 // keeps out-of-contract input from overflowing below
	}
	u := uint64(secs + secsOffset)
	d := uint32(u / secsInDay)
	rem := u % secsInDay

	prd := 71582789 * rem
	mins := prd >> 32            // rem / 60
	ss := uint32(prd) / 71582789 // rem % 60

	prd = 71582789 * mins
	hh := prd >> 32              // mins / 60
	mm := uint32(prd) / 71582789 // mins % 60

	return int32(d) - dayOffset, uint8(hh), uint8(mm), uint8(ss)
}

// DhmsToSecs combines a day count from the Unix epoch and a time of day
// into total seconds. Provided for symmetry with SecsToDhms; the algorithm
// is a plain weighted sum.
//
// Days must be between RdMin and RdMax, hours between 0 and 23, minutes and
// seconds between 0 and 59; out-of-range input produces an unspecified
// result.
func DhmsToSecs(d int32, hour, min, sec uint8) int64 {
	assert(d >= RdMin && d <= RdMax, "datealgo: rata die out of range")
	assert(hour <= HourMax, "datealgo: hour out of range")
	assert(min <= MinuteMax, "datealgo: minute out of range")
	assert(sec <= SecondMax, "datealgo: second out of range")
	if d < RdMin || d > RdMax {
		return 0
	}
	return int64(d)*secsInDay + int64(hour)*3600 + int64(min)*60 + int64(sec)
}

// SecsToDatetime converts total seconds from the Unix epoch to a full
// (year, month, day, hours, minutes, seconds) datetime. Composition of
// SecsToDhms and RdToDate.
//
// The argument must be between RdSecondsMin and RdSecondsMax inclusive;
// out-of-range input produces an unspecified result.
func SecsToDatetime(secs int64) (year int32, month, day, hour, min, sec uint8) {
	d, hh, mm, ss := SecsToDhms(secs)
	y, m, dd := RdToDate(d)
	return y, m, dd, hh, mm, ss
}

// DatetimeToSecs converts a full (year, month, day, hours, minutes,
// seconds) datetime to total seconds from the Unix epoch. Composition of
// DateToRd and DhmsToSecs.
//
// The date must be valid per DateToRd and the time of day per DhmsToSecs;
// out-of-range input produces an unspecified result.
func DatetimeToSecs(y int32, m, d, hour, min, sec uint8) int64 {
	days := DateToRd(y, m, d)
	return DhmsToSecs(days, hour, min, sec)
}
