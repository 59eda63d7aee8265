// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package datealgo

import "time"

// TimeToSecs converts a time.Time to seconds and nanoseconds from the Unix
// epoch. The second value is floored, so instants before the epoch return
// the next smaller second with a nanosecond value in [0, 999999999]; one
// nanosecond before the epoch is (-1, 999999999).
//
// The ok result is false when the instant is before RdSecondsMin or after
// RdSecondsMax, in which case the other results are zero. This is an
// expected condition, not an error: time.Time can hold instants far outside
// the supported conversion range.
func TimeToSecs(t time.Time) (secs int64, nsecs uint32, ok bool) {
	secs = t.Unix()
	if secs < RdSecondsMin || secs > RdSecondsMax {
		return 0, 0, false
	}
	return secs, uint32(t.Nanosecond()), true
}

// SecsToTime converts seconds and nanoseconds from the Unix epoch to a
// time.Time in UTC. For instants before the epoch the second value is
// floored and the nanoseconds count forward from it, mirroring TimeToSecs;
// (-1, 999999999) is one nanosecond before the epoch.
//
// The ok result is false when secs is outside [RdSecondsMin, RdSecondsMax]
// or nsecs exceeds NanosecondMax, in which case the time is the zero value.
func SecsToTime(secs int64, nsecs uint32) (time.Time, bool) {
	if secs < RdSecondsMin || secs > RdSecondsMax || nsecs > NanosecondMax {
		return time.Time{}, false
	}
	return time.Unix(secs, int64(nsecs)).UTC(), true
}

// TimeToDatetime converts a time.Time to a full (year, month, day, hours,
// minutes, seconds, nanoseconds) datetime in UTC. Composition of
// TimeToSecs, SecsToDhms and RdToDate.
//
// The ok result is false when the instant is outside the supported
// conversion range, in which case the other results are zero.
func TimeToDatetime(t time.Time) (year int32, month, day, hour, min, sec uint8, nsecs uint32, ok bool) {
	secs, nsecs, ok := TimeToSecs(t)
	if !ok {
		return 0, 0, 0, 0, 0, 0, 0, false
	}
	days, hh, mm, ss := SecsToDhms(secs)
	y, m, d := RdToDate(days)
	return y, m, d, hh, mm, ss, nsecs, true
}

// DatetimeToTime converts a full (year, month, day, hours, minutes,
// seconds, nanoseconds) datetime to a time.Time in UTC. Composition of
// DateToRd, DhmsToSecs and SecsToTime.
//
// The date must be valid per DateToRd and the time of day per DhmsToSecs;
// out-of-range input produces an unspecified result. The ok result is false
// when the instant cannot be represented within the supported conversion
// range.
func DatetimeToTime(y int32, m, d, hour, min, sec uint8, nsecs uint32) (time.Time, bool) {
	days := DateToRd(y, m, d)
	secs := DhmsToSecs(days, hour, min, sec)
	return SecsToTime(secs, nsecs)
}
