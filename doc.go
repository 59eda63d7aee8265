// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package datealgo provides low-level, branchless date algorithms for
// libraries.
//
// The package converts between a day count from the Unix epoch (January 1st,
// 1970, called "Rata Die" and abbreviated rd) and proleptic Gregorian
// calendar dates, plus the derived conversions: day of week, ISO week dates,
// splitting total seconds into calendar fields, date stepping, and leap-year
// and month-length queries. It is meant to sit beneath higher-level date and
// time libraries which provide the ergonomic, opinionated interfaces.
//
// Every operation is a pure function over fixed-width integers. There is no
// shared state, no I/O and no allocation, so all functions are safe for
// concurrent use without synchronization. The algorithms are closed-form
// integer arithmetic with no loops and no lookup tables, based on the
// Euclidean affine function method of Neri and Schneider:
//
//	Neri C, Schneider L. "Euclidean affine functions and their application
//	to calendar algorithms". Softw Pract Exper. 2022;1-34.
//	doi:10.1002/spe.3172
//
// # Usage
//
//	rd := datealgo.DateToRd(2023, 5, 12)   // 19489
//	y, m, d := datealgo.RdToDate(19489)    // 2023, 5, 12
//	wd := datealgo.RdToWeekday(0)          // 4 (Thursday)
//
// The package does not expose a Date or DateTime type; values travel as
// plain integers in multiple return values. Datatypes are the smallest that
// fit the value: int32 for day counts and years, uint8 for the remaining
// calendar fields, int64 for second counts.
//
// # Bounds
//
// The supported range is [YearMin, YearMax] for years, [RdMin, RdMax] for
// day counts and [RdSecondsMin, RdSecondsMax] for second counts. The range
// is bounded so that every intermediate value fits native machine words:
// 32 bits for day-granularity arithmetic and 64 bits for second-granularity
// arithmetic. Inputs are not validated in normal builds; callers are
// required to do their own bounds checking. Out-of-range inputs produce an
// unspecified but non-crashing result. Builds with the "debugassert" tag
// enable contract checks that panic on out-of-range input.
//
// Leap seconds are not accounted for, as is customary for Unix time: every
// day is exactly 86400 seconds long. Only the proleptic Gregorian calendar
// is implemented, which is the current calendar extended backwards
// indefinitely.
package datealgo
