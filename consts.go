// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package datealgo

// Convenience constants, mostly for input validation. Their use is strictly
// optional, as this is a low level library and the values are wholly
// unremarkable.
const (
	// WeekMin is the minimum value for an ISO week
	WeekMin uint8 = 1

	// WeekMax is the maximum value for an ISO week
	WeekMax uint8 = 53

	// MonthMin is the minimum value for a month
	MonthMin uint8 = 1

	// MonthMax is the maximum value for a month
	MonthMax uint8 = 12

	// DayMin is the minimum value for a day of month
	DayMin uint8 = 1

	// DayMax is the maximum value for a day of month
	DayMax uint8 = 31

	// WeekdayMin is the minimum value for a day of week
	WeekdayMin uint8 = 1

	// WeekdayMax is the maximum value for a day of week
	WeekdayMax uint8 = 7

	// HourMin is the minimum value for hours
	HourMin uint8 = 0

	// HourMax is the maximum value for hours
	HourMax uint8 = 23

	// MinuteMin is the minimum value for minutes
	MinuteMin uint8 = 0

	// MinuteMax is the maximum value for minutes
	MinuteMax uint8 = 59

	// SecondMin is the minimum value for seconds
	SecondMin uint8 = 0

	// SecondMax is the maximum value for seconds
	SecondMax uint8 = 59

	// NanosecondMin is the minimum value for nanoseconds
	NanosecondMin uint32 = 0

	// NanosecondMax is the maximum value for nanoseconds
	NanosecondMax uint32 = 999_999_999
)

// Month values
const (
	// January month value
	January uint8 = 1

	// February month value
	February uint8 = 2

	// March month value
	March uint8 = 3

	// April month value
	April uint8 = 4

	// May month value
	May uint8 = 5

	// June month value
	June uint8 = 6

	// July month value
	July uint8 = 7

	// August month value
	August uint8 = 8

	// September month value
	September uint8 = 9

	// October month value
	October uint8 = 10

	// November month value
	November uint8 = 11

	// December month value
	December uint8 = 12
)

// Day of week values, following the ISO convention of the week starting on
// Monday.
const (
	// Monday day of week value
	Monday uint8 = 1

	// Tuesday day of week value
	Tuesday uint8 = 2

	// Wednesday day of week value
	Wednesday uint8 = 3

	// Thursday day of week value
	Thursday uint8 = 4

	// Friday day of week value
	Friday uint8 = 5

	// Saturday day of week value
	Saturday uint8 = 6

	// Sunday day of week value
	Sunday uint8 = 7
)
