// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package datealgo_test

import (
	"fmt"

	datealgo "github.com/complex-gh/datealgo_go"
)

func ExampleDateToRd() {
	fmt.Println(datealgo.DateToRd(1970, 1, 1))
	fmt.Println(datealgo.DateToRd(2023, 5, 12))
	fmt.Println(datealgo.DateToRd(0, 1, 1))
	// Output:
	// 0
	// 19489
	// -719528
}

func ExampleRdToDate() {
	fmt.Println(datealgo.RdToDate(0))
	fmt.Println(datealgo.RdToDate(19489))
	fmt.Println(datealgo.RdToDate(-719528))
	// Output:
	// 1970 1 1
	// 2023 5 12
	// 0 1 1
}

func ExampleRdToWeekday() {
	// January 1st, 1970 was a Thursday
	fmt.Println(datealgo.RdToWeekday(0))
	fmt.Println(datealgo.RdToWeekday(datealgo.DateToRd(2023, 5, 12)))
	// Output:
	// 4
	// 5
}

func ExampleDateToWeekday() {
	fmt.Println(datealgo.DateToWeekday(2023, 1, 1))
	// Output:
	// 7
}

func ExampleSecsToDhms() {
	fmt.Println(datealgo.SecsToDhms(86399))
	fmt.Println(datealgo.SecsToDhms(-1))
	// Output:
	// 0 23 59 59
	// -1 23 59 59
}

func ExampleSecsToDatetime() {
	fmt.Println(datealgo.SecsToDatetime(1684574678))
	// Output:
	// 2023 5 20 9 24 38
}

func ExampleDatetimeToSecs() {
	fmt.Println(datealgo.DatetimeToSecs(2023, 5, 20, 9, 24, 38))
	// Output:
	// 1684574678
}

func ExampleDateToISOWeekdate() {
	fmt.Println(datealgo.DateToISOWeekdate(2023, 5, 12))
	fmt.Println(datealgo.DateToISOWeekdate(2023, 1, 1))
	// Output:
	// 2023 19 5
	// 2022 52 7
}

func ExampleISOWeeksInYear() {
	fmt.Println(datealgo.ISOWeeksInYear(2023))
	fmt.Println(datealgo.ISOWeeksInYear(2026))
	// Output:
	// 52
	// 53
}

func ExampleNextDate() {
	fmt.Println(datealgo.NextDate(2023, 12, 31))
	// Output:
	// 2024 1 1
}

func ExampleDaysInMonth() {
	fmt.Println(datealgo.DaysInMonth(2023, 2))
	fmt.Println(datealgo.DaysInMonth(2024, 2))
	// Output:
	// 28
	// 29
}
