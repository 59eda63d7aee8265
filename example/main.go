package main

import (
	"fmt"
	"time"

	datealgo "github.com/complex-gh/datealgo_go"
)

func main() {
	// Convert a date to its day count from the Unix epoch and back
	rd := datealgo.DateToRd(2023, 5, 12)
	fmt.Printf("2023-05-12 is day %d\n", rd)

	y, m, d := datealgo.RdToDate(rd)
	fmt.Printf("day %d is %04d-%02d-%02d\n", rd, y, m, d)

	// Day of week and ISO week date
	fmt.Printf("weekday: %d (1=Monday .. 7=Sunday)\n", datealgo.RdToWeekday(rd))

	iy, iw, iwd := datealgo.DateToISOWeekdate(2023, 5, 12)
	fmt.Printf("ISO week date: %d-W%02d-%d\n", iy, iw, iwd)

	// Current wall clock time through the conversion boundary
	if yy, mm, dd, hh, mi, ss, ns, ok := datealgo.TimeToDatetime(time.Now()); ok {
		fmt.Printf("now: %04d-%02d-%02d %02d:%02d:%02d.%09d UTC\n", yy, mm, dd, hh, mi, ss, ns)
	}
}
