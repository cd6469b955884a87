package ethiocal

import (
	"fmt"
	"time"
)

// Date is a calendar date as a (year, month, day) triple. The same type
// carries Ethiopian and Gregorian dates; which calendar it belongs to is
// determined by the function that produced it.
//
// Ethiopian months run from 1 (Meskerem) to 13 (Pagume).
type Date struct {
	Year  int
	Month int
	Day   int
}

// reformGapStart and reformGapEnd bound the Gregorian days dropped by the
// October 1582 calendar reform.
var (
	reformGapStart = Date{Year: 1582, Month: 10, Day: 5}
	reformGapEnd   = Date{Year: 1582, Month: 10, Day: 14}
)

// String returns the date as Y-M-D without zero padding.
func (d Date) String() string {
	return d.YMD()
}

// DMY formats the date as D-M-Y.
func (d Date) DMY() string {
	return fmt.Sprintf("%d-%d-%d", d.Day, d.Month, d.Year)
}

// MDY formats the date as M-D-Y.
func (d Date) MDY() string {
	return fmt.Sprintf("%d-%d-%d", d.Month, d.Day, d.Year)
}

// YMD formats the date as Y-M-D.
func (d Date) YMD() string {
	return fmt.Sprintf("%d-%d-%d", d.Year, d.Month, d.Day)
}

// Slice returns the date as a [year, month, day] slice.
func (d Date) Slice() []int {
	return []int{d.Year, d.Month, d.Day}
}

// Time interprets d as a Gregorian date and returns midnight UTC of that day.
// Out-of-range months and days are normalized the way time.Date does.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// check reports ErrMalformedInput if any component is zero.
func (d Date) check() error {
	if d.Year == 0 || d.Month == 0 || d.Day == 0 {
		return fmt.Errorf("%w: %d-%d-%d has a zero component", ErrMalformedInput, d.Year, d.Month, d.Day)
	}
	return nil
}

func (d Date) before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) inRange(from, to Date) bool {
	return !d.before(from) && !to.before(d)
}

// inReformGap reports whether the Gregorian date d was skipped by the
// 1582 calendar reform.
func (d Date) inReformGap() bool {
	return d.inRange(reformGapStart, reformGapEnd)
}
