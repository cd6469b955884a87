package ethiocal

//go:generate go run ./cmd/genlocales -input locales.csv -output names_data.go

import (
	"fmt"
	"time"
)

// Names is a lookup table of localized weekday and month names.
type Names struct {
	Weekdays [7]string  // Sunday first.
	Months   [13]string // Meskerem first, Pagume last.
}

// Weekday returns the name of wd, or "" if wd is out of range.
func (n Names) Weekday(wd time.Weekday) string {
	if wd < time.Sunday || wd > time.Saturday {
		return ""
	}
	return n.Weekdays[wd]
}

// Month returns the name of the Ethiopian month (1-13), or "" if month is
// out of range.
func (n Names) Month(month int) string {
	if month < 1 || month > len(n.Months) {
		return ""
	}
	return n.Months[month-1]
}

// Format renders an Ethiopian date as "<weekday>, <day> <month> <year>".
// The weekday is that of the Gregorian date the Ethiopian date was
// converted from.
func (n Names) Format(wd time.Weekday, d Date) string {
	return fmt.Sprintf("%s, %d %s %d", n.Weekday(wd), d.Day, n.Month(d.Month), d.Year)
}
