package ethiocal

import (
	"fmt"
	"time"
)

// GregorianResult is the outcome of an Ethiopian to Gregorian conversion.
type GregorianResult struct {
	Date      Date      // The Gregorian date.
	DMY       string    // D-M-Y, e.g. "11-9-2022".
	MDY       string    // M-D-Y, e.g. "9-11-2022".
	YMD       string    // Y-M-D, e.g. "2022-9-11".
	Formatted string    // e.g. "11 September 2022".
	Time      time.Time // Midnight UTC of the Gregorian date.
}

// EthiopianResult is the outcome of a Gregorian to Ethiopian conversion.
type EthiopianResult struct {
	Date    Date         // The Ethiopian date.
	DMY     string       // D-M-Y, e.g. "1-1-2015".
	MDY     string       // M-D-Y.
	YMD     string       // Y-M-D.
	Weekday time.Weekday // Day of the week of the converted Gregorian date.
	Time    time.Time    // Midnight UTC of the converted Gregorian date.

	// Localized holds the date rendered with each registered name table,
	// keyed by BCP 47 tag ("am", "ti", "om", ...).
	Localized map[string]string
}

func newGregorianResult(g Date) GregorianResult {
	return GregorianResult{
		Date:      g,
		DMY:       g.DMY(),
		MDY:       g.MDY(),
		YMD:       g.YMD(),
		Formatted: fmt.Sprintf("%d %s %d", g.Day, gregorianMonthName(g.Month), g.Year),
		Time:      g.Time(),
	}
}

func newEthiopianResult(e, from Date, wd time.Weekday) EthiopianResult {
	return EthiopianResult{
		Date:      e,
		DMY:       e.DMY(),
		MDY:       e.MDY(),
		YMD:       e.YMD(),
		Weekday:   wd,
		Time:      from.Time(),
		Localized: make(map[string]string),
	}
}

// gregorianMonthName returns the English month name, or the number itself
// for months outside 1-12.
func gregorianMonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprint(month)
	}
	return time.Month(month).String()
}
