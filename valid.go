package ethiocal

// DaysInGregorianMonth returns the number of days in the given month of a
// proleptic Gregorian year, or 0 if month is not in 1-12.
func DaysInGregorianMonth(year, month int) int {
	switch month {
	case 2:
		if IsGregorianLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	}
	return 0
}

// DaysInEthiopianMonth returns the number of days in the given month of an
// Ethiopian year, or 0 if month is not in 1-13.
func DaysInEthiopianMonth(year, month int) int {
	switch {
	case month >= 1 && month <= 12:
		return 30
	case month == 13 && IsEthiopianLeap(year):
		return 6
	case month == 13:
		return 5
	}
	return 0
}

// ValidGregorian reports whether d names a day of the proleptic Gregorian
// calendar. Conversions do not require this; it is offered to callers that
// want stricter checks than ToEthiopian applies.
func ValidGregorian(d Date) bool {
	return d.Year != 0 && d.Day >= 1 && d.Day <= DaysInGregorianMonth(d.Year, d.Month)
}

// ValidEthiopian reports whether d names a day of the Ethiopian calendar.
// Pagume 6 is valid only in years for which IsEthiopianLeap holds.
func ValidEthiopian(d Date) bool {
	return d.Year != 0 && d.Day >= 1 && d.Day <= DaysInEthiopianMonth(d.Year, d.Month)
}
