package ethiocal

// IsGregorianLeap reports whether year has a 29 February in the proleptic
// Gregorian calendar.
func IsGregorianLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// IsEthiopianLeap reports whether Pagume, the thirteenth month of the given
// Ethiopian year, has 6 days instead of 5.
func IsEthiopianLeap(year int) bool {
	return year%4 == 3
}

// FollowsEthiopianLeap reports whether year comes right after an Ethiopian
// leap year. Meskerem 1 of such a year falls one Gregorian day later.
func FollowsEthiopianLeap(year int) bool {
	return (year-1)%4 == 3
}

// newYearOffset returns how many days past the nominal Gregorian 1 September
// the Ethiopian New Year of the given year falls. The drift grows by one for
// every Gregorian century year that is not a leap year.
func newYearOffset(year int) int {
	offset := floorDiv(year, 100) - floorDiv(year, 400) - 4
	if FollowsEthiopianLeap(year) {
		offset++
	}
	return offset
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
