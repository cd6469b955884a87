package ethiocal

// NewYear returns the Gregorian date of 1 Meskerem of the given Ethiopian
// year.
func NewYear(year int) (Date, error) {
	return ToGregorian(year, 1, 1)
}

// NextNewYear returns the Gregorian date of the first Ethiopian New Year
// strictly after the Gregorian date g.
func NextNewYear(g Date) (Date, error) {
	e, err := ToEthiopian(g.Year, g.Month, g.Day)
	if err != nil {
		return Date{}, err
	}
	return NewYear(e.Year + 1)
}

// PreviousNewYear returns the Gregorian date of the most recent Ethiopian
// New Year strictly before the Gregorian date g.
func PreviousNewYear(g Date) (Date, error) {
	e, err := ToEthiopian(g.Year, g.Month, g.Day)
	if err != nil {
		return Date{}, err
	}
	if e.Month == 1 && e.Day == 1 {
		return NewYear(e.Year - 1)
	}
	return NewYear(e.Year)
}

// AddDays returns the Ethiopian date n days after d. A negative n moves
// backwards. Out-of-range components of d are normalized, so day 35 of
// Meskerem comes out as day 5 of Tikimt; a zero component is
// ErrMalformedInput.
func AddDays(d Date, n int) (Date, error) {
	if err := d.check(); err != nil {
		return Date{}, err
	}
	return JDNToEthiopic(EthiopicToJDN(d.Year, d.Month, d.Day) + n), nil
}

// DaysBetween returns the number of days from the Ethiopian date from to
// the Ethiopian date to. The result is negative if to comes first.
func DaysBetween(from, to Date) (int, error) {
	if err := from.check(); err != nil {
		return 0, err
	}
	if err := to.check(); err != nil {
		return 0, err
	}
	return EthiopicToJDN(to.Year, to.Month, to.Day) - EthiopicToJDN(from.Year, from.Month, from.Day), nil
}
