package ethiocal

import "time"

const (
	// ethiopicEpoch is the JDN of 1 Meskerem of Ethiopian year 0.
	ethiopicEpoch = 1723856

	// gregorianEpoch is the JDN of 31 December of Gregorian year 0, so
	// that 1 January 1 is gregorianEpoch + 1.
	gregorianEpoch = 1721425

	ethiopicCycle = 4*365 + 1
)

// quotient divides rounding toward negative infinity. A zero divisor
// panics with ErrDivisionByZero.
func quotient(dividend, divisor int) int {
	if divisor == 0 {
		panic(ErrDivisionByZero)
	}
	return floorDiv(dividend, divisor)
}

// mod returns the floored remainder, which has the sign of the divisor.
func mod(dividend, divisor int) int {
	return dividend - quotient(dividend, divisor)*divisor
}

// GregorianToJDN returns the Julian Day Number of a proleptic Gregorian
// date. No allowance is made for the 1582 reform: every date is Gregorian.
func GregorianToJDN(year, month, day int) int {
	// s is 1 when year is a Gregorian leap year.
	s := quotient(year, 4) - quotient(year-1, 4) -
		quotient(year, 100) + quotient(year-1, 100) +
		quotient(year, 400) - quotient(year-1, 400)
	// t is 1 for January and February.
	t := quotient(14-month, 12)

	n := 31*t*(month-1) +
		(1-t)*(59+s+30*(month-3)+quotient(3*month-7, 5)) +
		day - 1

	return gregorianEpoch + 1 +
		365*(year-1) +
		quotient(year-1, 4) -
		quotient(year-1, 100) +
		quotient(year-1, 400) +
		n
}

// JDNToEthiopic returns the Ethiopian date of a Julian Day Number.
func JDNToEthiopic(jdn int) Date {
	r := mod(jdn-ethiopicEpoch, ethiopicCycle)
	n := mod(r, 365) + 365*quotient(r, ethiopicCycle-1)

	year := 4*quotient(jdn-ethiopicEpoch, ethiopicCycle) + quotient(r, 365) - quotient(r, ethiopicCycle-1)
	month := quotient(n, 30) + 1
	day := mod(n, 30) + 1

	return Date{Year: year, Month: month, Day: day}
}

// EthiopicToJDN returns the Julian Day Number of an Ethiopian date. It is
// the inverse of JDNToEthiopic.
func EthiopicToJDN(year, month, day int) int {
	return ethiopicEpoch + 365*year + quotient(year, 4) + 30*(month-1) + day - 1
}

// JDNToGregorian returns the proleptic Gregorian date of a Julian Day
// Number. It is the inverse of GregorianToJDN.
func JDNToGregorian(jdn int) Date {
	a := jdn + 32044
	b := quotient(4*a+3, 146097)
	c := a - quotient(146097*b, 4)
	d := quotient(4*c+3, 1461)
	e := c - quotient(1461*d, 4)
	m := quotient(5*e+2, 153)

	return Date{
		Year:  100*b + d - 4800 + quotient(m, 10),
		Month: m + 3 - 12*quotient(m, 10),
		Day:   e - quotient(153*m+2, 5) + 1,
	}
}

// Weekday returns the day of the week of a Julian Day Number.
func Weekday(jdn int) time.Weekday {
	return time.Weekday(mod(jdn+1, 7))
}
