package ethiocal

import "errors"

var (
	// ErrMalformedInput is returned when a date has a zero component, a
	// non-numeric component, or does not consist of exactly three parts.
	ErrMalformedInput = errors.New("malformed input can't be converted")

	// ErrInvalidHistoricalDate is returned for Gregorian dates between
	// 5 and 14 October 1582 inclusive. Those days were skipped by the
	// calendar reform and have no Ethiopian equivalent.
	ErrInvalidHistoricalDate = errors.New("date falls in the 1582 calendar reform gap")

	// ErrDivisionByZero is the panic value of the JDN helpers when handed a
	// zero divisor. No calendar constant is zero, so seeing it is a bug.
	ErrDivisionByZero = errors.New("division by zero")
)
