package ethiocal

import (
	"fmt"
	"strconv"
	"strings"
)

// NewDate returns the date (year, month, day), or ErrMalformedInput if any
// component is zero.
func NewDate(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.check(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// DateFromSlice builds a date from a [year, month, day] slice.
func DateFromSlice(parts []int) (Date, error) {
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: expected 3 components, got %d", ErrMalformedInput, len(parts))
	}
	return NewDate(parts[0], parts[1], parts[2])
}

// ParseDate parses a date in the form "YYYY-MM-DD". Zero padding is
// optional, so "2022-9-11" is accepted as well.
func ParseDate(s string) (Date, error) {
	fields := strings.Split(strings.TrimSpace(s), "-")
	if len(fields) != 3 {
		return Date{}, fmt.Errorf("%w: %q is not of the form YYYY-MM-DD", ErrMalformedInput, s)
	}
	parts := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q: non-numeric component %q", ErrMalformedInput, s, f)
		}
		parts[i] = n
	}
	return DateFromSlice(parts)
}
