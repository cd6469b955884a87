package ethiocal

import "fmt"

// lastPreReformYear is the last Ethiopian year whose first weeks are
// counted from the Julian anchor rather than from the New Year offset.
const lastPreReformYear = 1575

// gregorianMonthByWalkIndex maps the zero-based slot reached by the
// Ethiopian-to-Gregorian month walk to a Gregorian month number. Slot 0 is
// an August placeholder used only before the reform, slot 1 is the
// September in which the Ethiopian year starts and slot 13 the September
// in which it ends.
var gregorianMonthByWalkIndex = [14]int{8, 9, 10, 11, 12, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// ethiopianMonthByWalkIndex maps the slot reached by the
// Gregorian-to-Ethiopian month walk to an Ethiopian month number. The walk
// starts at slot 1, the Tahsas holding 1 January; slot 10 is Pagume and
// slots 11 to 14 belong to the following Ethiopian year. Slot 0 is unused.
var ethiopianMonthByWalkIndex = [15]int{0, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 1, 2, 3, 4}

// ToGregorian converts an Ethiopian date to the Gregorian calendar.
//
// Only zero components are rejected. Months and days outside their usual
// ranges are carried through the arithmetic, so day 35 of Meskerem lands
// five days into Tikimt.
func ToGregorian(year, month, day int) (Date, error) {
	if err := (Date{year, month, day}).check(); err != nil {
		return Date{}, err
	}
	return toGregorian(year, month, day), nil
}

// ToEthiopian converts a Gregorian date to the Ethiopian calendar.
//
// Dates between 5 and 14 October 1582 fail with ErrInvalidHistoricalDate.
// Earlier dates are counted the way they were before the reform, so they
// do not agree with the proleptic JDN bridge.
func ToEthiopian(year, month, day int) (Date, error) {
	d := Date{year, month, day}
	if err := d.check(); err != nil {
		return Date{}, err
	}
	if d.inReformGap() {
		return Date{}, fmt.Errorf("%w: %v", ErrInvalidHistoricalDate, d)
	}
	return toEthiopian(year, month, day), nil
}

func toGregorian(year, month, day int) Date {
	gyear := year + 7

	// Slot 0 is the pre-reform August placeholder, slots 1..13 run from
	// September to the following September.
	months := [14]int{0, 30, 31, 30, 31, 31, 28, 31, 30, 31, 30, 31, 31, 30}
	if IsGregorianLeap(gyear + 1) {
		months[6] = 29
	}

	until := (month-1)*30 + day
	if until <= 37 && year <= lastPreReformYear {
		until += 28
		months[0] = 31
	} else {
		until += newYearOffset(year) - 1
	}
	if FollowsEthiopianLeap(year) {
		until++
	}

	m, gday := 0, 0
	for i, n := range months {
		m = i
		if until <= n || i == len(months)-1 {
			gday = until
			if year%4 == 0 {
				gday--
			}
			// The leap correction can step back over a slot boundary.
			if gday == 0 && i > 0 && months[i-1] > 0 {
				m, gday = i-1, months[i-1]
			}
			break
		}
		until -= n
	}

	if m > 4 {
		gyear++
	}
	return Date{Year: gyear, Month: gregorianMonthByWalkIndex[m], Day: gday}
}

func toEthiopian(year, month, day int) Date {
	months := [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if IsGregorianLeap(year) {
		months[2] = 29
	}

	eyear := year - 8

	emonths := [15]int{0, 30, 30, 30, 30, 30, 30, 30, 30, 30, 5, 30, 30, 30, 30}
	if IsEthiopianLeap(eyear) {
		emonths[10] = 6
	}

	until := day
	for i := 1; i < month; i++ {
		until += months[(i-1)%12+1]
	}

	// After the reform slot 1 holds the tail of Tahsas that follows
	// 31 December. Before it the walk skips slot 1 and starts in Tir.
	tahsas := 25
	if eyear%4 == 0 {
		tahsas = 26
	}
	switch {
	case year < 1582, year == 1582 && until <= 277:
		emonths[1] = 0
		emonths[2] = tahsas
	default:
		tahsas = newYearOffset(eyear) - 3
		emonths[1] = tahsas
	}

	m, eday := 1, 0
	for ; m < len(emonths); m++ {
		if until <= emonths[m] || m == len(emonths)-1 {
			eday = until
			if m == 1 || emonths[m] == 0 {
				eday += 30 - tahsas
			}
			break
		}
		until -= emonths[m]
	}

	if m > 10 {
		eyear++
	}
	return Date{Year: eyear, Month: ethiopianMonthByWalkIndex[m], Day: eday}
}
