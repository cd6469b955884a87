package ethiocal_test

import (
	"errors"
	"fmt"

	"github.com/rabitt1ove/ethiocal"
	"golang.org/x/text/language"
)

func ExampleToGregorian() {
	g, err := ethiocal.ToGregorian(2015, 1, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(g)
	// Output: 2022-9-11
}

func ExampleToEthiopian() {
	e, err := ethiocal.ToEthiopian(2008, 9, 10)
	if err != nil {
		panic(err)
	}
	fmt.Println(e.DMY())
	// Output: 5-13-2000
}

func ExampleToEthiopian_reformGap() {
	_, err := ethiocal.ToEthiopian(1582, 10, 10)
	fmt.Println(errors.Is(err, ethiocal.ErrInvalidHistoricalDate))
	// Output: true
}

func ExampleParseDate() {
	d, err := ethiocal.ParseDate("2022-09-11")
	if err != nil {
		panic(err)
	}
	e, _ := ethiocal.ToEthiopian(d.Year, d.Month, d.Day)
	fmt.Println(e.Slice())
	// Output: [2015 1 1]
}

func ExampleConverter_Ethiopian() {
	conv := ethiocal.New()
	res, err := conv.Ethiopian(ethiocal.Date{Year: 2022, Month: 9, Day: 11})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.YMD, res.Weekday)
	fmt.Println(res.Localized["am"])
	// Output:
	// 2015-1-1 Sunday
	// እሁድ, 1 መስከረም 2015
}

func ExampleConverter_Gregorian() {
	res, err := ethiocal.Gregorian(ethiocal.Date{Year: 1999, Month: 13, Day: 6})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Formatted)
	// Output: 11 September 2007
}

func ExampleConverter_Names() {
	names, ok := ethiocal.LookupNames(language.MustParse("ti-ER"))
	fmt.Println(ok, names.Month(13))
	// Output: true ጳጉሜ
}

func ExampleWithMethod() {
	conv := ethiocal.New(ethiocal.WithMethod(ethiocal.MethodJDN))
	res, _ := conv.Ethiopian(ethiocal.Date{Year: 1582, Month: 10, Day: 4})
	fmt.Println(res.Date)
	// Output: 1575-1-27
}

func ExampleJDNToEthiopic() {
	jdn := ethiocal.GregorianToJDN(2022, 9, 11)
	fmt.Println(jdn, ethiocal.JDNToEthiopic(jdn), ethiocal.Weekday(jdn))
	// Output: 2459834 2015-1-1 Sunday
}

func ExampleNextNewYear() {
	ny, _ := ethiocal.NextNewYear(ethiocal.Date{Year: 2026, Month: 10, Day: 17})
	fmt.Println(ny)
	// Output: 2027-9-12
}

func ExampleAddDays() {
	d, err := ethiocal.AddDays(ethiocal.Date{Year: 2015, Month: 13, Day: 6}, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d)
	// Output: 2016-1-1
}
