package ethiocal

import (
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestConverter_Ethiopian(t *testing.T) {
	t.Parallel()

	res, err := New().Ethiopian(Date{2022, 9, 11})
	if err != nil {
		t.Fatalf("Ethiopian error: %v", err)
	}
	if res.Date != (Date{2015, 1, 1}) {
		t.Errorf("Date = %v, want 2015-1-1", res.Date)
	}
	if res.DMY != "1-1-2015" || res.MDY != "1-1-2015" || res.YMD != "2015-1-1" {
		t.Errorf("formats = %q %q %q", res.DMY, res.MDY, res.YMD)
	}
	if res.Weekday != time.Sunday {
		t.Errorf("Weekday = %v, want Sunday", res.Weekday)
	}
	if want := time.Date(2022, time.September, 11, 0, 0, 0, 0, time.UTC); !res.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", res.Time, want)
	}

	wantLocalized := map[string]string{
		"am": "እሁድ, 1 መስከረም 2015",
		"ti": "ሰምበት, 1 መስከረም 2015",
		"om": "Dilbata, 1 Fuulbana 2015",
	}
	if len(res.Localized) != len(wantLocalized) {
		t.Errorf("Localized has %d entries, want %d", len(res.Localized), len(wantLocalized))
	}
	for tag, want := range wantLocalized {
		if got := res.Localized[tag]; got != want {
			t.Errorf("Localized[%q] = %q, want %q", tag, got, want)
		}
	}
}

func TestConverter_Gregorian(t *testing.T) {
	t.Parallel()

	res, err := New().Gregorian(Date{2015, 1, 1})
	if err != nil {
		t.Fatalf("Gregorian error: %v", err)
	}
	if res.Date != (Date{2022, 9, 11}) {
		t.Errorf("Date = %v, want 2022-9-11", res.Date)
	}
	if res.Formatted != "11 September 2022" {
		t.Errorf("Formatted = %q", res.Formatted)
	}
	if res.DMY != "11-9-2022" || res.MDY != "9-11-2022" || res.YMD != "2022-9-11" {
		t.Errorf("formats = %q %q %q", res.DMY, res.MDY, res.YMD)
	}
}

// A loose input yields a loose date; Time is normalized.
func TestConverter_GregorianLoose(t *testing.T) {
	t.Parallel()

	res, err := New().Gregorian(Date{2015, 13, 30})
	if err != nil {
		t.Fatalf("Gregorian error: %v", err)
	}
	if res.Date != (Date{2023, 9, 35}) {
		t.Errorf("Date = %v, want 2023-9-35", res.Date)
	}
	if res.Formatted != "35 September 2023" {
		t.Errorf("Formatted = %q", res.Formatted)
	}
	if want := time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC); !res.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", res.Time, want)
	}
}

func TestConverter_Errors(t *testing.T) {
	t.Parallel()

	conv := New()
	if _, err := conv.Gregorian(Date{2015, 0, 1}); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Gregorian error = %v, want ErrMalformedInput", err)
	}
	if _, err := conv.Ethiopian(Date{0, 9, 11}); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Ethiopian error = %v, want ErrMalformedInput", err)
	}
	if _, err := conv.Ethiopian(Date{1582, 10, 10}); !errors.Is(err, ErrInvalidHistoricalDate) {
		t.Errorf("Ethiopian error = %v, want ErrInvalidHistoricalDate", err)
	}
}

func TestConverter_MethodJDN(t *testing.T) {
	t.Parallel()

	conv := New(WithMethod(MethodJDN))
	if conv.Method() != MethodJDN {
		t.Fatalf("Method() = %v, want jdn", conv.Method())
	}

	// The bridge is proleptic, so the reform gap converts.
	res, err := conv.Ethiopian(Date{1582, 10, 10})
	if err != nil {
		t.Fatalf("Ethiopian(1582-10-10) error: %v", err)
	}
	if res.Date != (Date{1575, 2, 3}) || res.Weekday != time.Sunday {
		t.Errorf("Ethiopian(1582-10-10) = %v (%v), want 1575-2-3 (Sunday)", res.Date, res.Weekday)
	}

	res, _ = conv.Ethiopian(Date{1582, 10, 4})
	if res.Date != (Date{1575, 1, 27}) {
		t.Errorf("Ethiopian(1582-10-4) = %v, want 1575-1-27", res.Date)
	}

	g, err := conv.Gregorian(Date{1575, 2, 7})
	if err != nil {
		t.Fatalf("Gregorian error: %v", err)
	}
	if g.Date != (Date{1582, 10, 14}) {
		t.Errorf("Gregorian(1575-2-7) = %v, want 1582-10-14", g.Date)
	}

	// Both methods agree in modern times.
	direct, _ := New().Ethiopian(Date{2026, 10, 17})
	bridged, _ := conv.Ethiopian(Date{2026, 10, 17})
	if direct.Date != bridged.Date || direct.Localized["am"] != bridged.Localized["am"] {
		t.Errorf("direct %v and JDN %v disagree", direct.Date, bridged.Date)
	}
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"", MethodDirect, false},
		{"direct", MethodDirect, false},
		{"jdn", MethodJDN, false},
		{"JDN", 0, true},
		{"julian", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMethod(%q) error = %v, wantErr = %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := Method(7).String(); got != "Method(7)" {
		t.Errorf("Method(7).String() = %q", got)
	}
}

func TestConverter_Names(t *testing.T) {
	t.Parallel()

	conv := New()
	tests := []struct {
		tag     string
		want    string
		wantErr bool
	}{
		{"am", "መስከረም", false},
		{"am-ET", "መስከረም", false},
		{"ti-ER", "መስከረም", false},
		{"om", "Fuulbana", false},
		{"om-KE", "Fuulbana", false},
		{"fr", "", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.tag, func(t *testing.T) {
			n, ok := conv.Names(language.MustParse(tt.tag))
			if ok == tt.wantErr {
				t.Fatalf("Names(%s) ok = %v", tt.tag, ok)
			}
			if got := n.Month(1); got != tt.want {
				t.Errorf("Names(%s).Month(1) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}

	if got := conv.Locales(); len(got) != 3 || got[0].String() != "am" {
		t.Errorf("Locales() = %v", got)
	}
}

func TestNames_OutOfRange(t *testing.T) {
	t.Parallel()

	n, _ := LookupNames(language.Amharic)
	if got := n.Month(0); got != "" {
		t.Errorf("Month(0) = %q", got)
	}
	if got := n.Month(14); got != "" {
		t.Errorf("Month(14) = %q", got)
	}
	if got := n.Month(13); got != "ጳጉሜ" {
		t.Errorf("Month(13) = %q", got)
	}
	if got := n.Weekday(time.Weekday(7)); got != "" {
		t.Errorf("Weekday(7) = %q", got)
	}
}

// --- Custom name table tests ---

var somali = language.MustParse("so")

var testNames = Names{
	Weekdays: [7]string{"Axad", "Isniin", "Talaado", "Arbaco", "Khamiis", "Jimco", "Sabti"},
	Months:   [13]string{"M1", "M2", "M3", "M4", "M5", "M6", "M7", "M8", "M9", "M10", "M11", "M12", "M13"},
}

func TestRegisterNames_AddAndRemove(t *testing.T) {
	conv := New()
	so := somali

	if _, ok := conv.Names(so); ok {
		t.Fatal("Somali should not be registered by default")
	}

	conv.RegisterNames(so, testNames)
	n, ok := conv.Names(so)
	if !ok || n.Weekday(time.Sunday) != "Axad" {
		t.Fatalf("Names(so) = %v, %v", n, ok)
	}
	res, _ := conv.Ethiopian(Date{2022, 9, 11})
	if got := res.Localized["so"]; got != "Axad, 1 M1 2015" {
		t.Errorf("Localized[so] = %q", got)
	}
	if len(conv.Locales()) != 4 {
		t.Errorf("Locales() = %v, want 4 entries", conv.Locales())
	}

	conv.RemoveNames(so)
	if _, ok := conv.Names(so); ok {
		t.Fatal("Somali should be gone after removal")
	}
}

func TestRegisterNames_OverridesBuiltin(t *testing.T) {
	conv := New()
	conv.RegisterNames(language.Amharic, testNames)

	res, _ := conv.Ethiopian(Date{2022, 9, 11})
	if got := res.Localized["am"]; got != "Axad, 1 M1 2015" {
		t.Errorf("custom table should take precedence, got %q", got)
	}
}

func TestRemoveNames_BuiltinAndRestore(t *testing.T) {
	conv := New()
	conv.RemoveNames(language.Amharic)

	if _, ok := conv.Names(language.Amharic); ok {
		t.Fatal("Amharic should be suppressed")
	}
	res, _ := conv.Ethiopian(Date{2022, 9, 11})
	if _, ok := res.Localized["am"]; ok {
		t.Error("removed table should not be rendered")
	}

	conv.RegisterNames(language.Amharic, builtinNames["am"])
	res, _ = conv.Ethiopian(Date{2022, 9, 11})
	if got := res.Localized["am"]; got != "እሁድ, 1 መስከረም 2015" {
		t.Errorf("Localized[am] = %q after restore", got)
	}
}

func TestRemoveNames_AllTables(t *testing.T) {
	conv := New()
	for _, tag := range conv.Locales() {
		conv.RemoveNames(tag)
	}
	if _, ok := conv.Names(language.Amharic); ok {
		t.Error("no table should match")
	}
	res, err := conv.Ethiopian(Date{2022, 9, 11})
	if err != nil || len(res.Localized) != 0 {
		t.Errorf("Ethiopian = %v, %v; want no localized output", res.Localized, err)
	}
}

func TestRegisterNames_DoesNotAffectDefault(t *testing.T) {
	conv := New()
	conv.RegisterNames(somali, testNames)

	if _, ok := LookupNames(somali); ok {
		t.Fatal("package-level lookup should not see conv's table")
	}
}

func TestRemoveNames_NoEffect(t *testing.T) {
	conv := New()
	// Removing an unknown table should not panic.
	conv.RemoveNames(somali)
	if len(conv.Locales()) != 3 {
		t.Errorf("Locales() = %v", conv.Locales())
	}
}

func TestPackageLevel(t *testing.T) {
	res, err := Ethiopian(Date{2022, 9, 11})
	if err != nil || res.Date != (Date{2015, 1, 1}) {
		t.Errorf("Ethiopian = %v, %v", res.Date, err)
	}
	g, err := Gregorian(Date{2015, 1, 1})
	if err != nil || g.Date != (Date{2022, 9, 11}) {
		t.Errorf("Gregorian = %v, %v", g.Date, err)
	}
	if len(Locales()) < 3 {
		t.Errorf("Locales() = %v", Locales())
	}
}

// --- Concurrency tests ---

func TestConcurrentAccess(t *testing.T) {
	conv := New()
	var wg sync.WaitGroup

	// Concurrent reads.
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conv.Ethiopian(Date{2022, 9, 11})
			conv.Gregorian(Date{2015, 1, 1})
			conv.Names(language.Amharic)
			conv.Locales()
		}()
	}

	// Concurrent writes.
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tag := somali
			if i%2 == 0 {
				tag = language.MustParse("ti")
			}
			conv.RegisterNames(tag, testNames)
			conv.RemoveNames(tag)
		}(i)
	}

	wg.Wait()
}
