// Command genlocales reads the localized weekday and month names from a CSV
// file and generates a Go source file containing them as a map literal.
//
// The CSV has a header row "locale,kind,index,name". kind is "weekday"
// (index 0-6, Sunday first) or "month" (index 1-13, Meskerem first). Every
// locale must define all 7 weekdays and all 13 months.
//
// Usage:
//
//	go run ./cmd/genlocales -input locales.csv -output names_data.go
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	numWeekdays = 7
	numMonths   = 13

	// Maximum input size to prevent memory exhaustion.
	maxCSVSize = 1 * 1024 * 1024
)

var expectedHeader = []string{"locale", "kind", "index", "name"}

type entry struct {
	locale string
	kind   string
	index  int
	name   string
}

// table holds the names of one locale as they are filled in.
type table struct {
	weekdays [numWeekdays]string
	months   [numMonths]string
}

func main() {
	input := flag.String("input", "locales.csv", "input CSV file")
	output := flag.String("output", "names_data.go", "output file path")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("genlocales: ")

	n, err := run(*input, *output)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d locales to %s", n, *output)
}

// run converts the CSV at input into Go source at output and returns the
// number of locales written.
func run(input, output string) (int, error) {
	f, err := os.Open(input)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	entries, err := parseCSV(io.LimitReader(f, maxCSVSize))
	if err != nil {
		return 0, fmt.Errorf("failed to parse CSV: %w", err)
	}

	tables, err := buildTables(entries)
	if err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}

	src, err := generate(tables)
	if err != nil {
		return 0, fmt.Errorf("failed to generate source: %w", err)
	}

	if err := os.WriteFile(output, src, 0644); err != nil {
		return 0, fmt.Errorf("failed to write output: %w", err)
	}
	return len(tables), nil
}

// parseCSV parses the locale names CSV and validates each row.
func parseCSV(r io.Reader) ([]entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(expectedHeader) {
		return nil, fmt.Errorf("unexpected header columns: %d (expected %d)", len(header), len(expectedHeader))
	}
	for i, col := range header {
		if strings.TrimSpace(col) != expectedHeader[i] {
			return nil, fmt.Errorf("unexpected header: %q (expected %q)", header, strings.Join(expectedHeader, ","))
		}
	}

	var entries []entry
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		lineNum++

		if isBlank(record) {
			continue
		}
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", lineNum, len(expectedHeader), len(record))
		}

		e, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func parseRecord(record []string) (entry, error) {
	tag, err := language.Parse(strings.TrimSpace(record[0]))
	if err != nil {
		return entry{}, fmt.Errorf("invalid locale %q: %w", record[0], err)
	}

	kind := strings.TrimSpace(record[1])
	index, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return entry{}, fmt.Errorf("invalid index %q: %w", record[2], err)
	}
	switch kind {
	case "weekday":
		if index < 0 || index >= numWeekdays {
			return entry{}, fmt.Errorf("weekday index %d out of range 0-%d", index, numWeekdays-1)
		}
	case "month":
		if index < 1 || index > numMonths {
			return entry{}, fmt.Errorf("month index %d out of range 1-%d", index, numMonths)
		}
	default:
		return entry{}, fmt.Errorf("unknown kind %q (expected weekday or month)", kind)
	}

	name := norm.NFC.String(strings.TrimSpace(record[3]))
	if name == "" {
		return entry{}, fmt.Errorf("empty name for %s %s %d", tag, kind, index)
	}
	return entry{locale: tag.String(), kind: kind, index: index, name: name}, nil
}

// buildTables groups entries by locale and checks that every locale is
// complete and free of duplicates.
func buildTables(entries []entry) (map[string]*table, error) {
	tables := make(map[string]*table)
	for _, e := range entries {
		t, ok := tables[e.locale]
		if !ok {
			t = &table{}
			tables[e.locale] = t
		}
		var slot *string
		if e.kind == "weekday" {
			slot = &t.weekdays[e.index]
		} else {
			slot = &t.months[e.index-1]
		}
		if *slot != "" {
			return nil, fmt.Errorf("%s: duplicate %s %d", e.locale, e.kind, e.index)
		}
		*slot = e.name
	}

	if len(tables) == 0 {
		return nil, fmt.Errorf("no locales found")
	}
	for locale, t := range tables {
		for i, name := range t.weekdays {
			if name == "" {
				return nil, fmt.Errorf("%s: missing weekday %d", locale, i)
			}
		}
		for i, name := range t.months {
			if name == "" {
				return nil, fmt.Errorf("%s: missing month %d", locale, i+1)
			}
		}
	}
	return tables, nil
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return strings.Join(quoted, ", ")
}

// generate produces a formatted Go source file containing the name tables.
func generate(tables map[string]*table) ([]byte, error) {
	locales := make([]string, 0, len(tables))
	for locale := range tables {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	var b strings.Builder
	b.WriteString("// Code generated by cmd/genlocales; DO NOT EDIT.\n\n")
	b.WriteString("package ethiocal\n\n")
	b.WriteString("var builtinNames = map[string]Names{\n")
	for _, locale := range locales {
		t := tables[locale]
		fmt.Fprintf(&b, "\t%q: {\n", locale)
		fmt.Fprintf(&b, "\t\tWeekdays: [%d]string{%s},\n", numWeekdays, quoteAll(t.weekdays[:]))
		fmt.Fprintf(&b, "\t\tMonths: [%d]string{%s},\n", numMonths, quoteAll(t.months[:]))
		b.WriteString("\t},\n")
	}
	b.WriteString("}\n")

	return format.Source([]byte(b.String()))
}
