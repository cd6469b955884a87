// Package ethiocal converts dates between the Ethiopian and Gregorian
// calendars.
//
// The Ethiopian calendar has twelve 30-day months followed by Pagume, a
// thirteenth month of 5 days, or 6 in years before an Ethiopian leap day.
// Conversions handle the Gregorian 4/100/400 leap rule, the Ethiopian 4-year
// cycle and the October 1582 calendar reform, whose skipped days have no
// Ethiopian equivalent.
//
// The arithmetic works on plain (year, month, day) triples:
//
//	g, err := ethiocal.ToGregorian(2015, 1, 1) // 2022-9-11
//	e, err := ethiocal.ToEthiopian(2022, 9, 11) // 2015-1-1
//
// A Julian Day Number bridge ([GregorianToJDN], [JDNToEthiopic] and their
// inverses) offers a second, purely proleptic path.
//
// A [Converter] adds formatting and localized names on top. The built-in
// tables cover Amharic, Tigrinya and Oromo; callers can register their own:
//
//	conv := ethiocal.New()
//	res, err := conv.Ethiopian(ethiocal.Date{Year: 2022, Month: 9, Day: 11})
//	res.Localized["am"] // "እሁድ, 1 መስከረም 2015"
package ethiocal

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/language"
)

// Method selects the arithmetic a Converter uses.
type Method int

const (
	// MethodDirect uses the rule-based conversion, which models the 1582
	// reform and rejects the dates it skipped.
	MethodDirect Method = iota
	// MethodJDN routes conversions through Julian Day Numbers. Every date
	// is treated as proleptic Gregorian.
	MethodJDN
)

func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodJDN:
		return "jdn"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses "direct" or "jdn".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "direct", "":
		return MethodDirect, nil
	case "jdn":
		return MethodJDN, nil
	}
	return 0, fmt.Errorf("unknown conversion method %q", s)
}

// Option configures a Converter.
type Option func(*Converter)

// WithMethod sets the conversion method. The default is MethodDirect.
func WithMethod(m Method) Option {
	return func(c *Converter) {
		c.method = m
	}
}

// Converter converts dates and renders them with localized names.
// Create one with [New]. All methods are safe for concurrent use.
type Converter struct {
	method Method

	mu      sync.RWMutex
	custom  map[string]Names
	removed map[string]bool
	tags    []language.Tag
	matcher language.Matcher
}

// New creates a Converter backed by the built-in name tables.
func New(opts ...Option) *Converter {
	c := &Converter{
		custom:  make(map[string]Names),
		removed: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rebuild()
	return c
}

// defaultConv is the package-level converter used by top-level functions.
var defaultConv = New()

// Method returns the conversion method in use.
func (c *Converter) Method() Method {
	return c.method
}

// rebuild recomputes the locale matcher. The caller must hold c.mu for
// writing, or have exclusive access to c.
func (c *Converter) rebuild() {
	var tags []language.Tag
	for key := range c.custom {
		tags = append(tags, language.Make(key))
	}
	for key := range builtinNames {
		if _, ok := c.custom[key]; ok || c.removed[key] {
			continue
		}
		tags = append(tags, language.Make(key))
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].String() < tags[j].String()
	})
	c.tags = tags
	c.matcher = nil
	if len(tags) > 0 {
		c.matcher = language.NewMatcher(tags)
	}
}

// lookup returns the names registered for exactly tag, checking custom
// tables first, then the built-in ones (unless removed).
func (c *Converter) lookup(tag language.Tag) (Names, bool) {
	key := tag.String()
	if n, ok := c.custom[key]; ok {
		return n, true
	}
	if c.removed[key] {
		return Names{}, false
	}
	n, ok := builtinNames[key]
	return n, ok
}

// Names returns the name table that best matches tag. A regional tag such
// as "am-ET" finds the "am" table.
func (c *Converter) Names(tag language.Tag) (Names, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if n, ok := c.lookup(tag); ok {
		return n, true
	}
	if c.matcher == nil {
		return Names{}, false
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return Names{}, false
	}
	return c.lookup(c.tags[idx])
}

// Locales returns the tags that have a name table, sorted.
func (c *Converter) Locales() []language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]language.Tag(nil), c.tags...)
}

// RegisterNames adds or replaces the name table for tag. A table registered
// for a built-in locale takes precedence over the built-in one.
func (c *Converter) RegisterNames(tag language.Tag, n Names) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := tag.String()
	c.custom[key] = n
	delete(c.removed, key)
	c.rebuild()
}

// RemoveNames removes the name table for tag. Built-in tables are
// suppressed; registering the tag again brings it back.
func (c *Converter) RemoveNames(tag language.Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := tag.String()
	delete(c.custom, key)
	if _, ok := builtinNames[key]; ok {
		c.removed[key] = true
	}
	c.rebuild()
}

// Gregorian converts the Ethiopian date d to the Gregorian calendar.
func (c *Converter) Gregorian(d Date) (GregorianResult, error) {
	if err := d.check(); err != nil {
		return GregorianResult{}, err
	}
	var g Date
	switch c.method {
	case MethodJDN:
		g = JDNToGregorian(EthiopicToJDN(d.Year, d.Month, d.Day))
	default:
		g = toGregorian(d.Year, d.Month, d.Day)
	}
	return newGregorianResult(g), nil
}

// Ethiopian converts the Gregorian date d to the Ethiopian calendar and
// renders it with every registered name table.
func (c *Converter) Ethiopian(d Date) (EthiopianResult, error) {
	if err := d.check(); err != nil {
		return EthiopianResult{}, err
	}
	jdn := GregorianToJDN(d.Year, d.Month, d.Day)
	var e Date
	switch c.method {
	case MethodJDN:
		e = JDNToEthiopic(jdn)
	default:
		if d.inReformGap() {
			return EthiopianResult{}, fmt.Errorf("%w: %v", ErrInvalidHistoricalDate, d)
		}
		e = toEthiopian(d.Year, d.Month, d.Day)
	}

	res := newEthiopianResult(e, d, Weekday(jdn))

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, tag := range c.tags {
		n, _ := c.lookup(tag)
		res.Localized[tag.String()] = n.Format(res.Weekday, e)
	}
	return res, nil
}

// --- Package-level convenience functions ---

// Gregorian converts an Ethiopian date using the default converter.
func Gregorian(d Date) (GregorianResult, error) { return defaultConv.Gregorian(d) }

// Ethiopian converts a Gregorian date using the default converter.
func Ethiopian(d Date) (EthiopianResult, error) { return defaultConv.Ethiopian(d) }

// LookupNames returns the best matching name table of the default converter.
func LookupNames(tag language.Tag) (Names, bool) { return defaultConv.Names(tag) }

// Locales returns the locales of the default converter.
func Locales() []language.Tag { return defaultConv.Locales() }

// RegisterNames registers a name table on the default converter.
func RegisterNames(tag language.Tag, n Names) { defaultConv.RegisterNames(tag, n) }

// RemoveNames removes a name table from the default converter.
func RemoveNames(tag language.Tag) { defaultConv.RemoveNames(tag) }
