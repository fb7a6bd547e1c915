// Package i18n holds the embedded message catalogs and the locale-aware
// number formatting used by every output surface.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en"

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle is a set of loaded locale catalogs.
type Bundle struct {
	builder  *catalog.Builder
	tags     []language.Tag
	matcher  language.Matcher
	messages map[language.Tag]map[string]string
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var defaultBundle = mustLoadEmbedded()

func mustLoadEmbedded() *Bundle {
	b, err := LoadFromFS(embeddedLocales)
	if err != nil {
		panic(fmt.Sprintf("load embedded catalogs: %v", err))
	}
	return b
}

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadFromFS loads every locales/*.yaml file in fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	base := language.Make(BaseLocale)
	b := &Bundle{
		builder:  catalog.NewBuilder(catalog.Fallback(base)),
		messages: map[language.Tag]map[string]string{},
	}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := b.add(path, file); err != nil {
			return nil, err
		}
	}

	baseMessages, ok := b.messages[base]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	// catalog.Fallback only covers missing languages, so missing keys are filled per tag.
	for _, tag := range b.tags {
		if tag == base {
			continue
		}
		for key, msg := range baseMessages {
			if _, ok := b.messages[tag][key]; ok {
				continue
			}
			if err := b.builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("fallback %s: key %s: %w", tag, key, err)
			}
		}
	}

	// The matcher treats its first tag as the default.
	sort.SliceStable(b.tags, func(i, j int) bool {
		if b.tags[i] == base {
			return true
		}
		if b.tags[j] == base {
			return false
		}
		return b.tags[i].String() < b.tags[j].String()
	})
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

func (b *Bundle) add(path string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", path)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", path, err)
	}
	if file.Messages == nil {
		return fmt.Errorf("catalog %s: messages map is required", path)
	}
	if _, dup := b.messages[tag]; dup {
		return fmt.Errorf("catalog %s: locale %s defined twice", path, tag)
	}

	for key, msg := range file.Messages {
		if err := b.builder.SetString(tag, key, msg); err != nil {
			return fmt.Errorf("catalog %s: key %s: %w", path, key, err)
		}
	}
	b.messages[tag] = file.Messages
	b.tags = append(b.tags, tag)
	return nil
}

// Languages lists the loaded locales, base locale first.
func (b *Bundle) Languages() []string {
	out := make([]string, len(b.tags))
	for i, t := range b.tags {
		out[i] = t.String()
	}
	return out
}

// Keys returns the sorted message keys defined for a locale.
func (b *Bundle) Keys(lang string) []string {
	msgs := b.messages[b.Match(lang)]
	keys := make([]string, 0, len(msgs))
	for k := range msgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Match returns the closest supported tag for a BCP 47 string or an
// Accept-Language header value. Unknown input yields the base locale.
func (b *Bundle) Match(lang string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return b.tags[0]
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.tags[0]
	}
	return b.tags[idx]
}

// Localizer returns a localizer for the closest supported locale.
func (b *Bundle) Localizer(lang string) *Localizer {
	tag := b.Match(lang)
	l := &Localizer{
		Tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.builder)),
	}
	// 1234.5 renders as "1,234.5" or "1.234,5"; the separators are read back from it.
	sample := []rune(l.printer.Sprint(number.Decimal(1234.5, number.MinFractionDigits(1))))
	l.group, l.decimal = ',', '.'
	if len(sample) == 7 {
		l.group, l.decimal = sample[1], sample[5]
	}
	return l
}

// Localizer renders catalog messages and numbers for one locale.
type Localizer struct {
	Tag     language.Tag
	printer *message.Printer
	group   rune
	decimal rune
}

// New returns a localizer from the default bundle.
func New(lang string) *Localizer {
	return Default().Localizer(lang)
}

// Lang returns the locale code, e.g. "it".
func (l *Localizer) Lang() string {
	base, _ := l.Tag.Base()
	return base.String()
}

// Text renders a catalog message with fmt-style arguments.
func (l *Localizer) Text(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Currency formats a EUR amount with no decimals.
func (l *Localizer) Currency(amount float64) string {
	if !finite(amount) {
		return l.Text("placeholder.na")
	}
	rounded := math.Round(amount)
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	digits := l.printer.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
	return sign + l.Text("format.currency", digits)
}

// Percent formats a value already expressed in percent units, e.g. 26 gives "26.0%".
func (l *Localizer) Percent(value float64) string {
	if !finite(value) {
		return l.Text("placeholder.na")
	}
	digits := l.printer.Sprint(number.Decimal(value, number.MinFractionDigits(1), number.MaxFractionDigits(2)))
	return l.Text("format.percent", digits)
}

// Ratio formats num/den as a percentage, or the n/a placeholder when den is zero.
func (l *Localizer) Ratio(num, den float64) string {
	if den == 0 || !finite(num) || !finite(den) {
		return l.Text("placeholder.na")
	}
	return l.Percent(num / den * 100)
}

// PresetLabel is the display name of a return preset key such as "balanced".
func (l *Localizer) PresetLabel(preset string) string {
	return l.Text("preset." + preset)
}

// ErrInvalidNumber is returned by ParseNumber for input outside the locale notation.
var ErrInvalidNumber = errors.New("invalid number")

// Separators returns the locale's digit group and decimal marks.
func (l *Localizer) Separators() (group, decimal rune) {
	return l.group, l.decimal
}

// FormatInput renders v for an editable field: locale decimal mark, no grouping.
func (l *Localizer) FormatInput(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", string(l.decimal), 1)
}

// ParseNumber reads a number typed in the locale notation, "1,500.50" in en or
// "1.500,50" in it. Group marks are optional but must split the integer part in threes.
func (l *Localizer) ParseNumber(s string) (float64, error) {
	raw := s
	s = strings.TrimSpace(s)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, string(l.decimal))
	if hasFrac && !allDigits(frac) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	if strings.ContainsRune(intPart, l.group) {
		groups := strings.Split(intPart, string(l.group))
		if len(groups[0]) == 0 || len(groups[0]) > 3 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
		}
		for _, g := range groups[1:] {
			if len(g) != 3 {
				return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
			}
		}
		intPart = strings.Join(groups, "")
	}
	if intPart == "" && hasFrac {
		intPart = "0"
	}
	if !allDigits(intPart) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}

	num := sign + intPart
	if hasFrac {
		num += "." + frac
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return v, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
