package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
)

// ErrUnsupportedFormat is returned when a report format name does not resolve.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter renders a comparison into one report document. Format must not write
// anywhere; WriteFormatted owns the file.
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name is the canonical format name used for lookup and file names.
	Name() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	filename := filepath.Join(dir, fmt.Sprintf("pacsim_report_%s_%s.%s", f.Name(), nowFunc().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters returns every registered formatter bound to loc.
func builtInFormatters(loc *i18n.Localizer) []Formatter {
	return []Formatter{
		ConsoleVerboseFormatter{Loc: loc},
		CSVSummarizer{},
		CSVDetailedExporter{},
		ConsoleFormatter{Loc: loc},
		HTMLFormatter{Loc: loc},
		JSONFormatter{},
	}
}

// GetFormatterByName fetches a registered formatter. A nil loc renders English.
func GetFormatterByName(name string, loc *i18n.Localizer) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters(loc) {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// FileExtension maps a canonical formatter name to a file extension.
func FileExtension(name string) string {
	switch {
	case strings.Contains(name, "csv"):
		return "csv"
	case strings.HasPrefix(name, "console"):
		return "txt"
	default:
		return name
	}
}

// aliasMap maps accepted synonyms to canonical names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"text":            "console-lite",
	"lite":            "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
}

// NormalizeFormatName trims, lowercases and resolves an alias.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames lists the canonical names, sorted.
func AvailableFormatterNames() []string {
	formatters := builtInFormatters(nil)
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted synonyms, sorted.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func localizer(loc *i18n.Localizer) *i18n.Localizer {
	if loc == nil {
		return i18n.New(i18n.BaseLocale)
	}
	return loc
}
