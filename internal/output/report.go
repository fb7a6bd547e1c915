package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
	"gopkg.in/yaml.v3"
)

// allFormats is what the "all" pseudo-format writes.
var allFormats = []string{"console", "detailed-csv", "html"}

// GenerateReport writes results in the named format as timestamped files under dir.
// "all" writes the console, detailed CSV and HTML reports. It returns the written paths.
func GenerateReport(results *domain.ScenarioComparison, format, dir string, loc *i18n.Localizer) ([]string, error) {
	names := []string{format}
	if NormalizeFormatName(format) == "all" {
		names = allFormats
	}

	var written []string
	for _, name := range names {
		f := GetFormatterByName(name, loc)
		if f == nil {
			// enrich error with available formatters and aliases
			return written, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
		}
		path, err := WriteFormatted(f, results, dir, FileExtension(f.Name()))
		if err != nil {
			return written, fmt.Errorf("failed to write %s report: %w", f.Name(), err)
		}
		written = append(written, path)
	}
	return written, nil
}

// SaveConfiguration writes a configuration file as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
