package calculation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rpgo/pac-simulator/internal/domain"
)

// Preset is a named expected-return profile offered by the parameter editor.
type Preset struct {
	Name         string  `json:"name"`
	AnnualReturn float64 `json:"annual_return"`
}

var presets = map[string]Preset{
	"prudent":    {Name: "prudent", AnnualReturn: 3},
	"balanced":   {Name: "balanced", AnnualReturn: 5},
	"aggressive": {Name: "aggressive", AnnualReturn: 8},
}

// ErrUnknownPreset is returned when a scenario names a preset that does not exist.
var ErrUnknownPreset = errors.New("unknown preset")

// Presets returns all presets ordered by expected return.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AnnualReturn < out[j].AnnualReturn })
	return out
}

// LookupPreset finds a preset by case-insensitive name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// ApplyPreset sets the annual return of params to the named preset.
func ApplyPreset(params domain.InvestmentParams, name string) (domain.InvestmentParams, error) {
	p, ok := LookupPreset(name)
	if !ok {
		return params, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	params.AnnualReturn = p.AnnualReturn
	return params, nil
}
