package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/pac-simulator/internal/calculation"
	"github.com/rpgo/pac-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrScenarioNotFound is returned by FindScenario for an unknown name.
var ErrScenarioNotFound = errors.New("scenario not found")

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML, JSON or TOML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, filepath.Ext(filename))
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// Parse decodes configuration bytes. The extension selects the decoder; anything
// other than .toml goes through the YAML decoder, which also accepts JSON.
func (ip *InputParser) Parse(data []byte, ext string) (*domain.Configuration, error) {
	config := domain.Configuration{Base: DefaultParams()}
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	return &config, nil
}

// ValidateConfiguration validates the base parameters and every resolved scenario.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ValidateParams(config.Base); err != nil {
		return fmt.Errorf("base parameters: %w", err)
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if strings.TrimSpace(scenario.Name) == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true

		params, err := calculation.ResolveScenario(config.Base, scenario)
		if err != nil {
			return err
		}
		if err := ValidateParams(params); err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
	}
	return nil
}

// FindScenario returns the configuration's scenario with the given name.
func FindScenario(config *domain.Configuration, name string) (*domain.Scenario, error) {
	for i := range config.Scenarios {
		if config.Scenarios[i].Name == name {
			return &config.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrScenarioNotFound, name)
}

// DefaultParams returns the parameters the editor starts with.
func DefaultParams() domain.InvestmentParams {
	return domain.InvestmentParams{
		InitialCapital:      10000,
		MonthlyContribution: 500,
		Years:               20,
		AnnualReturn:        5,
		AnnualFees:          0.2,
		TaxRate:             26,
		InflationRate:       2,
	}
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	stampDuty := true
	lowCost := 0.07
	return &domain.Configuration{
		Language: "en",
		Base:     DefaultParams(),
		Scenarios: []domain.Scenario{
			{Name: "Prudent", Preset: "prudent"},
			{Name: "Balanced", Preset: "balanced"},
			{Name: "Aggressive", Preset: "aggressive"},
			{Name: "Balanced with stamp duty", Preset: "balanced", Overrides: domain.ParamOverrides{StampDutyEnabled: &stampDuty}},
			{Name: "Low-cost ETF", Overrides: domain.ParamOverrides{AnnualFees: &lowCost}},
		},
	}
}
