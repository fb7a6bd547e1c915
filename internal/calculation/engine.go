package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/pac-simulator/internal/domain"
)

// CalculationEngine runs projections for configured scenarios.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ResolveScenario applies the scenario preset and overrides to base.
func ResolveScenario(base domain.InvestmentParams, scenario *domain.Scenario) (domain.InvestmentParams, error) {
	params := base
	if scenario.Preset != "" {
		var err error
		if params, err = ApplyPreset(params, scenario.Preset); err != nil {
			return base, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
	}
	return scenario.Overrides.Apply(params), nil
}

// RunParams projects a single parameter set under the given scenario name.
func (ce *CalculationEngine) RunParams(name string, params domain.InvestmentParams) *domain.ScenarioSummary {
	result := Project(params)
	ce.Logger.Debugf("scenario %q: %d years, pre-tax %.2f, post-tax %.2f, real %.2f",
		name, params.Years, result.FinalNominalPreTax, result.FinalNominalPostTax, result.FinalRealPostTax)
	return &domain.ScenarioSummary{Name: name, Params: params, Result: result}
}

// RunScenario resolves a scenario against base and projects it.
func (ce *CalculationEngine) RunScenario(ctx context.Context, base domain.InvestmentParams, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params, err := ResolveScenario(base, scenario)
	if err != nil {
		return nil, err
	}
	return ce.RunParams(scenario.Name, params), nil
}

// RunScenarios projects every scenario of the configuration in file order.
// A configuration without scenarios projects the base parameters alone.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := config.Scenarios
	if len(scenarios) == 0 {
		scenarios = []domain.Scenario{{Name: "base"}}
	}

	comparison := &domain.ScenarioComparison{Scenarios: make([]domain.ScenarioSummary, 0, len(scenarios))}
	for i := range scenarios {
		summary, err := ce.RunScenario(ctx, config.Base, &scenarios[i])
		if err != nil {
			ce.Logger.Errorf("scenario %d failed: %v", i, err)
			return nil, fmt.Errorf("failed to run scenario %d: %w", i, err)
		}
		comparison.Scenarios = append(comparison.Scenarios, *summary)
	}
	ce.Logger.Infof("projected %d scenario(s)", len(comparison.Scenarios))
	return comparison, nil
}

// ComparePresets projects params once per preset, keeping every other input fixed.
// label turns a preset key into the scenario name; nil keeps the key.
func (ce *CalculationEngine) ComparePresets(params domain.InvestmentParams, label func(preset string) string) *domain.ScenarioComparison {
	comparison := &domain.ScenarioComparison{}
	for _, p := range Presets() {
		adjusted := params
		adjusted.AnnualReturn = p.AnnualReturn
		name := p.Name
		if label != nil {
			name = label(p.Name)
		}
		comparison.Scenarios = append(comparison.Scenarios, *ce.RunParams(name, adjusted))
	}
	return comparison
}
