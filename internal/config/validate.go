package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/pac-simulator/internal/domain"
)

// ErrInvalidParams wraps every parameter validation failure.
var ErrInvalidParams = errors.New("invalid investment parameters")

// Accepted ranges for file and API input.
const (
	MaxInitialCapital      = 1e9
	MaxMonthlyContribution = 1e7
	MinYears               = 1
	MaxYears               = 50
	MinAnnualReturn        = -50.0
	MaxAnnualReturn        = 50.0
	MaxAnnualFees          = 10.0
	MaxTaxRate             = 100.0
	MinInflationRate       = -10.0
	MaxInflationRate       = 20.0
)

// FloatRange is an inclusive bound pair.
type FloatRange struct {
	Min, Max float64
}

// Clamp bounds v to the range, replacing a non-finite v with fallback.
func (r FloatRange) Clamp(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return math.Min(math.Max(v, r.Min), r.Max)
}

// Ranges offered by the interactive editor.
var (
	EditorInitialCapital      = FloatRange{0, 1_000_000}
	EditorMonthlyContribution = FloatRange{0, 10_000}
	EditorAnnualReturn        = FloatRange{0, 15}
	EditorAnnualFees          = FloatRange{0, 5}
	EditorTaxRate             = FloatRange{0, 100}
	EditorInflationRate       = FloatRange{0, 10}
)

func checkRange(field string, value, minInclusive, maxInclusive float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidParams, field)
	}
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%w: %s must be between %g and %g, got %g", ErrInvalidParams, field, minInclusive, maxInclusive, value)
	}
	return nil
}

// ValidateParams rejects non-finite or out-of-domain parameters before they reach the engine.
func ValidateParams(p domain.InvestmentParams) error {
	if err := checkRange("initial_capital", p.InitialCapital, 0, MaxInitialCapital); err != nil {
		return err
	}
	if err := checkRange("monthly_contribution", p.MonthlyContribution, 0, MaxMonthlyContribution); err != nil {
		return err
	}
	if p.Years < MinYears || p.Years > MaxYears {
		return fmt.Errorf("%w: years must be between %d and %d, got %d", ErrInvalidParams, MinYears, MaxYears, p.Years)
	}
	if err := checkRange("annual_return", p.AnnualReturn, MinAnnualReturn, MaxAnnualReturn); err != nil {
		return err
	}
	if err := checkRange("annual_fees", p.AnnualFees, 0, MaxAnnualFees); err != nil {
		return err
	}
	if err := checkRange("tax_rate", p.TaxRate, 0, MaxTaxRate); err != nil {
		return err
	}
	return checkRange("inflation_rate", p.InflationRate, MinInflationRate, MaxInflationRate)
}

// ClampParams forces every field into the editor ranges. Non-finite values become the defaults.
func ClampParams(p domain.InvestmentParams) domain.InvestmentParams {
	d := DefaultParams()
	return domain.InvestmentParams{
		InitialCapital:      EditorInitialCapital.Clamp(p.InitialCapital, d.InitialCapital),
		MonthlyContribution: EditorMonthlyContribution.Clamp(p.MonthlyContribution, d.MonthlyContribution),
		Years:               min(max(p.Years, MinYears), MaxYears),
		AnnualReturn:        EditorAnnualReturn.Clamp(p.AnnualReturn, d.AnnualReturn),
		AnnualFees:          EditorAnnualFees.Clamp(p.AnnualFees, d.AnnualFees),
		TaxRate:             EditorTaxRate.Clamp(p.TaxRate, d.TaxRate),
		InflationRate:       EditorInflationRate.Clamp(p.InflationRate, d.InflationRate),
		StampDutyEnabled:    p.StampDutyEnabled,
	}
}
