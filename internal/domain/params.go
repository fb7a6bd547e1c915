package domain

// InvestmentParams holds the scalar inputs of one simulation run.
// Percent fields are plain numbers: 5 means 5%.
type InvestmentParams struct {
	InitialCapital      float64 `yaml:"initial_capital" json:"initial_capital" toml:"initial_capital" form:"initial_capital"`
	MonthlyContribution float64 `yaml:"monthly_contribution" json:"monthly_contribution" toml:"monthly_contribution" form:"monthly_contribution"`
	Years               int     `yaml:"years" json:"years" toml:"years" form:"years"`
	AnnualReturn        float64 `yaml:"annual_return" json:"annual_return" toml:"annual_return" form:"annual_return"`
	AnnualFees          float64 `yaml:"annual_fees" json:"annual_fees" toml:"annual_fees" form:"annual_fees"` // TER, drag on return
	TaxRate             float64 `yaml:"tax_rate" json:"tax_rate" toml:"tax_rate" form:"tax_rate"`             // capital gains, at exit
	InflationRate       float64 `yaml:"inflation_rate" json:"inflation_rate" toml:"inflation_rate" form:"inflation_rate"`
	StampDutyEnabled    bool    `yaml:"stamp_duty_enabled" json:"stamp_duty_enabled" toml:"stamp_duty_enabled" form:"stamp_duty_enabled"`
}

// ParamOverrides replaces individual base parameters for a scenario. Nil fields keep the base value.
type ParamOverrides struct {
	InitialCapital      *float64 `yaml:"initial_capital,omitempty" json:"initial_capital,omitempty" toml:"initial_capital,omitempty"`
	MonthlyContribution *float64 `yaml:"monthly_contribution,omitempty" json:"monthly_contribution,omitempty" toml:"monthly_contribution,omitempty"`
	Years               *int     `yaml:"years,omitempty" json:"years,omitempty" toml:"years,omitempty"`
	AnnualReturn        *float64 `yaml:"annual_return,omitempty" json:"annual_return,omitempty" toml:"annual_return,omitempty"`
	AnnualFees          *float64 `yaml:"annual_fees,omitempty" json:"annual_fees,omitempty" toml:"annual_fees,omitempty"`
	TaxRate             *float64 `yaml:"tax_rate,omitempty" json:"tax_rate,omitempty" toml:"tax_rate,omitempty"`
	InflationRate       *float64 `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty" toml:"inflation_rate,omitempty"`
	StampDutyEnabled    *bool    `yaml:"stamp_duty_enabled,omitempty" json:"stamp_duty_enabled,omitempty" toml:"stamp_duty_enabled,omitempty"`
}

// Apply returns base with every non-nil override written over it.
func (o ParamOverrides) Apply(base InvestmentParams) InvestmentParams {
	p := base
	if o.InitialCapital != nil {
		p.InitialCapital = *o.InitialCapital
	}
	if o.MonthlyContribution != nil {
		p.MonthlyContribution = *o.MonthlyContribution
	}
	if o.Years != nil {
		p.Years = *o.Years
	}
	if o.AnnualReturn != nil {
		p.AnnualReturn = *o.AnnualReturn
	}
	if o.AnnualFees != nil {
		p.AnnualFees = *o.AnnualFees
	}
	if o.TaxRate != nil {
		p.TaxRate = *o.TaxRate
	}
	if o.InflationRate != nil {
		p.InflationRate = *o.InflationRate
	}
	if o.StampDutyEnabled != nil {
		p.StampDutyEnabled = *o.StampDutyEnabled
	}
	return p
}

// Scenario is a named variation of the configuration's base parameters.
// Preset (prudent, balanced, aggressive) sets the annual return before overrides apply.
type Scenario struct {
	Name      string         `yaml:"name" json:"name" toml:"name"`
	Preset    string         `yaml:"preset,omitempty" json:"preset,omitempty" toml:"preset,omitempty"`
	Overrides ParamOverrides `yaml:"overrides,omitempty" json:"overrides,omitempty" toml:"overrides,omitempty"`
}

// Configuration is the top-level structure of a scenario file.
type Configuration struct {
	Language  string           `yaml:"language,omitempty" json:"language,omitempty" toml:"language,omitempty"`
	Base      InvestmentParams `yaml:"base" json:"base" toml:"base"`
	Scenarios []Scenario       `yaml:"scenarios" json:"scenarios" toml:"scenarios"`
}
