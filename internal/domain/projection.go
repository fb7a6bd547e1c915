package domain

// YearlyBreakdown is the state of the plan at the end of one simulated year.
type YearlyBreakdown struct {
	Year                 int     `json:"year"`
	ContributionsNominal float64 `json:"contributions_nominal"` // cumulative deposits
	BalanceNominal       float64 `json:"balance_nominal"`       // net of TER and stamp duty
	BalanceNoFee         float64 `json:"balance_no_fee"`
	BalanceReal          float64 `json:"balance_real"` // BalanceNominal in today's money
	AnnualContribution   float64 `json:"annual_contribution"`
}

// Gain returns the pre-tax profit accrued up to this year.
func (y YearlyBreakdown) Gain() float64 {
	return y.BalanceNominal - y.ContributionsNominal
}

// OpportunityCost returns the growth lost to fees up to this year.
func (y YearlyBreakdown) OpportunityCost() float64 {
	return y.BalanceNoFee - y.BalanceNominal
}

// InvestmentResult summarizes a completed projection.
type InvestmentResult struct {
	FinalNominalPreTax      float64           `json:"final_nominal_pre_tax"`
	FinalNominalPostTax     float64           `json:"final_nominal_post_tax"`
	FinalRealPostTax        float64           `json:"final_real_post_tax"`
	FinalNoFeeBalance       float64           `json:"final_no_fee_balance"`
	TotalContributedNominal float64           `json:"total_contributed_nominal"`
	TotalContributedReal    float64           `json:"total_contributed_real"`
	TotalStampDuty          float64           `json:"total_stamp_duty"`
	OpportunityCostVsNoFee  float64           `json:"opportunity_cost_vs_no_fee"`
	CapitalGainsTax         float64           `json:"capital_gains_tax"`
	Breakdown               []YearlyBreakdown `json:"breakdown"`
}

// NetProfit is the post-tax gain over everything deposited.
func (r InvestmentResult) NetProfit() float64 {
	return r.FinalNominalPostTax - r.TotalContributedNominal
}

// ScenarioSummary pairs a scenario's resolved parameters with its projection.
type ScenarioSummary struct {
	Name   string           `json:"name"`
	Params InvestmentParams `json:"params"`
	Result InvestmentResult `json:"result"`
}

// ScenarioComparison is the input of every report formatter.
type ScenarioComparison struct {
	Scenarios []ScenarioSummary `json:"scenarios"`
}
