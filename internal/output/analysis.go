package output

import (
	"github.com/rpgo/pac-simulator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	FinalRealPostTax float64
	NetProfit        float64
}

// AnalyzeScenarios picks the scenario that leaves the most purchasing power after tax.
// Ties keep the earlier scenario.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	best := results.Scenarios[0]
	for _, sc := range results.Scenarios[1:] {
		if sc.Result.FinalRealPostTax > best.Result.FinalRealPostTax {
			best = sc
		}
	}
	return Recommendation{
		ScenarioName:     best.Name,
		FinalRealPostTax: best.Result.FinalRealPostTax,
		NetProfit:        best.Result.NetProfit(),
	}
}

// PotentialProfit is what a fee-free plan would have gained before tax.
func PotentialProfit(r domain.InvestmentResult) float64 {
	return r.FinalNoFeeBalance - r.TotalContributedNominal
}

// FeesAsPercentOfPotentialProfit reports how much of the fee-free gain the fees consumed.
// ok is false when there was no potential gain to consume.
func FeesAsPercentOfPotentialProfit(r domain.InvestmentResult) (pct float64, ok bool) {
	potential := PotentialProfit(r)
	if potential <= 0 {
		return 0, false
	}
	return r.OpportunityCostVsNoFee / potential * 100, true
}

// Efficiency is post-tax net profit as a percentage of deposits.
func Efficiency(r domain.InvestmentResult) (pct float64, ok bool) {
	if r.TotalContributedNominal == 0 {
		return 0, false
	}
	return r.NetProfit() / r.TotalContributedNominal * 100, true
}

// StampDutyShare is total stamp duty as a percentage of deposits.
func StampDutyShare(r domain.InvestmentResult) (pct float64, ok bool) {
	if r.TotalContributedNominal == 0 {
		return 0, false
	}
	return r.TotalStampDuty / r.TotalContributedNominal * 100, true
}

// IsLosingWealth reports whether inflation leaves less purchasing power than was deposited.
func IsLosingWealth(r domain.InvestmentResult) bool {
	return r.FinalRealPostTax < r.TotalContributedNominal
}
