package calculation

import (
	"math"

	"github.com/rpgo/pac-simulator/internal/domain"
)

// StampDutyRate is the yearly levy on the invested balance, in percent.
const StampDutyRate = 0.2

const monthsPerYear = 12

// MonthlyRate converts an annual effective rate (as a fraction) to the geometric
// monthly rate that compounds back to it over twelve months.
func MonthlyRate(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/monthsPerYear) - 1
}

// InflationFactor is the cumulative price growth after the given number of years.
func InflationFactor(inflationRate float64, years int) float64 {
	return math.Pow(1+inflationRate/100, float64(years))
}

// Project simulates the plan month by month and returns the final figures and the
// yearly breakdown. Identical params always give identical results.
func Project(p domain.InvestmentParams) domain.InvestmentResult {
	// TER is a drag on return; floored so the monthly rate stays real.
	netRate := math.Max(0, p.AnnualReturn-p.AnnualFees) / 100
	grossRate := p.AnnualReturn / 100

	monthlyNet := MonthlyRate(netRate)
	monthlyGross := MonthlyRate(grossRate)

	balance := p.InitialCapital
	balanceNoFee := p.InitialCapital
	totalContributed := p.InitialCapital
	totalStampDuty := 0.0

	totalMonths := p.Years * monthsPerYear
	breakdown := make([]domain.YearlyBreakdown, 0, max(p.Years, 0))

	for month := 1; month <= totalMonths; month++ {
		// Deposit first so it earns this month's growth.
		balance += p.MonthlyContribution
		balanceNoFee += p.MonthlyContribution
		totalContributed += p.MonthlyContribution

		balance *= 1 + monthlyNet
		balanceNoFee *= 1 + monthlyGross

		if month%monthsPerYear != 0 {
			continue
		}
		year := month / monthsPerYear

		if p.StampDutyEnabled {
			duty := balance * StampDutyRate / 100
			balance -= duty
			totalStampDuty += duty
			balanceNoFee -= balanceNoFee * StampDutyRate / 100
		}

		annualContribution := p.MonthlyContribution * monthsPerYear
		if year == 1 {
			annualContribution += p.InitialCapital
		}

		breakdown = append(breakdown, domain.YearlyBreakdown{
			Year:                 year,
			ContributionsNominal: totalContributed,
			BalanceNominal:       balance,
			BalanceNoFee:         balanceNoFee,
			BalanceReal:          balance / InflationFactor(p.InflationRate, year),
			AnnualContribution:   annualContribution,
		})
	}

	// Capital gains tax is due once, on profit only.
	profit := math.Max(0, balance-totalContributed)
	tax := profit * p.TaxRate / 100
	postTax := balance - tax
	horizon := InflationFactor(p.InflationRate, p.Years)

	return domain.InvestmentResult{
		FinalNominalPreTax:      balance,
		FinalNominalPostTax:     postTax,
		FinalRealPostTax:        postTax / horizon,
		FinalNoFeeBalance:       balanceNoFee,
		TotalContributedNominal: totalContributed,
		TotalContributedReal:    totalContributed / horizon,
		TotalStampDuty:          totalStampDuty,
		OpportunityCostVsNoFee:  balanceNoFee - balance,
		CapitalGainsTax:         tax,
		Breakdown:               breakdown,
	}
}
