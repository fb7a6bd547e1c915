package output

import (
	"github.com/rpgo/pac-simulator/internal/calculation"
	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
)

// GenerateAssumptions lists the modeling assumptions behind one parameter set.
func GenerateAssumptions(loc *i18n.Localizer, p domain.InvestmentParams) []string {
	stamp := loc.Text("assumption.stamp_duty_off")
	if p.StampDutyEnabled {
		stamp = loc.Text("assumption.stamp_duty_on", loc.Percent(calculation.StampDutyRate))
	}
	return []string{
		loc.Text("assumption.return", loc.Percent(p.AnnualReturn)),
		loc.Text("assumption.fees", loc.Percent(p.AnnualFees)),
		loc.Text("assumption.tax", loc.Percent(p.TaxRate)),
		loc.Text("assumption.inflation", loc.Percent(p.InflationRate)),
		stamp,
		loc.Text("assumption.compounding"),
		loc.Text("assumption.contribution_timing"),
	}
}
