package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/pkg/decimal"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

// Format keeps scenario input order; column names are stable and locale agnostic.
func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"scenario", "years", "total_contributed", "final_pre_tax", "capital_gains_tax", "final_post_tax", "final_real_post_tax", "total_stamp_duty", "opportunity_cost"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		r := sc.Result
		// post-tax is derived from the rounded columns so the row adds up to the cent
		preTax := decimal.NewMoney(r.FinalNominalPreTax).Round()
		tax := decimal.NewMoney(r.CapitalGainsTax).Round()
		row := []string{
			sc.Name,
			strconv.Itoa(sc.Params.Years),
			cents(r.TotalContributedNominal),
			preTax.String(),
			tax.String(),
			preTax.Sub(tax).String(),
			cents(r.FinalRealPostTax),
			cents(r.TotalStampDuty),
			cents(r.OpportunityCostVsNoFee),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
