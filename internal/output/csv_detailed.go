package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/pkg/decimal"
)

// CSVDetailedExporter provides the yearly breakdown per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"scenario", "year", "annual_contribution", "cumulative_contributions", "balance", "balance_no_fee", "balance_real", "gain"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, yr := range sc.Result.Breakdown {
			contributed := decimal.NewMoney(yr.ContributionsNominal).Round()
			balance := decimal.NewMoney(yr.BalanceNominal).Round()
			row := []string{
				sc.Name,
				strconv.Itoa(yr.Year),
				cents(yr.AnnualContribution),
				contributed.String(),
				balance.String(),
				cents(yr.BalanceNoFee),
				cents(yr.BalanceReal),
				balance.Sub(contributed).String(),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
