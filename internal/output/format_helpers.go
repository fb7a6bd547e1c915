package output

import (
	"strconv"

	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
	"github.com/rpgo/pac-simulator/pkg/decimal"
)

// cents renders an engine amount rounded to two decimals for machine-readable exports.
func cents(v float64) string { return decimal.NewMoney(v).Round().String() }

// percentOrNA renders a guarded percentage, falling back to the catalog placeholder.
func percentOrNA(loc *i18n.Localizer, pct float64, ok bool) string {
	if !ok {
		return loc.Text("placeholder.na")
	}
	return loc.Percent(pct)
}

// Card is one headline figure of a scenario.
type Card struct {
	Label    string
	Value    string
	Subtext  string
	SubValue string
}

// SummaryCards builds the headline figures in display order. The stamp duty card only
// appears when the duty was applied.
func SummaryCards(loc *i18n.Localizer, sc domain.ScenarioSummary) []Card {
	r := sc.Result
	feeShare, feeOK := FeesAsPercentOfPotentialProfit(r)
	cards := []Card{
		{Label: loc.Text("result.total_contributed"), Value: loc.Currency(r.TotalContributedNominal)},
		{
			Label:    loc.Text("result.opportunity_cost"),
			Value:    loc.Currency(r.OpportunityCostVsNoFee),
			Subtext:  loc.Text("result.opportunity_cost_subtext"),
			SubValue: percentOrNA(loc, feeShare, feeOK),
		},
	}
	if sc.Params.StampDutyEnabled {
		share, ok := StampDutyShare(r)
		cards = append(cards, Card{
			Label:    loc.Text("result.total_stamp_duty"),
			Value:    loc.Currency(r.TotalStampDuty),
			Subtext:  loc.Text("result.stamp_duty_subtext"),
			SubValue: percentOrNA(loc, share, ok),
		})
	}
	cards = append(cards,
		Card{
			Label:   loc.Text("result.capital_gains_tax"),
			Value:   loc.Currency(r.CapitalGainsTax),
			Subtext: loc.Text("result.capital_gains_tax_subtext", loc.Percent(sc.Params.TaxRate)),
		},
		Card{Label: loc.Text("result.final_post_tax"), Value: loc.Currency(r.FinalNominalPostTax)},
		Card{
			Label:   loc.Text("result.real_balance"),
			Value:   loc.Currency(r.FinalRealPostTax),
			Subtext: loc.Text("result.inflation_adjusted"),
		},
	)
	return cards
}

// Paragraph is one titled block of the plain-language summary.
type Paragraph struct {
	Title string
	Body  string
	Warn  bool
}

// Narrative explains a projection in plain language.
func Narrative(loc *i18n.Localizer, sc domain.ScenarioSummary) []Paragraph {
	r := sc.Result
	p := sc.Params
	paras := []Paragraph{
		{Body: loc.Text("summary.intro", p.Years, loc.Currency(r.TotalContributedNominal))},
		{
			Title: loc.Text("summary.gross_growth"),
			Body:  loc.Text("summary.gross_growth_text", loc.Percent(p.TaxRate), loc.Currency(r.FinalNominalPreTax), loc.Currency(r.OpportunityCostVsNoFee)),
		},
	}
	if p.StampDutyEnabled {
		paras = append(paras, Paragraph{
			Title: loc.Text("summary.stamp_duty"),
			Body:  loc.Text("summary.stamp_duty_text", loc.Currency(r.TotalStampDuty)),
		})
	}
	paras = append(paras, Paragraph{
		Title: loc.Text("summary.net_profit"),
		Body:  loc.Text("summary.net_profit_text", loc.Percent(p.TaxRate), loc.Currency(r.FinalNominalPostTax), loc.Currency(r.NetProfit())),
	})

	inflation := Paragraph{Title: loc.Text("summary.inflation_title")}
	if IsLosingWealth(r) {
		inflation.Warn = true
		inflation.Body = loc.Text("summary.inflation_loss", loc.Currency(r.FinalRealPostTax), loc.Currency(r.TotalContributedNominal))
	} else {
		inflation.Body = loc.Text("summary.inflation_gain", loc.Currency(r.FinalNominalPostTax), loc.Currency(r.FinalRealPostTax), loc.Currency(r.TotalContributedNominal))
	}
	return append(paras, inflation)
}

// BreakdownHeaders are the localized column titles of the yearly table.
func BreakdownHeaders(loc *i18n.Localizer) []string {
	return []string{
		loc.Text("table.year"),
		loc.Text("table.annual_contribution"),
		loc.Text("table.total_contributed"),
		loc.Text("table.balance"),
		loc.Text("table.gross_balance"),
		loc.Text("table.real_value"),
		loc.Text("table.profit"),
		loc.Text("table.efficiency"),
	}
}

// BreakdownRows renders the yearly table cells.
func BreakdownRows(loc *i18n.Localizer, breakdown []domain.YearlyBreakdown) [][]string {
	rows := make([][]string, 0, len(breakdown))
	for _, y := range breakdown {
		rows = append(rows, []string{
			strconv.Itoa(y.Year),
			loc.Currency(y.AnnualContribution),
			loc.Currency(y.ContributionsNominal),
			loc.Currency(y.BalanceNominal),
			loc.Currency(y.BalanceNoFee),
			loc.Currency(y.BalanceReal),
			loc.Currency(y.Gain()),
			loc.Ratio(y.Gain(), y.ContributionsNominal),
		})
	}
	return rows
}
