package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct {
	Loc *i18n.Localizer
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

type htmlScenario struct {
	Name        string
	Cards       []Card
	Narrative   []Paragraph
	Assumptions []string
	Chart       *Chart
	Headers     []string
	Rows        [][]string
}

type htmlComparisonRow struct {
	Name        string
	Contributed string
	PostTax     string
	Real        string
	Fees        string
	Recommended bool
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	loc := localizer(h.Loc)
	rec := AnalyzeScenarios(results)

	scenarios := make([]htmlScenario, 0, len(results.Scenarios))
	var comparison []htmlComparisonRow
	for _, sc := range results.Scenarios {
		scenarios = append(scenarios, htmlScenario{
			Name:        sc.Name,
			Cards:       SummaryCards(loc, sc),
			Narrative:   Narrative(loc, sc),
			Assumptions: GenerateAssumptions(loc, sc.Params),
			Chart:       BuildChart(loc, sc.Result.Breakdown),
			Headers:     BreakdownHeaders(loc),
			Rows:        BreakdownRows(loc, sc.Result.Breakdown),
		})
		comparison = append(comparison, htmlComparisonRow{
			Name:        sc.Name,
			Contributed: loc.Currency(sc.Result.TotalContributedNominal),
			PostTax:     loc.Currency(sc.Result.FinalNominalPostTax),
			Real:        loc.Currency(sc.Result.FinalRealPostTax),
			Fees:        loc.Currency(sc.Result.OpportunityCostVsNoFee),
			Recommended: sc.Name == rec.ScenarioName,
		})
	}
	if len(results.Scenarios) < 2 {
		comparison = nil
	}

	data := struct {
		Lang           string
		Title          string
		Subtitle       string
		L              map[string]string
		Scenarios      []htmlScenario
		Comparison     []htmlComparisonRow
		Recommendation string
	}{
		Lang:      loc.Lang(),
		Title:     loc.Text("app.title"),
		Subtitle:  loc.Text("app.subtitle"),
		Scenarios: scenarios,
		L: map[string]string{
			"summary":     loc.Text("summary.title"),
			"assumptions": loc.Text("assumption.title"),
			"chart":       loc.Text("chart.title"),
			"table":       loc.Text("table.title"),
			"comparison":  loc.Text("comparison.title"),
			"scenario":    loc.Text("comparison.scenario"),
			"contributed": loc.Text("result.total_contributed"),
			"post_tax":    loc.Text("result.final_post_tax"),
			"real":        loc.Text("result.real_balance"),
			"fees":        loc.Text("result.opportunity_cost"),
		},
		Comparison: comparison,
	}
	if comparison != nil {
		data.Recommendation = loc.Text("comparison.recommended", rec.ScenarioName, loc.Currency(rec.FinalRealPostTax))
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
