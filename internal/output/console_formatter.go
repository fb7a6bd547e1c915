package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct {
	Loc *i18n.Localizer
}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	loc := localizer(c.Loc)
	var buf bytes.Buffer
	title := strings.ToUpper(loc.Text("summary.title"))
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len([]rune(title))))
	for _, sc := range results.Scenarios {
		r := sc.Result
		fmt.Fprintf(&buf, "%s (%d): %s=%s %s=%s %s=%s %s=%s %s=%s\n",
			sc.Name, sc.Params.Years,
			loc.Text("result.total_contributed"), loc.Currency(r.TotalContributedNominal),
			loc.Text("result.final_pre_tax"), loc.Currency(r.FinalNominalPreTax),
			loc.Text("result.final_post_tax"), loc.Currency(r.FinalNominalPostTax),
			loc.Text("result.real_balance"), loc.Currency(r.FinalRealPostTax),
			loc.Text("result.net_profit"), loc.Currency(r.NetProfit()),
		)
	}
	if len(results.Scenarios) > 1 {
		rec := AnalyzeScenarios(results)
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, loc.Text("comparison.recommended", rec.ScenarioName, loc.Currency(rec.FinalRealPostTax)))
	}
	return buf.Bytes(), nil
}
