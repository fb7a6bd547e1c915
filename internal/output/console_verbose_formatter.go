package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
)

// Theme colors
var (
	colorBorder    = lipgloss.Color("#282726")
	colorTextDim   = lipgloss.Color("#575653")
	colorTextMuted = lipgloss.Color("#6F6E69")
	colorText      = lipgloss.Color("#FFFCF0")
	colorAccent    = lipgloss.Color("#3AA99F")
	colorIndigo    = lipgloss.Color("#4385BE")
	colorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorTextMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(colorTextDim)
	warnStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	consoleWidth = 96
	cardsPerRow  = 3
)

// ConsoleVerboseFormatter renders the full report for a terminal: cards, narrative,
// growth sparkline and the yearly table for every scenario.
type ConsoleVerboseFormatter struct {
	Loc *i18n.Localizer
}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	loc := localizer(c.Loc)
	var buf bytes.Buffer

	fmt.Fprintln(&buf, renderTitle(loc.Text("app.title")))
	fmt.Fprintln(&buf)

	for i, sc := range results.Scenarios {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintln(&buf, headerStyle.Render(strings.ToUpper(sc.Name)))
		fmt.Fprintln(&buf, dimStyle.Render(strings.Repeat("─", consoleWidth)))

		cards := SummaryCards(loc, sc)
		for start := 0; start < len(cards); start += cardsPerRow {
			end := min(start+cardsPerRow, len(cards))
			fmt.Fprintln(&buf, renderCardRow(cards[start:end], consoleWidth))
		}
		fmt.Fprintln(&buf)

		fmt.Fprintln(&buf, headerStyle.Render(loc.Text("summary.title")))
		for _, p := range Narrative(loc, sc) {
			fmt.Fprintln(&buf, renderParagraph(p))
		}
		fmt.Fprintln(&buf)

		fmt.Fprintln(&buf, headerStyle.Render(loc.Text("assumption.title")))
		for _, a := range GenerateAssumptions(loc, sc.Params) {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
		fmt.Fprintln(&buf)

		if len(sc.Result.Breakdown) > 0 {
			fmt.Fprintf(&buf, "%s  %s\n", headerStyle.Render(loc.Text("chart.title")), sparkline(balances(sc.Result.Breakdown), colorIndigo))
			fmt.Fprintln(&buf)
			fmt.Fprint(&buf, renderTable(loc.Text("table.title"), BreakdownHeaders(loc), BreakdownRows(loc, sc.Result.Breakdown)))
		}
	}

	if len(results.Scenarios) > 1 {
		fmt.Fprintln(&buf)
		writeComparison(&buf, loc, results)
	}

	return buf.Bytes(), nil
}

func writeComparison(buf *bytes.Buffer, loc *i18n.Localizer, results *domain.ScenarioComparison) {
	headers := []string{
		loc.Text("comparison.scenario"),
		loc.Text("result.total_contributed"),
		loc.Text("result.final_post_tax"),
		loc.Text("result.real_balance"),
		loc.Text("result.opportunity_cost"),
	}
	rows := make([][]string, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		r := sc.Result
		rows = append(rows, []string{
			sc.Name,
			loc.Currency(r.TotalContributedNominal),
			loc.Currency(r.FinalNominalPostTax),
			loc.Currency(r.FinalRealPostTax),
			loc.Currency(r.OpportunityCostVsNoFee),
		})
	}
	fmt.Fprint(buf, renderTable(loc.Text("comparison.title"), headers, rows))
	rec := AnalyzeScenarios(results)
	fmt.Fprintln(buf, headerStyle.Render(loc.Text("comparison.recommended", rec.ScenarioName, loc.Currency(rec.FinalRealPostTax))))
}

func renderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(consoleWidth - 2).
		Align(lipgloss.Center).
		Padding(0, 1)
	return border.Render(titleStyle.Render(title))
}

func renderCard(c Card, outerWidth int) string {
	contentWidth := max(outerWidth-2, 10)
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(contentWidth).
		Padding(0, 1)

	content := mutedStyle.Render(c.Label) + "\n" + valueStyle.Bold(true).Render(c.Value)
	if c.Subtext != "" || c.SubValue != "" {
		content += "\n" + dimStyle.Render(strings.TrimSpace(c.Subtext+" "+c.SubValue))
	}
	return style.Render(content)
}

func renderCardRow(cards []Card, totalWidth int) string {
	n := len(cards)
	if n == 0 {
		return ""
	}
	base, rem := totalWidth/n, totalWidth%n
	rendered := make([]string, n)
	for i, c := range cards {
		w := base
		if i < rem {
			w++
		}
		rendered[i] = renderCard(c, w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderParagraph(p Paragraph) string {
	body := p.Body
	if p.Warn {
		body = warnStyle.Render(body)
	}
	text := body
	if p.Title != "" {
		text = valueStyle.Bold(true).Render(p.Title) + " " + body
	}
	return lipgloss.NewStyle().Width(consoleWidth).Render(text)
}

// renderTable draws a bordered table; the first column is left aligned, the rest right aligned.
func renderTable(title string, headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	line := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return dimStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
	}
	cells := func(row []string, style lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := strings.Repeat(" ", w-lipgloss.Width(cell))
			if i == 0 {
				b.WriteString(style.Render(" " + cell + pad + " "))
			} else {
				b.WriteString(style.Render(" " + pad + cell + " "))
			}
			b.WriteString(dimStyle.Render("│"))
		}
		return b.String() + "\n"
	}

	var b strings.Builder
	if title != "" {
		b.WriteString("  " + headerStyle.Render(title) + "\n")
	}
	b.WriteString(line("╭", "┬", "╮"))
	b.WriteString(cells(headers, headerStyle))
	b.WriteString(line("├", "┼", "┤"))
	for _, row := range rows {
		b.WriteString(cells(row, valueStyle))
	}
	b.WriteString(line("╰", "┴", "╯"))
	return b.String()
}

// sparkline renders one block character per value, scaled to the peak.
func sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}

	var b strings.Builder
	b.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = min(max(idx, 0), len(blocks)-1)
		b.WriteRune(blocks[idx])
	}
	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}

func balances(breakdown []domain.YearlyBreakdown) []float64 {
	out := make([]float64, len(breakdown))
	for i, y := range breakdown {
		out[i] = y.BalanceNominal
	}
	return out
}
