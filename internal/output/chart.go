package output

import (
	"math"
	"strconv"
	"strings"

	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
)

// Chart geometry in SVG user units.
const (
	chartWidth   = 720
	chartHeight  = 320
	chartLeft    = 80
	chartRight   = 16
	chartTop     = 16
	chartBottom  = 32
	chartYTicks  = 4
	chartXLabels = 10
)

// ChartSeries is one filled area of the growth chart.
type ChartSeries struct {
	Label string
	Color string
	Area  string // closed path
	Line  string // top edge only
}

// ChartTick is an axis label placed at Pos.
type ChartTick struct {
	Pos   float64
	Label string
}

// Chart is a precomputed SVG area chart of a yearly breakdown.
type Chart struct {
	Width, Height int
	Left, Right   float64
	Top, Bottom   float64
	Series        []ChartSeries
	YTicks        []ChartTick
	XTicks        []ChartTick
}

// BuildChart plots the no-fee balance, the net balance and the cumulative contributions,
// back to front. It returns nil for an empty breakdown.
func BuildChart(loc *i18n.Localizer, breakdown []domain.YearlyBreakdown) *Chart {
	n := len(breakdown)
	if n == 0 {
		return nil
	}

	peak := 0.0
	for _, y := range breakdown {
		peak = max(peak, y.BalanceNoFee, y.BalanceNominal, y.ContributionsNominal)
	}
	if peak <= 0 || math.IsInf(peak, 0) || math.IsNaN(peak) {
		peak = 1
	}

	c := &Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   chartLeft,
		Right:  chartWidth - chartRight,
		Top:    chartTop,
		Bottom: chartHeight - chartBottom,
	}
	plotW := c.Right - c.Left
	plotH := c.Bottom - c.Top

	x := func(i int) float64 {
		if n == 1 {
			return c.Left + plotW/2
		}
		return c.Left + plotW*float64(i)/float64(n-1)
	}
	y := func(v float64) float64 {
		return c.Bottom - plotH*math.Max(v, 0)/peak
	}

	series := []struct {
		key   string
		color string
		value func(domain.YearlyBreakdown) float64
	}{
		{"chart.no_fee", "#94a3b8", func(b domain.YearlyBreakdown) float64 { return b.BalanceNoFee }},
		{"chart.balance", "#4f46e5", func(b domain.YearlyBreakdown) float64 { return b.BalanceNominal }},
		{"chart.contributions", "#10b981", func(b domain.YearlyBreakdown) float64 { return b.ContributionsNominal }},
	}
	for _, s := range series {
		var line strings.Builder
		for i, row := range breakdown {
			if i == 0 {
				line.WriteString("M")
			} else {
				line.WriteString(" L")
			}
			line.WriteString(point(x(i), y(s.value(row))))
		}
		area := line.String() + " L" + point(x(n-1), c.Bottom) + " L" + point(x(0), c.Bottom) + " Z"
		c.Series = append(c.Series, ChartSeries{
			Label: loc.Text(s.key),
			Color: s.color,
			Area:  area,
			Line:  line.String(),
		})
	}

	for k := 0; k <= chartYTicks; k++ {
		v := peak * float64(k) / chartYTicks
		c.YTicks = append(c.YTicks, ChartTick{Pos: round1(y(v)), Label: loc.Currency(v)})
	}
	step := int(math.Ceil(float64(n) / chartXLabels))
	for i := 0; i < n; i += step {
		c.XTicks = append(c.XTicks, ChartTick{Pos: round1(x(i)), Label: strconv.Itoa(breakdown[i].Year)})
	}
	return c
}

func point(x, y float64) string {
	return strconv.FormatFloat(x, 'f', 1, 64) + "," + strconv.FormatFloat(y, 'f', 1, 64)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
