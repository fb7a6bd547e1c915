package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/pac-simulator/internal/calculation"
	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
)

func TestBuildChartEmpty(t *testing.T) {
	assert.Nil(t, BuildChart(i18n.New("en"), nil))
}

func TestBuildChartSeries(t *testing.T) {
	loc := i18n.New("en")
	result := calculation.Project(domain.InvestmentParams{InitialCapital: 10000, MonthlyContribution: 500, Years: 20, AnnualReturn: 5, AnnualFees: 0.2, TaxRate: 26, InflationRate: 2})

	c := BuildChart(loc, result.Breakdown)
	require.NotNil(t, c)
	require.Len(t, c.Series, 3)
	assert.Equal(t, []string{"No-Fee Balance", "Net Balance", "Contributions"},
		[]string{c.Series[0].Label, c.Series[1].Label, c.Series[2].Label})

	for _, s := range c.Series {
		assert.True(t, strings.HasPrefix(s.Line, "M80.0,"), s.Line)
		assert.True(t, strings.HasSuffix(s.Area, " Z"))
		assert.Equal(t, 20, strings.Count(s.Line, ","), "one point per year")
	}

	require.Len(t, c.YTicks, 5)
	assert.Equal(t, c.Bottom, c.YTicks[0].Pos)
	assert.Equal(t, "€0", c.YTicks[0].Label)
	assert.Equal(t, c.Top, c.YTicks[4].Pos, "top tick sits at the peak")
	assert.Equal(t, loc.Currency(result.FinalNoFeeBalance), c.YTicks[4].Label)

	require.Len(t, c.XTicks, 10)
	assert.Equal(t, "1", c.XTicks[0].Label)
	assert.Equal(t, "19", c.XTicks[9].Label)
}

func TestBuildChartSingleYear(t *testing.T) {
	c := BuildChart(i18n.New("en"), []domain.YearlyBreakdown{{Year: 1, ContributionsNominal: 100, BalanceNominal: 110, BalanceNoFee: 111}})
	require.NotNil(t, c)
	mid := c.Left + (c.Right-c.Left)/2
	assert.Equal(t, mid, c.XTicks[0].Pos)
}

func TestBuildChartAllZero(t *testing.T) {
	c := BuildChart(i18n.New("en"), []domain.YearlyBreakdown{{Year: 1}, {Year: 2}})
	require.NotNil(t, c)
	for _, s := range c.Series {
		assert.NotContains(t, s.Area, "NaN")
	}
}
