package integration

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/pac-simulator/internal/calculation"
	"github.com/rpgo/pac-simulator/internal/config"
	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
	"github.com/rpgo/pac-simulator/internal/output"
	"github.com/rpgo/pac-simulator/pkg/decimal"
)

func loadResults(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	results, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	return results
}

func TestOutputGeneration(t *testing.T) {
	results := loadResults(t)
	for _, lang := range []string{"en", "it"} {
		t.Run(lang, func(t *testing.T) {
			dir := t.TempDir()
			for _, format := range []string{"all", "csv", "json", "console-lite"} {
				paths, err := output.GenerateReport(results, format, dir, i18n.New(lang))
				require.NoError(t, err, format)
				for _, p := range paths {
					fi, err := os.Stat(p)
					require.NoError(t, err)
					assert.Positive(t, fi.Size(), p)
				}
			}
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(entries), 4)
		})
	}
}

// The detailed CSV must add up: summed annual deposits equal the reported total.
func TestDetailedCSVTotals(t *testing.T) {
	results := loadResults(t)
	paths, err := output.GenerateReport(results, "detailed-csv", t.TempDir(), nil)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, ".csv", filepath.Ext(paths[0]))

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+2*25)

	sums := map[string]decimal.Money{}
	for _, s := range results.Scenarios {
		sums[s.Name] = decimal.Zero()
	}
	for _, rec := range records[1:] {
		m, err := decimal.NewMoneyFromString(rec[2])
		require.NoError(t, err)
		sums[rec[0]] = decimal.Sum(sums[rec[0]], m)
	}
	for _, s := range results.Scenarios {
		assert.Equal(t, decimal.NewMoney(s.Result.TotalContributedNominal).Round().String(), sums[s.Name].String(), s.Name)
	}
}

func TestSaveConfiguration_WritesFile(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	out := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, out))

	loaded, err := config.NewInputParser().LoadFromFile(out)
	require.NoError(t, err)
	assert.Equal(t, cfg.Base, loaded.Base)
	assert.Len(t, loaded.Scenarios, len(cfg.Scenarios))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "preset: prudent"))
}
