package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAML(t *testing.T) {
	testConfig := "language: it\n" +
		"base:\n" +
		"  initial_capital: 5000\n" +
		"  monthly_contribution: 200\n" +
		"  years: 25\n" +
		"  annual_fees: 0.3\n" +
		"scenarios:\n" +
		"  - name: \"Prudent\"\n" +
		"    preset: prudent\n" +
		"  - name: \"Taxed less\"\n" +
		"    overrides:\n" +
		"      tax_rate: 12.5\n" +
		"      stamp_duty_enabled: true\n"

	config, err := NewInputParser().LoadFromFile(writeTemp(t, "plan.yaml", testConfig))
	require.NoError(t, err)

	assert.Equal(t, "it", config.Language)
	assert.Equal(t, 5000.0, config.Base.InitialCapital)
	assert.Equal(t, 25, config.Base.Years)
	assert.Equal(t, 5.0, config.Base.AnnualReturn, "unset fields keep their defaults")
	assert.Equal(t, 26.0, config.Base.TaxRate)
	require.Len(t, config.Scenarios, 2)
	assert.Equal(t, "prudent", config.Scenarios[0].Preset)
	require.NotNil(t, config.Scenarios[1].Overrides.TaxRate)
	assert.Equal(t, 12.5, *config.Scenarios[1].Overrides.TaxRate)
	require.NotNil(t, config.Scenarios[1].Overrides.StampDutyEnabled)
	assert.True(t, *config.Scenarios[1].Overrides.StampDutyEnabled)
	assert.Nil(t, config.Scenarios[1].Overrides.Years)
}

func TestLoadFromFile_JSON(t *testing.T) {
	testConfig := `{"base": {"initial_capital": 0, "monthly_contribution": 300, "years": 10, "annual_return": 6},
		"scenarios": [{"name": "only"}]}`

	config, err := NewInputParser().LoadFromFile(writeTemp(t, "plan.json", testConfig))
	require.NoError(t, err)
	assert.Equal(t, 0.0, config.Base.InitialCapital)
	assert.Equal(t, 6.0, config.Base.AnnualReturn)
	assert.Len(t, config.Scenarios, 1)
}

func TestLoadFromFile_TOML(t *testing.T) {
	testConfig := `language = "en"

[base]
initial_capital = 15000.0
monthly_contribution = 750.0
years = 30

[[scenarios]]
name = "Aggressive"
preset = "aggressive"

[[scenarios]]
name = "Short"

[scenarios.overrides]
years = 5
`
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "plan.toml", testConfig))
	require.NoError(t, err)
	assert.Equal(t, 15000.0, config.Base.InitialCapital)
	assert.Equal(t, 30, config.Base.Years)
	require.Len(t, config.Scenarios, 2)
	require.NotNil(t, config.Scenarios[1].Overrides.Years)
	assert.Equal(t, 5, *config.Scenarios[1].Overrides.Years)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(writeTemp(t, "bad.yaml", "base: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidScenario(t *testing.T) {
	testConfig := "scenarios:\n" +
		"  - name: fine\n" +
		"  - name: broken\n" +
		"    overrides:\n" +
		"      years: 80\n"

	_, err := NewInputParser().LoadFromFile(writeTemp(t, "plan.yaml", testConfig))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.Contains(t, err.Error(), `scenario "broken"`)
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		config  domain.Configuration
		wantErr string
	}{
		{"example is valid", *parser.CreateExampleConfiguration(), ""},
		{"missing name", domain.Configuration{Base: DefaultParams(), Scenarios: []domain.Scenario{{}}}, "name is required"},
		{"duplicate name", domain.Configuration{Base: DefaultParams(), Scenarios: []domain.Scenario{{Name: "a"}, {Name: "a"}}}, "duplicate name"},
		{"unknown preset", domain.Configuration{Base: DefaultParams(), Scenarios: []domain.Scenario{{Name: "a", Preset: "moon"}}}, "unknown preset"},
		{"invalid base", domain.Configuration{Base: domain.InvestmentParams{Years: 10, InitialCapital: -1}}, "base parameters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateConfiguration(&tt.config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateParams(t *testing.T) {
	mutate := func(f func(p *domain.InvestmentParams)) domain.InvestmentParams {
		p := DefaultParams()
		f(&p)
		return p
	}

	tests := []struct {
		name   string
		params domain.InvestmentParams
		field  string
	}{
		{"defaults", DefaultParams(), ""},
		{"negative capital", mutate(func(p *domain.InvestmentParams) { p.InitialCapital = -10 }), "initial_capital"},
		{"NaN contribution", mutate(func(p *domain.InvestmentParams) { p.MonthlyContribution = math.NaN() }), "monthly_contribution"},
		{"zero years", mutate(func(p *domain.InvestmentParams) { p.Years = 0 }), "years"},
		{"too many years", mutate(func(p *domain.InvestmentParams) { p.Years = 51 }), "years"},
		{"infinite return", mutate(func(p *domain.InvestmentParams) { p.AnnualReturn = math.Inf(1) }), "annual_return"},
		{"negative fees", mutate(func(p *domain.InvestmentParams) { p.AnnualFees = -0.1 }), "annual_fees"},
		{"tax above 100", mutate(func(p *domain.InvestmentParams) { p.TaxRate = 101 }), "tax_rate"},
		{"deflation floor", mutate(func(p *domain.InvestmentParams) { p.InflationRate = -11 }), "inflation_rate"},
		{"negative return allowed", mutate(func(p *domain.InvestmentParams) { p.AnnualReturn = -5 }), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParams(tt.params)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestClampParams(t *testing.T) {
	clamped := ClampParams(domain.InvestmentParams{
		InitialCapital:      5_000_000,
		MonthlyContribution: -20,
		Years:               0,
		AnnualReturn:        math.NaN(),
		AnnualFees:          9,
		TaxRate:             26,
		InflationRate:       math.Inf(-1),
		StampDutyEnabled:    true,
	})

	assert.Equal(t, 1_000_000.0, clamped.InitialCapital)
	assert.Equal(t, 0.0, clamped.MonthlyContribution)
	assert.Equal(t, 1, clamped.Years)
	assert.Equal(t, 5.0, clamped.AnnualReturn, "NaN falls back to the default")
	assert.Equal(t, 5.0, clamped.AnnualFees)
	assert.Equal(t, 26.0, clamped.TaxRate)
	assert.Equal(t, 2.0, clamped.InflationRate)
	assert.True(t, clamped.StampDutyEnabled)
	assert.NoError(t, ValidateParams(clamped))
}

func TestFindScenario(t *testing.T) {
	cfg := NewInputParser().CreateExampleConfiguration()

	sc, err := FindScenario(cfg, "Balanced")
	require.NoError(t, err)
	assert.Equal(t, "balanced", sc.Preset)

	_, err = FindScenario(cfg, "Missing")
	assert.ErrorIs(t, err, ErrScenarioNotFound)
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("PACSIM_PORT", "9191")
	t.Setenv("PACSIM_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("PACSIM_DEFAULT_LANG", "it")
	t.Setenv("OTEL_ENDPOINT", "")
	t.Setenv("OTEL_SERVICE_NAME", "pacsim-test")
	t.Setenv("GIN_MODE", "release")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "it", cfg.DefaultLanguage)
	assert.Equal(t, "pacsim-test", cfg.OTELServiceName)
	assert.Empty(t, cfg.OTELEndpoint)
	assert.True(t, cfg.ReleaseMode())
}

func TestLoadServerConfigDefaults(t *testing.T) {
	for _, key := range []string{"PACSIM_PORT", "PACSIM_ALLOWED_ORIGINS", "PACSIM_DEFAULT_LANG", "OTEL_SERVICE_NAME", "GIN_MODE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, "pacsim", cfg.OTELServiceName)
	assert.False(t, cfg.ReleaseMode())
}

func TestLoadServerConfigRejectsBadPort(t *testing.T) {
	t.Setenv("PACSIM_PORT", "abc")

	_, err := LoadServerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
	assert.Contains(t, err.Error(), `"Port"`)
}
