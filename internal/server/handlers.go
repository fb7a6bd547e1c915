package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rpgo/pac-simulator/internal/calculation"
	"github.com/rpgo/pac-simulator/internal/config"
	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/output"
	"github.com/rpgo/pac-simulator/internal/tracing"
)

// DerivedFigures are display ratios; nil means the denominator was zero.
type DerivedFigures struct {
	NetProfit                 float64  `json:"net_profit"`
	FeesShareOfPotentialGain  *float64 `json:"fees_share_of_potential_gain"`
	Efficiency                *float64 `json:"efficiency"`
	StampDutyShareOfDeposits  *float64 `json:"stamp_duty_share_of_deposits"`
	PurchasingPowerBelowSaved bool     `json:"purchasing_power_below_saved"`
}

// ProjectionResponse is the body of a successful projection.
type ProjectionResponse struct {
	Params  domain.InvestmentParams `json:"params"`
	Result  domain.InvestmentResult `json:"result"`
	Derived DerivedFigures          `json:"derived"`
}

// CompareResponse is the body of a successful comparison.
type CompareResponse struct {
	Scenarios      []domain.ScenarioSummary `json:"scenarios"`
	Recommendation string                   `json:"recommendation"`
}

// PresetResponse is one entry of the preset list.
type PresetResponse struct {
	Name         string  `json:"name"`
	Label        string  `json:"label"`
	AnnualReturn float64 `json:"annual_return"`
}

type projectionQuery struct {
	Preset string `form:"preset"`
	Format string `form:"format"`
}

func guarded(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

func derive(r domain.InvestmentResult) DerivedFigures {
	return DerivedFigures{
		NetProfit:                 r.NetProfit(),
		FeesShareOfPotentialGain:  guarded(output.FeesAsPercentOfPotentialProfit(r)),
		Efficiency:                guarded(output.Efficiency(r)),
		StampDutyShareOfDeposits:  guarded(output.StampDutyShare(r)),
		PurchasingPowerBelowSaved: output.IsLosingWealth(r),
	}
}

func errorJSON(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindParams reads parameters from the query string (GET) or a JSON body (POST)
// over the defaults, applies an optional preset and validates the result.
func (s *Server) bindParams(c *gin.Context) (domain.InvestmentParams, projectionQuery, error) {
	params := config.DefaultParams()
	var q projectionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return params, q, err
	}

	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&params); err != nil {
			return params, q, err
		}
	} else if err := c.ShouldBindQuery(&params); err != nil {
		return params, q, err
	}

	if q.Preset != "" {
		var err error
		if params, err = calculation.ApplyPreset(params, q.Preset); err != nil {
			return params, q, err
		}
	}
	return params, q, config.ValidateParams(params)
}

func startSpan(ctx context.Context, name string, p domain.InvestmentParams) (context.Context, trace.Span) {
	ctx, span := tracing.Tracer().Start(ctx, name)
	span.SetAttributes(
		attribute.Float64("pacsim.initial_capital", p.InitialCapital),
		attribute.Float64("pacsim.monthly_contribution", p.MonthlyContribution),
		attribute.Int("pacsim.years", p.Years),
		attribute.Float64("pacsim.annual_return", p.AnnualReturn),
		attribute.Float64("pacsim.annual_fees", p.AnnualFees),
		attribute.Float64("pacsim.tax_rate", p.TaxRate),
		attribute.Float64("pacsim.inflation_rate", p.InflationRate),
		attribute.Bool("pacsim.stamp_duty_enabled", p.StampDutyEnabled),
	)
	return ctx, span
}

func failSpan(span trace.Span, err error, kind string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, kind)
}

func (s *Server) projection(c *gin.Context) {
	const endpoint = "projection"
	params, _, err := s.bindParams(c)

	_, span := startSpan(c.Request.Context(), endpoint, params)
	defer span.End()

	if err != nil {
		failSpan(span, err, statusValidationError)
		ProjectionsTotal.WithLabelValues(endpoint, statusValidationError).Inc()
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	summary := s.engine.RunParams(endpoint, params)
	observe(endpoint, start)

	span.SetAttributes(
		attribute.Float64("pacsim.final_nominal_post_tax", summary.Result.FinalNominalPostTax),
		attribute.Float64("pacsim.final_real_post_tax", summary.Result.FinalRealPostTax),
	)
	ProjectionsTotal.WithLabelValues(endpoint, statusSuccess).Inc()
	c.JSON(http.StatusOK, ProjectionResponse{
		Params:  summary.Params,
		Result:  summary.Result,
		Derived: derive(summary.Result),
	})
}

func (s *Server) compare(c *gin.Context) {
	const endpoint = "compare"
	cfg := domain.Configuration{Base: config.DefaultParams()}
	if err := c.ShouldBindJSON(&cfg); err != nil {
		ProjectionsTotal.WithLabelValues(endpoint, statusValidationError).Inc()
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	ctx, span := startSpan(c.Request.Context(), endpoint, cfg.Base)
	defer span.End()
	span.SetAttributes(attribute.Int("pacsim.scenarios", len(cfg.Scenarios)))

	if err := s.parser.ValidateConfiguration(&cfg); err != nil {
		failSpan(span, err, statusValidationError)
		ProjectionsTotal.WithLabelValues(endpoint, statusValidationError).Inc()
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	comparison, err := s.engine.RunScenarios(ctx, &cfg)
	observe(endpoint, start)
	if err != nil {
		failSpan(span, err, statusError)
		ProjectionsTotal.WithLabelValues(endpoint, statusError).Inc()
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}

	ProjectionsTotal.WithLabelValues(endpoint, statusSuccess).Inc()
	c.JSON(http.StatusOK, CompareResponse{
		Scenarios:      comparison.Scenarios,
		Recommendation: output.AnalyzeScenarios(comparison).ScenarioName,
	})
}

func (s *Server) presets(c *gin.Context) {
	loc := s.localizer(c)
	list := calculation.Presets()
	out := make([]PresetResponse, 0, len(list))
	for _, p := range list {
		out = append(out, PresetResponse{
			Name:         p.Name,
			Label:        loc.Text("preset." + p.Name),
			AnnualReturn: p.AnnualReturn,
		})
	}
	c.JSON(http.StatusOK, out)
}

var contentTypes = map[string]string{
	"html": "text/html; charset=utf-8",
	"csv":  "text/csv; charset=utf-8",
	"json": "application/json; charset=utf-8",
	"txt":  "text/plain; charset=utf-8",
}

// report renders a single projection, or the three presets with ?compare=presets,
// with any registered formatter. HTML is the default.
func (s *Server) report(c *gin.Context) {
	const endpoint = "report"
	params, q, err := s.bindParams(c)

	_, span := startSpan(c.Request.Context(), endpoint, params)
	defer span.End()

	if err != nil {
		failSpan(span, err, statusValidationError)
		ProjectionsTotal.WithLabelValues(endpoint, statusValidationError).Inc()
		errorJSON(c, http.StatusBadRequest, err)
		return
	}

	loc := s.localizer(c)
	format := q.Format
	if format == "" {
		format = "html"
	}
	f := output.GetFormatterByName(format, loc)
	if f == nil {
		err := output.ErrUnsupportedFormat
		failSpan(span, err, statusValidationError)
		ProjectionsTotal.WithLabelValues(endpoint, statusValidationError).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "formats": output.AvailableFormatterNames()})
		return
	}

	start := time.Now()
	var comparison *domain.ScenarioComparison
	if strings.EqualFold(c.Query("compare"), "presets") {
		comparison = s.engine.ComparePresets(params, loc.PresetLabel)
	} else {
		name := loc.PresetLabel("custom")
		if p, ok := calculation.LookupPreset(q.Preset); ok {
			name = loc.PresetLabel(p.Name)
		}
		comparison = &domain.ScenarioComparison{Scenarios: []domain.ScenarioSummary{*s.engine.RunParams(name, params)}}
	}
	observe(endpoint, start)

	body, err := f.Format(comparison)
	if err != nil {
		failSpan(span, err, statusError)
		ProjectionsTotal.WithLabelValues(endpoint, statusError).Inc()
		errorJSON(c, http.StatusInternalServerError, err)
		return
	}
	ProjectionsTotal.WithLabelValues(endpoint, statusSuccess).Inc()
	c.Data(http.StatusOK, contentTypes[output.FileExtension(f.Name())], body)
}
