package cmd

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/rpgo/pac-simulator/internal/calculation"
	"github.com/rpgo/pac-simulator/internal/config"
	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
)

const customPreset = "custom"

// formValues are the editor's raw field contents.
type formValues struct {
	Lang                string
	Preset              string
	InitialCapital      string
	MonthlyContribution string
	Years               string
	AnnualReturn        string
	AnnualFees          string
	TaxRate             string
	InflationRate       string
	StampDuty           bool
}

func newFormValues(p domain.InvestmentParams, loc *i18n.Localizer) formValues {
	return formValues{
		Lang:                loc.Lang(),
		Preset:              customPreset,
		InitialCapital:      loc.FormatInput(p.InitialCapital),
		MonthlyContribution: loc.FormatInput(p.MonthlyContribution),
		Years:               strconv.Itoa(p.Years),
		AnnualReturn:        loc.FormatInput(p.AnnualReturn),
		AnnualFees:          loc.FormatInput(p.AnnualFees),
		TaxRate:             loc.FormatInput(p.TaxRate),
		InflationRate:       loc.FormatInput(p.InflationRate),
		StampDuty:           p.StampDutyEnabled,
	}
}

// parseYears accepts only whole numbers, in the locale notation.
func parseYears(loc *i18n.Localizer, s string) (int, error) {
	v, err := loc.ParseNumber(s)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %q is not a whole number", i18n.ErrInvalidNumber, s)
	}
	return int(v), nil
}

// params converts the form into clamped parameters, reading numbers in loc's notation.
// A preset replaces the typed return.
func (v formValues) params(loc *i18n.Localizer) (domain.InvestmentParams, error) {
	var p domain.InvestmentParams
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"initial_capital", v.InitialCapital, &p.InitialCapital},
		{"monthly_contribution", v.MonthlyContribution, &p.MonthlyContribution},
		{"annual_return", v.AnnualReturn, &p.AnnualReturn},
		{"annual_fees", v.AnnualFees, &p.AnnualFees},
		{"tax_rate", v.TaxRate, &p.TaxRate},
		{"inflation_rate", v.InflationRate, &p.InflationRate},
	}
	for _, f := range fields {
		n, err := loc.ParseNumber(f.raw)
		if err != nil {
			return p, fmt.Errorf("%w: %s: %w", config.ErrInvalidParams, f.name, err)
		}
		*f.dst = n
	}
	years, err := parseYears(loc, v.Years)
	if err != nil {
		return p, fmt.Errorf("%w: years: %w", config.ErrInvalidParams, err)
	}
	p.Years = years
	p.StampDutyEnabled = v.StampDuty

	if v.Preset != "" && v.Preset != customPreset {
		if p, err = calculation.ApplyPreset(p, v.Preset); err != nil {
			return p, err
		}
	}
	return config.ClampParams(p), nil
}

// scenarioName labels the projection with the chosen profile.
func (v formValues) scenarioName(loc *i18n.Localizer) string {
	if pr, ok := calculation.LookupPreset(v.Preset); ok {
		return loc.PresetLabel(pr.Name)
	}
	return loc.PresetLabel(customPreset)
}

func languageOptions(bundle *i18n.Bundle) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(bundle.Languages()))
	for _, lang := range bundle.Languages() {
		tag := language.Make(lang)
		opts = append(opts, huh.NewOption(display.Self.Name(tag), lang))
	}
	return opts
}

func presetOptions(loc *i18n.Localizer) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption(loc.PresetLabel(customPreset), customPreset)}
	for _, p := range calculation.Presets() {
		opts = append(opts, huh.NewOption(loc.PresetLabel(p.Name), p.Name))
	}
	return opts
}

func languageForm(loc *i18n.Localizer, lang *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(loc.Text("form.language")).
				Options(languageOptions(i18n.Default())...).
				Value(lang),
		),
	)
}

func paramsForm(loc *i18n.Localizer, v *formValues) *huh.Form {
	number := func(s string) error {
		if _, err := loc.ParseNumber(s); err != nil {
			return errors.New(loc.Text("form.invalid_number"))
		}
		return nil
	}
	input := func(key string, dst *string) *huh.Input {
		return huh.NewInput().Title(loc.Text(key)).Value(dst).Validate(number)
	}
	years := huh.NewInput().Title(loc.Text("field.years")).Value(&v.Years).Validate(func(s string) error {
		if _, err := parseYears(loc, s); err != nil {
			return errors.New(loc.Text("form.invalid_whole_number"))
		}
		return nil
	})

	return huh.NewForm(
		huh.NewGroup(
			input("field.initial_capital", &v.InitialCapital),
			input("field.monthly_contribution", &v.MonthlyContribution),
			years,
			huh.NewSelect[string]().
				Title(loc.Text("field.preset")).
				Options(presetOptions(loc)...).
				Value(&v.Preset),
			input("field.annual_return", &v.AnnualReturn),
		).Title(loc.Text("form.title")),
		huh.NewGroup(
			input("field.annual_fees", &v.AnnualFees),
			input("field.tax_rate", &v.TaxRate),
			input("field.inflation_rate", &v.InflationRate),
			huh.NewConfirm().
				Title(loc.Text("field.stamp_duty", loc.Percent(calculation.StampDutyRate))).
				Value(&v.StampDuty),
		),
	)
}

func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return fmt.Errorf("form: %w", err)
}

func newInteractiveCmd(opts *rootOptions) *cobra.Command {
	var accessible bool

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Edit the plan in a terminal form and print the report",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run := func(f *huh.Form) error {
				return f.WithAccessible(accessible).
					WithInput(cmd.InOrStdin()).
					WithOutput(cmd.ErrOrStderr()).
					Run()
			}

			// numbers are typed in the notation of the chosen language
			loc := opts.localizer("")
			if opts.lang == "" {
				lang := loc.Lang()
				if err := run(languageForm(loc, &lang)); err != nil {
					return formError(err)
				}
				loc = i18n.New(lang)
			}

			values := newFormValues(config.DefaultParams(), loc)
			if err := run(paramsForm(loc, &values)); err != nil {
				return formError(err)
			}
			params, err := values.params(loc)
			if err != nil {
				return err
			}
			summary := opts.engine(cmd).RunParams(values.scenarioName(loc), params)
			return opts.render(cmd, single(summary), loc)
		},
	}
	cmd.Flags().BoolVar(&accessible, "accessible", false, "Plain line-by-line prompts for screen readers")
	return cmd
}
