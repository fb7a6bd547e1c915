package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/pac-simulator/internal/calculation"
	"github.com/rpgo/pac-simulator/internal/config"
	"github.com/rpgo/pac-simulator/internal/domain"
)

// addParamFlags registers one flag per investment parameter, defaulting to p.
func addParamFlags(cmd *cobra.Command, p *domain.InvestmentParams) {
	fs := cmd.Flags()
	fs.Float64Var(&p.InitialCapital, "initial-capital", p.InitialCapital, "Lump sum invested at the start")
	fs.Float64Var(&p.MonthlyContribution, "monthly-contribution", p.MonthlyContribution, "Amount added every month")
	fs.IntVar(&p.Years, "years", p.Years, "Investment horizon in years")
	fs.Float64Var(&p.AnnualReturn, "annual-return", p.AnnualReturn, "Expected gross annual return (%)")
	fs.Float64Var(&p.AnnualFees, "annual-fees", p.AnnualFees, "Annual fees, TER (%)")
	fs.Float64Var(&p.TaxRate, "tax-rate", p.TaxRate, "Capital gains tax at exit (%)")
	fs.Float64Var(&p.InflationRate, "inflation-rate", p.InflationRate, "Annual inflation (%)")
	fs.BoolVar(&p.StampDutyEnabled, "stamp-duty", p.StampDutyEnabled, "Apply the yearly stamp duty")
}

// paramFlagNames are the flags registered by addParamFlags and addPresetFlag.
var paramFlagNames = []string{
	"initial-capital", "monthly-contribution", "years", "annual-return",
	"annual-fees", "tax-rate", "inflation-rate", "stamp-duty", "preset",
}

// addConfigFlag registers --config. A configuration file carries its own parameters,
// so it cannot be combined with the per-parameter flags.
func addConfigFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVarP(path, "config", "c", "", "YAML, JSON or TOML configuration file")
	for _, name := range paramFlagNames {
		if cmd.Flags().Lookup(name) != nil {
			cmd.MarkFlagsMutuallyExclusive("config", name)
		}
	}
}

// addPresetFlag registers --preset, which replaces --annual-return.
func addPresetFlag(cmd *cobra.Command, preset *string) {
	cmd.Flags().StringVar(preset, "preset", "", "Return profile: prudent, balanced or aggressive")
	cmd.MarkFlagsMutuallyExclusive("preset", "annual-return")
}

// flagParams applies the preset, if any, and validates the flag values.
func flagParams(p domain.InvestmentParams, preset string) (domain.InvestmentParams, error) {
	if preset != "" {
		var err error
		if p, err = calculation.ApplyPreset(p, preset); err != nil {
			return p, err
		}
	}
	return p, config.ValidateParams(p)
}

func newProjectCmd(opts *rootOptions) *cobra.Command {
	params := config.DefaultParams()
	var preset, configPath, scenarioName string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single investment plan",
		Long: "Project one plan from flags, or one scenario of a configuration file with --config and --scenario.\n" +
			"Without --scenario the base parameters of the file are projected.",
		Example: "  pacsim project --monthly-contribution 300 --years 25 --preset balanced\n" +
			"  pacsim project --config plans.yaml --scenario \"Low-cost ETF\" --format html --out reports",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine := opts.engine(cmd)

			if configPath == "" {
				p, err := flagParams(params, preset)
				if err != nil {
					return err
				}
				loc := opts.localizer("")
				name := loc.PresetLabel(customPreset)
				if pr, ok := calculation.LookupPreset(preset); ok {
					name = loc.PresetLabel(pr.Name)
				}
				return opts.render(cmd, single(engine.RunParams(name, p)), loc)
			}

			cfg, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}
			loc := opts.localizer(cfg.Language)
			if scenarioName == "" {
				return opts.render(cmd, single(engine.RunParams("base", cfg.Base)), loc)
			}
			scenario, err := config.FindScenario(cfg, scenarioName)
			if err != nil {
				return err
			}
			summary, err := engine.RunScenario(cmd.Context(), cfg.Base, scenario)
			if err != nil {
				return err
			}
			return opts.render(cmd, single(summary), loc)
		},
	}

	addParamFlags(cmd, &params)
	addPresetFlag(cmd, &preset)
	addConfigFlag(cmd, &configPath)
	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "Scenario name within --config")
	return cmd
}
