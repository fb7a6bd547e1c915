package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/pac-simulator/internal/config"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	params := config.DefaultParams()
	var configPath string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare scenarios side by side",
		Long: "Compare every scenario of a configuration file, or, without --config, project the flag\n" +
			"parameters once per return preset.",
		Example: "  pacsim compare --config plans.toml --format csv\n" +
			"  pacsim compare --monthly-contribution 200 --annual-fees 1.2 --lang it",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine := opts.engine(cmd)

			if configPath == "" {
				if err := config.ValidateParams(params); err != nil {
					return err
				}
				loc := opts.localizer("")
				return opts.render(cmd, engine.ComparePresets(params, loc.PresetLabel), loc)
			}

			cfg, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}
			results, err := engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return opts.render(cmd, results, opts.localizer(cfg.Language))
		},
	}

	addParamFlags(cmd, &params)
	addConfigFlag(cmd, &configPath)
	return cmd
}
