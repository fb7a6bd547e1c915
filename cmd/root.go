// Package cmd implements the pacsim command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/pac-simulator/internal/calculation"
	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/i18n"
	"github.com/rpgo/pac-simulator/internal/output"
)

// version is overridden at build time with -ldflags "-X .../cmd.version=...".
var version = "dev"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	lang    string
	format  string
	out     string
	verbose bool
}

// newRootCmd builds the full command tree. Tests build a fresh tree per run.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "pacsim",
		Short:         "Recurring investment plan simulator",
		Long:          "Project the growth of a recurring investment plan: fees, exit tax, stamp duty and inflation.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.lang, "lang", "l", "", "Report language (en, it); defaults to the config file language or en")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "console", "Report format, see pacsim formats")
	root.PersistentFlags().StringVarP(&opts.out, "out", "o", "", "Write reports into this directory instead of stdout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging to stderr")

	root.AddCommand(
		newProjectCmd(opts),
		newCompareCmd(opts),
		newInteractiveCmd(opts),
		newServeCmd(opts),
		newExampleConfigCmd(),
		newFormatsCmd(),
	)
	return root
}

// Execute is the main entry point called from main.go.
func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

func (o *rootOptions) engine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(newLogger(cmd.ErrOrStderr(), o.verbose))
	return engine
}

// localizer prefers --lang, then the language named by a config file.
func (o *rootOptions) localizer(configLang string) *i18n.Localizer {
	lang := o.lang
	if lang == "" {
		lang = configLang
	}
	return i18n.New(lang)
}

// render writes the comparison to stdout, or as report files under --out.
func (o *rootOptions) render(cmd *cobra.Command, results *domain.ScenarioComparison, loc *i18n.Localizer) error {
	if o.out != "" {
		paths, err := output.GenerateReport(results, o.format, o.out, loc)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	}

	if output.NormalizeFormatName(o.format) == "all" {
		return fmt.Errorf("format %q writes several files and requires --out", o.format)
	}
	f := output.GetFormatterByName(o.format, loc)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, o.format)
	}
	b, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

func single(summary *domain.ScenarioSummary) *domain.ScenarioComparison {
	return &domain.ScenarioComparison{Scenarios: []domain.ScenarioSummary{*summary}}
}
