package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/pac-simulator/internal/config"
	"github.com/rpgo/pac-simulator/internal/domain"
	"github.com/rpgo/pac-simulator/internal/output"
)

func writeExampleTOML(cfg *domain.Configuration, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [path]",
		Short: "Write an example scenario file",
		Long: "Write an example configuration with the three return presets and two fee variants.\n" +
			"The extension picks the encoding (.toml, otherwise YAML). Use - for stdout.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "pacsim_example.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			cfg := config.NewInputParser().CreateExampleConfiguration()

			if path == "-" {
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
			}

			var err error
			if strings.EqualFold(filepath.Ext(path), ".toml") {
				err = writeExampleTOML(cfg, path)
			} else {
				err = output.SaveConfiguration(cfg, path)
			}
			if err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}
}
