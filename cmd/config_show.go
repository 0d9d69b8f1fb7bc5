package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long:  "Prints the configuration after kismet2kml.yaml, KISMET2KML_* environment variables and defaults are merged.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return eris.Wrap(err, "config: marshal")
		}
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return eris.Wrap(err, "config: write")
		}
		return nil
	},
}

func init() { rootCmd.AddCommand(configCmd) }
