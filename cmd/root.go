package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/kismet2kml/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "kismet2kml",
	Short: "Convert Kismet data into a Google Earth KML file",
	Long: `Reads a Kismet .netxml survey, keeps the infrastructure access points that
carry averaged GPS coordinates and writes them as KML placemarks.

Examples:
  # Print every located access point to stdout
  kismet2kml -n Kismet-20220101.netxml

  # Open networks only, without hotspot clutter, to a file
  kismet2kml -n Kismet-20220101.netxml -o open.kml --remove-encrypted --remove-annoying`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: runConvert,
}

func init() {
	registerConvertFlags(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
