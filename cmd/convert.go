package main

import (
	"io"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/kismet2kml/internal/config"
	"github.com/sells-group/kismet2kml/internal/kml"
	"github.com/sells-group/kismet2kml/internal/netxml"
)

// convertOptions is everything one conversion run needs.
type convertOptions struct {
	InputPath  string
	OutputPath string // empty means stdout
	Filter     netxml.Options
}

func registerConvertFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("net-xml-file", "n", "", "path to the .netxml file (required)")
	f.StringP("output", "o", "", "path to the output file (default: stdout)")
	f.BoolP("remove-encrypted", "e", false, "filter out non-open access points")
	f.BoolP("remove-annoying", "a", false, "remove annoying access points (subjective)")
	f.BoolP("remove-hidden", "H", false, "remove hidden SSIDs from output")
	_ = cmd.MarkFlagRequired("net-xml-file")
}

func runConvert(cmd *cobra.Command, _ []string) error {
	opts, err := resolveConvertOptions(cmd, cfg.Filter)
	if err != nil {
		return err
	}
	_, err = convert(cmd.OutOrStdout(), opts)
	return err
}

// resolveConvertOptions merges flags over the configured filter defaults.
// A filter flag only wins when it was given on the command line.
func resolveConvertOptions(cmd *cobra.Command, defaults config.FilterConfig) (convertOptions, error) {
	f := cmd.Flags()

	input, _ := f.GetString("net-xml-file")
	if input == "" {
		return convertOptions{}, eris.New("convert: --net-xml-file is required")
	}
	absInput, err := filepath.Abs(input)
	if err != nil {
		return convertOptions{}, eris.Wrapf(err, "convert: resolve %s", input)
	}

	opts := convertOptions{
		InputPath: absInput,
		Filter: netxml.Options{
			RemoveEncrypted: defaults.RemoveEncrypted,
			RemoveAnnoying:  defaults.RemoveAnnoying,
			RemoveHidden:    defaults.RemoveHidden,
		},
	}

	if output, _ := f.GetString("output"); output != "" {
		absOutput, err := filepath.Abs(output)
		if err != nil {
			return convertOptions{}, eris.Wrapf(err, "convert: resolve %s", output)
		}
		opts.OutputPath = absOutput
	}

	if f.Changed("remove-encrypted") {
		opts.Filter.RemoveEncrypted, _ = f.GetBool("remove-encrypted")
	}
	if f.Changed("remove-annoying") {
		opts.Filter.RemoveAnnoying, _ = f.GetBool("remove-annoying")
	}
	if f.Changed("remove-hidden") {
		opts.Filter.RemoveHidden, _ = f.GetBool("remove-hidden")
	}

	return opts, nil
}

// convert reads, filters and renders one survey. The document is fully
// rendered before anything is written, so a failed run leaves no output.
func convert(stdout io.Writer, opts convertOptions) (netxml.Stats, error) {
	log := zap.L().With(zap.String("command", "convert"))
	log.Debug("starting conversion",
		zap.String("input", opts.InputPath),
		zap.String("output", opts.OutputPath),
		zap.Bool("remove_encrypted", opts.Filter.RemoveEncrypted),
		zap.Bool("remove_annoying", opts.Filter.RemoveAnnoying),
		zap.Bool("remove_hidden", opts.Filter.RemoveHidden),
	)

	doc, err := netxml.ReadFile(opts.InputPath)
	if err != nil {
		return netxml.Stats{}, err
	}

	aps, stats, err := netxml.Extract(doc, opts.Filter)
	if err != nil {
		return stats, eris.Wrapf(err, "convert: extract %s", opts.InputPath)
	}

	out, err := kml.Bytes(aps)
	if err != nil {
		return stats, err
	}

	if opts.OutputPath == "" {
		err = kml.WriteTo(stdout, out)
	} else {
		err = kml.WriteFile(opts.OutputPath, out)
	}
	if err != nil {
		return stats, err
	}

	log.Info("conversion complete",
		zap.Int("networks", stats.Networks),
		zap.Int("infrastructure", stats.Infrastructure),
		zap.Int("dropped_hidden", stats.Hidden),
		zap.Int("dropped_annoying", stats.Annoying),
		zap.Int("dropped_encrypted", stats.Encrypted),
		zap.Int("dropped_no_gps", stats.NoGPS),
		zap.Int("placemarks", stats.Kept),
	)
	return stats, nil
}
