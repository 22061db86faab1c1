package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/expdata/internal/infrastructure/logging"
	"github.com/GriffinCanCode/expdata/internal/shared/id"
	"github.com/GriffinCanCode/expdata/internal/worksheet"
)

var (
	development bool
	divisor     float64
)

var rootCmd = &cobra.Command{
	Use:           "reduce <worksheet.yaml|.toml>...",
	Short:         "Reduce worksheets of measurements to values with uncertainty",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if development {
			level = "debug"
		}
		logger := logging.FromSettings(level, development)
		defer logger.Sync()

		opts := options{}
		if cmd.Flags().Changed("divisor") {
			if divisor <= 0 {
				return fmt.Errorf("divisor must be > 0, got %g", divisor)
			}
			opts.divisor = &divisor
		}

		for _, path := range args {
			if err := run(path, cmd.OutOrStdout(), logger, opts); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&development, "dev", false, "Development logging")
	rootCmd.Flags().Float64Var(&divisor, "divisor", 0, "Confidence divisor for sheets that do not set one")
}

type options struct {
	// divisor fills in Sheet.Divisor when the sheet leaves it unset
	divisor *float64
}

// run reduces the worksheet at path and writes one line per measurement
func run(path string, out io.Writer, logger *logging.Logger, opts options) error {
	runID := id.NewRunID()
	log := logger.Component("reduce").With(
		zap.String("run_id", runID.String()),
		zap.String("worksheet", path),
	)

	sheet, err := worksheet.Load(path)
	if err != nil {
		log.Error("Failed to load worksheet", zap.Error(err))
		return err
	}
	if sheet.Divisor == nil && opts.divisor != nil {
		sheet.Divisor = opts.divisor
	}
	log.Debug("Loaded worksheet", zap.Int("measurements", len(sheet.Measurements)))

	results, err := sheet.Reduce()
	// Results reduced before a failure are still printed
	for _, r := range results {
		if _, werr := fmt.Fprintf(out, "%s: %s\n", r.Name, r.Quantity); werr != nil {
			return werr
		}
	}
	if err != nil {
		log.Error("Reduction failed", zap.Error(err), zap.Int("reduced", len(results)))
		return fmt.Errorf("%s: %w", path, err)
	}

	log.Debug("Reduction complete", zap.Int("reduced", len(results)))
	return nil
}
