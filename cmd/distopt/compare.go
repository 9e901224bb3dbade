package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/distopt/sim"
)

func newCompareCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run a YAML-described experiment grid and export mean cost curves as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sim.LoadConfig(configPath)
			if err != nil {
				return err
			}
			exp, err := sim.NewExperiment(cfg)
			if err != nil {
				return err
			}

			report, err := exp.Run(cmd.Context())
			if err != nil {
				return err
			}
			if err := report.ExportCSV(outDir); err != nil {
				return err
			}
			slog.Info("experiment exported",
				"experiment_id", report.ID,
				"series", len(report.Series),
				"dir", outDir)

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "experiment YAML file (required)")
	cmd.Flags().StringVar(&outDir, "out", "results", "output directory for CSV files")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
