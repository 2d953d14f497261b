/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyze.go
Description: Analyze command implementation for binspect. Resolves configuration,
sets up logging and the encoding guesser, runs the report, and optionally exports
it. Handled analysis failures are printed as a single line and do not fail the
process.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/binspect/pkg/analysis"
	"github.com/kleascm/binspect/pkg/charset"
	"github.com/kleascm/binspect/pkg/logging"
	"github.com/kleascm/binspect/pkg/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunAnalyze analyses the file named by args[0]
func RunAnalyze(cmd *cobra.Command, args []string, v *viper.Viper) error {
	cfg, err := LoadConfig(v)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewLogger(&cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			logger.GetLogger().WithField("error", err).Error("Log cleanup failed")
		}
	}()

	guesser, err := charset.New(cfg.Detector, cfg.MinConfidence)
	if err != nil {
		return fmt.Errorf("failed to create encoding guesser: %w", err)
	}

	out := cmd.OutOrStdout()
	path := args[0]

	runner := report.NewRunner(out, guesser, logger.GetLogger())
	runner.SetDigests(cfg.Export.Dir != "")
	rep, err := runner.Run(path, cfg.AnalysisMode)
	if err != nil {
		logger.GetLogger().WithFields(logrus.Fields{
			"path": path,
			"kind": analysis.KindOf(err).String(),
		}).Debug("Analysis stopped")
		fmt.Fprintln(out, err.Error())
		return nil
	}

	if cfg.Export.Dir == "" {
		return nil
	}

	reportPath, err := report.Write(rep, cfg.Export)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Report export failed")
		fmt.Fprintln(out, analysis.AsUnexpected(err).Error())
		return nil
	}
	logger.LogExport(reportPath, cfg.Export.Format, cfg.Export.Compress)

	return nil
}
