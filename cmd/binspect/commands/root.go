/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: root.go
Description: Root command for binspect. Declares the positional file argument, the
analysis mode and the logging, encoding and report export flags, and binds them
to viper.
*/

package commands

import (
	"github.com/kleascm/binspect/pkg/charset"
	"github.com/kleascm/binspect/pkg/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the binspect release
const Version = "1.0.0"

// NewRootCommand builds the binspect command with its own viper instance
func NewRootCommand() *cobra.Command {
	v := viper.New()
	mode := report.ModeAll

	rootCmd := &cobra.Command{
		Use:   "binspect <file_path>",
		Short: "Analyze binary data in a file",
		Long: `binspect inspects an arbitrary binary file and prints human-readable summaries:
file metadata, per-byte frequency counts, a hexadecimal dump, repeating 4-byte
patterns, an ASCII rendering and a best-guess text encoding.`,
		Example:       "  binspect /path/to/binary/file --analysis-mode all",
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return RunAnalyze(cmd, args, v)
		},
	}

	flags := rootCmd.Flags()
	flags.Var(&mode, "analysis-mode", "Choose analysis mode ("+report.ModeChoices()+")")
	flags.String("config", "", "Configuration file path")

	flags.String("log-level", "warn", "Logging level (debug, info, warn, error)")
	flags.String("log-format", "custom", "Log format (text, json, custom)")
	flags.String("log-dir", "", "Also write logs to timestamped files in this directory")
	flags.Int("log-max-files", 10, "Maximum number of log files to keep")
	flags.Bool("log-compress", false, "Compress finished log files")

	flags.String("encoding-detector", charset.DetectorChardet, "Encoding detector (chardet, html)")
	flags.Int("min-confidence", 0, "Report no encoding when the detector confidence is below this value")

	flags.String("report-dir", "", "Write a structured report of the run to this directory")
	flags.String("report-format", report.FormatJSON, "Report format (json, yaml)")
	flags.Bool("report-compress", false, "Gzip the written report")

	v.BindPFlag("config", flags.Lookup("config"))
	v.BindPFlag("analysis_mode", flags.Lookup("analysis-mode"))
	v.BindPFlag("log_level", flags.Lookup("log-level"))
	v.BindPFlag("log_format", flags.Lookup("log-format"))
	v.BindPFlag("log_dir", flags.Lookup("log-dir"))
	v.BindPFlag("log_max_files", flags.Lookup("log-max-files"))
	v.BindPFlag("log_compress", flags.Lookup("log-compress"))
	v.BindPFlag("encoding.detector", flags.Lookup("encoding-detector"))
	v.BindPFlag("encoding.min_confidence", flags.Lookup("min-confidence"))
	v.BindPFlag("report.dir", flags.Lookup("report-dir"))
	v.BindPFlag("report.format", flags.Lookup("report-format"))
	v.BindPFlag("report.compress", flags.Lookup("report-compress"))

	return rootCmd
}
