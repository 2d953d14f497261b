/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared configuration for binspect commands. Loads settings from flags, an
optional configuration file and BINSPECT_ environment variables.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/kleascm/binspect/pkg/charset"
	"github.com/kleascm/binspect/pkg/logging"
	"github.com/kleascm/binspect/pkg/report"
	"github.com/spf13/viper"
)

// Config is the resolved configuration of one invocation
type Config struct {
	AnalysisMode  report.Mode
	Logging       logging.LoggerConfig
	Detector      string
	MinConfidence int
	Export        report.ExportOptions
}

// LoadConfig loads configuration from files and environment
func LoadConfig(v *viper.Viper) (*Config, error) {
	// Set config file if specified
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	v.SetEnvPrefix("BINSPECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	mode, err := report.ParseMode(v.GetString("analysis_mode"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AnalysisMode: mode,
		Logging: logging.LoggerConfig{
			Level:     logging.LogLevel(v.GetString("log_level")),
			Format:    logging.LogFormat(v.GetString("log_format")),
			OutputDir: v.GetString("log_dir"),
			MaxFiles:  v.GetInt("log_max_files"),
			Compress:  v.GetBool("log_compress"),
			Timestamp: true,
		},
		Detector:      v.GetString("encoding.detector"),
		MinConfidence: v.GetInt("encoding.min_confidence"),
		Export: report.ExportOptions{
			Dir:      v.GetString("report.dir"),
			Format:   v.GetString("report.format"),
			Compress: v.GetBool("report.compress"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the resolved configuration
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if _, err := charset.New(c.Detector, c.MinConfidence); err != nil {
		return err
	}
	if c.MinConfidence < 0 || c.MinConfidence > 100 {
		return fmt.Errorf("min_confidence must be between 0 and 100")
	}
	if c.Export.Dir != "" {
		if err := c.Export.Validate(); err != nil {
			return err
		}
	}
	return nil
}
