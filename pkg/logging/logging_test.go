/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Tests for the logging system. Covers configuration validation, console
and file output, formatting, and retention of old log files.
*/

package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.OutputDir = t.TempDir()
	cfg.MaxFiles = 0
	assert.Error(t, cfg.Validate())
}

func TestNewLoggerConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	logger, err := NewLogger(&LoggerConfig{
		Level:  LogLevelInfo,
		Format: LogFormatCustom,
	}, &console)
	require.NoError(t, err)
	defer logger.Close()

	assert.Empty(t, logger.FilePath())

	logger.GetLogger().Debug("hidden")
	logger.GetLogger().WithField("section", "stats").Info("Section completed")

	out := console.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO [STATS] Section completed")
}

func TestNewLoggerRejectsInvalidConfig(t *testing.T) {
	_, err := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "yaml"}, nil)
	assert.Error(t, err)
}

func TestLogFormats(t *testing.T) {
	formats := []LogFormat{LogFormatText, LogFormatJSON, LogFormatCustom}

	for _, format := range formats {
		t.Run(string(format), func(t *testing.T) {
			var console bytes.Buffer
			logger, err := NewLogger(&LoggerConfig{Level: LogLevelDebug, Format: format}, &console)
			require.NoError(t, err)
			defer logger.Close()

			logger.GetLogger().WithField("path", "blob.bin").Warn("Format test")
			assert.Contains(t, console.String(), "Format test")
			assert.Contains(t, console.String(), "blob.bin")
		})
	}
}

func TestLoggerFileOutput(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatJSON,
		OutputDir: dir,
		MaxFiles:  5,
	}, &console)
	require.NoError(t, err)

	logger.LogExport("/tmp/report.json", "json", false)
	path := logger.FilePath()
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Report exported")
	assert.Contains(t, console.String(), "Report exported")
	assert.True(t, strings.HasPrefix(filepath.Base(path), "binspect_"))
}

func TestLoggerCloseReportsRetention(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "binspect_2020-01-01_00-00-00.log"), []byte("old\n"), 0644))
	var console bytes.Buffer

	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatCustom,
		OutputDir: dir,
		MaxFiles:  5,
		Compress:  true,
	}, &console)
	require.NoError(t, err)
	path := logger.FilePath()
	require.NoError(t, logger.Close())

	out := console.String()
	assert.Contains(t, out, "Log retention applied")
	assert.Contains(t, out, "files=2")
	assert.Contains(t, out, "compressed=1")
	assert.Contains(t, out, "uncompressed=1")
	assert.FileExists(t, path)

	logger.GetLogger().Warn("after close")
	assert.Contains(t, console.String(), "after close")
}

func TestLoggerCloseReturnsCompressError(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "binspect_2020-01-01_00-00-00.log")
	require.NoError(t, os.WriteFile(old, []byte("old\n"), 0644))
	// A directory where the archive should go makes compression fail
	require.NoError(t, os.Mkdir(old+".gz", 0755))

	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelWarning,
		Format:    LogFormatCustom,
		OutputDir: dir,
		MaxFiles:  5,
		Compress:  true,
	}, &bytes.Buffer{})
	require.NoError(t, err)

	err = logger.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compress log files")
}

func TestEventHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&CustomFormatter{})

	LogLoad(l, "blob.bin", 4)
	LogSection(l, "stats", 1500*time.Microsecond)
	LogGuess(l, "chardet", "None", 0)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "DEBUG File loaded path=blob.bin size=4", lines[0])
	assert.Equal(t, "DEBUG [STATS] Section completed duration=1.5ms", lines[1])
	assert.Equal(t, "DEBUG Encoding guessed confidence=0 detector=chardet encoding=None", lines[2])
}

func TestEventHelpersRespectLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.InfoLevel)

	LogLoad(l, "blob.bin", 4)
	LogSection(l, "hex", time.Millisecond)
	assert.Empty(t, buf.String())
}

func TestLogManagerRetention(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"binspect_2024-01-01_00-00-00.log",
		"binspect_2024-01-02_00-00-00.log",
		"binspect_2024-01-03_00-00-00.log",
		"binspect_2024-01-04_00-00-00.log",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("line\n"), 0644))
	}
	current := filepath.Join(dir, names[3])

	manager := NewLogManager(dir, 2, true)
	require.NoError(t, manager.CompressLogs(current))
	require.NoError(t, manager.CleanupOldLogs())

	stats, err := manager.GetLogStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalFiles)
	assert.Equal(t, 1, stats.CompressedFiles)
	assert.Equal(t, 1, stats.UncompressedFiles)

	assert.FileExists(t, current)
	assert.FileExists(t, filepath.Join(dir, names[2]+".gz"))
	assert.NoFileExists(t, filepath.Join(dir, names[0]+".gz"))
}

func TestCustomFormatter(t *testing.T) {
	f := &CustomFormatter{}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2024, 6, 11, 1, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "Section reported a decode anomaly",
		Data: logrus.Fields{
			"section":  "ascii",
			"size":     4,
			"error":    errors.New("boom"),
			"duration": 1500 * time.Millisecond,
		},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "WARNING [ASCII] Section reported a decode anomaly duration=1.5s error=boom size=4\n", string(out))

	f.Timestamp = true
	out, err = f.Format(entry)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "2024-06-11 01:30:00.000 WARNING"))
}
