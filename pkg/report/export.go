/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: export.go
Description: Writes analysis reports to a directory. Handles timestamped naming,
JSON or YAML encoding, and optional gzip compression.
*/

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportOptions controls where and how a report is written
type ExportOptions struct {
	Dir      string
	Format   string
	Compress bool
}

// Validate checks the export options
func (o ExportOptions) Validate() error {
	switch o.Format {
	case FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s", o.Format)
	}
}

// Encode serialises the report in the given format
func Encode(r *Report, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(r, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Write stores the report under opts.Dir and returns the file path
func Write(r *Report, opts ExportOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	// Generate filename: 2024-06-11_01-30-00_1b4e28ba.json
	timestamp := r.GeneratedAt.Format("2006-01-02_15-04-05")
	id := r.RunID
	if len(id) > 8 {
		id = id[:8]
	}
	filename := fmt.Sprintf("%s_%s.%s", timestamp, id, opts.Format)

	data, err := Encode(r, opts.Format)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	if opts.Compress {
		filename += ".gz"
		data, err = compress(data)
		if err != nil {
			return "", fmt.Errorf("failed to compress report: %w", err)
		}
	}

	filePath := filepath.Join(opts.Dir, filename)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return filePath, nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
