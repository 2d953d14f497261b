/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Serialisable snapshot of one analysis run, filled in by the runner as
each section completes and exported on request.
*/

package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/binspect/pkg/analysis"
	"github.com/kleascm/binspect/pkg/charset"
)

// ByteCount is one frequency table entry
type ByteCount struct {
	Byte  string `json:"byte" yaml:"byte"`
	Count int    `json:"count" yaml:"count"`
}

// PatternCount is one repeating pattern entry
type PatternCount struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Count   int    `json:"count" yaml:"count"`
}

// Report holds the results of one run. Only sections that ran are populated.
type Report struct {
	RunID       string            `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Mode        Mode              `json:"mode" yaml:"mode"`
	Sections    []string          `json:"sections" yaml:"sections"`
	File        analysis.FileInfo `json:"file" yaml:"file"`
	Hex         string            `json:"hex" yaml:"hex"`
	Frequencies []ByteCount       `json:"frequencies,omitempty" yaml:"frequencies,omitempty"`
	Patterns    []PatternCount    `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	ASCII       string            `json:"ascii,omitempty" yaml:"ascii,omitempty"`
	Encoding    *charset.Guess    `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

// NewReport creates an empty report for a run in the given mode
func NewReport(mode Mode) *Report {
	return &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now(),
		Mode:        mode,
		Sections:    []string{},
	}
}
