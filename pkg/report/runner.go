/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: runner.go
Description: Report runner for binary analysis. Loads the target once, then runs each
section selected by the analysis mode in a fixed order, printing human-readable
output and collecting the results into a Report.
*/

package report

import (
	"fmt"
	"io"
	"time"

	"github.com/kleascm/binspect/pkg/analysis"
	"github.com/kleascm/binspect/pkg/charset"
	"github.com/kleascm/binspect/pkg/loader"
	"github.com/kleascm/binspect/pkg/logging"
	"github.com/sirupsen/logrus"
)

// Runner prints analysis sections for a single file
type Runner struct {
	out     io.Writer
	guesser charset.Guesser
	logger  logrus.FieldLogger
	digests bool
}

// NewRunner creates a runner writing to out. A nil logger uses the standard logrus logger.
func NewRunner(out io.Writer, guesser charset.Guesser, logger logrus.FieldLogger) *Runner {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Runner{
		out:     out,
		guesser: guesser,
		logger:  logger,
	}
}

// SetDigests enables BLAKE3 and SHA-256 digests in the report's file info
func (r *Runner) SetDigests(enabled bool) {
	r.digests = enabled
}

// section is one step of a run
type section struct {
	name   string
	mode   Mode
	always bool
	run    func(r *Runner, st *runState) error
}

// runState is shared by the sections of one run
type runState struct {
	data   []byte
	hex    string
	report *Report
	w      *printer
}

// sections are executed in this order
var sections = []section{
	{name: "info", mode: ModeInfo, run: (*Runner).printInfo},
	{name: "stats", mode: ModeStats, run: (*Runner).printStats},
	{name: "hex", always: true, run: (*Runner).printHex},
	{name: "repeating", mode: ModeRepeating, run: (*Runner).printPatterns},
	{name: "ascii", mode: ModeASCII, run: (*Runner).printASCII},
	{name: "encoding", mode: ModeEncoding, run: (*Runner).printEncoding},
}

// Run analyses the file at path. A load failure returns before anything is
// printed. A DecodeAnomaly is printed inline and the run continues; any other
// section failure stops the run and is returned as UnexpectedFailure.
func (r *Runner) Run(path string, mode Mode) (*Report, error) {
	start := time.Now()

	data, err := loader.Load(path)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"path": path,
			"kind": analysis.KindOf(err).String(),
		}).Debug("File load failed")
		return nil, err
	}
	logging.LogLoad(r.logger.WithField("mode", mode), path, len(data))

	st := &runState{
		data:   data,
		hex:    analysis.EncodeHex(data),
		report: NewReport(mode),
		w:      &printer{w: r.out},
	}
	st.report.File = analysis.Describe(path, data)
	if r.digests {
		st.report.File.AddDigests(data)
	}

	for _, s := range sections {
		if !s.always && !mode.Includes(s.mode) {
			continue
		}

		sectionStart := time.Now()
		err := s.run(r, st)
		if err == nil {
			err = st.w.err
		}
		if err != nil {
			if analysis.KindOf(err) == analysis.DecodeAnomaly {
				r.logger.WithField("section", s.name).Warn("Section reported a decode anomaly")
				st.w.println()
				st.w.println(err.Error())
				if st.w.err == nil {
					continue
				}
				err = st.w.err
			}
			r.logger.WithFields(logrus.Fields{
				"section": s.name,
				"error":   err,
			}).Error("Section failed")
			return st.report, analysis.AsUnexpected(fmt.Errorf("%s section: %w", s.name, err))
		}

		if !s.always {
			st.report.Sections = append(st.report.Sections, s.name)
		}
		logging.LogSection(r.logger, s.name, time.Since(sectionStart))
	}

	r.logger.WithFields(logrus.Fields{
		"path":     path,
		"duration": time.Since(start),
	}).Info("Analysis completed")

	return st.report, nil
}

func (r *Runner) printInfo(st *runState) error {
	st.w.println("File Information:")
	st.w.printf("File Path: %s\n", st.report.File.Path)
	st.w.printf("File Size: %d bytes\n", st.report.File.Size)
	return nil
}

func (r *Runner) printStats(st *runState) error {
	table := analysis.CountBytes(st.data)
	st.w.println("Byte Statistics:")
	for _, e := range table.Entries() {
		st.w.printf("Byte: 0x%02X | Count: %d\n", e.Key, e.Count)
		st.report.Frequencies = append(st.report.Frequencies, ByteCount{
			Byte:  fmt.Sprintf("0x%02X", e.Key),
			Count: e.Count,
		})
	}
	return nil
}

func (r *Runner) printHex(st *runState) error {
	st.w.println()
	st.w.println("Hexadecimal representation of binary data:")
	st.w.println(st.hex)
	st.report.Hex = st.hex
	return nil
}

func (r *Runner) printPatterns(st *runState) error {
	st.w.println()
	st.w.println("Repeating 4-byte patterns:")
	for _, e := range analysis.RepeatingPatterns(st.hex) {
		st.w.printf("Pattern: %s | Count: %d\n", e.Key, e.Count)
		st.report.Patterns = append(st.report.Patterns, PatternCount{Pattern: e.Key, Count: e.Count})
	}
	return nil
}

func (r *Runner) printASCII(st *runState) error {
	text, err := analysis.RenderASCII(st.data)
	if err != nil {
		return err
	}
	st.w.println()
	st.w.println("ASCII representation of the data:")
	st.w.println(text)
	st.report.ASCII = text
	return nil
}

func (r *Runner) printEncoding(st *runState) error {
	if r.guesser == nil {
		return fmt.Errorf("no encoding guesser configured")
	}

	guess, ok := r.guesser.Guess(st.data)
	label := charset.Label(guess, ok)
	logging.LogGuess(r.logger, r.guesser.Name(), label, guess.Confidence)

	st.w.println()
	st.w.printf("Detected encoding: %s\n", label)
	if ok {
		st.report.Encoding = &guess
	}
	return nil
}

// printer remembers the first write error so sections can print freely
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}
