/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: events.go
Description: Structured log events emitted during an analysis run. Each helper
writes one debug entry with a fixed set of fields so log files stay greppable.
*/

package logging

import (
	"time"

	"github.com/sirupsen/logrus"
)

// LogLoad logs a file that was read into memory
func LogLoad(logger logrus.FieldLogger, path string, size int) {
	logger.WithFields(logrus.Fields{
		"path": path,
		"size": size,
	}).Debug("File loaded")
}

// LogSection logs a completed report section
func LogSection(logger logrus.FieldLogger, name string, duration time.Duration) {
	logger.WithFields(logrus.Fields{
		"section":  name,
		"duration": duration,
	}).Debug("Section completed")
}

// LogGuess logs the outcome of encoding detection. An absent guess is logged
// with the label None.
func LogGuess(logger logrus.FieldLogger, detector string, label string, confidence int) {
	logger.WithFields(logrus.Fields{
		"detector":   detector,
		"encoding":   label,
		"confidence": confidence,
	}).Debug("Encoding guessed")
}
