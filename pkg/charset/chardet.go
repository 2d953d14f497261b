/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: chardet.go
Description: Encoding guesser backed by saintfish/chardet, a port of the ICU charset
detection heuristics.
*/

package charset

import (
	"github.com/saintfish/chardet"
)

// ChardetGuesser guesses encodings with chardet's text detector
type ChardetGuesser struct {
	detector      *chardet.Detector
	minConfidence int
}

// NewChardetGuesser creates a guesser that discards results below minConfidence
func NewChardetGuesser(minConfidence int) *ChardetGuesser {
	return &ChardetGuesser{
		detector:      chardet.NewTextDetector(),
		minConfidence: minConfidence,
	}
}

// Guess implements the Guesser interface
func (g *ChardetGuesser) Guess(data []byte) (Guess, bool) {
	if len(data) == 0 {
		return Guess{}, false
	}

	result, err := g.detector.DetectBest(data)
	if err != nil || result == nil {
		return Guess{}, false
	}
	if result.Confidence < g.minConfidence {
		return Guess{}, false
	}

	return Guess{Label: result.Charset, Confidence: result.Confidence}, true
}

// Name implements the Guesser interface
func (g *ChardetGuesser) Name() string {
	return DetectorChardet
}
