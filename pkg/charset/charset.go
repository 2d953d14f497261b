/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: charset.go
Description: Text encoding guessing for raw byte buffers. Guessers wrap external
heuristic detectors and only expose a best-guess label with a confidence score.
*/

package charset

import "fmt"

// Detector names accepted by New
const (
	DetectorChardet = "chardet"
	DetectorHTML    = "html"
)

// Guess is a best-guess text encoding
type Guess struct {
	Label      string `json:"label" yaml:"label"`
	Confidence int    `json:"confidence" yaml:"confidence"`
}

// Guesser estimates the text encoding of raw bytes. The boolean is false when
// the input is empty or no encoding could be determined.
type Guesser interface {
	Guess(data []byte) (Guess, bool)
	Name() string
}

// New returns the guesser registered under name
func New(name string, minConfidence int) (Guesser, error) {
	switch name {
	case "", DetectorChardet:
		return NewChardetGuesser(minConfidence), nil
	case DetectorHTML:
		return NewHTMLGuesser(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding detector: %s", name)
	}
}

// Label renders a guess the way reports print it, using "None" when absent
func Label(g Guess, ok bool) string {
	if !ok || g.Label == "" {
		return "None"
	}
	return g.Label
}
