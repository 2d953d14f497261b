/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: html.go
Description: Encoding guesser backed by golang.org/x/net/html/charset, which applies
the WHATWG sniffing rules (BOM, meta tags, UTF-8 validity, windows-1252 fallback).
*/

package charset

import (
	htmlcharset "golang.org/x/net/html/charset"
)

const (
	certainConfidence   = 100
	uncertainConfidence = 10
)

// HTMLGuesser guesses encodings with the HTML sniffing algorithm
type HTMLGuesser struct{}

// NewHTMLGuesser creates a new HTML sniffing guesser
func NewHTMLGuesser() *HTMLGuesser {
	return &HTMLGuesser{}
}

// Guess implements the Guesser interface
func (g *HTMLGuesser) Guess(data []byte) (Guess, bool) {
	if len(data) == 0 {
		return Guess{}, false
	}

	_, name, certain := htmlcharset.DetermineEncoding(data, "")
	if name == "" {
		return Guess{}, false
	}

	confidence := uncertainConfidence
	if certain {
		confidence = certainConfidence
	}
	return Guess{Label: name, Confidence: confidence}, true
}

// Name implements the Guesser interface
func (g *HTMLGuesser) Name() string {
	return DetectorHTML
}
