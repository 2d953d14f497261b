/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ascii.go
Description: ASCII rendering of a byte buffer. Each byte is decoded as a single ASCII
code unit, with invalid values substituted, and anything outside the printable
range is shown as a space.
*/

package analysis

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	printableMin = 32
	printableMax = 126
)

// DecodeASCII decodes each byte as one ASCII code unit. Bytes above 127 become
// utf8.RuneError.
func DecodeASCII(data []byte) []rune {
	runes := make([]rune, len(data))
	for i, b := range data {
		if b > utf8.RuneSelf-1 {
			runes[i] = utf8.RuneError
			continue
		}
		runes[i] = rune(b)
	}
	return runes
}

// RenderASCII returns the printable rendering of data, one character per byte
func RenderASCII(data []byte) (string, error) {
	runes := DecodeASCII(data)
	if len(runes) != len(data) {
		return "", NewError(DecodeAnomaly, "", errors.New("decoded length does not match input"))
	}

	var sb strings.Builder
	sb.Grow(len(runes))
	for _, r := range runes {
		if r >= printableMin && r <= printableMax {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String(), nil
}
