/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mode.go
Description: Analysis modes selecting which report sections run. Mode implements
pflag.Value so invalid modes are rejected while flags are parsed.
*/

package report

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Mode selects which report sections run
type Mode string

const (
	ModeAll       Mode = "all"
	ModeInfo      Mode = "info"
	ModeStats     Mode = "stats"
	ModeRepeating Mode = "repeating"
	ModeASCII     Mode = "ascii"
	ModeEncoding  Mode = "encoding"
)

// Modes lists every accepted mode in help-text order
var Modes = []Mode{ModeAll, ModeInfo, ModeStats, ModeRepeating, ModeASCII, ModeEncoding}

var _ pflag.Value = (*Mode)(nil)

// ParseMode validates s as a Mode
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid analysis mode %q (choose from %s)", s, ModeChoices())
}

// ModeChoices returns the accepted modes joined for help text
func ModeChoices() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// Includes reports whether a run in mode m produces the given section
func (m Mode) Includes(section Mode) bool {
	return m == ModeAll || m == section
}

// String implements pflag.Value
func (m *Mode) String() string {
	if *m == "" {
		return string(ModeAll)
	}
	return string(*m)
}

// Set implements pflag.Value
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value
func (m *Mode) Type() string {
	return "mode"
}
