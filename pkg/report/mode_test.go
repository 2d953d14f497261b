package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		parsed, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParseMode("hexdump")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all, info, stats, repeating, ascii, encoding")
}

func TestModeFlagValue(t *testing.T) {
	var m Mode
	assert.Equal(t, "all", m.String())
	assert.Equal(t, "mode", m.Type())

	require.NoError(t, m.Set("ascii"))
	assert.Equal(t, ModeASCII, m)
	assert.Error(t, m.Set("ASCII"))
	assert.Equal(t, ModeASCII, m)
}

func TestModeIncludes(t *testing.T) {
	for _, section := range Modes[1:] {
		assert.True(t, ModeAll.Includes(section))
		assert.True(t, section.Includes(section))
	}
	assert.False(t, ModeInfo.Includes(ModeStats))
	assert.False(t, ModeEncoding.Includes(ModeASCII))
}
