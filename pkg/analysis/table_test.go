package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTable(t *testing.T) {
	table := NewCountTable[string]()
	for _, k := range []string{"b", "a", "b", "c", "b", "a"} {
		table.Add(k)
	}

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 6, table.Total())
	assert.Equal(t, []Entry[string]{{"b", 3}, {"a", 2}, {"c", 1}}, table.Entries())
	assert.Equal(t, []Entry[string]{{"b", 3}, {"a", 2}}, table.Filter(1))
	assert.Empty(t, table.Filter(3))

	empty := NewCountTable[byte]()
	assert.Empty(t, empty.Entries())
	assert.NotNil(t, empty.Filter(0))
}
