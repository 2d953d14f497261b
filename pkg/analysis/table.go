/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: table.go
Description: Insertion-ordered occurrence table shared by the byte frequency counter
and the repeating pattern scanner.
*/

package analysis

// Entry is one key and its occurrence count
type Entry[K comparable] struct {
	Key   K
	Count int
}

// CountTable counts occurrences of keys and remembers the order in which
// each key was first seen
type CountTable[K comparable] struct {
	keys   []K
	counts map[K]int
}

// NewCountTable creates an empty table
func NewCountTable[K comparable]() *CountTable[K] {
	return &CountTable[K]{counts: make(map[K]int)}
}

// Add records one occurrence of key
func (t *CountTable[K]) Add(key K) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// Count returns the occurrences of key and whether it was seen at all
func (t *CountTable[K]) Count(key K) (int, bool) {
	c, ok := t.counts[key]
	return c, ok
}

// Len returns the number of distinct keys
func (t *CountTable[K]) Len() int {
	return len(t.keys)
}

// Total returns the sum of all counts
func (t *CountTable[K]) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Entries returns all entries in first-occurrence order
func (t *CountTable[K]) Entries() []Entry[K] {
	entries := make([]Entry[K], 0, len(t.keys))
	for _, k := range t.keys {
		entries = append(entries, Entry[K]{Key: k, Count: t.counts[k]})
	}
	return entries
}

// Filter returns the entries with a count above min, in first-occurrence order
func (t *CountTable[K]) Filter(min int) []Entry[K] {
	entries := make([]Entry[K], 0)
	for _, k := range t.keys {
		if c := t.counts[k]; c > min {
			entries = append(entries, Entry[K]{Key: k, Count: c})
		}
	}
	return entries
}
