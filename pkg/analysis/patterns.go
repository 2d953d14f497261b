/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: patterns.go
Description: Repeating pattern detection over the hex rendering of a buffer. A fixed
window of eight hex characters (four raw bytes) slides across every character
offset, so byte-misaligned windows are counted as well.
*/

package analysis

// PatternWidth is the window width in hex characters
const PatternWidth = 8

// ScanPatterns counts every window of PatternWidth characters in hexData.
// Overlapping windows count independently.
func ScanPatterns(hexData string) *CountTable[string] {
	table := NewCountTable[string]()
	for i := 0; i+PatternWidth <= len(hexData); i++ {
		table.Add(hexData[i : i+PatternWidth])
	}
	return table
}

// RepeatingPatterns returns the windows of hexData that occur more than once,
// in first-occurrence order
func RepeatingPatterns(hexData string) []Entry[string] {
	return ScanPatterns(hexData).Filter(1)
}
