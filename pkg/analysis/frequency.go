/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: frequency.go
Description: Per-byte frequency counting. Byte values are reported in the order they
first appear in the buffer, not in numeric order.
*/

package analysis

// CountBytes tabulates how often each byte value occurs in data
func CountBytes(data []byte) *CountTable[byte] {
	table := NewCountTable[byte]()
	for _, b := range data {
		table.Add(b)
	}
	return table
}
