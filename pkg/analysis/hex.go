/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: hex.go
Description: Uppercase hexadecimal encoding of a byte buffer. The resulting string is
the input to pattern scanning.
*/

package analysis

import (
	"encoding/hex"
	"strings"
)

// EncodeHex returns two uppercase hex digits per byte with no separators
func EncodeHex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}
