/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: metadata.go
Description: File metadata for an analysed buffer: the path as given, its size, and
optional content digests used to identify the blob in exported reports.
*/

package analysis

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// FileInfo describes the analysed file. Digests are empty unless AddDigests ran.
type FileInfo struct {
	Path   string `json:"path" yaml:"path"`
	Size   int    `json:"size" yaml:"size"`
	BLAKE3 string `json:"blake3,omitempty" yaml:"blake3,omitempty"`
	SHA256 string `json:"sha256,omitempty" yaml:"sha256,omitempty"`
}

// Describe builds the FileInfo for path and its contents
func Describe(path string, data []byte) FileInfo {
	return FileInfo{
		Path: path,
		Size: len(data),
	}
}

// AddDigests fills in the BLAKE3 and SHA-256 digests of data
func (f *FileInfo) AddDigests(data []byte) {
	b3 := blake3.Sum256(data)
	s2 := sha256.Sum256(data)
	f.BLAKE3 = hex.EncodeToString(b3[:])
	f.SHA256 = hex.EncodeToString(s2[:])
}
