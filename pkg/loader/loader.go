/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: Whole-file loading for binary analysis. Reads the target in a single
synchronous call and classifies failures as missing files or I/O errors.
*/

package loader

import (
	"errors"
	"io/fs"
	"os"

	"github.com/kleascm/binspect/pkg/analysis"
)

// Load reads the complete contents of path
func Load(path string) ([]byte, error) {
	// Any stat failure (missing, not a directory, name too long, symlink
	// loop) means the path does not name an existing file
	info, err := os.Stat(path)
	if err != nil {
		return nil, analysis.NewError(analysis.FileNotFound, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, analysis.NewError(analysis.FileNotFound, path, errors.New("not a regular file"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, analysis.NewError(analysis.FileNotFound, path, err)
		}
		return nil, analysis.NewError(analysis.IOFailure, path, err)
	}

	return data, nil
}
