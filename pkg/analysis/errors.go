/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error kinds for binary analysis runs. Every failure surfaced to the user is
one of a small closed set of kinds, carried by Error and inspected with KindOf.
*/

package analysis

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies a failure during an analysis run
type ErrorKind int

const (
	// UnexpectedFailure is any fault not covered by the other kinds
	UnexpectedFailure ErrorKind = iota
	// FileNotFound means the path does not name an existing regular file
	FileNotFound
	// IOFailure means the file exists but could not be read
	IOFailure
	// DecodeAnomaly means the ASCII rendering could not decode the buffer
	DecodeAnomaly
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "FileNotFound"
	case IOFailure:
		return "IOFailure"
	case DecodeAnomaly:
		return "DecodeAnomaly"
	default:
		return "UnexpectedFailure"
	}
}

// Error is a classified analysis failure
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

// NewError creates a classified error
func NewError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// Error renders the single human-readable line printed for this failure
func (e *Error) Error() string {
	switch e.Kind {
	case FileNotFound:
		return fmt.Sprintf("File not found: %s", e.Path)
	case IOFailure:
		return fmt.Sprintf("Unable to read file: %s: %v", e.Path, cause(e.Err))
	case DecodeAnomaly:
		return "Unable to decode binary data as ASCII."
	default:
		return fmt.Sprintf("An error occurred: %v", e.Err)
	}
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err. Errors that are not *Error are unexpected.
func KindOf(err error) ErrorKind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return UnexpectedFailure
}

// AsUnexpected classifies err as UnexpectedFailure unless it already carries a kind
func AsUnexpected(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return NewError(UnexpectedFailure, "", err)
}

// cause strips a *fs.PathError so the path is not printed twice
func cause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
