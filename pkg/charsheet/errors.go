package charsheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file or directory does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates a workbook is not a valid xlsx file.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidJSON indicates a character file is not a JSON object.
var ErrInvalidJSON = errors.New("invalid character json")

// ErrSheetNotFound indicates the requested template sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoInputs indicates a run was started without character files.
var ErrNoInputs = errors.New("no json input files")

// RecordError represents a character file that could not be loaded.
type RecordError struct {
	Path string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("load character %q: %v", e.Path, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError.
func NewRecordError(path string, err error) *RecordError {
	return &RecordError{
		Path: path,
		Err:  err,
	}
}
