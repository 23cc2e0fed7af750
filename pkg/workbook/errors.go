package workbook

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetIndex indicates a sheet position outside the workbook.
var ErrSheetIndex = errors.New("sheet index out of range")

// AccessError represents an error while reading from a sheet.
type AccessError struct {
	Sheet string
	Op    string // "cell", "rows", "range"
	Err   error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("workbook access error in sheet %q (%s): %v", e.Sheet, e.Op, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

func newAccessError(sheet, op string, err error) *AccessError {
	return &AccessError{
		Sheet: sheet,
		Op:    op,
		Err:   err,
	}
}
