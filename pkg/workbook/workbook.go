// Package workbook provides value-only read access to xlsx workbooks.
package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Workbook wraps an open xlsx file. Formula cells yield their cached
// results, so reads see the same values the original application saved.
type Workbook struct {
	f *excelize.File

	// Name is the workbook file name (no path).
	Name string
	// Path is the path the workbook was opened from.
	Path string
}

// Open opens the workbook at path for reading.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}

	return &Workbook{
		f:    f,
		Name: filepath.Base(path),
		Path: path,
	}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// SheetAt returns the name of the sheet at the given 1-based position.
func (w *Workbook) SheetAt(pos int) (string, error) {
	names := w.SheetNames()
	if pos < 1 || pos > len(names) {
		return "", fmt.Errorf("%w: %d (workbook has %d sheets)", ErrSheetIndex, pos, len(names))
	}
	return names[pos-1], nil
}

// CellValue returns the value of the cell at axis (e.g. "B5") on sheet.
func (w *Workbook) CellValue(sheet, axis string) (string, error) {
	v, err := w.f.GetCellValue(sheet, axis)
	if err != nil {
		return "", newAccessError(sheet, "cell", err)
	}
	return v, nil
}

// Rows returns all rows of the sheet. Trailing empty cells are omitted
// per row, matching excelize semantics.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, newAccessError(sheet, "rows", err)
	}
	return rows, nil
}

// Range is the bounding box of non-empty cells, 1-based inclusive.
type Range struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// String renders the range in A1:D10 notation.
func (r Range) String() string {
	start, _ := excelize.CoordinatesToCellName(r.MinCol, r.MinRow)
	end, _ := excelize.CoordinatesToCellName(r.MaxCol, r.MaxRow)
	return start + ":" + end
}

// DataRange returns the bounding box of non-empty cells on the sheet.
// The second return value is false when the sheet has no data.
func (w *Workbook) DataRange(sheet string) (Range, bool, error) {
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return Range{}, false, newAccessError(sheet, "range", err)
	}

	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return Range{}, false, nil
	}

	return Range{
		MinRow: minRow + 1,
		MinCol: minCol + 1,
		MaxRow: maxRow + 1,
		MaxCol: maxCol + 1,
	}, true, nil
}

// ParseValue attempts to parse a cell value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
