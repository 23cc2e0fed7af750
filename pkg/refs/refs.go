// Package refs implements the bracket reference notation used by the
// report templates to address cells by label instead of coordinate.
//
// A three-segment reference [Sheet]![Item]![Column] names a sheet, a row
// by the item label in its label column, and a column by its header text.
// A two-segment reference [Sheet]![Item] names the labeled cell itself.
package refs

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/wenhaoz/reportutil/pkg/workbook"
	"github.com/xuri/excelize/v2"
)

// ErrSyntax indicates a string that is not a bracket reference.
var ErrSyntax = errors.New("invalid reference syntax")

// ErrNotFound indicates an item or column label absent from the sheet.
var ErrNotFound = errors.New("reference not found")

// ErrAxisRange indicates a cell address outside Excel's grid.
var ErrAxisRange = errors.New("cell address out of range")

// Excel grid limits.
const (
	maxRows = 1048576
	maxCols = 16384 // column XFD
)

// Item labels in financial statements often carry a marker prefix the
// reference omits. Lookup retries with these prepended.
var labelPrefixes = []string{
	"加：", "减：", "其中：", "其中:",
	"*", "☆", "△", "▲", "√",
}

var refPattern = regexp.MustCompile(`^\[([^\]]+)\]!\[([^\]]+)\](?:!\[([^\]]+)\])?$`)

var axisPattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// Ref is a parsed bracket reference. Column is empty for the
// two-segment form.
type Ref struct {
	Sheet  string
	Item   string
	Column string
}

// Format assembles a three-segment bracket reference. With an empty
// column it yields the two-segment form.
func Format(sheet, item, column string) string {
	if column == "" {
		return fmt.Sprintf("[%s]![%s]", sheet, item)
	}
	return fmt.Sprintf("[%s]![%s]![%s]", sheet, item, column)
}

// String renders the reference in bracket notation.
func (r Ref) String() string {
	return Format(r.Sheet, r.Item, r.Column)
}

// Parse parses a bracket reference in either form.
func Parse(s string) (Ref, error) {
	m := refPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Ref{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return Ref{Sheet: m[1], Item: m[2], Column: m[3]}, nil
}

// ResolveOptions locates the label column and header row of the sheet
// the reference is resolved against.
type ResolveOptions struct {
	// HeaderRow is the 1-based row holding column header texts.
	HeaderRow int
	// LabelColumn is the column letter holding item labels.
	LabelColumn string
}

// DefaultResolveOptions matches the report template layout: headers on
// row 2, item labels in column B.
func DefaultResolveOptions() ResolveOptions {
	return ResolveOptions{
		HeaderRow:   2,
		LabelColumn: "B",
	}
}

// Resolve locates the cell the reference addresses and returns its
// coordinate (e.g. "E5"). For the two-segment form the coordinate of
// the label cell itself is returned.
func (r Ref) Resolve(wb *workbook.Workbook, opts ResolveOptions) (string, error) {
	if opts.HeaderRow < 1 {
		opts.HeaderRow = 2
	}
	if opts.LabelColumn == "" {
		opts.LabelColumn = "B"
	}

	labelCol, err := excelize.ColumnNameToNumber(opts.LabelColumn)
	if err != nil {
		return "", fmt.Errorf("label column %q: %w", opts.LabelColumn, err)
	}

	rows, err := wb.Rows(r.Sheet)
	if err != nil {
		return "", err
	}

	rowNum := findItemRow(rows, labelCol, r.Item)
	if rowNum == 0 {
		return "", fmt.Errorf("%w: item %q in sheet %q", ErrNotFound, r.Item, r.Sheet)
	}

	if r.Column == "" {
		axis, _ := excelize.CoordinatesToCellName(labelCol, rowNum)
		return axis, nil
	}

	colNum := findHeaderColumn(rows, opts.HeaderRow, r.Column)
	if colNum == 0 {
		return "", fmt.Errorf("%w: column %q in sheet %q row %d", ErrNotFound, r.Column, r.Sheet, opts.HeaderRow)
	}

	axis, _ := excelize.CoordinatesToCellName(colNum, rowNum)
	return axis, nil
}

// findItemRow returns the 1-based row whose label-column cell matches
// item, retrying with the known label prefixes. Returns 0 when absent.
func findItemRow(rows [][]string, labelCol int, item string) int {
	match := func(want string) int {
		for rowIdx, row := range rows {
			if labelCol > len(row) {
				continue
			}
			if strings.TrimSpace(row[labelCol-1]) == want {
				return rowIdx + 1
			}
		}
		return 0
	}

	if row := match(item); row != 0 {
		return row
	}
	for _, prefix := range labelPrefixes {
		if row := match(prefix + item); row != 0 {
			return row
		}
	}
	return 0
}

// findHeaderColumn returns the 1-based column whose header-row cell
// matches column. Returns 0 when absent.
func findHeaderColumn(rows [][]string, headerRow int, column string) int {
	if headerRow > len(rows) {
		return 0
	}
	for colIdx, cell := range rows[headerRow-1] {
		if strings.TrimSpace(cell) == column {
			return colIdx + 1
		}
	}
	return 0
}

// ValidateAxis checks that a cell address is well-formed and inside
// Excel's grid.
func ValidateAxis(axis string) error {
	m := axisPattern.FindStringSubmatch(axis)
	if m == nil {
		return fmt.Errorf("%w: %q", ErrSyntax, axis)
	}

	col, err := excelize.ColumnNameToNumber(m[1])
	if err != nil || col > maxCols {
		return fmt.Errorf("%w: column %s exceeds XFD", ErrAxisRange, m[1])
	}

	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 || row > maxRows {
		return fmt.Errorf("%w: row %s exceeds %d", ErrAxisRange, m[2], maxRows)
	}

	return nil
}
