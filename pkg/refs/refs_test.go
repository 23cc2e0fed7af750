package refs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/wenhaoz/reportutil/pkg/workbook"
	"github.com/xuri/excelize/v2"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Ref
		wantErr  bool
	}{
		{"[利润表]![营业收入]![本月数]", Ref{"利润表", "营业收入", "本月数"}, false},
		{"[Sheet1]![Item]", Ref{"Sheet1", "Item", ""}, false},
		{"  [S]![I]![C]  ", Ref{"S", "I", "C"}, false},
		{"Sheet1!A1", Ref{}, true},
		{"[Sheet1]", Ref{}, true},
		{"[S]![I]![C]!extra", Ref{}, true},
		{"", Ref{}, true},
	}

	for _, tt := range tests {
		ref, err := Parse(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q): expected ErrSyntax, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		if ref != tt.expected {
			t.Errorf("Parse(%q) = %+v, expected %+v", tt.input, ref, tt.expected)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	tests := []Ref{
		{"利润表", "营业收入", "本月数"},
		{"Sheet1", "Item", ""},
	}

	for _, want := range tests {
		got, err := Parse(want.String())
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", want.String(), err)
			continue
		}
		if got != want {
			t.Errorf("Round trip of %+v yielded %+v", want, got)
		}
	}
}

func TestValidateAxis(t *testing.T) {
	tests := []struct {
		axis    string
		wantErr error
	}{
		{"A1", nil},
		{"E5", nil},
		{"XFD1048576", nil},
		{"XFE1", ErrAxisRange},
		{"A1048577", ErrAxisRange},
		{"A0", ErrAxisRange},
		{"1A", ErrSyntax},
		{"A1:B2", ErrSyntax},
		{"", ErrSyntax},
	}

	for _, tt := range tests {
		err := ValidateAxis(tt.axis)
		if tt.wantErr == nil {
			if err != nil {
				t.Errorf("ValidateAxis(%q) failed: %v", tt.axis, err)
			}
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ValidateAxis(%q) = %v, expected %v", tt.axis, err, tt.wantErr)
		}
	}
}

// makeTemplate writes a workbook shaped like a report sheet: column
// headers on row 2, item labels in column B, data in column E.
func makeTemplate(t *testing.T) *workbook.Workbook {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "利润表"
	if _, err := f.NewSheet(sheet); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}

	f.SetCellValue(sheet, "B2", "项目")
	f.SetCellValue(sheet, "E2", "本月数")
	f.SetCellValue(sheet, "B5", "营业收入")
	f.SetCellValue(sheet, "E5", 1234)
	f.SetCellValue(sheet, "B6", "加：利息收入")
	f.SetCellValue(sheet, "E6", 56)

	tmpFile := filepath.Join(t.TempDir(), "template.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save template: %v", err)
	}

	wb, err := workbook.Open(tmpFile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { wb.Close() })

	return wb
}

func TestResolve(t *testing.T) {
	wb := makeTemplate(t)
	opts := DefaultResolveOptions()

	tests := []struct {
		name     string
		ref      Ref
		expected string
	}{
		{"three segment", Ref{"利润表", "营业收入", "本月数"}, "E5"},
		{"prefixed label", Ref{"利润表", "利息收入", "本月数"}, "E6"},
		{"two segment", Ref{"利润表", "营业收入", ""}, "B5"},
	}

	for _, tt := range tests {
		axis, err := tt.ref.Resolve(wb, opts)
		if err != nil {
			t.Errorf("%s: Resolve failed: %v", tt.name, err)
			continue
		}
		if axis != tt.expected {
			t.Errorf("%s: Resolve = %s, expected %s", tt.name, axis, tt.expected)
		}
	}
}

func TestResolveNotFound(t *testing.T) {
	wb := makeTemplate(t)
	opts := DefaultResolveOptions()

	tests := []struct {
		name string
		ref  Ref
	}{
		{"unknown item", Ref{"利润表", "不存在", "本月数"}},
		{"unknown column", Ref{"利润表", "营业收入", "年初数"}},
	}

	for _, tt := range tests {
		if _, err := tt.ref.Resolve(wb, opts); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: expected ErrNotFound, got %v", tt.name, err)
		}
	}
}
