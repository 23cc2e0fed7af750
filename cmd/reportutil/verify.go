package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wenhaoz/reportutil/pkg/config"
	"github.com/wenhaoz/reportutil/pkg/refs"
	"github.com/wenhaoz/reportutil/pkg/workbook"
	"github.com/xuri/excelize/v2"
)

func newVerifyCmd(cfg config.Config) *cobra.Command {
	var (
		sheetIndex int
		itemCell   string
		headerCell string
		valueCell  string
	)

	cmd := &cobra.Command{
		Use:   "verify [workbook.xlsx]",
		Short: "Verify key cells of the report template",
		Long: `Read the item name, column header, and data value cells of a report
sheet, assemble the bracket reference they form, and check which cell
that reference resolves to.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.TemplatePath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return errors.New("no workbook given: pass a path or set REPORTUTIL_TEMPLATE")
			}

			for _, axis := range []string{itemCell, headerCell, valueCell} {
				if err := refs.ValidateAxis(axis); err != nil {
					return err
				}
			}

			wb, err := workbook.Open(path)
			if err != nil {
				return err
			}
			defer wb.Close()

			sheetName, err := wb.SheetAt(sheetIndex)
			if err != nil {
				return err
			}

			itemName, err := wb.CellValue(sheetName, itemCell)
			if err != nil {
				return err
			}
			headerText, err := wb.CellValue(sheetName, headerCell)
			if err != nil {
				return err
			}
			dataValue, err := wb.CellValue(sheetName, valueCell)
			if err != nil {
				return err
			}

			banner := strings.Repeat("=", 80)
			cmd.Println(banner)
			cmd.Println("Cell verification")
			cmd.Println(banner)
			cmd.Printf("\nWorkbook: %s\n", wb.Name)
			cmd.Printf("Sheet %d: %q\n", sheetIndex, sheetName)

			cmd.Println("\nKey cells:")
			cmd.Printf("  %s (item name): %s\n", itemCell, itemName)
			cmd.Printf("  %s (column header): %s\n", headerCell, headerText)
			cmd.Printf("  %s (data value): %v\n", valueCell, workbook.ParseValue(dataValue))

			ref := refs.Ref{Sheet: sheetName, Item: itemName, Column: headerText}
			cmd.Printf("\nReference: %s\n", ref)

			opts, err := resolveOptionsFor(itemCell, headerCell)
			if err != nil {
				return err
			}

			axis, err := ref.Resolve(wb, opts)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", ref, err)
			}

			resolved, err := wb.CellValue(sheetName, axis)
			if err != nil {
				return err
			}

			cmd.Printf("Resolves to: %s\n", axis)
			cmd.Printf("Value at %s: %v\n", axis, workbook.ParseValue(resolved))

			cmd.Println()
			cmd.Println(banner)
			cmd.Printf("Conclusion: %s references cell %s, value %v\n", ref, axis, workbook.ParseValue(resolved))
			cmd.Println(banner)

			return nil
		},
	}

	cmd.Flags().IntVar(&sheetIndex, "sheet-index", 9, "Sheet position (1-based)")
	cmd.Flags().StringVar(&itemCell, "item-cell", "B5", "Cell holding the item name")
	cmd.Flags().StringVar(&headerCell, "header-cell", "E2", "Cell holding the column header")
	cmd.Flags().StringVar(&valueCell, "value-cell", "E5", "Cell holding the data value")

	return cmd
}

// resolveOptionsFor derives lookup options from the cells being
// verified: item labels live in the item cell's column, headers on the
// header cell's row.
func resolveOptionsFor(itemCell, headerCell string) (refs.ResolveOptions, error) {
	itemCol, _, err := excelize.CellNameToCoordinates(itemCell)
	if err != nil {
		return refs.ResolveOptions{}, fmt.Errorf("item cell %q: %w", itemCell, err)
	}
	_, headerRow, err := excelize.CellNameToCoordinates(headerCell)
	if err != nil {
		return refs.ResolveOptions{}, fmt.Errorf("header cell %q: %w", headerCell, err)
	}

	labelColumn, err := excelize.ColumnNumberToName(itemCol)
	if err != nil {
		return refs.ResolveOptions{}, err
	}

	return refs.ResolveOptions{
		HeaderRow:   headerRow,
		LabelColumn: labelColumn,
	}, nil
}
