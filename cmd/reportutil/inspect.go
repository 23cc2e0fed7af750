package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/wenhaoz/reportutil/pkg/workbook"
	"github.com/xuri/excelize/v2"
)

func newInspectCmd() *cobra.Command {
	var (
		headRows int
		findText string
	)

	cmd := &cobra.Command{
		Use:   "inspect <workbook.xlsx> <sheet>",
		Short: "Dump header rows of a sheet",
		Long: `Print a sheet's data range and its first rows with column letters.
With --find, report every cell containing the given text.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := workbook.Open(args[0])
			if err != nil {
				return err
			}
			defer wb.Close()

			sheetName := args[1]

			cmd.Printf("Workbook: %s\n", wb.Name)
			cmd.Printf("Sheet: %s\n", sheetName)

			dataRange, ok, err := wb.DataRange(sheetName)
			if err != nil {
				return err
			}
			if !ok {
				cmd.Println("Sheet is empty")
				return nil
			}
			cmd.Printf("Dimensions: %s\n", dataRange)

			rows, err := wb.Rows(sheetName)
			if err != nil {
				return err
			}

			limit := headRows
			if limit > len(rows) {
				limit = len(rows)
			}

			for rowIdx := 0; rowIdx < limit; rowIdx++ {
				cmd.Printf("\nRow %d:\n", rowIdx+1)
				for colIdx, cell := range rows[rowIdx] {
					axis, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
					cmd.Printf("  %s: %q\n", axis, cell)
				}
			}

			if findText != "" {
				cmd.Printf("\nSearching for %q\n", findText)
				found := false
				for rowIdx, row := range rows {
					for colIdx, cell := range row {
						if cell != "" && strings.Contains(cell, findText) {
							axis, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
							cmd.Printf("FOUND at %s: %q\n", axis, cell)
							found = true
						}
					}
				}
				if !found {
					cmd.Println("NOT FOUND")
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&headRows, "rows", 3, "Number of leading rows to print")
	cmd.Flags().StringVar(&findText, "find", "", "Report cells containing this text")

	return cmd
}
