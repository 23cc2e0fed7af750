package main

import (
	"github.com/spf13/cobra"
	"github.com/wenhaoz/reportutil/pkg/workbook"
)

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <workbook.xlsx>",
		Short: "List sheet names in workbook order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := workbook.Open(args[0])
			if err != nil {
				return err
			}
			defer wb.Close()

			cmd.Printf("Workbook: %s\n\n", wb.Name)
			for i, name := range wb.SheetNames() {
				cmd.Printf("  %d. %q\n", i+1, name)
			}

			return nil
		},
	}
}
