// Package main provides the CLI entry point for reportutil.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wenhaoz/reportutil/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "reportutil",
		Short: "Utilities for the flash-report workbook template",
		Long: `reportutil generates placeholder icons for the report tool's assets
and inspects cells of the report template workbook.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newIconCmd(cfg),
		newVerifyCmd(cfg),
		newSheetsCmd(),
		newInspectCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
