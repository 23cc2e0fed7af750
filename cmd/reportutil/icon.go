package main

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wenhaoz/reportutil/pkg/config"
	"github.com/wenhaoz/reportutil/pkg/icon"
)

// defaultIconName is the fixed output filename the icons are written
// under when no -o flag is given.
const defaultIconName = "default.png"

func newIconCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icon",
		Short: "Generate placeholder icons",
		Long: `Generate 24x24 placeholder icons used when category or provider
artwork is missing. Icons are written as transparent PNG files.`,
	}

	cmd.AddCommand(
		newIconSubCmd(cfg, "category", "Generate the default category icon",
			"Default category icon created", icon.Category),
		newIconSubCmd(cfg, "provider", "Generate the default provider icon",
			"Default icon created", icon.Provider),
	)

	return cmd
}

func newIconSubCmd(cfg config.Config, name, short, okMsg string, render func() *image.RGBA) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := outputPath
			if path == "" {
				path = filepath.Join(cfg.IconDir, defaultIconName)
			}

			if err := icon.WritePNG(path, render()); err != nil {
				cmd.PrintErrln("Check that the target directory exists, or pass -o with a writable path")
				return fmt.Errorf("create icon: %w", err)
			}

			cmd.Printf("[OK] %s: %s\n", okMsg, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: "+defaultIconName+" in the icon directory)")

	return cmd
}
