// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotandev/bricks/internal/catalog"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Dump the catalog to YAML",
	Long: `Write the whole catalog as a YAML document.

With no argument the document goes to stdout; the output of export is
accepted unchanged by 'bricks import'.`,
	Example: `  bricks export
  bricks export inventory.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.All()
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := catalog.ExportYAML(out, items); err != nil {
		return err
	}

	if len(args) == 1 {
		fmt.Printf("Exported %d item(s) to %s.\n", len(items), args[0])
	}
	return nil
}
