// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotandev/bricks/internal/catalog"
	brickserr "github.com/dotandev/bricks/internal/errors"
	"github.com/dotandev/bricks/internal/logger"
)

var importOverwriteFlag bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load items from a YAML dump",
	Long: `Read a YAML document produced by 'bricks export' and add its items
to the catalog.

Items whose part ID is already present are skipped unless --overwrite
is given, in which case the stored record is replaced.`,
	Example: `  bricks import inventory.yaml
  bricks import --overwrite inventory.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importOverwriteFlag, "overwrite", false, "Replace items that already exist")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return brickserr.WrapImportFailed(err)
	}
	defer f.Close()

	items, err := catalog.ImportYAML(f)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	added, replaced, skipped := 0, 0, 0
	for _, item := range items {
		err := store.Add(item)
		switch {
		case err == nil:
			added++
		case errors.Is(err, brickserr.ErrDuplicateItem) && importOverwriteFlag:
			if err := store.Update(item); err != nil {
				return err
			}
			replaced++
		case errors.Is(err, brickserr.ErrDuplicateItem):
			logger.Warn("skipping existing item", "part_id", item.PartID)
			skipped++
		default:
			return err
		}
	}

	fmt.Printf("Imported %d item(s): %d added, %d replaced, %d skipped.\n",
		len(items), added, replaced, skipped)
	return nil
}
