// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dotandev/bricks/internal/catalog"
	brickserr "github.com/dotandev/bricks/internal/errors"
)

var searchCmd = &cobra.Command{
	Use:   "search <part-id|name>",
	Short: "Look items up by part ID or name",
	Long: `Search the catalog.

A numeric query is treated as a part ID (alternative IDs match too);
anything else is a case-insensitive name substring search.`,
	Example: `  bricks search 3001
  bricks search "brick 2x4"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	query := args[0]

	if id, convErr := strconv.ParseUint(query, 10, 32); convErr == nil {
		item, err := store.Get(uint32(id))
		if errors.Is(err, brickserr.ErrItemNotFound) {
			fmt.Printf("No item with part ID %d.\n", id)
			return nil
		}
		if err != nil {
			return err
		}
		printItems([]*catalog.Item{item})
		return nil
	}

	items, err := store.SearchName(query)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Printf("No items matching %q.\n", query)
		return nil
	}
	printItems(items)
	return nil
}
