// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dotandev/bricks/internal/catalog"
	"github.com/dotandev/bricks/internal/terminal"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every item in the catalog",
	Long: `Print the whole catalog, one item per line, ordered by part ID.

Intended for scripting and quick inspection; use 'bricks browse' for
the interactive view.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.All()
	if err != nil {
		return err
	}

	printItems(items)
	return nil
}

// printItems writes one summary line per item, shared by list and search
func printItems(items []*catalog.Item) {
	if len(items) == 0 {
		fmt.Println("The catalog is empty.")
		return
	}

	color.NoColor = !terminal.IsTTY(os.Stdout)
	id := color.New(color.Bold)
	dim := color.New(color.Faint)

	for _, item := range items {
		id.Printf("%7d", item.PartID)
		fmt.Printf("  %s", item.Name)
		if item.Amount != nil {
			dim.Printf("  (x%d)", *item.Amount)
		}
		if len(item.ColorGroupSet) > 0 {
			groups := make([]string, len(item.ColorGroupSet))
			for n, g := range item.ColorGroupSet {
				groups[n] = string(g)
			}
			dim.Printf("  [%s]", strings.Join(groups, ", "))
		}
		fmt.Println()
	}
	fmt.Printf("\n%d item(s)\n", len(items))
}
