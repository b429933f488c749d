// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotandev/bricks/internal/catalog"
)

var (
	addIDFlag     uint32
	addNameFlag   string
	addAmountFlag uint32
	addColorFlags []string
	addAltFlags   []uint
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single item non-interactively",
	Long: `Add one item to the catalog from flags, without entering the browser.

Valid color groups: All, Basic, Earth, Grey, Road, Nice, Translucent.`,
	Example: `  bricks add --id 3001 --name "Brick 2x4"
  bricks add --id 3001 --name "Brick 2x4" --amount 12 --color Basic --color Grey --alt 93888`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if addIDFlag == 0 {
			return fmt.Errorf("--id is required and must be non-zero")
		}
		if addNameFlag == "" {
			return fmt.Errorf("--name is required")
		}
		for _, c := range addColorFlags {
			if !validColorGroup(c) {
				return fmt.Errorf("unknown color group %q", c)
			}
		}
		return nil
	},
	RunE: runAdd,
}

func init() {
	addCmd.Flags().Uint32Var(&addIDFlag, "id", 0, "Part ID of the new item")
	addCmd.Flags().StringVar(&addNameFlag, "name", "", "Name of the new item")
	addCmd.Flags().Uint32Var(&addAmountFlag, "amount", 0, "Amount on hand (omit for unknown)")
	addCmd.Flags().StringArrayVar(&addColorFlags, "color", nil, "Color group (repeatable)")
	addCmd.Flags().UintSliceVar(&addAltFlags, "alt", nil, "Alternative part ID (repeatable)")

	rootCmd.AddCommand(addCmd)
}

func validColorGroup(name string) bool {
	for _, g := range catalog.ColorGroups() {
		if string(g) == name {
			return true
		}
	}
	return false
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	item := &catalog.Item{
		PartID: addIDFlag,
		Name:   addNameFlag,
	}
	if cmd.Flags().Changed("amount") {
		amount := addAmountFlag
		item.Amount = &amount
	}
	for _, c := range addColorFlags {
		item.AddColorGroup(catalog.ColorGroup(c))
	}
	for _, alt := range addAltFlags {
		item.AddAlternativeID(uint32(alt))
	}

	if err := store.Add(item); err != nil {
		return err
	}

	fmt.Printf("Added item %d (%s).\n", item.PartID, item.Name)
	return nil
}
