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
	"github.com/dotandev/bricks/internal/terminal"
	"github.com/dotandev/bricks/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and edit the catalog interactively",
	Long: `Start the full-screen interactive browser.

The browser shows one screen at a time and is driven entirely by
single keypresses and short text prompts:

  home screen      a: add an item    d: display an item
                   s: search by name q: quit
  item screen      e: edit           b: back            q: quit
  edit screen      listed on screen; changes are saved explicitly

Requires an interactive terminal on stdin and stdout; use the list,
search, add, export, and import commands for scripting.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// mainCommand enumerates the home-screen menu.
type mainCommand int

const (
	mainAddItem mainCommand = iota
	mainDisplayItem
	mainSearchName
	mainQuit
)

func (c mainCommand) String() string {
	switch c {
	case mainAddItem:
		return "add a new item"
	case mainDisplayItem:
		return "display an item"
	case mainSearchName:
		return "search items by name"
	case mainQuit:
		return "quit"
	}
	return "unknown"
}

var mainMenu = []ui.Choice[mainCommand]{
	{Key: 'a', Value: mainAddItem},
	{Key: 'd', Value: mainDisplayItem},
	{Key: 's', Value: mainSearchName},
	{Key: 'q', Value: mainQuit},
}

// displayCommand enumerates the item-screen menu.
type displayCommand int

const (
	dispEdit displayCommand = iota
	dispBack
	dispQuit
)

func (c displayCommand) String() string {
	switch c {
	case dispEdit:
		return "edit this item"
	case dispBack:
		return "back to the main screen"
	case dispQuit:
		return "quit"
	}
	return "unknown"
}

var displayMenu = []ui.Choice[displayCommand]{
	{Key: 'e', Value: dispEdit},
	{Key: 'b', Value: dispBack},
	{Key: 'q', Value: dispQuit},
}

// editCommand enumerates the edit-screen menu.
type editCommand int

const (
	editName editCommand = iota
	editAmount
	editAddColor
	editRemoveColor
	editAddAltID
	editDelete
	editSave
	editCancel
)

func (c editCommand) String() string {
	switch c {
	case editName:
		return "edit the name"
	case editAmount:
		return "set the amount"
	case editAddColor:
		return "add a color group"
	case editRemoveColor:
		return "remove a color group"
	case editAddAltID:
		return "add an alternative part ID"
	case editDelete:
		return "delete this item"
	case editSave:
		return "save changes and stop editing"
	case editCancel:
		return "discard changes and stop editing"
	}
	return "unknown"
}

var editMenu = []ui.Choice[editCommand]{
	{Key: 'n', Value: editName},
	{Key: 'm', Value: editAmount},
	{Key: 'c', Value: editAddColor},
	{Key: 'x', Value: editRemoveColor},
	{Key: 'i', Value: editAddAltID},
	{Key: 'd', Value: editDelete},
	{Key: 's', Value: editSave},
	{Key: 'q', Value: editCancel},
}

// itemSummary gives an item a one-line rendering for pick lists.
type itemSummary struct {
	item *catalog.Item
}

func (s itemSummary) String() string {
	return fmt.Sprintf("%d - %s", s.item.PartID, s.item.Name)
}

// browser is the controller: it decides which mode to render next and
// which prompt to issue, and interprets the answers. The ui layer owns
// no state of its own.
type browser struct {
	store   *catalog.Store
	console *ui.Console
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !terminal.IsInteractive(os.Stdin) {
		return brickserr.WrapNotATerminal("stdin")
	}
	if !terminal.IsInteractive(os.Stdout) {
		return brickserr.WrapNotATerminal("stdout")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	console := ui.NewConsole(
		terminal.NewScreen(os.Stdout),
		terminal.NewLineReader(os.Stdin),
		terminal.NewKeyReader(os.Stdin),
	)

	b := &browser{store: store, console: console}
	return b.run()
}

func (b *browser) run() error {
	defer b.console.Close()

	mode, err := b.homeMode("")
	if err != nil {
		return err
	}

	for {
		b.console.Render(mode)
		next, err := b.step(mode)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		mode = next
	}
}

// homeMode builds the default screen; note, when set, replaces the
// item-count info line for one frame.
func (b *browser) homeMode(note string) (ui.Mode, error) {
	if note != "" {
		return ui.Default{Info: note}, nil
	}
	count, err := b.store.Count()
	if err != nil {
		return nil, err
	}
	return ui.Default{Info: fmt.Sprintf("%d items in the catalog", count)}, nil
}

// step runs the prompt belonging to the rendered mode and returns the
// next mode, or nil to quit.
func (b *browser) step(mode ui.Mode) (ui.Mode, error) {
	switch m := mode.(type) {
	case ui.Default:
		return b.stepHome()
	case ui.DisplayItem:
		return b.stepDisplay(m.Item.(*catalog.Item))
	case ui.EditItem:
		return b.stepEdit(m.Item.(*catalog.Item))
	}
	return nil, nil
}

func (b *browser) stepHome() (ui.Mode, error) {
	choice, err := ui.SelectFromList(b.console, "Choose a command", mainMenu)
	if err != nil {
		return nil, err
	}

	switch choice {
	case mainAddItem:
		return b.addItem(0)
	case mainDisplayItem:
		return b.displayItem()
	case mainSearchName:
		return b.searchByName()
	case mainQuit:
		return nil, nil
	}
	return nil, nil
}

// addItem creates a new item. A zero partID means ask for one; callers
// pass a known ID when the operator already typed it elsewhere.
func (b *browser) addItem(partID uint32) (ui.Mode, error) {
	if partID == 0 {
		id, err := b.console.InputU32("Enter the part ID of the new item")
		if err != nil {
			return nil, err
		}
		partID = id
	}

	if existing, err := b.store.Get(partID); err == nil {
		// Already in the catalog: show it instead of failing.
		return ui.DisplayItem{Item: existing}, nil
	} else if !errors.Is(err, brickserr.ErrItemNotFound) {
		return nil, err
	}

	name, err := b.console.InputString("Enter the name of the new item")
	if err != nil {
		return nil, err
	}

	item := &catalog.Item{PartID: partID, Name: name}
	if err := b.store.Add(item); err != nil {
		return nil, err
	}
	return ui.DisplayItem{Item: item}, nil
}

func (b *browser) displayItem() (ui.Mode, error) {
	id, err := b.console.InputU32("Enter the part ID of the item to display")
	if err != nil {
		return nil, err
	}

	item, err := b.store.Get(id)
	if err == nil {
		return ui.DisplayItem{Item: item}, nil
	}
	if !errors.Is(err, brickserr.ErrItemNotFound) {
		return nil, err
	}

	create, err := b.console.ConfirmationPrompt(
		fmt.Sprintf("No item with part ID %d was found\nCreate it now?", id),
	)
	if err != nil {
		return nil, err
	}
	if create {
		return b.addItem(id)
	}
	return b.homeMode("")
}

func (b *browser) searchByName() (ui.Mode, error) {
	term, err := b.console.InputString("Enter part of the name to search for")
	if err != nil {
		return nil, err
	}

	matches, err := b.store.SearchName(term)
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return b.homeMode(fmt.Sprintf("No items matching %q", term))
	case 1:
		return ui.DisplayItem{Item: matches[0]}, nil
	}

	// Keypress selection caps the pick list at nine entries.
	if len(matches) > 9 {
		matches = matches[:9]
	}
	options := make([]ui.Choice[itemSummary], len(matches))
	for n, item := range matches {
		options[n] = ui.Choice[itemSummary]{Key: rune('1' + n), Value: itemSummary{item: item}}
	}

	choice, err := ui.SelectFromList(b.console, "Several items match", options)
	if err != nil {
		return nil, err
	}
	return ui.DisplayItem{Item: choice.item}, nil
}

func (b *browser) stepDisplay(item *catalog.Item) (ui.Mode, error) {
	choice, err := ui.SelectFromList(b.console, "Choose a command", displayMenu)
	if err != nil {
		return nil, err
	}

	switch choice {
	case dispEdit:
		return ui.EditItem{Item: item}, nil
	case dispBack:
		return b.homeMode("")
	case dispQuit:
		return nil, nil
	}
	return nil, nil
}

// stepEdit mutates the item in memory; nothing reaches the store until
// the operator picks save. Cancel reloads the stored record.
func (b *browser) stepEdit(item *catalog.Item) (ui.Mode, error) {
	choice, err := ui.SelectFromList(b.console, "Choose a command", editMenu)
	if err != nil {
		return nil, err
	}

	switch choice {
	case editName:
		name, err := b.console.InputString("Enter the new name")
		if err != nil {
			return nil, err
		}
		item.Name = name

	case editAmount:
		amount, err := b.console.InputU32("Enter the amount of this item you have")
		if err != nil {
			return nil, err
		}
		item.Amount = &amount

	case editAddColor:
		group, err := pickColorGroup(b.console, catalog.ColorGroups(), "Choose a color group to add")
		if err != nil {
			return nil, err
		}
		item.AddColorGroup(group)

	case editRemoveColor:
		if len(item.ColorGroupSet) == 0 {
			break
		}
		group, err := pickColorGroup(b.console, item.ColorGroupSet, "Choose a color group to remove")
		if err != nil {
			return nil, err
		}
		item.RemoveColorGroup(group)

	case editAddAltID:
		id, err := b.console.InputU32("Enter the alternative part ID")
		if err != nil {
			return nil, err
		}
		item.AddAlternativeID(id)

	case editDelete:
		confirmed, err := b.console.ConfirmationPrompt(
			fmt.Sprintf("Delete item with part ID %d?\nThis cannot be undone", item.PartID),
		)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			break
		}
		if err := b.store.Delete(item.PartID); err != nil {
			return nil, err
		}
		return b.homeMode(fmt.Sprintf("Deleted item with part ID %d", item.PartID))

	case editSave:
		if err := b.store.Update(item); err != nil {
			return nil, err
		}
		return ui.DisplayItem{Item: item}, nil

	case editCancel:
		fresh, err := b.store.Get(item.PartID)
		if err != nil {
			return nil, err
		}
		return ui.DisplayItem{Item: fresh}, nil
	}

	return ui.EditItem{Item: item}, nil
}

func pickColorGroup(console *ui.Console, groups []catalog.ColorGroup, prompt string) (catalog.ColorGroup, error) {
	options := make([]ui.Choice[catalog.ColorGroup], len(groups))
	for n, g := range groups {
		options[n] = ui.Choice[catalog.ColorGroup]{Key: rune('a' + n), Value: g}
	}
	return ui.SelectFromList(console, prompt, options)
}
