// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotandev/bricks/internal/catalog"
	"github.com/dotandev/bricks/internal/terminal"
	"github.com/dotandev/bricks/internal/ui"
)

// discard satisfies io.Writer for frames the tests don't inspect.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func newTestBrowser(t *testing.T, lines []string, keys []rune) *browser {
	t.Helper()
	store, err := catalog.Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	console := ui.NewConsole(
		terminal.NewScreen(discard{}),
		&terminal.ScriptedLines{Lines: lines},
		&terminal.ScriptedKeys{Keys: keys},
	)
	return &browser{store: store, console: console}
}

func TestMenuKeysAreUnique(t *testing.T) {
	checkUnique := func(t *testing.T, keys []rune) {
		seen := map[rune]bool{}
		for _, k := range keys {
			assert.False(t, seen[k], "duplicate menu key %q", k)
			seen[k] = true
		}
	}

	t.Run("main menu", func(t *testing.T) {
		var keys []rune
		for _, o := range mainMenu {
			keys = append(keys, o.Key)
		}
		checkUnique(t, keys)
	})
	t.Run("display menu", func(t *testing.T) {
		var keys []rune
		for _, o := range displayMenu {
			keys = append(keys, o.Key)
		}
		checkUnique(t, keys)
	})
	t.Run("edit menu", func(t *testing.T) {
		var keys []rune
		for _, o := range editMenu {
			keys = append(keys, o.Key)
		}
		checkUnique(t, keys)
	})
}

func TestMenuLabelsAreNamed(t *testing.T) {
	for _, o := range mainMenu {
		assert.NotEqual(t, "unknown", o.Value.String())
	}
	for _, o := range displayMenu {
		assert.NotEqual(t, "unknown", o.Value.String())
	}
	for _, o := range editMenu {
		assert.NotEqual(t, "unknown", o.Value.String())
	}
}

func TestBrowserAddItemFlow(t *testing.T) {
	// Part ID, then name.
	b := newTestBrowser(t, []string{"3001", "Brick 2x4"}, nil)

	mode, err := b.addItem(0)
	require.NoError(t, err)

	display, ok := mode.(ui.DisplayItem)
	require.True(t, ok)
	assert.Equal(t, uint32(3001), display.Item.ID())

	stored, err := b.store.Get(3001)
	require.NoError(t, err)
	assert.Equal(t, "Brick 2x4", stored.Name)
}

func TestBrowserAddExistingItemShowsIt(t *testing.T) {
	b := newTestBrowser(t, nil, nil)
	require.NoError(t, b.store.Add(&catalog.Item{PartID: 7, Name: "existing"}))

	mode, err := b.addItem(7)
	require.NoError(t, err)

	display, ok := mode.(ui.DisplayItem)
	require.True(t, ok)
	assert.Equal(t, uint32(7), display.Item.ID())
}

func TestBrowserDisplayMissingItemDeclined(t *testing.T) {
	// Operator types 42, then answers 'n' to the create prompt.
	b := newTestBrowser(t, []string{"42"}, []rune{'n'})

	mode, err := b.displayItem()
	require.NoError(t, err)

	_, ok := mode.(ui.Default)
	assert.True(t, ok, "declining creation returns to the home screen")
}

func TestBrowserSearchNoMatches(t *testing.T) {
	b := newTestBrowser(t, []string{"nothing"}, nil)

	mode, err := b.searchByName()
	require.NoError(t, err)

	home, ok := mode.(ui.Default)
	require.True(t, ok)
	assert.Contains(t, home.Info, "nothing")
}

func TestBrowserSearchSingleMatch(t *testing.T) {
	b := newTestBrowser(t, []string{"brick"}, nil)
	require.NoError(t, b.store.Add(&catalog.Item{PartID: 1, Name: "Brick 2x4"}))

	mode, err := b.searchByName()
	require.NoError(t, err)

	display, ok := mode.(ui.DisplayItem)
	require.True(t, ok)
	assert.Equal(t, uint32(1), display.Item.ID())
}

func TestBrowserSearchPickFromSeveral(t *testing.T) {
	// Matches are ordered by part ID; '2' picks the second.
	b := newTestBrowser(t, []string{"brick"}, []rune{'2'})
	require.NoError(t, b.store.Add(&catalog.Item{PartID: 1, Name: "Brick 2x4"}))
	require.NoError(t, b.store.Add(&catalog.Item{PartID: 2, Name: "Brick 1x1"}))

	mode, err := b.searchByName()
	require.NoError(t, err)

	display, ok := mode.(ui.DisplayItem)
	require.True(t, ok)
	assert.Equal(t, uint32(2), display.Item.ID())
}

func TestBrowserEditSavePersists(t *testing.T) {
	item := &catalog.Item{PartID: 5, Name: "old"}

	// 'n' edit name, new name line, then 's' save.
	b := newTestBrowser(t, []string{"renamed"}, []rune{'n', 's'})
	require.NoError(t, b.store.Add(item))

	mode, err := b.stepEdit(item)
	require.NoError(t, err)
	_, ok := mode.(ui.EditItem)
	require.True(t, ok, "editing continues until save or cancel")

	mode, err = b.stepEdit(item)
	require.NoError(t, err)
	_, ok = mode.(ui.DisplayItem)
	require.True(t, ok)

	stored, err := b.store.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "renamed", stored.Name)
}

func TestBrowserEditCancelDiscards(t *testing.T) {
	item := &catalog.Item{PartID: 5, Name: "old"}

	b := newTestBrowser(t, []string{"renamed"}, []rune{'n', 'q'})
	require.NoError(t, b.store.Add(item))

	_, err := b.stepEdit(item)
	require.NoError(t, err)

	mode, err := b.stepEdit(item)
	require.NoError(t, err)
	display, ok := mode.(ui.DisplayItem)
	require.True(t, ok)
	assert.Equal(t, "old", display.Item.(*catalog.Item).Name)

	stored, err := b.store.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "old", stored.Name)
}

func TestBrowserEditDeleteConfirmed(t *testing.T) {
	item := &catalog.Item{PartID: 9, Name: "doomed"}

	b := newTestBrowser(t, nil, []rune{'d', 'y'})
	require.NoError(t, b.store.Add(item))

	mode, err := b.stepEdit(item)
	require.NoError(t, err)
	_, ok := mode.(ui.Default)
	require.True(t, ok)

	_, err = b.store.Get(9)
	assert.Error(t, err)
}
