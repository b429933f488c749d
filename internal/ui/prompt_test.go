// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func (l label) String() string { return string(l) }

func TestInputU32RetriesUntilValid(t *testing.T) {
	c, sink := newTestConsole([]string{"abc", "-5", "42"}, nil)

	got, err := c.InputU32("Enter a part ID")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), got)

	out := sink.String()
	assert.Contains(t, out, "Enter a part ID"+nextLine)
	assert.Contains(t, out, "(Input should be a number)"+nextLine)
	assert.Contains(t, out, "\033[?25h", "cursor must be shown before reading")

	// Exactly two rejected lines, each erased in place.
	assert.Equal(t, 2, strings.Count(out, prevLine+"\033[2K"))
}

func TestInputU32TrimsWhitespace(t *testing.T) {
	c, _ := newTestConsole([]string{"  7  "}, nil)

	got, err := c.InputU32("amount?")
	require.NoError(t, err)
	assert.Equal(t, uint32(7), got)
}

func TestInputU32PropagatesReadFailure(t *testing.T) {
	c, _ := newTestConsole(nil, nil)

	_, err := c.InputU32("unanswerable")
	assert.Error(t, err)
}

func TestInputStringTrims(t *testing.T) {
	c, sink := newTestConsole([]string{"  hi there  "}, nil)

	got, err := c.InputString("Enter a name")
	require.NoError(t, err)
	assert.Equal(t, "hi there", got)
	assert.Contains(t, sink.String(), "Enter a name"+nextLine)
}

func TestInputStringEmptyIsValid(t *testing.T) {
	c, _ := newTestConsole([]string{""}, nil)

	got, err := c.InputString("anything?")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestConfirmationPromptIsCaseSensitive(t *testing.T) {
	c, sink := newTestConsole(nil, []rune{'x', 'Y', 'n'})

	got, err := c.ConfirmationPrompt("Delete the item?")
	require.NoError(t, err)
	assert.False(t, got, "uppercase Y must not match; the 'n' decides")
	assert.Contains(t, sink.String(), "(y)es or (n)o?"+nextLine)
}

func TestConfirmationPromptYes(t *testing.T) {
	c, _ := newTestConsole(nil, []rune{'y'})

	got, err := c.ConfirmationPrompt("Sure?")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestSelectFromListIgnoresUnboundKeys(t *testing.T) {
	options := []Choice[label]{
		{Key: 'a', Value: "Apples"},
		{Key: 'b', Value: "Bananas"},
	}

	c, sink := newTestConsole(nil, []rune{'x', 'a'})
	got, err := SelectFromList(c, "Pick a fruit", options)
	require.NoError(t, err)
	assert.Equal(t, label("Apples"), got)

	out := sink.String()
	assert.Contains(t, out, "Select from the list by typing the letter"+nextLine)
	assert.Contains(t, out, "a: Apples"+nextLine)
	assert.Contains(t, out, "b: Bananas"+nextLine)
}

func TestSelectFromListFirstKeyWins(t *testing.T) {
	options := []Choice[label]{
		{Key: 'a', Value: "Apples"},
		{Key: 'b', Value: "Bananas"},
	}

	c, _ := newTestConsole(nil, []rune{'b'})
	got, err := SelectFromList(c, "Pick a fruit", options)
	require.NoError(t, err)
	assert.Equal(t, label("Bananas"), got)
}

func TestSelectFromListPropagatesKeyFailure(t *testing.T) {
	c, _ := newTestConsole(nil, nil)

	_, err := SelectFromList(c, "Pick", []Choice[label]{{Key: 'a', Value: "A"}})
	assert.Error(t, err)
}
