// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItem struct {
	id   uint32
	text string
}

func (f fakeItem) ID() uint32     { return f.id }
func (f fakeItem) String() string { return f.text }

func TestRenderDefault(t *testing.T) {
	c, sink := newTestConsole(nil, nil)

	c.Render(Default{Info: "3 items loaded"})
	require.NoError(t, c.Flush())

	out := sink.String()
	assert.Contains(t, out, "\033[2J", "render must start from a cleared screen")
	assert.Contains(t, out, "Welcome to TUI Bricks"+nextLine)
	assert.Contains(t, out, "3 items loaded\033[2E")
}

func TestRenderDisplayItem(t *testing.T) {
	c, sink := newTestConsole(nil, nil)

	item := fakeItem{id: 3001, text: "Part ID: 3001\nName: Brick 2x4"}
	c.Render(DisplayItem{Item: item})
	require.NoError(t, c.Flush())

	out := sink.String()
	assert.Contains(t, out, "Viewing item with part ID 3001"+nextLine)
	assert.Contains(t, out, "Part ID: 3001"+nextLine)
	assert.Contains(t, out, "Name: Brick 2x4"+nextLine)
	assert.NotContains(t, out, "use any of the following commands")
}

func TestRenderEditItem(t *testing.T) {
	c, sink := newTestConsole(nil, nil)

	item := fakeItem{id: 44, text: "Part ID: 44"}
	c.Render(EditItem{Item: item})
	require.NoError(t, c.Flush())

	out := sink.String()
	assert.Contains(t, out, "Now editing item with part ID 44"+nextLine)
	assert.Contains(t, out, "use any of the following commands to edit the item"+nextLine)
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	c, sink := newTestConsole(nil, nil)

	c.Render(Default{Info: "first"})
	require.NoError(t, c.Flush())
	sink.Reset()

	c.Render(DisplayItem{Item: fakeItem{id: 1, text: "Part ID: 1"}})
	require.NoError(t, c.Flush())

	out := sink.String()
	assert.True(t, len(out) > 0)
	assert.Contains(t, out[:len("\033[0m\033[2J")], "\033[0m", "clear sequence leads the frame")
	assert.NotContains(t, out, "first")
}
