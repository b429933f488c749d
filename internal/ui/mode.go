// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"strings"
)

// Item is the external record entity rendered by the display and edit
// screens. Only an identifier and a multi-line textual rendering are
// required of it.
type Item interface {
	ID() uint32
	fmt.Stringer
}

// Mode describes which screen to render. Exactly one variant is active
// at a time; each variant owns its payload.
type Mode interface {
	mode()
}

// Default is the home screen with a short informational message.
type Default struct {
	Info string
}

// DisplayItem shows a single item read-only.
type DisplayItem struct {
	Item Item
}

// EditItem shows a single item with the edit-command instruction line.
// The edit commands themselves belong to the controller.
type EditItem struct {
	Item Item
}

func (Default) mode()     {}
func (DisplayItem) mode() {}
func (EditItem) mode()    {}

// Render queues the full frame for the given mode. Always starts from a
// cleared screen so nothing from the previous frame survives. Commands
// are only queued; the controller (or the next prompt) flushes.
func (c *Console) Render(m Mode) {
	c.Clear()
	switch m := m.(type) {
	case Default:
		c.DefaultHeader()
		c.screen.Print(m.Info)
		c.screen.MoveToNextLine(2)
	case DisplayItem:
		c.Header(fmt.Sprintf("Viewing item with part ID %d", m.Item.ID()))
		c.EmitIter(strings.SplitSeq(m.Item.String(), "\n"))
	case EditItem:
		c.Header(fmt.Sprintf("Now editing item with part ID %d", m.Item.ID()))
		c.EmitIter(strings.SplitSeq(m.Item.String(), "\n"))
		c.EmitLine("use any of the following commands to edit the item")
	}
}
