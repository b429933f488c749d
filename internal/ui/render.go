// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

// Package ui renders catalog screens and collects operator input. It
// owns no business state: the controller decides which screen to show
// and which prompt to issue, this package draws and blocks.
package ui

import (
	"iter"
	"strings"

	"github.com/dotandev/bricks/internal/terminal"
)

const dashWidth = 45

// Console couples the queued screen buffer with the blocking input
// sources. The terminal handles are exclusively owned by the calling
// context for the duration of each call.
type Console struct {
	screen *terminal.Screen
	lines  terminal.LineReader
	keys   terminal.KeyReader
}

func NewConsole(screen *terminal.Screen, lines terminal.LineReader, keys terminal.KeyReader) *Console {
	return &Console{screen: screen, lines: lines, keys: keys}
}

// EmitLine queues text followed by a one-line cursor advance. Embedded
// newlines are not handled; callers pre-split multi-line text.
func (c *Console) EmitLine(text string) {
	c.screen.Print(text)
	c.screen.MoveToNextLine(1)
}

// EmitDash queues a fixed-width separator line.
func (c *Console) EmitDash() {
	c.EmitLine(strings.Repeat("-", dashWidth))
}

// EmitIter queues each element of the sequence on its own line,
// preserving order. The sequence is consumed exactly once.
func (c *Console) EmitIter(lines iter.Seq[string]) {
	for line := range lines {
		c.EmitLine(line)
	}
}

// Header queues a dashed banner around the title. Multi-line titles are
// split on newlines; the banner is followed by one blank line. An empty
// title produces adjacent separators with no line between them.
func (c *Console) Header(title string) {
	c.EmitDash()
	if title != "" {
		c.EmitIter(strings.SplitSeq(title, "\n"))
	}
	c.EmitDash()
	c.screen.MoveToNextLine(1)
}

// DefaultHeader queues the home-screen banner.
func (c *Console) DefaultHeader() {
	c.Header("Welcome to TUI Bricks")
}

// Clear queues a full reset of the visible terminal: colors dropped,
// screen erased, cursor hidden and moved to the origin. Idempotent;
// precedes every mode render.
func (c *Console) Clear() {
	c.screen.ResetColor()
	c.screen.ClearScreen()
	c.screen.HideCursor()
	c.screen.MoveTo(0, 0)
}

// Flush writes all queued commands to the terminal in one write.
func (c *Console) Flush() error {
	return c.screen.Flush()
}

// Close leaves the terminal usable for whatever runs next: cursor
// visible, colors reset, one line of room below the last frame.
func (c *Console) Close() error {
	c.screen.ShowCursor()
	c.screen.ResetColor()
	c.screen.MoveToNextLine(1)
	return c.screen.Flush()
}
