// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// The prompts below block the calling goroutine until a conforming
// answer arrives; there is no timeout or cancellation path. Validation
// retries are deliberate loops, not errors: only I/O failures from the
// underlying handles propagate.

// InputU32 prompts for a non-negative 32-bit integer. A line that fails
// to parse is erased from view and silently re-read; retries are
// unbounded and no diagnostic is printed.
func (c *Console) InputU32(prompt string) (uint32, error) {
	c.EmitIter(strings.SplitSeq(prompt, "\n"))
	c.EmitLine("(Input should be a number)")
	c.screen.ShowCursor()
	if err := c.Flush(); err != nil {
		return 0, err
	}

	for {
		line, err := c.lines.ReadLine()
		if err != nil {
			return 0, err
		}
		value, parseErr := strconv.ParseUint(strings.TrimSpace(line), 10, 32)
		if parseErr == nil {
			c.screen.HideCursor()
			return uint32(value), nil
		}
		c.screen.MoveToPreviousLine(1)
		c.screen.ClearLine()
		if err := c.Flush(); err != nil {
			return 0, err
		}
	}
}

// InputString prompts for one line of free text and returns it with
// surrounding whitespace trimmed. Empty input is a valid answer.
func (c *Console) InputString(prompt string) (string, error) {
	c.EmitIter(strings.SplitSeq(prompt, "\n"))
	c.screen.ShowCursor()
	if err := c.Flush(); err != nil {
		return "", err
	}

	line, err := c.lines.ReadLine()
	if err != nil {
		return "", err
	}
	c.screen.HideCursor()
	return strings.TrimSpace(line), nil
}

// ConfirmationPrompt asks a yes/no question answered by a single raw
// keypress. Matching is exact: only lowercase 'y' and 'n' are
// recognized, anything else is silently re-read.
func (c *Console) ConfirmationPrompt(prompt string) (bool, error) {
	c.EmitIter(strings.SplitSeq(prompt, "\n"))
	c.EmitLine("(y)es or (n)o?")
	if err := c.Flush(); err != nil {
		return false, err
	}

	for {
		key, err := c.keys.ReadKey()
		if err != nil {
			return false, err
		}
		switch key {
		case 'y':
			return true, nil
		case 'n':
			return false, nil
		}
	}
}

// Choice binds a key character to a selectable value. Keys should be
// unique within one call; on a duplicate the first match in order wins.
type Choice[T fmt.Stringer] struct {
	Key   rune
	Value T
}

// SelectFromList displays the options and blocks until a raw keypress
// matches one of them, returning that option's value. Non-matching keys
// are ignored with no feedback and no cancel path, so callers must
// always offer a reachable key.
func SelectFromList[T fmt.Stringer](c *Console, prompt string, options []Choice[T]) (T, error) {
	var zero T

	c.EmitIter(strings.SplitSeq(prompt, "\n"))
	c.EmitLine("Select from the list by typing the letter")
	c.screen.MoveToNextLine(1)
	for _, opt := range options {
		c.EmitLine(fmt.Sprintf("%c: %s", opt.Key, opt.Value))
	}
	if err := c.Flush(); err != nil {
		return zero, err
	}

	for {
		key, err := c.keys.ReadKey()
		if err != nil {
			return zero, err
		}
		for _, opt := range options {
			if opt.Key == key {
				return opt.Value, nil
			}
		}
	}
}
