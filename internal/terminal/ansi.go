// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package terminal

// ANSI CSI sequences used by the screen buffer
const (
	csiReset      = "\033[0m"
	csiClearAll   = "\033[2J"
	csiClearLine  = "\033[2K"
	csiCursorHide = "\033[?25l"
	csiCursorShow = "\033[?25h"

	// Parameterized prefixes, completed by the emitting method
	csi = "\033["
)
