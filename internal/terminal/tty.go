// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY reports whether f is attached to a terminal. FORCE_COLOR and
// NO_COLOR take precedence so output modes stay scriptable in CI.
func IsTTY(f *os.File) bool {
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether f is a real terminal. Unlike IsTTY it
// ignores the color override variables; forcing color must not make a
// piped stdin look interactive.
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
