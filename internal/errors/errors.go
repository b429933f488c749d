// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is
var (
	ErrItemNotFound  = errors.New("item not found")
	ErrDuplicateItem = errors.New("item already exists")
	ErrStoreFailed   = errors.New("catalog store operation failed")
	ErrConfigError   = errors.New("configuration error")
	ErrNotATerminal  = errors.New("not a terminal")
	ErrTerminalIO    = errors.New("terminal I/O failed")
	ErrImportFailed  = errors.New("catalog import failed")
	ErrExportFailed  = errors.New("catalog export failed")
)

// Wrap functions for consistent error wrapping
func WrapItemNotFound(partID uint32) error {
	return fmt.Errorf("%w: part ID %d", ErrItemNotFound, partID)
}

func WrapDuplicateItem(partID uint32) error {
	return fmt.Errorf("%w: part ID %d", ErrDuplicateItem, partID)
}

func WrapStoreFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreFailed, err)
}

func WrapConfigError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrConfigError, msg, err)
}

func WrapNotATerminal(stream string) error {
	return fmt.Errorf("%w: %s is not attached to a terminal", ErrNotATerminal, stream)
}

func WrapTerminalIO(err error) error {
	return fmt.Errorf("%w: %w", ErrTerminalIO, err)
}

func WrapImportFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrImportFailed, err)
}

func WrapExportFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrExportFailed, err)
}
