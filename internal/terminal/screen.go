// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package terminal

import (
	"bytes"
	"io"
	"strconv"

	"github.com/dotandev/bricks/internal/errors"
)

// Screen queues terminal control commands in memory and writes them to
// the sink only on Flush. Batching the whole frame into one write keeps
// partial frames off the terminal and avoids flicker.
type Screen struct {
	sink io.Writer
	buf  bytes.Buffer
}

// NewScreen wraps a terminal output handle. The caller retains ownership
// of the handle and is responsible for its lifetime.
func NewScreen(sink io.Writer) *Screen {
	return &Screen{sink: sink}
}

// Print queues text at the current cursor position. Embedded newlines
// are not translated; callers split multi-line text themselves.
func (s *Screen) Print(text string) {
	s.buf.WriteString(text)
}

// MoveToNextLine queues a cursor move to the start of the line n rows down.
func (s *Screen) MoveToNextLine(n int) {
	s.buf.WriteString(csi)
	s.buf.WriteString(strconv.Itoa(n))
	s.buf.WriteByte('E')
}

// MoveToPreviousLine queues a cursor move to the start of the line n rows up.
func (s *Screen) MoveToPreviousLine(n int) {
	s.buf.WriteString(csi)
	s.buf.WriteString(strconv.Itoa(n))
	s.buf.WriteByte('F')
}

// MoveTo queues an absolute cursor move. Coordinates are zero-based.
func (s *Screen) MoveTo(col, row int) {
	s.buf.WriteString(csi)
	s.buf.WriteString(strconv.Itoa(row + 1))
	s.buf.WriteByte(';')
	s.buf.WriteString(strconv.Itoa(col + 1))
	s.buf.WriteByte('H')
}

// ClearLine queues an erase of the line under the cursor.
func (s *Screen) ClearLine() {
	s.buf.WriteString(csiClearLine)
}

// ClearScreen queues an erase of the whole visible screen.
func (s *Screen) ClearScreen() {
	s.buf.WriteString(csiClearAll)
}

// HideCursor queues a cursor-hide command.
func (s *Screen) HideCursor() {
	s.buf.WriteString(csiCursorHide)
}

// ShowCursor queues a cursor-show command.
func (s *Screen) ShowCursor() {
	s.buf.WriteString(csiCursorShow)
}

// ResetColor queues an SGR reset, dropping any active color or style.
func (s *Screen) ResetColor() {
	s.buf.WriteString(csiReset)
}

// Flush writes every queued command to the sink in a single write and
// empties the queue. Must be called before any point where the operator
// has to see updated content.
func (s *Screen) Flush() error {
	if s.buf.Len() == 0 {
		return nil
	}
	_, err := s.sink.Write(s.buf.Bytes())
	s.buf.Reset()
	if err != nil {
		return errors.WrapTerminalIO(err)
	}
	return nil
}

// Pending reports the number of queued bytes not yet flushed.
func (s *Screen) Pending() int {
	return s.buf.Len()
}
