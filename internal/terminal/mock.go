// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package terminal

import "io"

// ScriptedKeys replays a fixed sequence of keypresses, then reports EOF.
type ScriptedKeys struct {
	Keys []rune
	next int
}

func (s *ScriptedKeys) ReadKey() (rune, error) {
	if s.next >= len(s.Keys) {
		return 0, io.EOF
	}
	key := s.Keys[s.next]
	s.next++
	return key, nil
}

// ScriptedLines replays a fixed sequence of input lines, then reports EOF.
type ScriptedLines struct {
	Lines []string
	next  int
}

func (s *ScriptedLines) ReadLine() (string, error) {
	if s.next >= len(s.Lines) {
		return "", io.EOF
	}
	line := s.Lines[s.next]
	s.next++
	return line, nil
}
