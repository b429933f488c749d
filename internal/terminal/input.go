// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package terminal

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/dotandev/bricks/internal/errors"
)

// LineReader blocks until a full newline-terminated line is available.
type LineReader interface {
	ReadLine() (string, error)
}

// KeyReader blocks until a single keypress is available, read without
// line buffering.
type KeyReader interface {
	ReadKey() (rune, error)
}

type bufferedLineReader struct {
	r *bufio.Reader
}

// NewLineReader returns a line-buffered reader over the given input
// source, normally os.Stdin.
func NewLineReader(r io.Reader) LineReader {
	return &bufferedLineReader{r: bufio.NewReader(r)}
}

func (b *bufferedLineReader) ReadLine() (string, error) {
	line, err := b.r.ReadString('\n')
	if err != nil {
		// A final unterminated line is still a line.
		if err == io.EOF && line != "" {
			return strings.TrimSuffix(line, "\n"), nil
		}
		return "", errors.WrapTerminalIO(err)
	}
	return strings.TrimSuffix(line, "\n"), nil
}

type rawKeyReader struct {
	f *os.File
}

// NewKeyReader returns a KeyReader over the given terminal handle,
// normally os.Stdin. Each ReadKey switches the terminal into raw mode
// for the duration of that single read and restores the previous mode
// on every exit path.
func NewKeyReader(f *os.File) KeyReader {
	return &rawKeyReader{f: f}
}

func (r *rawKeyReader) ReadKey() (rune, error) {
	fd := int(r.f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, errors.WrapTerminalIO(err)
	}
	defer term.Restore(fd, state)

	var buf [4]byte
	n, err := r.f.Read(buf[:])
	if err != nil {
		return 0, errors.WrapTerminalIO(err)
	}
	if n == 0 {
		return 0, errors.WrapTerminalIO(io.EOF)
	}

	key, _ := utf8.DecodeRune(buf[:n])
	return key, nil
}
