// Package input provides the move sources consumed by the turn loop:
// a scripted queue of pre-supplied moves, raw single-keystroke terminal
// input, and chaining of the two.
package input

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/daedalus-games/theseus/internal/game/core"
)

// Source yields one move token per call. io.EOF means the source is
// drained; core.ErrUnknownMove marks input the loop should ignore.
type Source interface {
	Next() (core.Move, error)
}

// Script replays a pre-parsed move list, then reports io.EOF
type Script struct {
	moves []core.Move
}

// NewScript parses a semicolon-separated move list. Any invalid token
// is a fatal format error; scripted games never half-run.
func NewScript(tokens string) (*Script, error) {
	s := &Script{}
	if tokens == "" {
		return s, nil
	}

	for i, token := range strings.Split(tokens, ";") {
		m, err := core.ParseMove(token)
		if err != nil {
			return nil, fmt.Errorf("move list token %d: %w", i+1, err)
		}
		s.moves = append(s.moves, m)
	}
	return s, nil
}

// Next implements Source
func (s *Script) Next() (core.Move, error) {
	if len(s.moves) == 0 {
		return core.MoveSkip, io.EOF
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

// Remaining returns how many scripted moves are left
func (s *Script) Remaining() int {
	return len(s.moves)
}

// Keyboard reads single raw keystrokes from a terminal. The terminal is
// switched to raw mode only for the duration of each read.
type Keyboard struct {
	in *os.File
}

// NewKeyboard creates a keyboard source reading from f, normally os.Stdin
func NewKeyboard(f *os.File) *Keyboard {
	return &Keyboard{in: f}
}

// Next implements Source. Unrecognized keys yield core.ErrUnknownMove;
// Ctrl-C is mapped to quit since raw mode swallows the signal.
func (k *Keyboard) Next() (core.Move, error) {
	fd := int(k.in.Fd())
	old, err := terminal.MakeRaw(fd)
	if err != nil {
		return core.MoveSkip, fmt.Errorf("raw mode: %w", err)
	}
	defer terminal.Restore(fd, old)

	buf := make([]byte, 1)
	if _, err := k.in.Read(buf); err != nil {
		return core.MoveSkip, err
	}
	if buf[0] == 0x03 {
		return core.MoveQuit, nil
	}
	return core.ParseMove(string(buf))
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return terminal.IsTerminal(int(f.Fd()))
}

// Chain consumes sources in order, falling through to the next one when
// the current source reports io.EOF
type Chain struct {
	sources []Source
}

// NewChain composes sources; typically a script followed by interactive
// or auto input
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// Next implements Source
func (c *Chain) Next() (core.Move, error) {
	for len(c.sources) > 0 {
		m, err := c.sources[0].Next()
		if err == io.EOF {
			c.sources = c.sources[1:]
			continue
		}
		return m, err
	}
	return core.MoveSkip, io.EOF
}
