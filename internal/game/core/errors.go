package core

import "errors"

var (
	ErrUnknownMove  = errors.New("unknown move symbol")
	ErrUnknownGlyph = errors.New("unknown maze glyph")
)
