package core

import "fmt"

// Tile represents a single cell of the maze.
// The alphabet is closed: anything else in a maze file is a format error.
type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TileWalkable
	TileFinish
)

const (
	glyphEmpty    = ' '
	glyphWall     = '#'
	glyphWalkable = '.'
	glyphFinish   = 'X'
)

// ParseTile converts a maze-file glyph into a tile
func ParseTile(r rune) (Tile, error) {
	switch r {
	case glyphEmpty:
		return TileEmpty, nil
	case glyphWall:
		return TileWall, nil
	case glyphWalkable:
		return TileWalkable, nil
	case glyphFinish:
		return TileFinish, nil
	default:
		return TileEmpty, fmt.Errorf("%w: %q", ErrUnknownGlyph, r)
	}
}

// Rune returns the maze-file glyph for the tile
func (t Tile) Rune() rune {
	switch t {
	case TileWall:
		return glyphWall
	case TileWalkable:
		return glyphWalkable
	case TileFinish:
		return glyphFinish
	default:
		return glyphEmpty
	}
}

func (t Tile) IsWall() bool { return t == TileWall }

// String returns the tile name for logging
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileWalkable:
		return "walkable"
	case TileFinish:
		return "finish"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}
