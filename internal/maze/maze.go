// Package maze loads maze files into the game's grid model. The format
// is newline-separated rows of single-character tiles; the player and
// minotaur glyphs are not tiles, they are extracted into start positions
// and the cell underneath is normalized to walkable.
package maze

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/daedalus-games/theseus/internal/game/core"
)

const (
	glyphPlayer   = '*'
	glyphMinotaur = 'M'
	glyphFinish   = 'X'
)

// Maze is a parsed maze file: the immutable grid plus the positions
// extracted at load time
type Maze struct {
	Grid     core.Grid
	Player   core.Coordinate
	Minotaur core.Coordinate
	Finish   core.Coordinate
}

// FormatError describes an unrecognized glyph in a maze file
type FormatError struct {
	Line  int
	Col   int
	Glyph rune
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("maze format error at line %d col %d: unrecognized glyph %q", e.Line, e.Col, e.Glyph)
}

// Load reads and parses a maze file
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read maze file: %w", err)
	}

	m, err := Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Parse builds a maze from its rows. Rows may differ in width. The
// first player and minotaur glyphs win; later duplicates are normalized
// to walkable like the first. Absent glyphs leave the corresponding
// position at the origin, matching the original game's behavior for
// mazes played without a minotaur.
func Parse(lines []string) (*Maze, error) {
	m := &Maze{Grid: make(core.Grid, len(lines))}
	var seenPlayer, seenMinotaur, seenFinish bool

	for y, line := range lines {
		m.Grid[y] = make([]core.Tile, 0, len(line))
		for x, r := range line {
			switch r {
			case glyphPlayer:
				if !seenPlayer {
					m.Player = core.Coordinate{X: x, Y: y}
					seenPlayer = true
				}
				m.Grid[y] = append(m.Grid[y], core.TileWalkable)
			case glyphMinotaur:
				if !seenMinotaur {
					m.Minotaur = core.Coordinate{X: x, Y: y}
					seenMinotaur = true
				}
				m.Grid[y] = append(m.Grid[y], core.TileWalkable)
			case glyphFinish:
				if !seenFinish {
					m.Finish = core.Coordinate{X: x, Y: y}
					seenFinish = true
				}
				m.Grid[y] = append(m.Grid[y], core.TileFinish)
			default:
				tile, err := core.ParseTile(r)
				if err != nil {
					return nil, &FormatError{Line: y + 1, Col: x + 1, Glyph: r}
				}
				m.Grid[y] = append(m.Grid[y], tile)
			}
		}
	}

	return m, nil
}
