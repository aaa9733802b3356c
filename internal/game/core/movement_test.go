package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridorGrid is an open 7x7 area ringed by walls, cell centers on the
// odd coordinates.
func corridorGrid() Grid {
	rows := []string{
		"#######",
		"#.....#",
		"#.....#",
		"#.....#",
		"#.....#",
		"#.....#",
		"#######",
	}
	g := make(Grid, len(rows))
	for y, row := range rows {
		g[y] = make([]Tile, len(row))
		for x, r := range row {
			tile, err := ParseTile(r)
			if err != nil {
				panic(err)
			}
			g[y][x] = tile
		}
	}
	return g
}

func TestApply_SkipAlwaysAccepted(t *testing.T) {
	g := corridorGrid()
	pos := Coordinate{3, 3}

	next, ok := Apply(g, pos, MoveSkip)
	assert.True(t, ok)
	assert.Equal(t, pos, next)

	// Even from an illegal square; skip never consults the grid.
	wallPos := Coordinate{0, 0}
	next, ok = Apply(g, wallPos, MoveSkip)
	assert.True(t, ok)
	assert.Equal(t, wallPos, next)
}

func TestApply_DirectionalMovesTwoCells(t *testing.T) {
	g := corridorGrid()
	start := Coordinate{3, 3}

	tests := []struct {
		name     string
		move     Move
		expected Coordinate
	}{
		{"Up", MoveUp, Coordinate{3, 1}},
		{"Down", MoveDown, Coordinate{3, 5}},
		{"Left", MoveLeft, Coordinate{1, 3}},
		{"Right", MoveRight, Coordinate{5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := Apply(g, start, tt.move)
			require.True(t, ok)
			assert.Equal(t, tt.expected, next)
		})
	}
}

func TestApply_BlockedByIntermediateWall(t *testing.T) {
	g := corridorGrid()
	start := Coordinate{1, 1}

	// Up and left hit the perimeter wall one step away.
	for _, m := range []Move{MoveUp, MoveLeft} {
		next, ok := Apply(g, start, m)
		assert.False(t, ok, m.String())
		assert.Equal(t, start, next, m.String())
	}
}

func TestApply_DestinationOutOfBounds(t *testing.T) {
	// Degenerate grid without a perimeter: the intermediate cell is
	// open but the destination falls off the grid.
	g := Grid{{TileWalkable, TileWalkable}}
	start := Coordinate{0, 0}

	next, ok := Apply(g, start, MoveRight)
	assert.False(t, ok)
	assert.Equal(t, start, next)
}

func TestApply_MetaCommandsRejected(t *testing.T) {
	g := corridorGrid()
	start := Coordinate{3, 3}

	for _, m := range []Move{MoveQuit, MoveUndo, MoveAuto} {
		next, ok := Apply(g, start, m)
		assert.False(t, ok, m.String())
		assert.Equal(t, start, next, m.String())
	}
}

func TestValidMoves(t *testing.T) {
	g := corridorGrid()

	tests := []struct {
		name     string
		pos      Coordinate
		expected []Move
	}{
		{"Center", Coordinate{3, 3}, []Move{MoveSkip, MoveUp, MoveDown, MoveLeft, MoveRight}},
		{"TopLeft", Coordinate{1, 1}, []Move{MoveSkip, MoveDown, MoveRight}},
		{"BottomRight", Coordinate{5, 5}, []Move{MoveSkip, MoveUp, MoveLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidMoves(g, tt.pos))
		})
	}
}

func TestValidMoves_ConsistentWithApply(t *testing.T) {
	g := corridorGrid()

	for y := 1; y < 6; y += 2 {
		for x := 1; x < 6; x += 2 {
			pos := Coordinate{x, y}
			valid := ValidMoves(g, pos)
			for _, m := range []Move{MoveUp, MoveDown, MoveLeft, MoveRight, MoveSkip} {
				_, ok := Apply(g, pos, m)
				assert.Equal(t, ok, containsMove(valid, m), "pos %s move %s", pos, m)
			}
		}
	}
}

func containsMove(moves []Move, m Move) bool {
	for _, have := range moves {
		if have == m {
			return true
		}
	}
	return false
}
