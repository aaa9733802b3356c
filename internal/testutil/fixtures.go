package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daedalus-games/theseus/internal/maze"
)

// SimpleMazeRows is a 5x5 maze with the player top-left, the finish
// bottom-right and no minotaur glyph (the minotaur defaults to the
// origin, walled in). Winnable with "e;s".
func SimpleMazeRows() []string {
	return []string{
		"#####",
		"#*..#",
		"#.#.#",
		"#..X#",
		"#####",
	}
}

// ChaseMazeRows is a single corridor with the minotaur two cells to the
// player's right. Any skip lets it close the gap in one double step.
func ChaseMazeRows() []string {
	return []string{
		"#######",
		"#*...M#",
		"#######",
	}
}

// WalledMinotaurRows walls the minotaur off from a short corridor the
// player can win in a single move.
func WalledMinotaurRows() []string {
	return []string{
		"#######",
		"#M#*.X#",
		"#######",
	}
}

// DeadEndRows is a corridor with no finish tile; no configuration wins,
// so an exhaustive walk must unwind to the initial turn.
func DeadEndRows() []string {
	return []string{
		"#####",
		"#*..#",
		"#####",
	}
}

// MustParse parses maze rows, failing the test on error
func MustParse(t *testing.T, rows []string) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(rows)
	require.NoError(t, err)
	return m
}
