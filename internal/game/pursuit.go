package game

import "github.com/daedalus-games/theseus/internal/game/core"

// pursueStep advances the minotaur one step toward the player. The
// minotaur is greedy and deterministic: it tries to close the horizontal
// gap first, and only when that attempt leaves it in place does it try
// the vertical gap. It obeys exactly the same wall rules as the player.
func pursueStep(g core.Grid, player, minotaur core.Coordinate) core.Coordinate {
	move := core.MoveSkip
	if player.X < minotaur.X {
		move = core.MoveLeft
	} else if player.X > minotaur.X {
		move = core.MoveRight
	}

	if next, _ := core.Apply(g, minotaur, move); !next.Equal(minotaur) {
		return next
	}

	move = core.MoveSkip
	if player.Y < minotaur.Y {
		move = core.MoveUp
	} else if player.Y > minotaur.Y {
		move = core.MoveDown
	}

	next, _ := core.Apply(g, minotaur, move)
	return next
}
