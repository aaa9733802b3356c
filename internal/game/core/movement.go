package core

// Apply resolves a single actor move against the grid and returns the
// resulting position plus whether the move was accepted.
//
// Directional moves span two cells: the intermediate cell between the
// two centers is where a wall would sit, so acceptance is gated on that
// cell being valid. The destination itself is additionally
// bounds-checked so a malformed perimeter produces a rejection instead
// of an off-grid actor. On rejection the input position is returned
// unchanged. The same rules apply to the player and the minotaur.
func Apply(g Grid, pos Coordinate, m Move) (Coordinate, bool) {
	if m == MoveSkip {
		return pos, true
	}

	vec, ok := moveVectors[m]
	if !ok {
		return pos, false
	}

	between := pos.Add(vec)
	dest := between.Add(vec)
	if !g.IsValid(between) || !g.InBounds(dest) {
		return pos, false
	}
	return dest, true
}

// ValidMoves returns the actor moves playable from pos. Skip is always
// playable; a direction is playable iff Apply would accept it. This
// backs both manual input validation and the explorer's search frontier.
func ValidMoves(g Grid, pos Coordinate) []Move {
	moves := make([]Move, 0, 5)
	moves = append(moves, MoveSkip)
	for _, m := range []Move{MoveUp, MoveDown, MoveLeft, MoveRight} {
		if _, ok := Apply(g, pos, m); ok {
			moves = append(moves, m)
		}
	}
	return moves
}
