package core

// Grid is a row-major tile matrix. Rows may differ in width, so every
// column check is against the coordinate's own row. A grid is never
// mutated after it has been loaded.
type Grid [][]Tile

// InBounds checks if the coordinate addresses an existing cell
func (g Grid) InBounds(c Coordinate) bool {
	return c.Y >= 0 && c.Y < len(g) && c.X >= 0 && c.X < len(g[c.Y])
}

// IsValid reports whether an actor may occupy or cross the cell: it must
// exist and must not be a wall. This is the sole authority on cell
// legality for both the player and the minotaur.
func (g Grid) IsValid(c Coordinate) bool {
	return g.InBounds(c) && !g[c.Y][c.X].IsWall()
}

// Tile returns the tile at the coordinate, or TileEmpty when out of bounds
func (g Grid) Tile(c Coordinate) Tile {
	if !g.InBounds(c) {
		return TileEmpty
	}
	return g[c.Y][c.X]
}
