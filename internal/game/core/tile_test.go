package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTile(t *testing.T) {
	tests := []struct {
		name     string
		glyph    rune
		expected Tile
	}{
		{"Empty", ' ', TileEmpty},
		{"Wall", '#', TileWall},
		{"Walkable", '.', TileWalkable},
		{"Finish", 'X', TileFinish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile, err := ParseTile(tt.glyph)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tile)
		})
	}
}

func TestParseTile_UnknownGlyph(t *testing.T) {
	_, err := ParseTile('?')
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownGlyph)
}

func TestTile_Rune_RoundTrip(t *testing.T) {
	for _, tile := range []Tile{TileEmpty, TileWall, TileWalkable, TileFinish} {
		parsed, err := ParseTile(tile.Rune())
		require.NoError(t, err)
		assert.Equal(t, tile, parsed)
	}
}

func TestTile_IsWall(t *testing.T) {
	assert.True(t, TileWall.IsWall())
	assert.False(t, TileWalkable.IsWall())
	assert.False(t, TileEmpty.IsWall())
	assert.False(t, TileFinish.IsWall())
}
