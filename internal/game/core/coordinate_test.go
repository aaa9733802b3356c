package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoordinate(t *testing.T) {
	c := NewCoordinate(3, 5)
	assert.Equal(t, 3, c.X)
	assert.Equal(t, 5, c.Y)
}

func TestCoordinate_Add(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coordinate
		expected Coordinate
	}{
		{"Zeros", Coordinate{0, 0}, Coordinate{0, 0}, Coordinate{0, 0}},
		{"Positive", Coordinate{1, 2}, Coordinate{3, 4}, Coordinate{4, 6}},
		{"Negative", Coordinate{5, 5}, Coordinate{-2, -7}, Coordinate{3, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Add(tt.b))
		})
	}
}

func TestCoordinate_Equal(t *testing.T) {
	assert.True(t, Coordinate{2, 3}.Equal(Coordinate{2, 3}))
	assert.False(t, Coordinate{2, 3}.Equal(Coordinate{3, 2}))
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "(4,-1)", Coordinate{4, -1}.String())
}
