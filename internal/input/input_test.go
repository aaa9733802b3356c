package input

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daedalus-games/theseus/internal/game/core"
)

func TestNewScript_ParsesMoveList(t *testing.T) {
	s, err := NewScript("e;e;s;d;u;q")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Remaining())

	expected := []core.Move{core.MoveRight, core.MoveRight, core.MoveDown, core.MoveSkip, core.MoveUndo, core.MoveQuit}
	for _, want := range expected {
		m, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, want, m)
	}

	_, err = s.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestNewScript_InvalidTokenIsFatal(t *testing.T) {
	_, err := NewScript("e;x;s")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownMove)
	assert.Contains(t, err.Error(), "token 2")
}

func TestNewScript_Empty(t *testing.T) {
	s, err := NewScript("")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Remaining())

	_, err = s.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestChain_FallsThroughOnEOF(t *testing.T) {
	first, err := NewScript("e")
	require.NoError(t, err)
	second, err := NewScript("q")
	require.NoError(t, err)

	c := NewChain(first, second)

	m, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, core.MoveRight, m)

	m, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, core.MoveQuit, m)

	_, err = c.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestChain_Empty(t *testing.T) {
	_, err := NewChain().Next()
	assert.ErrorIs(t, err, io.EOF)
}
