package pathfinding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlviRownok/Chess-Knight-Paths/board"
	"github.com/AlviRownok/Chess-Knight-Paths/pathfinding"
)

func TestPathMoves(t *testing.T) {
	assert.Equal(t, 0, pathfinding.Path{}.Moves())
	assert.Equal(t, 0, pathfinding.Path{{Row: 0, Col: 0}}.Moves())
	assert.Equal(t, 2, pathfinding.Path{{Row: 0, Col: 0}, {Row: 2, Col: 1}, {Row: 4, Col: 2}}.Moves())
}

func TestPathSignature(t *testing.T) {
	a := pathfinding.Path{{Row: 0, Col: 0}, {Row: 2, Col: 1}, {Row: 0, Col: 2}}
	b := pathfinding.Path{{Row: 0, Col: 0}, {Row: 2, Col: 1}, {Row: 0, Col: 2}}
	c := pathfinding.Path{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 0, Col: 2}}
	assert.Equal(t, a.Signature(), b.Signature())
	assert.NotEqual(t, a.Signature(), c.Signature())

	// Same cells in reverse order are a different walk.
	reversed := pathfinding.Path{{Row: 0, Col: 2}, {Row: 2, Col: 1}, {Row: 0, Col: 0}}
	assert.NotEqual(t, a.Signature(), reversed.Signature())
}

func TestPathAlgebraic(t *testing.T) {
	squares, err := pathfinding.Path{{Row: 0, Col: 0}, {Row: 2, Col: 1}, {Row: 1, Col: 3}}.Algebraic()
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "b3", "d2"}, squares)

	_, err = pathfinding.Path{{Row: 8, Col: 0}}.Algebraic()
	require.Error(t, err)
	assert.ErrorIs(t, err, board.ErrInvalidCell)
}

func TestMultipleResultHelpers(t *testing.T) {
	var empty *pathfinding.MultipleResult
	assert.Equal(t, 0, empty.MinMoves())
	assert.Empty(t, empty.SignatureSet())

	res := &pathfinding.MultipleResult{Results: []pathfinding.Result{
		{Path: pathfinding.Path{{Row: 0, Col: 0}, {Row: 2, Col: 1}}},
		{Path: pathfinding.Path{{Row: 0, Col: 0}, {Row: 1, Col: 2}}},
	}}
	assert.Equal(t, 1, res.MinMoves())
	assert.Len(t, res.SignatureSet(), 2)
}
