package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Next())
	assert.Equal(t, MarkX, MarkO.Next())
	assert.Equal(t, "X", MarkX.String())
	assert.Equal(t, "O", MarkO.String())
	assert.True(t, MarkX.Valid())
	assert.False(t, Mark(0).Valid())
}

func TestCell(t *testing.T) {
	assert.True(t, Empty.IsEmpty())
	_, ok := Empty.Mark()
	assert.False(t, ok)

	mark, ok := Occupied(MarkO).Mark()
	assert.True(t, ok)
	assert.Equal(t, MarkO, mark)
	assert.Equal(t, "O", Occupied(MarkO).String())

	grid := Grid{7: Occupied(MarkX)}
	assert.Equal(t, Occupied(MarkX), grid.At(1, 2))
}
