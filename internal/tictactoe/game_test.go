package tictactoe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playAll - applies moves in order with inferred marks, failing the test on any rejection.
func playAll(t *testing.T, indices ...int) Game {
	t.Helper()

	game := New()
	for i, index := range indices {
		next, err := game.Play(index)
		require.NoError(t, err, "move %d at index %d", i, index)
		game = next
	}

	return game
}

func TestNew(t *testing.T) {
	// When: a new game is created
	game := New()

	// Then: the grid is empty, no moves were made and X is to move
	assert.Equal(t, Grid{}, game.Grid())
	assert.Equal(t, 0, game.Moves())
	assert.Equal(t, InProgress(MarkX), game.Outcome())
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("Every index accepts exactly one move", func(t *testing.T) {
		for index := 0; index < GridSize; index++ {
			// Given: a new game
			game := New()

			// When: X plays the index
			next, err := game.Play(index)
			require.NoError(t, err)

			// Then: the cell holds X and playing it again is rejected
			assert.Equal(t, Occupied(MarkX), next.Grid()[index])

			_, err = next.Play(index)
			require.ErrorIs(t, err, ErrTileTaken)
		}
	})

	t.Run("Out of range index is rejected in any state", func(t *testing.T) {
		// Given: a new game and a finished one
		finished := playAll(t, 0, 3, 1, 4, 2)

		for _, game := range []Game{New(), finished} {
			for _, index := range []int{GridSize, GridSize + 1, 100, -1} {
				// When: playing outside the grid
				next, err := game.Play(index)

				// Then: ErrInvalidIndex is returned before any other check
				require.ErrorIs(t, err, ErrInvalidIndex)
				assert.Equal(t, game, next)
			}
		}
	})

	t.Run("Accepted move adds exactly one mark", func(t *testing.T) {
		game := New()
		for _, index := range []int{4, 0, 8, 2, 6} {
			// When: the next move is accepted
			next, err := game.Play(index)
			require.NoError(t, err)

			// Then: the move counter grows by one and only the target cell changed
			assert.Equal(t, game.Moves()+1, next.Moves())

			changed := 0
			for i := range next.Grid() {
				if next.Grid()[i] != game.Grid()[i] {
					changed++
					assert.Equal(t, index, i)
					assert.True(t, game.Grid()[i].IsEmpty())
				}
			}
			assert.Equal(t, 1, changed)

			game = next
		}
	})

	t.Run("Turns alternate between marks", func(t *testing.T) {
		// Given: a line-free move sequence
		game := New()
		expected := MarkX

		for _, index := range []int{0, 1, 2, 4, 3, 5, 7, 6} {
			turn, ok := game.Outcome().Turn()
			require.True(t, ok)
			require.Equal(t, expected, turn)

			// When: the mark to move plays
			next, err := game.Play(index)
			require.NoError(t, err)

			// Then: the placed mark is the one that was to move and the turn flips
			assert.Equal(t, Occupied(expected), next.Grid()[index])
			game = next
			expected = expected.Next()
		}

		assert.Equal(t, InProgress(expected), game.Outcome())
		assert.Equal(t, InProgress(MarkX), game.Outcome())
	})

	t.Run("Explicit mark must match the turn", func(t *testing.T) {
		// Given: a new game where X is to move
		game := New()

		// When: O tries to move
		next, err := game.PlayAs(MarkO, 1)

		// Then: the move is rejected and nothing changed
		require.ErrorIs(t, err, ErrWrongTurn)
		assert.Equal(t, New(), next)
		assert.Equal(t, New(), game)

		// When: X moves explicitly
		next, err = game.PlayAs(MarkX, 1)

		// Then: the move is accepted
		require.NoError(t, err)
		assert.Equal(t, Occupied(MarkX), next.Grid()[1])
		assert.Equal(t, InProgress(MarkO), next.Outcome())
	})

	t.Run("Unknown explicit mark is the wrong turn", func(t *testing.T) {
		_, err := New().PlayAs(Mark(7), 0)

		require.ErrorIs(t, err, ErrWrongTurn)
	})

	t.Run("Occupied cell is checked after the turn", func(t *testing.T) {
		// Given: X played the center
		game := playAll(t, 4)

		// When: X tries the center again out of turn
		_, err := game.PlayAs(MarkX, 4)

		// Then: the turn rejection wins
		require.ErrorIs(t, err, ErrWrongTurn)

		// When: O tries the center
		_, err = game.PlayAs(MarkO, 4)

		// Then: the cell is reported as taken
		require.ErrorIs(t, err, ErrTileTaken)
	})

	t.Run("Move does not mutate the original game", func(t *testing.T) {
		// Given: a game with one move
		game := playAll(t, 0)
		snapshot := game

		// When: another move is applied
		_, err := game.Play(1)
		require.NoError(t, err)

		// Then: the original value is untouched
		assert.Equal(t, snapshot, game)
		assert.Equal(t, 1, game.Moves())
	})
}

func TestGame_Outcome(t *testing.T) {
	t.Run("Top row wins for X", func(t *testing.T) {
		game := playAll(t, 0, 3, 1, 4, 2)

		assert.Equal(t, Won(MarkX), game.Outcome())
		assert.Equal(t, 5, game.Moves())
	})

	t.Run("Primary diagonal wins for X", func(t *testing.T) {
		game := playAll(t, 0, 1, 4, 2, 8)

		assert.Equal(t, Won(MarkX), game.Outcome())
	})

	t.Run("Anti diagonal wins for X", func(t *testing.T) {
		game := playAll(t, 2, 0, 4, 1, 6)

		assert.Equal(t, Won(MarkX), game.Outcome())
	})

	t.Run("Column wins for X", func(t *testing.T) {
		game := playAll(t, 1, 0, 4, 2, 7)

		assert.Equal(t, Won(MarkX), game.Outcome())
	})

	t.Run("Middle row wins for O", func(t *testing.T) {
		game := playAll(t, 0, 3, 1, 4, 8, 5)

		assert.Equal(t, Won(MarkO), game.Outcome())
		assert.Equal(t, 6, game.Moves())
	})

	t.Run("Full grid without a line is a draw", func(t *testing.T) {
		game := playAll(t, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		assert.Equal(t, Drawn(), game.Outcome())
		assert.Equal(t, GridSize, game.Moves())
		for i, cell := range game.Grid() {
			assert.False(t, cell.IsEmpty(), "cell %d", i)
		}
	})

	t.Run("Line completed on the last move is a win", func(t *testing.T) {
		game := playAll(t, 0, 1, 2, 4, 3, 5, 7, 8, 6)

		assert.Equal(t, Won(MarkX), game.Outcome())
		assert.Equal(t, GridSize, game.Moves())
	})

	t.Run("Finished game rejects further moves", func(t *testing.T) {
		for _, game := range []Game{
			playAll(t, 0, 3, 1, 4, 2),
			playAll(t, 0, 1, 2, 4, 3, 5, 7, 6, 8),
		} {
			// When: any further move is attempted, even on an occupied cell
			next, err := game.Play(8)
			_, errAs := game.PlayAs(MarkO, 0)

			// Then: the game is finished and nothing changed
			require.ErrorIs(t, err, ErrGameFinished)
			require.ErrorIs(t, errAs, ErrGameFinished)
			assert.Equal(t, game, next)
		}
	})
}

func TestOutcome(t *testing.T) {
	t.Run("In progress carries the mark to move", func(t *testing.T) {
		outcome := InProgress(MarkO)

		turn, ok := outcome.Turn()
		require.True(t, ok)
		assert.Equal(t, MarkO, turn)
		assert.False(t, outcome.IsFinished())

		_, ok = outcome.Winner()
		assert.False(t, ok)
	})

	t.Run("Terminal outcomes have no mark to move", func(t *testing.T) {
		for _, outcome := range []Outcome{Won(MarkX), Won(MarkO), Drawn()} {
			_, ok := outcome.Turn()

			assert.False(t, ok)
			assert.True(t, outcome.IsFinished())
		}
	})

	t.Run("Won carries the winner", func(t *testing.T) {
		winner, ok := Won(MarkO).Winner()

		require.True(t, ok)
		assert.Equal(t, MarkO, winner)
		assert.False(t, Won(MarkO).IsDraw())
		assert.True(t, Drawn().IsDraw())
	})
}

func TestIsMoveError(t *testing.T) {
	_, err := New().Play(GridSize)
	assert.True(t, IsMoveError(err))

	assert.True(t, IsMoveError(ErrTileTaken))
	assert.True(t, IsMoveError(ErrWrongTurn))
	assert.True(t, IsMoveError(ErrGameFinished))
	assert.False(t, IsMoveError(errors.New("storage down")))
	assert.False(t, IsMoveError(nil))
}
