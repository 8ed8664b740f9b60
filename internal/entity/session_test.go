package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

func play(t *testing.T, indices ...int) tictactoe.Game {
	t.Helper()

	game := tictactoe.New()
	for _, index := range indices {
		var err error
		game, err = game.Play(index)
		require.NoError(t, err)
	}

	return game
}

func TestNewSession(t *testing.T) {
	t.Run("Game in progress", func(t *testing.T) {
		// Given: X played the center
		game := play(t, 4)

		// When: a session snapshot is taken
		session := NewSession("abc", game)

		// Then: the board, turn and status reflect the game
		assert.Equal(t, "abc", session.ID)
		assert.Equal(t, [9]string{"", "", "", "", PlayerX, "", "", "", ""}, session.Board)
		assert.Equal(t, StatusInProgress, session.Status)
		assert.Equal(t, PlayerO, session.Turn)
		assert.Empty(t, session.Winner)
		assert.Equal(t, 1, session.Moves)
		assert.False(t, session.UpdatedAt.IsZero())
		assert.False(t, session.IsFinished())
	})

	t.Run("Won game", func(t *testing.T) {
		session := NewSession("abc", play(t, 0, 3, 1, 4, 8, 5))

		assert.Equal(t, StatusWon, session.Status)
		assert.Equal(t, PlayerO, session.Winner)
		assert.Empty(t, session.Turn)
		assert.True(t, session.IsFinished())
	})

	t.Run("Drawn game", func(t *testing.T) {
		session := NewSession("abc", play(t, 0, 1, 2, 4, 3, 5, 7, 6, 8))

		assert.Equal(t, StatusDrawn, session.Status)
		assert.Empty(t, session.Winner)
		assert.Empty(t, session.Turn)
		assert.Equal(t, 9, session.Moves)
	})
}

func TestSession_Game(t *testing.T) {
	t.Run("Rebuilds the snapshotted game", func(t *testing.T) {
		// Given: a snapshot of a game in progress
		game := play(t, 4, 0, 8)
		session := NewSession("abc", game)

		// When: the game is rebuilt
		restored, err := session.Game()

		// Then: it equals the original
		require.NoError(t, err)
		assert.Equal(t, game, restored)
	})

	t.Run("Unknown board value is rejected", func(t *testing.T) {
		session := NewSession("abc", tictactoe.New())
		session.Board[3] = "Z"

		_, err := session.Game()

		require.ErrorIs(t, err, apperror.ErrInvalidSession)
	})

	t.Run("Unreachable board is rejected", func(t *testing.T) {
		session := NewSession("abc", tictactoe.New())
		session.Board = [9]string{PlayerO, PlayerO}

		_, err := session.Game()

		require.ErrorIs(t, err, apperror.ErrInvalidSession)
		require.ErrorIs(t, err, tictactoe.ErrInvalidGrid)
	})

	t.Run("Status that disagrees with the board is rejected", func(t *testing.T) {
		session := NewSession("abc", play(t, 4))
		session.Turn = PlayerX

		_, err := session.Game()

		require.ErrorIs(t, err, apperror.ErrInvalidSession)
	})
}
