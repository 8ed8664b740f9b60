package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDrawn      = "drawn"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// Session is the stored snapshot of the game currently being played.
type Session struct {
	ID        string    `json:"id"`
	Board     [9]string `json:"board"`
	Status    string    `json:"status"`
	Turn      string    `json:"player_turn,omitempty"`
	Winner    string    `json:"winner,omitempty"`
	Moves     int       `json:"moves"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(id string, game tictactoe.Game) *Session {
	session := &Session{
		ID:        id,
		Moves:     game.Moves(),
		UpdatedAt: time.Now().UTC(),
	}

	for i, cell := range game.Grid() {
		if mark, ok := cell.Mark(); ok {
			session.Board[i] = mark.String()
		}
	}

	outcome := game.Outcome()
	switch {
	case outcome.IsDraw():
		session.Status = StatusDrawn
	case outcome.IsFinished():
		winner, _ := outcome.Winner()
		session.Status = StatusWon
		session.Winner = winner.String()
	default:
		turn, _ := outcome.Turn()
		session.Status = StatusInProgress
		session.Turn = turn.String()
	}

	return session
}

// Game - rebuilds the engine state from the snapshot. The outcome is recomputed
// from the board and must agree with the stored status.
func (that *Session) Game() (tictactoe.Game, error) {
	var grid tictactoe.Grid
	for i, value := range that.Board {
		switch value {
		case EmptyCell:
		case PlayerX:
			grid[i] = tictactoe.Occupied(tictactoe.MarkX)
		case PlayerO:
			grid[i] = tictactoe.Occupied(tictactoe.MarkO)
		default:
			return tictactoe.Game{}, fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidSession, i, value)
		}
	}

	game, err := tictactoe.Restore(grid)
	if err != nil {
		return tictactoe.Game{}, fmt.Errorf("%w: %w", apperror.ErrInvalidSession, err)
	}

	restored := NewSession(that.ID, game)
	if restored.Status != that.Status || restored.Turn != that.Turn || restored.Winner != that.Winner || restored.Moves != that.Moves {
		return tictactoe.Game{}, fmt.Errorf("%w: stored status %q does not match board", apperror.ErrInvalidSession, that.Status)
	}

	return game, nil
}

func (that *Session) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}
