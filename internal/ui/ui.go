// Package ui holds what every front end shares: the status line, the mapping
// between screen positions and grid indices, and keyboard play.
package ui

import (
	"context"

	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

// Board is what a front end drives. Move errors returned by Play are expected
// and must be ignored by the caller.
type Board interface {
	Game() tictactoe.Game
	Play(ctx context.Context, index int) (tictactoe.Game, error)
	Restart(ctx context.Context) (tictactoe.Game, error)
}

// StatusText - renders the outcome for humans.
func StatusText(outcome tictactoe.Outcome) string {
	if turn, ok := outcome.Turn(); ok {
		return turn.String() + "'s turn"
	}

	if winner, ok := outcome.Winner(); ok {
		return winner.String() + " wins!"
	}

	return "Draw"
}

// KeyIndex - maps the digits 1-9 to the cells in reading order.
func KeyIndex(r rune) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}
