package tictactoe

import (
	"errors"
	"fmt"
)

var ErrInvalidGrid = errors.New("grid is not reachable by legal play")

// Restore - rebuilds a game from a grid snapshot, deriving the move count and outcome.
// X always moves first, so X has as many marks as O or one more; a won grid must
// have exactly one winner whose mark count matches having moved last.
func Restore(grid Grid) (Game, error) {
	var xcount, ocount int
	for index, cell := range grid {
		mark, ok := cell.Mark()
		switch {
		case !ok:
		case mark == MarkX:
			xcount++
		case mark == MarkO:
			ocount++
		default:
			return Game{}, fmt.Errorf("%w: cell %d holds unknown mark %d", ErrInvalidGrid, index, mark)
		}
	}

	if xcount != ocount && xcount != ocount+1 {
		return Game{}, fmt.Errorf("%w: %d X marks and %d O marks", ErrInvalidGrid, xcount, ocount)
	}

	xWon, oWon := grid.hasLine(MarkX), grid.hasLine(MarkO)
	game := Game{grid: grid, moves: xcount + ocount}

	switch {
	case xWon && oWon:
		return Game{}, fmt.Errorf("%w: both marks completed a line", ErrInvalidGrid)
	case xWon && xcount != ocount+1:
		return Game{}, fmt.Errorf("%w: X won but O moved last", ErrInvalidGrid)
	case oWon && xcount != ocount:
		return Game{}, fmt.Errorf("%w: O won but X moved last", ErrInvalidGrid)
	case xWon:
		game.outcome = Won(MarkX)
	case oWon:
		game.outcome = Won(MarkO)
	case game.moves == GridSize:
		game.outcome = Drawn()
	case xcount == ocount:
		game.outcome = InProgress(MarkX)
	default:
		game.outcome = InProgress(MarkO)
	}

	return game, nil
}

func (that *Grid) hasLine(mark Mark) bool {
	for _, line := range AllLines() {
		if that.complete(line, mark) {
			return true
		}
	}
	return false
}
