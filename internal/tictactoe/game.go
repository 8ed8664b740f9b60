// Package tictactoe implements the rules of the 3x3 game: the grid, whose turn it is,
// move validation and win/draw detection. Every operation is pure; a Game is a value
// and a move produces a new one.
package tictactoe

import (
	"errors"
	"fmt"
)

const (
	Side     = 3
	GridSize = Side * Side
)

var (
	ErrInvalidIndex = errors.New("invalid cell index")
	ErrGameFinished = errors.New("game is already finished")
	ErrWrongTurn    = errors.New("it's not your turn")
	ErrTileTaken    = errors.New("cell is already occupied")
)

// IsMoveError - reports whether err is one of the rejections returned by ApplyMove.
func IsMoveError(err error) bool {
	return errors.Is(err, ErrInvalidIndex) ||
		errors.Is(err, ErrGameFinished) ||
		errors.Is(err, ErrWrongTurn) ||
		errors.Is(err, ErrTileTaken)
}

// Grid holds the cells row-major: index = y*Side + x.
type Grid [GridSize]Cell

// At - returns the cell at column x, row y.
func (that Grid) At(x, y int) Cell {
	return that[y*Side+x]
}

type Game struct {
	outcome Outcome
	grid    Grid
	moves   int
}

// New - returns an empty game with X to move.
func New() Game {
	return Game{outcome: InProgress(MarkX)}
}

func (that Game) Outcome() Outcome {
	return that.outcome
}

func (that Game) Grid() Grid {
	return that.grid
}

// Moves - returns the number of accepted moves.
func (that Game) Moves() int {
	return that.moves
}

// Play - places the mark whose turn it is at index.
func (that Game) Play(index int) (Game, error) {
	return that.ApplyMove(nil, index)
}

// PlayAs - places mark at index, rejecting it with ErrWrongTurn when it is not mark's turn.
func (that Game) PlayAs(mark Mark, index int) (Game, error) {
	return that.ApplyMove(&mark, index)
}

// ApplyMove - validates and applies a move. A nil mark means "whoever's turn it is".
// Rejections are checked in order: index range, finished game, turn, occupied cell.
// On rejection the receiver is returned unchanged alongside the error.
func (that Game) ApplyMove(mark *Mark, index int) (Game, error) {
	if index < 0 || index >= GridSize {
		return that, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	turn, ok := that.outcome.Turn()
	if !ok {
		return that, ErrGameFinished
	}

	if mark != nil && *mark != turn {
		return that, fmt.Errorf("%w: %s to move", ErrWrongTurn, turn)
	}

	if !that.grid[index].IsEmpty() {
		return that, fmt.Errorf("%w: %d", ErrTileTaken, index)
	}

	next := that
	next.grid[index] = Occupied(turn)
	next.moves++
	next.outcome = next.resolve(index, turn)

	return next, nil
}

// resolve - computes the outcome after mark was placed at index.
// Only the lines through index can have been completed by the move.
func (that *Game) resolve(index int, mark Mark) Outcome {
	for _, line := range Lines(index) {
		if that.grid.complete(line, mark) {
			return Won(mark)
		}
	}

	if that.moves == GridSize {
		return Drawn()
	}

	return InProgress(mark.Next())
}
