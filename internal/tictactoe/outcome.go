package tictactoe

type outcomeKind uint8

const (
	kindInProgress outcomeKind = iota + 1
	kindWon
	kindDrawn
)

// Outcome is the game status: in progress with the mark to move, won by a mark, or drawn.
// The zero value is not a valid outcome and is never produced by the engine.
type Outcome struct {
	kind outcomeKind
	mark Mark
}

func InProgress(next Mark) Outcome {
	return Outcome{kind: kindInProgress, mark: next}
}

func Won(winner Mark) Outcome {
	return Outcome{kind: kindWon, mark: winner}
}

func Drawn() Outcome {
	return Outcome{kind: kindDrawn}
}

// IsFinished - reports whether the outcome is terminal.
func (that Outcome) IsFinished() bool {
	return that.kind != kindInProgress
}

// Turn - returns the mark to move. ok is false once the game is finished.
func (that Outcome) Turn() (Mark, bool) {
	if that.kind != kindInProgress {
		return 0, false
	}
	return that.mark, true
}

// Winner - returns the mark that completed a line.
func (that Outcome) Winner() (Mark, bool) {
	if that.kind != kindWon {
		return 0, false
	}
	return that.mark, true
}

func (that Outcome) IsDraw() bool {
	return that.kind == kindDrawn
}

func (that Outcome) String() string {
	switch that.kind {
	case kindInProgress:
		return "in progress (" + that.mark.String() + " to move)"
	case kindWon:
		return that.mark.String() + " won"
	case kindDrawn:
		return "drawn"
	default:
		return "invalid"
	}
}
