package tictactoe

// Mark identifies a player. The zero value is not a mark.
type Mark uint8

const (
	MarkX Mark = iota + 1
	MarkO
)

// Next - returns the mark that plays after this one.
func (that Mark) Next() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

func (that Mark) Valid() bool {
	return that == MarkX || that == MarkO
}

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "?"
	}
}

// Cell is one grid position: Empty or occupied by a mark.
type Cell uint8

const Empty Cell = 0

// Occupied - returns a cell holding the given mark.
func Occupied(mark Mark) Cell {
	return Cell(mark)
}

func (that Cell) IsEmpty() bool {
	return that == Empty
}

// Mark - returns the mark held by the cell and false for an empty cell.
func (that Cell) Mark() (Mark, bool) {
	if that == Empty {
		return 0, false
	}
	return Mark(that), true
}

func (that Cell) String() string {
	if that == Empty {
		return " "
	}
	return Mark(that).String()
}
