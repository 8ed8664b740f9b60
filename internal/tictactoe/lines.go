package tictactoe

// Line is a set of Side cells which, uniformly marked, wins the game.
type Line [Side]int

func row(y int) Line {
	var line Line
	for i := range line {
		line[i] = y*Side + i
	}
	return line
}

func column(x int) Line {
	var line Line
	for i := range line {
		line[i] = x + i*Side
	}
	return line
}

func diagonal() Line {
	var line Line
	for i := range line {
		line[i] = i * (Side + 1)
	}
	return line
}

func antiDiagonal() Line {
	var line Line
	for i := range line {
		line[i] = (i + 1) * (Side - 1)
	}
	return line
}

// Lines - returns the lines passing through the cell at index: its row and column,
// plus the diagonals it lies on. Corners get 3, the center 4, edges 2.
// An index outside the grid has no lines.
func Lines(index int) []Line {
	if index < 0 || index >= GridSize {
		return nil
	}

	x, y := index%Side, index/Side
	lines := make([]Line, 0, 4)
	lines = append(lines, row(y), column(x))

	if x == y {
		lines = append(lines, diagonal())
	}
	if x+y == Side-1 {
		lines = append(lines, antiDiagonal())
	}

	return lines
}

// AllLines - returns every line of the grid: rows, columns, then both diagonals.
func AllLines() []Line {
	lines := make([]Line, 0, 2*Side+2)
	for i := 0; i < Side; i++ {
		lines = append(lines, row(i))
	}
	for i := 0; i < Side; i++ {
		lines = append(lines, column(i))
	}
	return append(lines, diagonal(), antiDiagonal())
}

func (that *Grid) complete(line Line, mark Mark) bool {
	for _, index := range line {
		if that[index] != Occupied(mark) {
			return false
		}
	}
	return true
}

// WinningLine - returns a completed line of a won game.
func WinningLine(game Game) (Line, bool) {
	winner, ok := game.outcome.Winner()
	if !ok {
		return Line{}, false
	}

	for _, line := range AllLines() {
		if game.grid.complete(line, winner) {
			return line, true
		}
	}

	return Line{}, false
}
