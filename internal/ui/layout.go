package ui

import "github.com/rocketscienceinc/tictactoe/internal/tictactoe"

// Layout places the board centred on a screen: Side marks of MarkSize with
// Spacing between them.
type Layout struct {
	ScreenWidth  float64
	ScreenHeight float64
	MarkSize     float64
	Spacing      float64
}

func (that Layout) BoardSize() float64 {
	return that.MarkSize*tictactoe.Side + that.Spacing*(tictactoe.Side-1)
}

// Origin - returns the top-left corner of the board.
func (that Layout) Origin() (float64, float64) {
	size := that.BoardSize()
	return (that.ScreenWidth - size) / 2, (that.ScreenHeight - size) / 2
}

// CellAt - maps a pointer position to a grid index. Positions outside the board
// report false; the far edges belong to the last row and column.
func (that Layout) CellAt(px, py float64) (int, bool) {
	ox, oy := that.Origin()
	size := that.BoardSize()

	if px < ox || px > ox+size || py < oy || py > oy+size {
		return 0, false
	}

	cell := size / tictactoe.Side
	x := min(int((px-ox)/cell), tictactoe.Side-1)
	y := min(int((py-oy)/cell), tictactoe.Side-1)

	return y*tictactoe.Side + x, true
}

// CellOrigin - returns the top-left corner of the mark drawn at index.
func (that Layout) CellOrigin(index int) (float64, float64) {
	ox, oy := that.Origin()
	x, y := index%tictactoe.Side, index/tictactoe.Side
	step := that.MarkSize + that.Spacing

	return ox + float64(x)*step, oy + float64(y)*step
}
