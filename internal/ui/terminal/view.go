// Package terminal plays the game in a terminal with tcell: mouse clicks or the
// digits 1-9 place marks.
package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/ui"
)

const (
	cellWidth  = 5
	cellHeight = 3

	boardWidth  = cellWidth*tictactoe.Side + tictactoe.Side - 1
	boardHeight = cellHeight*tictactoe.Side + tictactoe.Side - 1
)

var (
	styleGrid    = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleMark    = tcell.StyleDefault.Bold(true)
	styleHint    = tcell.StyleDefault.Dim(true)
	styleWinning = tcell.StyleDefault.Bold(true).Reverse(true)
	styleStatus  = tcell.StyleDefault.Bold(true)
)

type View struct {
	logger *slog.Logger
	screen tcell.Screen
	board  ui.Board
	keys   Keys

	pressed bool
}

func NewView(logger *slog.Logger, screen tcell.Screen, board ui.Board, keys Keys) *View {
	return &View{
		logger: logger.With("component", "terminal"),
		screen: screen,
		board:  board,
		keys:   keys,
	}
}

// Run - opens the terminal and plays until the quit key is pressed or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, board ui.Board, keys Keys) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()

	return NewView(logger, screen, board, keys).Loop(ctx)
}

// Loop - draws and handles events until quit or ctx cancellation.
func (that *View) Loop(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	that.Draw()
	for {
		ev := that.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		if that.HandleEvent(ctx, ev) {
			return nil
		}

		that.Draw()
	}
}

// HandleEvent - applies one input event and reports whether the user asked to quit.
func (that *View) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		that.screen.Sync()

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || that.keys.Quit.Matches(ev) {
			return true
		}

		if that.keys.Restart.Matches(ev) {
			if _, err := that.board.Restart(ctx); err != nil {
				that.logger.Error("failed to restart", "error", err)
			}
			return false
		}

		if ev.Key() == tcell.KeyRune {
			if index, ok := ui.KeyIndex(ev.Rune()); ok {
				that.play(ctx, index)
			}
		}

	case *tcell.EventMouse:
		// act on the press only, not while the button is held or dragged
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !that.pressed {
			if index, ok := that.CellAt(ev.Position()); ok {
				that.play(ctx, index)
			}
		}
		that.pressed = pressed
	}

	return false
}

func (that *View) play(ctx context.Context, index int) {
	if _, err := that.board.Play(ctx, index); err != nil && !tictactoe.IsMoveError(err) {
		that.logger.Error("failed to play", "index", index, "error", err)
	}
}

func (that *View) origin() (int, int) {
	width, height := that.screen.Size()
	return (width - boardWidth) / 2, (height-boardHeight)/2 + 1
}

// CellAt - maps a terminal position to a grid index. Grid lines and positions
// outside the board are not cells.
func (that *View) CellAt(x, y int) (int, bool) {
	left, top := that.origin()
	dx, dy := x-left, y-top

	if dx < 0 || dy < 0 || dx >= boardWidth || dy >= boardHeight {
		return 0, false
	}

	if dx%(cellWidth+1) == cellWidth || dy%(cellHeight+1) == cellHeight {
		return 0, false
	}

	return (dy/(cellHeight+1))*tictactoe.Side + dx/(cellWidth+1), true
}

func (that *View) Draw() {
	game := that.board.Game()
	left, top := that.origin()

	that.screen.Clear()

	that.drawText(left, top-2, ui.StatusText(game.Outcome()), styleStatus)
	that.drawGrid(left, top)

	winning := make(map[int]bool, tictactoe.Side)
	if line, ok := tictactoe.WinningLine(game); ok {
		for _, index := range line {
			winning[index] = true
		}
	}

	for index, cell := range game.Grid() {
		x := left + (index%tictactoe.Side)*(cellWidth+1)
		y := top + (index/tictactoe.Side)*(cellHeight+1)

		if winning[index] {
			that.fill(x, y, styleWinning)
		}

		mark, ok := cell.Mark()
		switch {
		case ok && winning[index]:
			that.screen.SetContent(x+cellWidth/2, y+cellHeight/2, []rune(mark.String())[0], nil, styleWinning)
		case ok:
			that.screen.SetContent(x+cellWidth/2, y+cellHeight/2, []rune(mark.String())[0], nil, styleMark)
		case !game.Outcome().IsFinished():
			that.screen.SetContent(x+cellWidth/2, y+cellHeight/2, rune('1'+index), nil, styleHint)
		}
	}

	help := fmt.Sprintf("1-9 or click: play  %s: restart  %s: quit", that.keys.Restart, that.keys.Quit)
	width, _ := that.screen.Size()
	that.drawText((width-len(help))/2, top+boardHeight+1, help, styleHint)

	that.screen.Show()
}

func (that *View) drawGrid(left, top int) {
	for dy := 0; dy < boardHeight; dy++ {
		for dx := 0; dx < boardWidth; dx++ {
			vertical := dx%(cellWidth+1) == cellWidth
			horizontal := dy%(cellHeight+1) == cellHeight

			switch {
			case vertical && horizontal:
				that.screen.SetContent(left+dx, top+dy, tcell.RunePlus, nil, styleGrid)
			case vertical:
				that.screen.SetContent(left+dx, top+dy, tcell.RuneVLine, nil, styleGrid)
			case horizontal:
				that.screen.SetContent(left+dx, top+dy, tcell.RuneHLine, nil, styleGrid)
			}
		}
	}
}

func (that *View) fill(x, y int, style tcell.Style) {
	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			that.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}

func (that *View) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		that.screen.SetContent(x+i, y, r, nil, style)
	}
}
