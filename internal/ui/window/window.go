//go:build ebiten

package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/ui"
)

var (
	backgroundColor = color.RGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff}
	mainColor       = color.RGBA{R: 50, G: 84, B: 137, A: 255}
	winColor        = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const (
	borderWidth = 7
	markWidth   = 8
)

var digitKeys = [tictactoe.GridSize]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a ui.Board to the ebiten.Game interface.
type Game struct {
	ctx    context.Context
	logger *slog.Logger
	board  ui.Board
	layout ui.Layout

	restart ebiten.Key
	quit    ebiten.Key
}

// Run - opens the window and plays until it is closed, the quit key is pressed or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, board ui.Board, opts Options) error {
	restartName, quitName := opts.keyNames()

	restart, err := parseKey(restartName)
	if err != nil {
		return fmt.Errorf("invalid restart key: %w", err)
	}

	quit, err := parseKey(quitName)
	if err != nil {
		return fmt.Errorf("invalid quit key: %w", err)
	}

	game := &Game{
		ctx:     ctx,
		logger:  logger.With("component", "window"),
		board:   board,
		layout:  opts.Layout,
		restart: restart,
		quit:    quit,
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(opts.Layout.ScreenWidth), int(opts.Layout.ScreenHeight))

	if err = ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window failed: %w", err)
	}

	return nil
}

func parseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}

	return key, nil
}

// Update handles input once per tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(g.quit) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(g.restart) {
		if _, err := g.board.Restart(g.ctx); err != nil {
			g.logger.Error("failed to restart", "error", err)
		}
		return nil
	}

	for index, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.play(index)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if index, ok := g.layout.CellAt(float64(x), float64(y)); ok {
			g.play(index)
		}
	}

	return nil
}

func (g *Game) play(index int) {
	if _, err := g.board.Play(g.ctx, index); err != nil && !tictactoe.IsMoveError(err) {
		g.logger.Error("failed to play", "index", index, "error", err)
	}
}

// Draw renders the board, the marks and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	game := g.board.Game()
	screen.Fill(backgroundColor)

	ox, oy := g.layout.Origin()
	size := g.layout.BoardSize()
	spacing := g.layout.Spacing

	vector.StrokeRect(screen,
		float32(ox-spacing), float32(oy-spacing),
		float32(size+2*spacing), float32(size+2*spacing),
		borderWidth, mainColor, true)

	winning := make(map[int]bool, tictactoe.Side)
	if line, ok := tictactoe.WinningLine(game); ok {
		for _, index := range line {
			winning[index] = true
		}
	}

	for index, cell := range game.Grid() {
		mark, ok := cell.Mark()
		if !ok {
			continue
		}

		clr := mainColor
		if winning[index] {
			clr = winColor
		}

		x, y := g.layout.CellOrigin(index)
		g.drawMark(screen, mark, float32(x), float32(y), clr)
	}

	text.Draw(screen, ui.StatusText(game.Outcome()), basicfont.Face7x13,
		int(ox-spacing), int(oy-1.5*spacing), mainColor)
}

func (g *Game) drawMark(screen *ebiten.Image, mark tictactoe.Mark, x, y float32, clr color.Color) {
	size := float32(g.layout.MarkSize)
	pad := float32(markWidth)

	switch mark {
	case tictactoe.MarkX:
		vector.StrokeLine(screen, x+pad, y+pad, x+size-pad, y+size-pad, markWidth, clr, true)
		vector.StrokeLine(screen, x+size-pad, y+pad, x+pad, y+size-pad, markWidth, clr, true)
	case tictactoe.MarkO:
		vector.StrokeCircle(screen, x+size/2, y+size/2, size/2-pad, markWidth, clr, true)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	return int(g.layout.ScreenWidth), int(g.layout.ScreenHeight)
}
