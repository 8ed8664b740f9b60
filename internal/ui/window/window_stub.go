//go:build !ebiten

package window

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/ui"
)

// Run - always fails in builds without the ebiten tag.
func Run(context.Context, *slog.Logger, ui.Board, Options) error {
	return ErrNotBuilt
}
