//go:build !ebiten

package window

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_WithoutEbitenTag(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	err := Run(context.Background(), logger, nil, Options{})

	require.ErrorIs(t, err, ErrNotBuilt)
}
