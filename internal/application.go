package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe/internal/ui"
	"github.com/rocketscienceinc/tictactoe/internal/ui/terminal"
	"github.com/rocketscienceinc/tictactoe/internal/ui/window"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

const closeTimeout = 5 * time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sessionRepo, closeRepo, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("could not close session storage", "error", err)
		}
	}()

	manager := usecase.NewSessionManager(logger, sessionRepo, conf.Session.ID)
	if _, err = manager.Resume(ctx); err != nil {
		return fmt.Errorf("could not resume session: %w", err)
	}

	defer func() {
		// ctx may already be cancelled by a signal; the final save gets its own deadline
		closeCtx, closeCancel := context.WithTimeout(context.Background(), closeTimeout)
		defer closeCancel()

		if err := manager.Close(closeCtx); err != nil {
			log.Error("could not save session on exit", "error", err)
		}
	}()

	log.Info("Starting game", "ui", conf.UI, "storage", conf.Session.Storage, "sessionID", manager.ID())

	if err = runUI(ctx, logger, conf, manager); err != nil {
		return fmt.Errorf("user interface error: %w", err)
	}

	log.Info("Game closed")

	return nil
}

func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	switch conf.Session.Storage {
	case config.StorageMemory:
		return repository.NewMemorySessionRepository(), func() error { return nil }, nil

	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisSessionRepository(redisStorage.Connection, conf.Session.TTL), redisStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStorage, conf.Session.Storage)
	}
}

func runUI(ctx context.Context, logger *slog.Logger, conf *config.Config, board ui.Board) error {
	switch conf.UI {
	case config.UITerminal:
		restart, err := terminal.ParseBinding(conf.RestartKey)
		if err != nil {
			return fmt.Errorf("invalid restart key: %w", err)
		}

		quit, err := terminal.ParseBinding(conf.QuitKey)
		if err != nil {
			return fmt.Errorf("invalid quit key: %w", err)
		}

		return terminal.Run(ctx, logger, board, terminal.Keys{Restart: restart, Quit: quit})

	case config.UIWindow:
		return window.Run(ctx, logger, board, window.Options{
			Layout: ui.Layout{
				ScreenWidth:  float64(conf.Window.Width),
				ScreenHeight: float64(conf.Window.Height),
				MarkSize:     conf.Window.MarkSize,
				Spacing:      conf.Window.Spacing,
			},
			RestartKey: conf.RestartKey,
			QuitKey:    conf.QuitKey,
		})

	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownUI, conf.UI)
	}
}
