package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type sessionRepo interface {
	Save(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
}

// SessionManager owns the game being played. All reads and moves go through it,
// one at a time, in the order they are submitted.
type SessionManager struct {
	logger *slog.Logger
	repo   sessionRepo
	id     string

	mu   sync.Mutex
	game tictactoe.Game
}

// NewSessionManager - creates a manager holding a new game. An empty id gets a random one.
func NewSessionManager(logger *slog.Logger, repo sessionRepo, id string) *SessionManager {
	if id == "" {
		id = uuid.NewString()
	}

	return &SessionManager{
		logger: logger.With("component", "session", "sessionID", id),
		repo:   repo,
		id:     id,
		game:   tictactoe.New(),
	}
}

func (that *SessionManager) ID() string {
	return that.id
}

// Game - returns the current game.
func (that *SessionManager) Game() tictactoe.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game
}

// Resume - continues the stored game of this session. A missing or unusable
// snapshot starts a new game instead.
func (that *SessionManager) Resume(ctx context.Context) (tictactoe.Game, error) {
	log := that.logger.With("method", "Resume")

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.repo.GetByID(ctx, that.id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		log.Info("no stored session, starting a new game")
		that.game = tictactoe.New()

		return that.game, nil
	}

	if err != nil {
		return that.game, fmt.Errorf("failed to get session: %w", err)
	}

	game, err := session.Game()
	if err != nil {
		log.Warn("stored session is unusable, starting a new game", "error", err)
		that.game = tictactoe.New()

		return that.game, nil
	}

	log.Info("resumed stored game", "moves", game.Moves(), "outcome", game.Outcome().String(), "finished", session.IsFinished())
	that.game = game

	return that.game, nil
}

// Play - places the mark whose turn it is at index.
func (that *SessionManager) Play(ctx context.Context, index int) (tictactoe.Game, error) {
	return that.apply(ctx, "Play", nil, index)
}

// PlayAs - places mark at index; it must be mark's turn.
func (that *SessionManager) PlayAs(ctx context.Context, mark tictactoe.Mark, index int) (tictactoe.Game, error) {
	return that.apply(ctx, "PlayAs", &mark, index)
}

// apply - a rejected move returns the unchanged game with the move error. An accepted
// move stands even if saving it fails.
func (that *SessionManager) apply(ctx context.Context, method string, mark *tictactoe.Mark, index int) (tictactoe.Game, error) {
	log := that.logger.With("method", method, "index", index)

	that.mu.Lock()
	defer that.mu.Unlock()

	next, err := that.game.ApplyMove(mark, index)
	if err != nil {
		log.Debug("move rejected", "error", err)

		return that.game, fmt.Errorf("failed to make move: %w", err)
	}

	that.game = next

	outcome := next.Outcome()
	log.Debug("move accepted", "moves", next.Moves(), "outcome", outcome.String())

	if outcome.IsFinished() {
		log.Info("game finished", "outcome", outcome.String(), "moves", next.Moves())
	}

	if err = that.save(ctx); err != nil {
		return that.game, err
	}

	return that.game, nil
}

// Restart - discards the current game and starts a new one.
func (that *SessionManager) Restart(ctx context.Context) (tictactoe.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.logger.Info("game restarted", "previousMoves", that.game.Moves())
	that.game = tictactoe.New()

	if err := that.save(ctx); err != nil {
		return that.game, err
	}

	return that.game, nil
}

// Close - stores the current game one last time.
func (that *SessionManager) Close(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.save(ctx)
}

// save - must be called with mu held.
func (that *SessionManager) save(ctx context.Context) error {
	if err := that.repo.Save(ctx, entity.NewSession(that.id, that.game)); err != nil {
		that.logger.Error("failed to save session", "error", err)

		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
