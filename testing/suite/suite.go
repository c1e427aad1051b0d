package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Manager *usecase.GameManager
}

// New - returns a context bound to the test and a suite with a fresh 3×3 game.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	return NewWithSize(t, entity.DefaultBoardSize)
}

func NewWithSize(t *testing.T, size int) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	manager, err := usecase.NewGameManager(logger, size)
	if err != nil {
		t.Fatalf("could not create game manager: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Manager: manager,
	}
}

// Play - applies the moves in order and fails the test on the first rejected one.
func (that *Suite) Play(ctx context.Context, cells ...int) usecase.Snapshot {
	that.Helper()

	snapshot := that.Manager.Current()
	for _, cell := range cells {
		var err error
		if snapshot, err = that.Manager.MakeTurn(ctx, cell); err != nil {
			that.Fatalf("move on cell %d failed: %v", cell, err)
		}
	}

	return snapshot
}
