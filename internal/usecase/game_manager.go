package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Snapshot - one entry of the game history. Move is the number of marks placed to reach it,
// Version counts every change of the session and never repeats.
type Snapshot struct {
	Move    int              `json:"move"`
	Version uint64           `json:"version"`
	State   entity.GameState `json:"state"`
	Status  entity.Status    `json:"status"`
}

// GameManager keeps the history of a single local game. The rules live in the tictactoe
// package, the manager only decides which snapshot is current.
type GameManager struct {
	logger *slog.Logger
	size   int

	mu      sync.Mutex
	history []entity.GameState
	cursor  int
	version uint64
}

func NewGameManager(logger *slog.Logger, size int) (*GameManager, error) {
	state, err := tictactoe.NewGameOfSize(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &GameManager{
		logger:  logger.With("component", "game_manager"),
		size:    size,
		history: []entity.GameState{state},
	}, nil
}

func (that *GameManager) Size() int {
	return that.size
}

// Current - the snapshot under the cursor.
func (that *GameManager) Current() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot(that.cursor)
}

// MakeTurn - applies a move to the current snapshot. Any redo tail is discarded.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.makeTurn(ctx, cell)
}

// MakeTurnAt - applies a move only when version still names the current snapshot.
func (that *GameManager) MakeTurnAt(ctx context.Context, version uint64, cell int) (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if version != that.version {
		return that.snapshot(that.cursor), fmt.Errorf("%w: version %d, current %d", apperror.ErrStaleState, version, that.version)
	}

	return that.makeTurn(ctx, cell)
}

func (that *GameManager) makeTurn(ctx context.Context, cell int) (Snapshot, error) {
	log := that.logger.With("method", "MakeTurn", "cell", cell)

	if err := ctx.Err(); err != nil {
		return that.snapshot(that.cursor), fmt.Errorf("failed make turn: %w", err)
	}

	next, err := tictactoe.ApplyMove(that.history[that.cursor], cell)
	if err != nil {
		log.Debug("move rejected", "error", err)
		return that.snapshot(that.cursor), fmt.Errorf("failed make turn: %w", err)
	}

	that.history = append(that.history[:that.cursor+1], next)
	that.cursor++
	that.version++

	current := that.snapshot(that.cursor)
	if current.Status.IsFinished() {
		log.Info("game finished", "status", current.Status.String(), "moves", current.Move)
	}

	return current, nil
}

func (that *GameManager) Undo() (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.cursor == 0 {
		return that.snapshot(that.cursor), apperror.ErrNothingToUndo
	}

	that.cursor--
	that.version++

	return that.snapshot(that.cursor), nil
}

func (that *GameManager) Redo() (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.cursor == len(that.history)-1 {
		return that.snapshot(that.cursor), apperror.ErrNothingToRedo
	}

	that.cursor++
	that.version++

	return that.snapshot(that.cursor), nil
}

// JumpTo - moves the cursor to a recorded move. Later snapshots stay available for Redo
// until the next MakeTurn.
func (that *GameManager) JumpTo(move int) (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if move < 0 || move >= len(that.history) {
		return that.snapshot(that.cursor), fmt.Errorf("%w: move %d", apperror.ErrOutOfRange, move)
	}

	that.cursor = move
	that.version++

	return that.snapshot(that.cursor), nil
}

// Restart - drops the history and starts a new game of the same size.
func (that *GameManager) Restart(ctx context.Context) (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return that.snapshot(that.cursor), fmt.Errorf("failed restart game: %w", err)
	}

	state, err := tictactoe.NewGameOfSize(that.size)
	if err != nil {
		return that.snapshot(that.cursor), fmt.Errorf("failed to create game: %w", err)
	}

	that.history = []entity.GameState{state}
	that.cursor = 0
	that.version++

	that.logger.Debug("game restarted", "size", that.size)

	return that.snapshot(that.cursor), nil
}

// History - snapshots from the first move up to the cursor.
func (that *GameManager) History() []Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	snapshots := make([]Snapshot, 0, that.cursor+1)
	for move := 0; move <= that.cursor; move++ {
		snapshots = append(snapshots, that.snapshot(move))
	}

	return snapshots
}

func (that *GameManager) snapshot(move int) Snapshot {
	state := that.history[move]

	return Snapshot{
		Move:    move,
		Version: that.version,
		State:   state,
		Status:  tictactoe.Status(state.Board),
	}
}
