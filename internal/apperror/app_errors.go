package apperror

import "errors"

var (
	ErrOutOfRange   = errors.New("cell index is out of range")
	ErrGameOver     = errors.New("game is already over")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidSize  = errors.New("unsupported board size")
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidTurn  = errors.New("next player must be X or O")

	ErrStaleState    = errors.New("game state is stale")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")

	ErrUnknownCommand = errors.New("unknown command")
)
