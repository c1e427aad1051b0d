package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// linesBySize is filled once and only read afterwards.
var linesBySize = buildLines()

// NewGame - returns the initial state of a 3×3 game, X moves first.
func NewGame() entity.GameState {
	state, err := NewGameOfSize(entity.DefaultBoardSize)
	if err != nil {
		panic(fmt.Errorf("default board size rejected: %w", err))
	}

	return state
}

func NewGameOfSize(size int) (entity.GameState, error) {
	board, err := entity.NewBoard(size)
	if err != nil {
		return entity.GameState{}, fmt.Errorf("could not create board: %w", err)
	}

	return entity.GameState{
		Board:      board,
		NextPlayer: entity.PlayerX,
	}, nil
}

// ApplyMove - places the next player's mark at cell and returns the resulting state.
// The given state is never modified, also when the move is rejected.
func ApplyMove(state entity.GameState, cell int) (entity.GameState, error) {
	if err := validateMove(state, cell); err != nil {
		return state, err
	}

	board, err := state.Board.Place(cell, state.NextPlayer)
	if err != nil {
		return state, fmt.Errorf("could not place mark: %w", err)
	}

	return entity.GameState{
		Board:      board,
		NextPlayer: toggleMark(state.NextPlayer),
	}, nil
}

// validateMove - checks range, terminal status and occupancy, in that order. A state whose
// next player is not a mark is rejected before any of them.
func validateMove(state entity.GameState, cell int) error {
	if !state.NextPlayer.IsPlayer() {
		return fmt.Errorf("%w: got %q", apperror.ErrInvalidTurn, state.NextPlayer)
	}

	if !state.Board.InRange(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, cell)
	}

	if status := Status(state.Board); status.IsFinished() {
		return fmt.Errorf("%w: %s", apperror.ErrGameOver, status)
	}

	if state.Board.At(cell) != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// Status - classifies the board. The first winning line in Lines order decides the winner.
func Status(board entity.Board) entity.Status {
	if _, winner, ok := findWinningLine(board); ok {
		return entity.Win(winner)
	}

	// the game continues until all the cells are marked
	if board.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}

// WinningLine - returns the cell indices of the line that decided the game.
func WinningLine(board entity.Board) ([]int, bool) {
	line, _, ok := findWinningLine(board)
	if !ok {
		return nil, false
	}

	return append([]int(nil), line...), true
}

// Lines - winning lines for a size×size board: rows, columns, main diagonal, anti-diagonal.
// Returns nil for unsupported sizes. The result is shared and must not be modified.
func Lines(size int) [][]int {
	if !entity.IsSupportedSize(size) {
		return nil
	}

	return linesBySize[size]
}

func findWinningLine(board entity.Board) ([]int, entity.Cell, bool) {
	for _, line := range Lines(board.Size()) {
		first := board.At(line[0])
		if first == entity.EmptyCell {
			continue
		}

		won := true
		for _, cell := range line[1:] {
			if board.At(cell) != first {
				won = false
				break
			}
		}

		if won {
			return line, first, true
		}
	}

	return nil, entity.EmptyCell, false
}

func toggleMark(currentMark entity.Cell) entity.Cell {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

func buildLines() [][][]int {
	lines := make([][][]int, entity.MaxBoardSize+1)
	for size := entity.MinBoardSize; size <= entity.MaxBoardSize; size++ {
		lines[size] = linesFor(size)
	}

	return lines
}

func linesFor(size int) [][]int {
	lines := make([][]int, 0, 2*size+2)

	for row := 0; row < size; row++ {
		line := make([]int, size)
		for col := range line {
			line[col] = row*size + col
		}
		lines = append(lines, line)
	}

	for col := 0; col < size; col++ {
		line := make([]int, size)
		for row := range line {
			line[row] = row*size + col
		}
		lines = append(lines, line)
	}

	diagonal := make([]int, size)
	antiDiagonal := make([]int, size)
	for i := 0; i < size; i++ {
		diagonal[i] = i*size + i
		antiDiagonal[i] = i*size + (size - 1 - i)
	}

	return append(lines, diagonal, antiDiagonal)
}
