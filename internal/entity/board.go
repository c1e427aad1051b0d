package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	DefaultBoardSize = 3
	MinBoardSize     = 3
	MaxBoardSize     = 10
)

// Board is a square grid stored row-major: index = row*size + col.
// The cells slice is never handed out or written after construction, so a Board can be
// shared freely between snapshots.
type Board struct {
	size  int
	cells []Cell
}

func IsSupportedSize(size int) bool {
	return size >= MinBoardSize && size <= MaxBoardSize
}

// NewBoard - returns an empty board of size×size cells.
func NewBoard(size int) (Board, error) {
	if !IsSupportedSize(size) {
		return Board{}, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, size)
	}

	return Board{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

// BoardFromCells - builds a board from a row-major list of cells. The length must be a
// supported square.
func BoardFromCells(cells []Cell) (Board, error) {
	size := squareRoot(len(cells))
	if size*size != len(cells) || !IsSupportedSize(size) {
		return Board{}, fmt.Errorf("%w: %d cells", apperror.ErrInvalidBoard, len(cells))
	}

	for i, cell := range cells {
		if !cell.IsValid() {
			return Board{}, fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidBoard, i, cell)
		}
	}

	board := Board{
		size:  size,
		cells: make([]Cell, len(cells)),
	}
	copy(board.cells, cells)

	return board, nil
}

func (that Board) Size() int {
	return that.size
}

func (that Board) Len() int {
	return len(that.cells)
}

func (that Board) InRange(index int) bool {
	return index >= 0 && index < len(that.cells)
}

// At - returns the cell at index, or EmptyCell when index is out of range.
func (that Board) At(index int) Cell {
	if !that.InRange(index) {
		return EmptyCell
	}

	return that.cells[index]
}

// Cells - returns a copy of the cells.
func (that Board) Cells() []Cell {
	cells := make([]Cell, len(that.cells))
	copy(cells, that.cells)

	return cells
}

// Place - returns a new board with the mark set at index. The receiver is left untouched.
func (that Board) Place(index int, mark Cell) (Board, error) {
	if !that.InRange(index) {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, index)
	}

	next := Board{
		size:  that.size,
		cells: that.Cells(),
	}
	next.cells[index] = mark

	return next, nil
}

func (that Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells - indices of the unmarked cells in ascending order.
func (that Board) EmptyCells() []int {
	empty := make([]int, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == EmptyCell {
			empty = append(empty, i)
		}
	}

	return empty
}

func (that Board) Equal(other Board) bool {
	if that.size != other.size || len(that.cells) != len(other.cells) {
		return false
	}

	for i := range that.cells {
		if that.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

func (that Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.cells)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells []Cell
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("could not unmarshal board: %w", err)
	}

	board, err := BoardFromCells(cells)
	if err != nil {
		return err
	}

	*that = board

	return nil
}

func squareRoot(n int) int {
	root := 0
	for (root+1)*(root+1) <= n {
		root++
	}

	return root
}
