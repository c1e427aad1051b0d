package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMethods(t *testing.T) {
	t.Run("InProgress is not finished", func(t *testing.T) {
		// Given: an in-progress status
		status := InProgress()

		// Then: it is neither finished nor won
		assert.True(t, status.IsInProgress())
		assert.False(t, status.IsFinished())
		assert.False(t, status.HasWinner())
		assert.Equal(t, "in_progress", status.String())
	})

	t.Run("Win is finished and carries the winner", func(t *testing.T) {
		// Given: a win for player O
		status := Win(PlayerO)

		// Then: it is finished with O as the winner
		assert.True(t, status.IsFinished())
		assert.True(t, status.HasWinner())
		assert.False(t, status.IsDraw())
		assert.Equal(t, PlayerO, status.Winner)
		assert.Equal(t, "win(O)", status.String())
	})

	t.Run("Draw is finished without a winner", func(t *testing.T) {
		// Given: a draw
		status := Draw()

		// Then: it is finished and has no winner
		assert.True(t, status.IsFinished())
		assert.True(t, status.IsDraw())
		assert.False(t, status.HasWinner())
		assert.Equal(t, EmptyCell, status.Winner)
	})
}

func TestCell_IsValid(t *testing.T) {
	assert.True(t, EmptyCell.IsValid())
	assert.True(t, PlayerX.IsValid())
	assert.True(t, PlayerO.IsValid())
	assert.False(t, Cell("Z").IsValid())

	assert.False(t, EmptyCell.IsPlayer())
	assert.True(t, PlayerX.IsPlayer())
}

func TestNewBoard(t *testing.T) {
	t.Run("Default board has nine empty cells", func(t *testing.T) {
		// When: a default board is created
		board, err := NewBoard(DefaultBoardSize)
		require.NoError(t, err)

		// Then: it holds 9 empty cells laid out 3×3
		assert.Equal(t, 3, board.Size())
		assert.Equal(t, 9, board.Len())
		assert.Equal(t, make([]Cell, 9), board.Cells())
		assert.False(t, board.IsFull())
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, board.EmptyCells())
	})

	t.Run("Larger board", func(t *testing.T) {
		// When: a 5×5 board is created
		board, err := NewBoard(5)
		require.NoError(t, err)

		// Then: it holds 25 cells
		assert.Equal(t, 25, board.Len())
	})

	t.Run("Error on unsupported size", func(t *testing.T) {
		for _, size := range []int{-1, 0, 1, 2, MaxBoardSize + 1} {
			// When: the size is outside the supported range
			_, err := NewBoard(size)

			// Then: ErrInvalidSize is returned
			assert.ErrorIs(t, err, apperror.ErrInvalidSize, "size %d", size)
		}
	})
}

func TestBoardFromCells(t *testing.T) {
	t.Run("Copies the input", func(t *testing.T) {
		// Given: a list of cells
		cells := []Cell{
			PlayerX, EmptyCell, EmptyCell,
			EmptyCell, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: a board is built from them and the input is modified afterwards
		board, err := BoardFromCells(cells)
		require.NoError(t, err)
		cells[0] = PlayerO

		// Then: the board is not affected
		assert.Equal(t, PlayerX, board.At(0))
		assert.Equal(t, PlayerO, board.At(4))
		assert.Equal(t, 3, board.Size())
	})

	t.Run("Error on non-square length", func(t *testing.T) {
		_, err := BoardFromCells(make([]Cell, 8))
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Error on too small square", func(t *testing.T) {
		_, err := BoardFromCells(make([]Cell, 4))
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Error on unknown mark", func(t *testing.T) {
		cells := make([]Cell, 9)
		cells[3] = "Z"

		_, err := BoardFromCells(cells)
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.Contains(t, err.Error(), "cell 3")
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Returns a new board and leaves the receiver untouched", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(DefaultBoardSize)
		require.NoError(t, err)

		// When: X is placed in the centre
		next, err := board.Place(4, PlayerX)
		require.NoError(t, err)

		// Then: only the new board holds the mark
		assert.Equal(t, PlayerX, next.At(4))
		assert.Equal(t, EmptyCell, board.At(4))
		assert.False(t, board.Equal(next))
	})

	t.Run("Error on out of range index", func(t *testing.T) {
		board, err := NewBoard(DefaultBoardSize)
		require.NoError(t, err)

		_, err = board.Place(9, PlayerX)
		assert.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Cells returns a copy", func(t *testing.T) {
		board, err := NewBoard(DefaultBoardSize)
		require.NoError(t, err)

		cells := board.Cells()
		cells[0] = PlayerX

		assert.Equal(t, EmptyCell, board.At(0))
	})

	t.Run("At returns EmptyCell out of range", func(t *testing.T) {
		board, err := NewBoard(DefaultBoardSize)
		require.NoError(t, err)

		assert.Equal(t, EmptyCell, board.At(-1))
		assert.Equal(t, EmptyCell, board.At(100))
	})
}

func TestBoard_IsFull(t *testing.T) {
	board, err := BoardFromCells([]Cell{
		PlayerX, PlayerO, PlayerX,
		PlayerO, PlayerX, PlayerO,
		PlayerO, PlayerX, PlayerO,
	})
	require.NoError(t, err)

	assert.True(t, board.IsFull())
	assert.Empty(t, board.EmptyCells())
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Encodes as a flat list of marks", func(t *testing.T) {
		board, err := BoardFromCells([]Cell{
			PlayerX, EmptyCell, EmptyCell,
			EmptyCell, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		})
		require.NoError(t, err)

		data, err := json.Marshal(GameState{Board: board, NextPlayer: PlayerX})
		require.NoError(t, err)

		assert.JSONEq(t, `{"board":["X","","","","O","","","",""],"next_player":"X"}`, string(data))
	})

	t.Run("Rejects a malformed board", func(t *testing.T) {
		var state GameState

		err := json.Unmarshal([]byte(`{"board":["X","O"],"next_player":"X"}`), &state)
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})
}
