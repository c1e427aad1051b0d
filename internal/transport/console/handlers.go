package console

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const helpText = `commands:
  <cell> | move <cell>   mark a cell with the current player
  undo | redo            step back or forward through the moves
  jump <move>            go back to a numbered move (see history)
  history                list the moves played so far
  board | status         show the board or just the status line
  new                    start over with an empty board
  quit                   leave the game
`

func (that *Server) handleMove(ctx context.Context, cmd *Command, out io.Writer) error {
	cell, ok := singleIntArg(cmd)
	if !ok {
		return that.writeLine(out, "error: usage: move <cell>")
	}

	snapshot, err := that.game.MakeTurn(ctx, cell)
	if err != nil {
		return that.writeError(out, err)
	}

	return that.writeSnapshot(out, snapshot)
}

func (that *Server) handleUndo(_ context.Context, _ *Command, out io.Writer) error {
	snapshot, err := that.game.Undo()
	if err != nil {
		return that.writeError(out, err)
	}

	return that.writeSnapshot(out, snapshot)
}

func (that *Server) handleRedo(_ context.Context, _ *Command, out io.Writer) error {
	snapshot, err := that.game.Redo()
	if err != nil {
		return that.writeError(out, err)
	}

	return that.writeSnapshot(out, snapshot)
}

func (that *Server) handleJump(_ context.Context, cmd *Command, out io.Writer) error {
	move, ok := singleIntArg(cmd)
	if !ok {
		return that.writeLine(out, "error: usage: jump <move>")
	}

	snapshot, err := that.game.JumpTo(move)
	if err != nil {
		return that.writeError(out, err)
	}

	return that.writeSnapshot(out, snapshot)
}

func (that *Server) handleHistory(_ context.Context, _ *Command, out io.Writer) error {
	history := that.game.History()

	for i, snapshot := range history {
		line := fmt.Sprintf("#%d game start", snapshot.Move)
		if i > 0 {
			mark, cell := lastMove(history[i-1].State.Board, snapshot.State.Board)
			line = fmt.Sprintf("#%d %s -> %d", snapshot.Move, mark, cell)
		}

		if err := that.writeLine(out, line); err != nil {
			return err
		}
	}

	return nil
}

func (that *Server) handleStatus(_ context.Context, _ *Command, out io.Writer) error {
	return that.writeLine(out, StatusLine(that.game.Current().State))
}

func (that *Server) handleBoard(_ context.Context, _ *Command, out io.Writer) error {
	return that.writeSnapshot(out, that.game.Current())
}

func (that *Server) handleNew(ctx context.Context, _ *Command, out io.Writer) error {
	snapshot, err := that.game.Restart(ctx)
	if err != nil {
		return that.writeError(out, err)
	}

	return that.writeSnapshot(out, snapshot)
}

func (that *Server) handleHelp(_ context.Context, _ *Command, out io.Writer) error {
	if _, err := io.WriteString(out, helpText); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}

	return nil
}

func (that *Server) handleQuit(_ context.Context, _ *Command, out io.Writer) error {
	if err := that.writeLine(out, "bye"); err != nil {
		return err
	}

	return errQuit
}

func (that *Server) writeLine(out io.Writer, line string) error {
	if _, err := fmt.Fprintln(out, line); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}

	return nil
}

func singleIntArg(cmd *Command) (int, bool) {
	if len(cmd.Args) != 1 {
		return 0, false
	}

	value, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return 0, false
	}

	return value, true
}

// lastMove - the mark and cell that differ between two consecutive boards.
func lastMove(before, after entity.Board) (entity.Cell, int) {
	for cell := 0; cell < after.Len(); cell++ {
		if before.At(cell) != after.At(cell) {
			return after.At(cell), cell
		}
	}

	return entity.EmptyCell, -1
}

var _ gameManager = (*usecase.GameManager)(nil)
