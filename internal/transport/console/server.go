package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// errQuit stops the read loop without reporting a failure.
var errQuit = errors.New("quit requested")

type gameManager interface {
	Size() int
	Current() usecase.Snapshot
	History() []usecase.Snapshot

	MakeTurn(ctx context.Context, cell int) (usecase.Snapshot, error)
	Undo() (usecase.Snapshot, error)
	Redo() (usecase.Snapshot, error)
	JumpTo(move int) (usecase.Snapshot, error)
	Restart(ctx context.Context) (usecase.Snapshot, error)
}

type handlerFunc func(ctx context.Context, cmd *Command, out io.Writer) error

type Options struct {
	Color  bool
	Prompt string
}

type Server struct {
	logger   *slog.Logger
	game     gameManager
	renderer *Renderer
	prompt   string

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, game gameManager, opts Options) *Server {
	server := &Server{
		logger:   logger.With("component", "console"),
		game:     game,
		renderer: NewRenderer(opts.Color),
		prompt:   opts.Prompt,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionMove] = server.handleMove
	server.handlers[actionUndo] = server.handleUndo
	server.handlers[actionRedo] = server.handleRedo
	server.handlers[actionJump] = server.handleJump
	server.handlers[actionHistory] = server.handleHistory
	server.handlers[actionStatus] = server.handleStatus
	server.handlers[actionBoard] = server.handleBoard
	server.handlers[actionNew] = server.handleNew
	server.handlers[actionHelp] = server.handleHelp
	server.handlers[actionQuit] = server.handleQuit

	return server
}

// Start - prints the board and processes commands from in until quit, EOF or ctx is done.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(in, lines, readErr, done)

	if err := that.writeSnapshot(out, that.game.Current()); err != nil {
		return err
	}

	for {
		if err := that.writePrompt(out); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving console")
			closeInput(in)
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			log.Info("input closed, leaving console")
			return nil
		case line := <-lines:
			err := that.handleLine(ctx, line, out)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// handleLine - dispatches one command. Only write failures are returned, everything the
// player did wrong is reported on out.
func (that *Server) handleLine(ctx context.Context, line string, out io.Writer) error {
	cmd := parseCommand(line)
	if cmd == nil {
		return nil
	}

	log := that.logger.With("action", cmd.Action)

	handler, ok := that.handlers[cmd.Action]
	if !ok {
		log.Debug("unknown command")
		return that.writeError(out, fmt.Errorf("%w: %s", apperror.ErrUnknownCommand, cmd.Action))
	}

	log.Debug("handling command", "args", cmd.Args)

	return handler(ctx, cmd, out)
}

// closeInput - unblocks readLines when in can be closed. A terminal stdin may stay blocked in
// Read after Close; the goroutine then ends with the process.
func closeInput(in io.Reader) {
	if closer, ok := in.(io.Closer); ok {
		_ = closer.Close()
	}
}

func readLines(in io.Reader, lines chan<- string, readErr chan<- error, done <-chan struct{}) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			return
		}
	}

	readErr <- scanner.Err()
}

func (that *Server) writePrompt(out io.Writer) error {
	if that.prompt == "" {
		return nil
	}

	if _, err := io.WriteString(out, that.prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	return nil
}

func (that *Server) writeSnapshot(out io.Writer, snapshot usecase.Snapshot) error {
	if _, err := fmt.Fprintf(out, "%s%s\n", that.renderer.Board(snapshot.State.Board), StatusLine(snapshot.State)); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Server) writeError(out io.Writer, cause error) error {
	if _, err := fmt.Fprintf(out, "error: %s\n", describeError(cause)); err != nil {
		return fmt.Errorf("failed to write error: %w", err)
	}

	return nil
}

// describeError - the player sees the sentinel message, not the wrapping chain.
func describeError(err error) string {
	known := []error{
		apperror.ErrOutOfRange,
		apperror.ErrGameOver,
		apperror.ErrCellOccupied,
		apperror.ErrNothingToUndo,
		apperror.ErrNothingToRedo,
	}

	for _, sentinel := range known {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	return err.Error()
}
