package entity

import "fmt"

const (
	StatusInProgress = "in_progress"
	StatusWin        = "win"
	StatusDraw       = "draw"
)

type Cell string

const (
	EmptyCell Cell = ""
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

// IsPlayer reports whether the cell holds a player's mark.
func (that Cell) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Cell) IsValid() bool {
	return that == EmptyCell || that.IsPlayer()
}

// Status is derived from a board, it is never stored alongside it.
type Status struct {
	Outcome string `json:"outcome"`
	Winner  Cell   `json:"winner,omitempty"`
}

func InProgress() Status {
	return Status{Outcome: StatusInProgress}
}

func Win(player Cell) Status {
	return Status{Outcome: StatusWin, Winner: player}
}

func Draw() Status {
	return Status{Outcome: StatusDraw}
}

func (that Status) IsInProgress() bool {
	return that.Outcome == StatusInProgress
}

// IsFinished - win and draw are terminal, no transition leaves them.
func (that Status) IsFinished() bool {
	return that.Outcome == StatusWin || that.Outcome == StatusDraw
}

func (that Status) IsDraw() bool {
	return that.Outcome == StatusDraw
}

func (that Status) HasWinner() bool {
	return that.Outcome == StatusWin && that.Winner.IsPlayer()
}

func (that Status) String() string {
	if that.HasWinner() {
		return fmt.Sprintf("%s(%s)", that.Outcome, that.Winner)
	}

	return that.Outcome
}

// GameState - a board snapshot paired with the mark expected to move next.
type GameState struct {
	Board      Board `json:"board"`
	NextPlayer Cell  `json:"next_player"`
}
