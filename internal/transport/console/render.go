package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	colorX = "#818cf8"
	colorO = "#f472b6"
)

// Renderer turns board snapshots into text. Empty cells show their index so the player
// knows what to type.
type Renderer struct {
	color   bool
	profile termenv.Profile
}

func NewRenderer(color bool) *Renderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}

	return &Renderer{
		color:   color && profile != termenv.Ascii,
		profile: profile,
	}
}

func (that *Renderer) Board(board entity.Board) string {
	size := board.Size()
	if size == 0 {
		return ""
	}

	width := len(strconv.Itoa(board.Len() - 1))

	highlight := make(map[int]bool)
	if line, ok := tictactoe.WinningLine(board); ok {
		for _, cell := range line {
			highlight[cell] = true
		}
	}

	separator := make([]string, size)
	for i := range separator {
		separator[i] = strings.Repeat("-", width+2)
	}

	var sb strings.Builder
	for row := 0; row < size; row++ {
		if row > 0 {
			sb.WriteString(strings.Join(separator, "+"))
			sb.WriteByte('\n')
		}

		cells := make([]string, size)
		for col := 0; col < size; col++ {
			index := row*size + col
			cells[col] = " " + that.cell(board.At(index), index, width, highlight[index]) + " "
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Renderer) cell(mark entity.Cell, index, width int, highlight bool) string {
	if mark == entity.EmptyCell {
		return fmt.Sprintf("%*d", width, index)
	}

	text := fmt.Sprintf("%*s", width, mark)
	if !that.color {
		return text
	}

	style := termenv.String(text)
	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.profile.Color(colorX))
	case entity.PlayerO:
		style = style.Foreground(that.profile.Color(colorO))
	}

	if highlight {
		style = style.Bold().Underline()
	}

	return style.String()
}

// StatusLine - "Winner: X", "No Winner" for a draw, otherwise whose turn it is.
func StatusLine(state entity.GameState) string {
	status := tictactoe.Status(state.Board)

	switch {
	case status.HasWinner():
		return "Winner: " + string(status.Winner)
	case status.IsDraw():
		return "No Winner"
	default:
		return "Next player: " + string(state.NextPlayer)
	}
}
