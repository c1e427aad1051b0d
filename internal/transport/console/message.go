package console

import (
	"strconv"
	"strings"
)

const (
	actionMove    = "move"
	actionUndo    = "undo"
	actionRedo    = "redo"
	actionJump    = "jump"
	actionHistory = "history"
	actionStatus  = "status"
	actionBoard   = "board"
	actionNew     = "new"
	actionHelp    = "help"
	actionQuit    = "quit"
)

// aliases map alternative spellings onto an action.
var aliases = map[string]string{
	"m":       actionMove,
	"u":       actionUndo,
	"r":       actionRedo,
	"j":       actionJump,
	"h":       actionHistory,
	"show":    actionBoard,
	"restart": actionNew,
	"?":       actionHelp,
	"q":       actionQuit,
	"exit":    actionQuit,
}

// Command is one line of player input split into an action and its arguments.
type Command struct {
	Action string
	Args   []string
}

// parseCommand - a bare number is shorthand for "move <number>". Empty lines yield nil.
func parseCommand(line string) *Command {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	if _, err := strconv.Atoi(fields[0]); err == nil {
		return &Command{Action: actionMove, Args: fields}
	}

	action := fields[0]
	if alias, ok := aliases[action]; ok {
		action = alias
	}

	return &Command{Action: action, Args: fields[1:]}
}
