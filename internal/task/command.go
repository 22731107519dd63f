package task

import "errors"

// Command type identifiers.
const (
	// CommandTypeCompleteAll marks every incomplete item of a list completed.
	CommandTypeCompleteAll = "complete_all"
)

// ErrUnknownCommand is recorded on a job whose command type no executor
// recognizes.
var ErrUnknownCommand = errors.New("unknown command type")

// Command is the closed, serializable description of the work a job
// performs. Adding an operation means adding a type constant, its fields
// here, and a case in the worker's execute switch.
type Command struct {
	Type   string `json:"type"`
	ListID int64  `json:"list_id,omitempty"`
}

// NewCompleteAllCommand builds the command that completes every item of
// the given list.
func NewCompleteAllCommand(listID int64) Command {
	return Command{
		Type:   CommandTypeCompleteAll,
		ListID: listID,
	}
}
