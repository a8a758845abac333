// Package errmsg centralizes user-facing failure strings: the fixed messages
// the transient error display shows, and the formatter for operation failures
// that surface on stderr or in the log.
package errmsg

import "fmt"

// Fixed user-visible messages for the transient error display. Matching the
// wording the interface shows for the two canonical failure classes.
const (
	MsgInvalidFileType = "Invalid audio file type"
	MsgLoadFailed      = "Failed to load audio file"
)

// Op names an operation in a user-visible failure message.
type Op string

const (
	OpInitialize   Op = "initialize application"
	OpStateSave    Op = "save player state"
	OpQueueRestore Op = "restore saved playlist"
)

// Format renders an operation failure for display or logging.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}
