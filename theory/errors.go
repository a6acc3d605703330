package theory

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidNote = errors.New("invalid note")
	ErrInvalidMode = errors.New("invalid mode")
)

// InvalidNoteError is returned when a note name isn't one of the 12 canonical names.
type InvalidNoteError struct {
	Input string // The string as the user typed it.
}

func (e *InvalidNoteError) Error() string {
	return fmt.Sprintf("invalid note: %s", e.Input)
}

func (e *InvalidNoteError) Is(target error) bool {
	return target == ErrInvalidNote
}

// InvalidModeError is returned when a mode name isn't in the mode catalog.
// The message lists every valid mode.
type InvalidModeError struct {
	Input string
}

func (e *InvalidModeError) Error() string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.Name
	}
	return fmt.Sprintf("invalid mode: %s. Available modes: %s", e.Input, strings.Join(names, ", "))
}

func (e *InvalidModeError) Is(target error) bool {
	return target == ErrInvalidMode
}
