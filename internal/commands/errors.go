package commands

import (
	"context"
	"errors"

	"github.com/pixil98/go-survive/internal/game"
)

// UserError represents an error that should be displayed to the user.
// These are not system failures - just invalid input or a refused action.
type UserError struct {
	Message string
	// Err is the domain error behind the message, if any.
	Err error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

// NewInputError creates a user-facing error for input that could not be
// understood. The survivor is asked again without losing the turn.
func NewInputError(msg string) *UserError {
	return &UserError{Message: msg, Err: game.ErrInput}
}

// report shows a user error and waits for acknowledgement. Anything else is
// passed back to the caller.
func (s *Session) report(ctx context.Context, err error) error {
	var ue *UserError
	if !errors.As(err, &ue) {
		return err
	}
	s.Println(s.View.Bad(ue.Message))
	return s.Pause(ctx)
}
