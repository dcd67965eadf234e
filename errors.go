package definite

import "errors"

var (
	// ErrNoStatesDefined is returned when a machine is built with an empty
	// transition table.
	ErrNoStatesDefined = errors.New("no allowed transitions defined")

	// ErrInvalidDefaultState is returned when the default state is unset or
	// is not a key of the transition table.
	ErrInvalidDefaultState = errors.New("invalid default state")

	// ErrInvalidState is returned when a transition targets a state that is
	// not declared in the transition table.
	ErrInvalidState = errors.New("invalid state")

	// ErrTransitionNotAllowed is returned when the target state is not
	// reachable from the current state.
	ErrTransitionNotAllowed = errors.New("transition not allowed")

	// ErrInvalidHandler is returned when a handler slot is filled with a
	// nil function.
	ErrInvalidHandler = errors.New("handler is not callable")
)
