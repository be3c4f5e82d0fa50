package domain

import "errors"

// Sentinel errors raised by services and repositories. Handlers match them
// with errors.Is to pick a status code; the text ends up in the response
// envelope's error field.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrEmailExists   = errors.New("user with this email already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrAgentNotFound = errors.New("agent not found")
	ErrUserHasAgents = errors.New("user still owns agents")
)
