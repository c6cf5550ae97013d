package domain

import "errors"

var (
	// ErrNotFound is returned when a player or team key is absent.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a name collides with an existing key.
	ErrDuplicate = errors.New("already exists")
	// ErrInvalidAmount is returned when a points amount is not a whole number.
	ErrInvalidAmount = errors.New("amount must be a whole number")
	// ErrNoTeams is returned by the assignment heuristic when no team exists.
	ErrNoTeams = errors.New("no teams exist")
	// ErrEmptyName is returned when a name is blank after trimming.
	ErrEmptyName = errors.New("name cannot be empty")
	// ErrInvalidOperation is returned for an unknown points operation.
	ErrInvalidOperation = errors.New("invalid operation")
)
