package repositories

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all repositories. Controllers match on these to
// pick a status code; the messages are safe to return to clients.
var (
	// ErrNotFound covers both a missing record and a record owned by a
	// different user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a registration collides with an
	// existing account.
	ErrDuplicateEmail = errors.New("email is already registered")
)

// ValidationError reports a malformed or out-of-range field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DuplicateKeyError reports a uniqueness violation and names the field that
// collided, derived from the database's conflict report.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return "a vehicle with the same unique field already exists"
	}
	return fmt.Sprintf("a vehicle with the same %s already exists", e.Field)
}
