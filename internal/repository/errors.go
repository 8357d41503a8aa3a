package repository

import "errors"

var (
	// ErrDuplicate is returned when a unique pair already exists.
	ErrDuplicate = errors.New("record already exists")
	// ErrNotLinked is returned when removing a relation that was never added.
	ErrNotLinked = errors.New("relation not found")
)
