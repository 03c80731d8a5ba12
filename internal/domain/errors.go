package domain

import "errors"

var (
	// ErrDuplicateURL signals that a record with the same URL already
	// exists. Raised from the storage unique constraint so that two
	// concurrent runs racing on one URL cannot both insert.
	ErrDuplicateURL = errors.New("digest record with this URL already exists")

	// ErrNothingToDo signals an on-demand operation found no eligible
	// candidate (e.g. random text fetch with an empty pool).
	ErrNothingToDo = errors.New("no eligible records")

	// ErrInvalidStateTransition signals a record state change outside the
	// allowed lifecycle.
	ErrInvalidStateTransition = errors.New("invalid record state transition")

	ErrNotFound = errors.New("not found")
)
