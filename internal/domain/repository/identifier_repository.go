package repository

import (
	"context"
	"errors"
)

// ErrDuplicateIdentifier is returned when an insert collides on a human-readable identifier.
var ErrDuplicateIdentifier = errors.New("identifier already assigned")

// IdentifierRepository allocates sequential human-readable identifiers.
type IdentifierRepository interface {
	// Allocate returns the next identifier for prefix, e.g. "O-102".
	// Concurrent callers never receive the same value; the allocation is
	// serialised per prefix and becomes durable when the surrounding
	// transaction commits.
	Allocate(ctx context.Context, prefix string) (string, error)
}
