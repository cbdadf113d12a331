package store

import (
	"errors"
	"fmt"

	"github.com/viejosabroso/restaurant-orders/models"
)

var (
	// ErrNotFound is returned when a mutation targets a document that does
	// not exist.
	ErrNotFound = errors.New("record not found")

	// ErrStoreUnavailable wraps transport-level database failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError reports caller-supplied data violating a required
// invariant. Validation happens in the gateway, before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IllegalTransitionError rejects a status write that is not the single legal
// successor of the currently persisted status.
type IllegalTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s -> %s", e.From, e.To)
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
