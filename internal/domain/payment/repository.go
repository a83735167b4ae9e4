package payment

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for payments (the Payment
// Store Adapter). The engine only consumes the read side; the write side is
// used by callers mutating state that the engine subsequently re-aggregates.
// Read failures must wrap shared.ErrStoreUnavailable; the engine does not
// retry and surfaces the error upward unchanged.
type Repository interface {
	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// ListAll returns every payment, ordered by payment date then creation
	ListAll(ctx context.Context) ([]Payment, error)

	// ListByEvent returns the payments applied to one customer event
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]Payment, error)

	// Save creates or updates a payment
	Save(ctx context.Context, p *Payment) error

	// Delete removes a payment
	Delete(ctx context.Context, id uuid.UUID) error
}
