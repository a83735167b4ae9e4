package booking

import (
	"context"

	"github.com/google/uuid"
)

// CustomerEventRepository defines the persistence contract for customer events.
// List failures must wrap shared.ErrStoreUnavailable.
type CustomerEventRepository interface {
	// FindByID finds a customer event by ID
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerEvent, error)

	// ListAll returns all customer events, oldest booking first
	ListAll(ctx context.Context) ([]CustomerEvent, error)

	// Save creates or updates a customer event
	Save(ctx context.Context, event *CustomerEvent) error

	// Delete removes a customer event
	Delete(ctx context.Context, id uuid.UUID) error
}
