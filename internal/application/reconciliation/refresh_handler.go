package reconciliation

import (
	"context"

	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/eventbook/backend/internal/domain/payment"
	"github.com/eventbook/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RefreshFunc is invoked when underlying financial data has changed
type RefreshFunc func(ctx context.Context)

// RefreshHandler bridges the event bus and the presentation layer: any
// payment or booking change event triggers the registered refresh callback,
// which is expected to re-invoke the summary service. This replaces ad-hoc
// cross-screen listeners with one explicit subscription.
type RefreshHandler struct {
	refresh RefreshFunc
	logger  *zap.Logger
}

// NewRefreshHandler creates a RefreshHandler with the given callback
func NewRefreshHandler(refresh RefreshFunc, logger *zap.Logger) *RefreshHandler {
	return &RefreshHandler{
		refresh: refresh,
		logger:  logger,
	}
}

// Handle reacts to a data-changed event by invoking the refresh callback
func (h *RefreshHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.logger.Debug("financial data changed, refreshing",
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_id", event.AggregateID().String()),
	)
	if h.refresh != nil {
		h.refresh(ctx)
	}
	return nil
}

// EventTypes returns every event type that invalidates built summaries
func (h *RefreshHandler) EventTypes() []string {
	return []string{
		payment.EventTypePaymentRecorded,
		payment.EventTypePaymentUpdated,
		payment.EventTypePaymentDeleted,
		booking.EventTypeCustomerEventCreated,
		booking.EventTypeCustomerEventUpdated,
		booking.EventTypeCustomerEventDeleted,
	}
}

// Ensure RefreshHandler implements EventHandler
var _ shared.EventHandler = (*RefreshHandler)(nil)
