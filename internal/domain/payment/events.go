package payment

import (
	"github.com/eventbook/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Event type constants. Presentation surfaces subscribe to these to know
// when to re-fetch and rebuild summaries.
const (
	EventTypePaymentRecorded = "payment.recorded"
	EventTypePaymentUpdated  = "payment.updated"
	EventTypePaymentDeleted  = "payment.deleted"
)

const aggregateTypePayment = "Payment"

// RecordedEvent is published when a payment is recorded
type RecordedEvent struct {
	shared.BaseDomainEvent
	OwningEventID uuid.UUID `json:"owning_event_id"`
	Amount        string    `json:"amount"`
	Method        string    `json:"method"`
}

// NewRecordedEvent creates a RecordedEvent
func NewRecordedEvent(p *Payment) *RecordedEvent {
	return &RecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRecorded, aggregateTypePayment, p.ID),
		OwningEventID:   p.EventID,
		Amount:          p.Amount.String(),
		Method:          p.Method.String(),
	}
}

// UpdatedEvent is published when a payment is edited
type UpdatedEvent struct {
	shared.BaseDomainEvent
	OwningEventID uuid.UUID `json:"owning_event_id"`
	Amount        string    `json:"amount"`
}

// NewUpdatedEvent creates an UpdatedEvent
func NewUpdatedEvent(p *Payment) *UpdatedEvent {
	return &UpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentUpdated, aggregateTypePayment, p.ID),
		OwningEventID:   p.EventID,
		Amount:          p.Amount.String(),
	}
}

// DeletedEvent is published when a payment is removed
type DeletedEvent struct {
	shared.BaseDomainEvent
	OwningEventID uuid.UUID `json:"owning_event_id"`
}

// NewDeletedEvent creates a DeletedEvent
func NewDeletedEvent(p *Payment) *DeletedEvent {
	return &DeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentDeleted, aggregateTypePayment, p.ID),
		OwningEventID:   p.EventID,
	}
}
