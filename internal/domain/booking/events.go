package booking

import (
	"github.com/eventbook/backend/internal/domain/shared"
)

// Event type constants
const (
	EventTypeCustomerEventCreated = "booking.customer_event.created"
	EventTypeCustomerEventUpdated = "booking.customer_event.updated"
	EventTypeCustomerEventDeleted = "booking.customer_event.deleted"
)

const aggregateTypeCustomerEvent = "CustomerEvent"

// CustomerEventCreatedEvent is published when a new event is booked
type CustomerEventCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerName string `json:"customer_name"`
	EventName    string `json:"event_name"`
	AgreedAmount string `json:"agreed_amount"`
}

// NewCustomerEventCreatedEvent creates a CustomerEventCreatedEvent
func NewCustomerEventCreatedEvent(e *CustomerEvent) *CustomerEventCreatedEvent {
	return &CustomerEventCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerEventCreated, aggregateTypeCustomerEvent, e.ID),
		CustomerName:    e.CustomerName,
		EventName:       e.EventName,
		AgreedAmount:    e.AgreedAmount.String(),
	}
}

// CustomerEventUpdatedEvent is published after an edit, including agreed
// amount changes, which shift every derived reconciliation figure
type CustomerEventUpdatedEvent struct {
	shared.BaseDomainEvent
	CustomerName string `json:"customer_name"`
	EventName    string `json:"event_name"`
	AgreedAmount string `json:"agreed_amount"`
	State        string `json:"state"`
}

// NewCustomerEventUpdatedEvent creates a CustomerEventUpdatedEvent
func NewCustomerEventUpdatedEvent(e *CustomerEvent) *CustomerEventUpdatedEvent {
	return &CustomerEventUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerEventUpdated, aggregateTypeCustomerEvent, e.ID),
		CustomerName:    e.CustomerName,
		EventName:       e.EventName,
		AgreedAmount:    e.AgreedAmount.String(),
		State:           e.State.String(),
	}
}

// CustomerEventDeletedEvent is published when an event is removed
type CustomerEventDeletedEvent struct {
	shared.BaseDomainEvent
}

// NewCustomerEventDeletedEvent creates a CustomerEventDeletedEvent
func NewCustomerEventDeletedEvent(e *CustomerEvent) *CustomerEventDeletedEvent {
	return &CustomerEventDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerEventDeleted, aggregateTypeCustomerEvent, e.ID),
	}
}
