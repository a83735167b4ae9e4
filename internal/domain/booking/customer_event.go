package booking

import (
	"time"

	"github.com/eventbook/backend/internal/domain/shared"
	"github.com/eventbook/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// EventState represents the lifecycle state of a customer event
type EventState string

const (
	EventStateActive    EventState = "ACTIVE"
	EventStateCompleted EventState = "COMPLETED"
	EventStateCancelled EventState = "CANCELLED"
)

// IsValid checks if the state is a valid EventState
func (s EventState) IsValid() bool {
	switch s {
	case EventStateActive, EventStateCompleted, EventStateCancelled:
		return true
	}
	return false
}

// String returns the string representation of EventState
func (s EventState) String() string {
	return string(s)
}

// IsCancelled returns true if the event has been called off
func (s EventState) IsCancelled() bool {
	return s == EventStateCancelled
}

// CustomerEvent is a contracted engagement with one customer, carrying the
// agreed amount that payments are reconciled against. The reconciliation
// engine treats it as read-only context; only the booking workflows below
// change it.
type CustomerEvent struct {
	shared.BaseEntity
	CustomerName string
	EventName    string
	EventDate    time.Time
	AgreedAmount decimal.Decimal
	State        EventState
	Notes        string
}

// NewCustomerEvent creates a new customer event in the active state
func NewCustomerEvent(customerName, eventName string, eventDate time.Time, agreedAmount valueobject.Money) (*CustomerEvent, error) {
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if eventName == "" {
		return nil, shared.NewDomainError("INVALID_EVENT_NAME", "Event name cannot be empty")
	}
	if eventDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_EVENT_DATE", "Event date is required")
	}
	if agreedAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Agreed amount cannot be negative")
	}

	return &CustomerEvent{
		BaseEntity:   shared.NewBaseEntity(),
		CustomerName: customerName,
		EventName:    eventName,
		EventDate:    eventDate,
		AgreedAmount: agreedAmount.Amount(),
		State:        EventStateActive,
	}, nil
}

// EventUpdate carries the fields an edit may override. Nil fields keep the
// existing value.
type EventUpdate struct {
	CustomerName *string
	EventName    *string
	EventDate    *time.Time
	AgreedAmount *valueobject.Money
	State        *EventState
	Notes        *string
}

// WithUpdate returns a new CustomerEvent with the given fields overridden.
// Identity and creation timestamp are preserved; the receiver is not mutated.
func (e CustomerEvent) WithUpdate(u EventUpdate) (CustomerEvent, error) {
	next := e

	if u.CustomerName != nil {
		if *u.CustomerName == "" {
			return CustomerEvent{}, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
		}
		next.CustomerName = *u.CustomerName
	}
	if u.EventName != nil {
		if *u.EventName == "" {
			return CustomerEvent{}, shared.NewDomainError("INVALID_EVENT_NAME", "Event name cannot be empty")
		}
		next.EventName = *u.EventName
	}
	if u.EventDate != nil {
		if u.EventDate.IsZero() {
			return CustomerEvent{}, shared.NewDomainError("INVALID_EVENT_DATE", "Event date is required")
		}
		next.EventDate = *u.EventDate
	}
	if u.AgreedAmount != nil {
		if u.AgreedAmount.IsNegative() {
			return CustomerEvent{}, shared.NewDomainError("INVALID_AMOUNT", "Agreed amount cannot be negative")
		}
		next.AgreedAmount = u.AgreedAmount.Amount()
	}
	if u.State != nil {
		if !u.State.IsValid() {
			return CustomerEvent{}, shared.NewDomainError("INVALID_STATE", "Event state is not valid")
		}
		next.State = *u.State
	}
	if u.Notes != nil {
		next.Notes = *u.Notes
	}

	next.UpdatedAt = time.Now()
	return next, nil
}

// GetAgreedAmountMoney returns the agreed amount as Money
func (e *CustomerEvent) GetAgreedAmountMoney() valueobject.Money {
	return valueobject.NewMoneyINR(e.AgreedAmount)
}

// IsCancelled returns true if the event has been cancelled
func (e *CustomerEvent) IsCancelled() bool {
	return e.State.IsCancelled()
}
