package reconciliation

import (
	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/shopspring/decimal"
)

// Status is the derived reconciliation status of a customer event. It is
// recomputed whenever a summary is built, never transitioned in place.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusPartial    Status = "PARTIAL"
	StatusCompleted  Status = "COMPLETED"
	StatusOverpaid   Status = "OVERPAID"
	StatusCancelled  Status = "CANCELLED"
)

// AllStatuses lists every reconciliation status
var AllStatuses = []Status{
	StatusNotStarted, StatusPartial, StatusCompleted, StatusOverpaid, StatusCancelled,
}

// IsValid checks if the status is a valid reconciliation Status
func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusPartial, StatusCompleted, StatusOverpaid, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Classify maps (agreed amount, total paid, event lifecycle state) to
// exactly one reconciliation status. The rules are evaluated in priority
// order; a cancelled event is CANCELLED regardless of amounts, and a
// zero-paid event is NOT_STARTED even when the agreed amount is zero.
// Comparisons are exact decimal equality.
func Classify(agreed, totalPaid decimal.Decimal, state booking.EventState) Status {
	switch {
	case state.IsCancelled():
		return StatusCancelled
	case totalPaid.IsZero():
		return StatusNotStarted
	case totalPaid.LessThan(agreed):
		return StatusPartial
	case totalPaid.Equal(agreed):
		return StatusCompleted
	default:
		return StatusOverpaid
	}
}
