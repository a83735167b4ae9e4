package reconciliation

import (
	"time"

	"github.com/eventbook/backend/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregateResult is the reduction of one event's payments
type AggregateResult struct {
	TotalPaid         decimal.Decimal
	LatestPaymentDate *time.Time // nil when there are no payments
}

// Aggregate reduces a collection of payments to its total and most recent
// payment date. Pure function; the sum is exact decimal arithmetic and
// order-independent.
func Aggregate(payments []payment.Payment) AggregateResult {
	total := decimal.Zero
	var latest *time.Time

	for i := range payments {
		total = total.Add(payments[i].Amount)
		if latest == nil || payments[i].PaymentDate.After(*latest) {
			d := payments[i].PaymentDate
			latest = &d
		}
	}

	return AggregateResult{
		TotalPaid:         total,
		LatestPaymentDate: latest,
	}
}

// EventGroup holds the payments applied to one customer event
type EventGroup struct {
	EventID  uuid.UUID
	Payments []payment.Payment
}

// GroupByEvent partitions a flat payment collection by owning event,
// preserving first-seen event order so downstream iteration is
// deterministic.
func GroupByEvent(payments []payment.Payment) []EventGroup {
	index := make(map[uuid.UUID]int, len(payments))
	groups := make([]EventGroup, 0)

	for i := range payments {
		id := payments[i].EventID
		pos, ok := index[id]
		if !ok {
			pos = len(groups)
			index[id] = pos
			groups = append(groups, EventGroup{EventID: id})
		}
		groups[pos].Payments = append(groups[pos].Payments, payments[i])
	}

	return groups
}
