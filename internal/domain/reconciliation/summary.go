package reconciliation

import (
	"time"

	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/eventbook/backend/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialSummary is the derived financial picture of one customer event.
// It is rebuilt from scratch on every refresh and never mutated afterwards;
// any change to the underlying payments requires building a new summary.
type FinancialSummary struct {
	EventID           uuid.UUID
	CustomerName      string
	EventName         string
	EventDate         time.Time
	AgreedAmount      decimal.Decimal
	Payments          []payment.Payment
	TotalPaid         decimal.Decimal
	Remaining         decimal.Decimal // agreed - paid; negative when overpaid
	Overpaid          bool
	LatestPaymentDate *time.Time
	Status            Status
	EventState        booking.EventState
}

// BuildSummary composes the aggregator and classifier into one summary for
// the given event. Payments not owned by the event are ignored; inputs are
// never mutated.
func BuildSummary(event booking.CustomerEvent, payments []payment.Payment) FinancialSummary {
	matched := make([]payment.Payment, 0, len(payments))
	for i := range payments {
		if payments[i].EventID == event.ID {
			matched = append(matched, payments[i])
		}
	}

	agg := Aggregate(matched)

	return FinancialSummary{
		EventID:           event.ID,
		CustomerName:      event.CustomerName,
		EventName:         event.EventName,
		EventDate:         event.EventDate,
		AgreedAmount:      event.AgreedAmount,
		Payments:          matched,
		TotalPaid:         agg.TotalPaid,
		Remaining:         event.AgreedAmount.Sub(agg.TotalPaid),
		Overpaid:          agg.TotalPaid.GreaterThan(event.AgreedAmount),
		LatestPaymentDate: agg.LatestPaymentDate,
		Status:            Classify(event.AgreedAmount, agg.TotalPaid, event.State),
		EventState:        event.State,
	}
}

// BuildSummaries builds one summary per customer event, in the input events'
// order. The flat payment collection is grouped once up front; payments
// whose owning event is absent from events are dropped.
func BuildSummaries(events []booking.CustomerEvent, payments []payment.Payment) []FinancialSummary {
	byEvent := make(map[uuid.UUID][]payment.Payment, len(events))
	for _, g := range GroupByEvent(payments) {
		byEvent[g.EventID] = g.Payments
	}

	summaries := make([]FinancialSummary, 0, len(events))
	for i := range events {
		summaries = append(summaries, BuildSummary(events[i], byEvent[events[i].ID]))
	}
	return summaries
}

// Progress returns paid/agreed clamped to [0, 1], for progress-bar style
// presentation only. Status determination uses the unclamped comparison in
// Classify.
func (s FinancialSummary) Progress() decimal.Decimal {
	if !s.AgreedAmount.IsPositive() {
		return decimal.Zero
	}
	ratio := s.TotalPaid.Div(s.AgreedAmount)
	if ratio.IsNegative() {
		return decimal.Zero
	}
	one := decimal.NewFromInt(1)
	if ratio.GreaterThan(one) {
		return one
	}
	return ratio
}

// PaymentCount returns the number of payments behind this summary
func (s FinancialSummary) PaymentCount() int {
	return len(s.Payments)
}
