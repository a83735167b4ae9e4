package reconciliation

import (
	"testing"
	"time"

	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/eventbook/backend/internal/domain/payment"
	"github.com/eventbook/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(t *testing.T, customer, name, agreed string) booking.CustomerEvent {
	t.Helper()
	m, err := valueobject.NewMoneyINRFromString(agreed)
	require.NoError(t, err)
	e, err := booking.NewCustomerEvent(customer, name, day(20), m)
	require.NoError(t, err)
	return *e
}

func TestBuildSummary(t *testing.T) {
	t.Run("no payments", func(t *testing.T) {
		event := newTestEvent(t, "Sharma Family", "Wedding Reception", "100000.00")

		s := BuildSummary(event, nil)
		assert.True(t, s.TotalPaid.IsZero())
		assert.True(t, s.Remaining.Equal(decimal.NewFromInt(100000)))
		assert.False(t, s.Overpaid)
		assert.Nil(t, s.LatestPaymentDate)
		assert.Equal(t, StatusNotStarted, s.Status)
		assert.Empty(t, s.Payments)
	})

	t.Run("partial payments", func(t *testing.T) {
		event := newTestEvent(t, "Sharma Family", "Wedding Reception", "100000.00")
		payments := []payment.Payment{
			newTestPayment(t, event.ID, "25000.00", day(1)),
			newTestPayment(t, event.ID, "35000.00", day(2)),
			newTestPayment(t, event.ID, "15000.00", day(3)),
			newTestPayment(t, event.ID, "10000.00", day(4)),
		}

		s := BuildSummary(event, payments)
		assert.True(t, s.TotalPaid.Equal(decimal.NewFromInt(85000)))
		assert.True(t, s.Remaining.Equal(decimal.NewFromInt(15000)))
		assert.Equal(t, StatusPartial, s.Status)
		assert.False(t, s.Overpaid)
	})

	t.Run("completion on exact equality", func(t *testing.T) {
		event := newTestEvent(t, "Sharma Family", "Wedding Reception", "100000.00")
		payments := []payment.Payment{
			newTestPayment(t, event.ID, "25000.00", day(1)),
			newTestPayment(t, event.ID, "35000.00", day(2)),
			newTestPayment(t, event.ID, "15000.00", day(3)),
			newTestPayment(t, event.ID, "10000.00", day(4)),
			newTestPayment(t, event.ID, "15000.00", day(5)),
		}

		s := BuildSummary(event, payments)
		assert.True(t, s.TotalPaid.Equal(decimal.NewFromInt(100000)))
		assert.True(t, s.Remaining.IsZero())
		assert.Equal(t, StatusCompleted, s.Status)
		assert.False(t, s.Overpaid)
	})

	t.Run("overpayment goes negative", func(t *testing.T) {
		event := newTestEvent(t, "Sharma Family", "Wedding Reception", "100000.00")
		payments := []payment.Payment{
			newTestPayment(t, event.ID, "100000.00", day(1)),
			newTestPayment(t, event.ID, "500.00", day(2)),
		}

		s := BuildSummary(event, payments)
		assert.True(t, s.TotalPaid.Equal(decimal.RequireFromString("100500")))
		assert.True(t, s.Remaining.Equal(decimal.NewFromInt(-500)))
		assert.Equal(t, StatusOverpaid, s.Status)
		assert.True(t, s.Overpaid)
	})

	t.Run("cancelled event stays cancelled", func(t *testing.T) {
		event := newTestEvent(t, "Sharma Family", "Wedding Reception", "100000.00")
		cancelled := booking.EventStateCancelled
		updated, err := event.WithUpdate(booking.EventUpdate{State: &cancelled})
		require.NoError(t, err)

		s := BuildSummary(updated, []payment.Payment{
			newTestPayment(t, event.ID, "50000.00", day(1)),
		})
		assert.Equal(t, StatusCancelled, s.Status)
		assert.True(t, s.TotalPaid.Equal(decimal.NewFromInt(50000)))
	})

	t.Run("ignores foreign payments without mutating input", func(t *testing.T) {
		event := newTestEvent(t, "Sharma Family", "Wedding Reception", "100000.00")
		foreign := newTestPayment(t, uuid.New(), "99999.00", day(1))
		owned := newTestPayment(t, event.ID, "1000.00", day(2))
		input := []payment.Payment{foreign, owned}

		s := BuildSummary(event, input)
		assert.True(t, s.TotalPaid.Equal(decimal.NewFromInt(1000)))
		require.Len(t, s.Payments, 1)

		// input untouched
		assert.Len(t, input, 2)
		assert.Equal(t, foreign.ID, input[0].ID)
	})

	t.Run("total equals sum of included payments", func(t *testing.T) {
		event := newTestEvent(t, "Sharma Family", "Wedding Reception", "500.00")
		payments := make([]payment.Payment, 0, 1000)
		for i := 0; i < 1000; i++ {
			payments = append(payments, newTestPayment(t, event.ID, "0.01", day(1+i%28)))
		}

		s := BuildSummary(event, payments)
		sum := decimal.Zero
		for i := range s.Payments {
			sum = sum.Add(s.Payments[i].Amount)
		}
		assert.True(t, s.TotalPaid.Equal(sum))
		assert.True(t, s.Remaining.Equal(event.AgreedAmount.Sub(s.TotalPaid)))
	})
}

func TestBuildSummaries(t *testing.T) {
	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, BuildSummaries(nil, nil))
	})

	t.Run("one summary per event in input order", func(t *testing.T) {
		e1 := newTestEvent(t, "Verma", "Birthday", "20000")
		e2 := newTestEvent(t, "Anand", "Conference", "50000")
		e3 := newTestEvent(t, "Mehta", "Sangeet", "30000")
		payments := []payment.Payment{
			newTestPayment(t, e2.ID, "50000", day(1)),
			newTestPayment(t, e1.ID, "5000", day(2)),
		}

		summaries := BuildSummaries([]booking.CustomerEvent{e1, e2, e3}, payments)
		require.Len(t, summaries, 3)
		assert.Equal(t, e1.ID, summaries[0].EventID)
		assert.Equal(t, e2.ID, summaries[1].EventID)
		assert.Equal(t, e3.ID, summaries[2].EventID)
		assert.Equal(t, StatusPartial, summaries[0].Status)
		assert.Equal(t, StatusCompleted, summaries[1].Status)
		assert.Equal(t, StatusNotStarted, summaries[2].Status)
	})

	t.Run("idempotent on unchanged inputs", func(t *testing.T) {
		e1 := newTestEvent(t, "Verma", "Birthday", "20000")
		payments := []payment.Payment{
			newTestPayment(t, e1.ID, "5000", day(2)),
			newTestPayment(t, e1.ID, "2500", day(4)),
		}
		events := []booking.CustomerEvent{e1}

		first := BuildSummaries(events, payments)
		second := BuildSummaries(events, payments)
		assert.Equal(t, first, second)
	})
}

func TestFinancialSummary_Progress(t *testing.T) {
	tests := []struct {
		name   string
		agreed string
		paid   string
		want   string
	}{
		{"untouched", "100000", "0", "0"},
		{"halfway", "100000", "50000", "0.5"},
		{"complete", "100000", "100000", "1"},
		{"overpaid clamps to one", "100000", "150000", "1"},
		{"zero agreed is zero progress", "0", "500", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FinancialSummary{
				AgreedAmount: decimal.RequireFromString(tt.agreed),
				TotalPaid:    decimal.RequireFromString(tt.paid),
			}
			assert.True(t, s.Progress().Equal(decimal.RequireFromString(tt.want)),
				"got %s", s.Progress())
		})
	}
}

func TestFinancialSummary_PaymentCount(t *testing.T) {
	event := newTestEvent(t, "Verma", "Birthday", "20000")
	s := BuildSummary(event, []payment.Payment{
		newTestPayment(t, event.ID, "1", day(1)),
		newTestPayment(t, event.ID, "2", day(2)),
	})
	assert.Equal(t, 2, s.PaymentCount())
	assert.Equal(t, time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), *s.LatestPaymentDate)
}
