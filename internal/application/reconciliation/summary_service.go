package reconciliation

import (
	"context"
	"fmt"

	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/eventbook/backend/internal/domain/payment"
	"github.com/eventbook/backend/internal/domain/reconciliation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SummaryService is the read side of the engine: it snapshots events and
// payments from the store, builds summaries, and runs the filter/sort
// pipeline. Every call works on a fresh snapshot; nothing is cached, so a
// failed fetch can never leave half-updated state behind — the error goes
// straight back to the caller.
type SummaryService struct {
	events   booking.CustomerEventRepository
	payments payment.Repository
	logger   *zap.Logger
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(
	events booking.CustomerEventRepository,
	payments payment.Repository,
	logger *zap.Logger,
) *SummaryService {
	return &SummaryService{
		events:   events,
		payments: payments,
		logger:   logger,
	}
}

// BuildSummaries fetches all events and payments and builds one summary per
// event, in the stored events' order.
func (s *SummaryService) BuildSummaries(ctx context.Context) ([]reconciliation.FinancialSummary, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	summaries := reconciliation.BuildSummaries(events, payments)
	s.logger.Debug("summaries rebuilt",
		zap.Int("events", len(events)),
		zap.Int("payments", len(payments)),
	)
	return summaries, nil
}

// ListSummaries builds all summaries and applies the filter/sort pipeline.
// The returned order is what list views, dashboards and export serialize
// verbatim.
func (s *SummaryService) ListSummaries(ctx context.Context, criteria reconciliation.Criteria) ([]reconciliation.FinancialSummary, error) {
	summaries, err := s.BuildSummaries(ctx)
	if err != nil {
		return nil, err
	}
	return reconciliation.ApplyToSummaries(summaries, criteria), nil
}

// ListPayments fetches all raw payment records and applies the filter/sort
// pipeline, bypassing aggregation — the individual payments view.
func (s *SummaryService) ListPayments(ctx context.Context, criteria reconciliation.Criteria) ([]payment.Payment, error) {
	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	return reconciliation.ApplyToPayments(payments, criteria), nil
}

// GetEventSummary builds the summary for a single customer event
func (s *SummaryService) GetEventSummary(ctx context.Context, eventID uuid.UUID) (*reconciliation.FinancialSummary, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	summary := reconciliation.BuildSummary(*event, payments)
	return &summary, nil
}
