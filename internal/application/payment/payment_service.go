package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/eventbook/backend/internal/domain/payment"
	"github.com/eventbook/backend/internal/domain/shared"
	"github.com/eventbook/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles payment mutations. The reconciliation engine never writes;
// this service is the only path that changes payment state, and it announces
// every change on the event bus so listening surfaces re-fetch their
// summaries.
type Service struct {
	payments  payment.Repository
	events    booking.CustomerEventRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewService creates a new payment Service
func NewService(
	payments payment.Repository,
	events booking.CustomerEventRepository,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		payments:  payments,
		events:    events,
		publisher: publisher,
		logger:    logger,
	}
}

// RecordPaymentRequest represents a request to record a payment
type RecordPaymentRequest struct {
	EventID     uuid.UUID
	PayerName   string
	Method      payment.Method
	Amount      valueobject.Money
	Status      payment.EntryStatus
	Reference   string
	Notes       string
	PaymentDate time.Time
}

// RecordPayment validates and persists a new payment against a customer
// event, then publishes payment.recorded.
func (s *Service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*payment.Payment, error) {
	if _, err := s.events.FindByID(ctx, req.EventID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNKNOWN_EVENT", "Cannot record a payment against an unknown event")
		}
		return nil, fmt.Errorf("failed to load owning event: %w", err)
	}

	p, err := payment.NewPayment(req.EventID, req.PayerName, req.Method, req.Amount, req.Status, req.PaymentDate)
	if err != nil {
		return nil, err
	}
	p.SetReference(req.Reference)
	p.SetNotes(req.Notes)

	if err := s.payments.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	if err := s.publisher.Publish(ctx, payment.NewRecordedEvent(p)); err != nil {
		s.logger.Warn("failed to publish payment recorded event",
			zap.String("payment_id", p.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("payment recorded",
		zap.String("payment_id", p.ID.String()),
		zap.String("event_id", p.EventID.String()),
		zap.String("amount", p.Amount.String()),
		zap.String("method", p.Method.String()),
	)

	return p, nil
}

// UpdatePayment applies an edit to an existing payment. The stored record is
// replaced by a new value with the same identifier and creation timestamp.
func (s *Service) UpdatePayment(ctx context.Context, id uuid.UUID, update payment.Update) (*payment.Payment, error) {
	existing, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := existing.WithUpdate(update)
	if err != nil {
		return nil, err
	}

	if err := s.payments.Save(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	if err := s.publisher.Publish(ctx, payment.NewUpdatedEvent(&next)); err != nil {
		s.logger.Warn("failed to publish payment updated event",
			zap.String("payment_id", next.ID.String()),
			zap.Error(err),
		)
	}

	return &next, nil
}

// DeletePayment removes a payment and publishes payment.deleted. Payments
// are never cascaded; deleting one affects only the derived summaries.
func (s *Service) DeletePayment(ctx context.Context, id uuid.UUID) error {
	existing, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.payments.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	if err := s.publisher.Publish(ctx, payment.NewDeletedEvent(existing)); err != nil {
		s.logger.Warn("failed to publish payment deleted event",
			zap.String("payment_id", id.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("payment deleted", zap.String("payment_id", id.String()))
	return nil
}

// GetPayment fetches a single payment by ID
func (s *Service) GetPayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	return s.payments.FindByID(ctx, id)
}
