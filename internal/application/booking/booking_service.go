package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/eventbook/backend/internal/domain/shared"
	"github.com/eventbook/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles customer event bookings. The reconciliation engine reads
// events but never changes them; edits here (notably to the agreed amount)
// are announced on the bus so summaries get rebuilt.
type Service struct {
	events    booking.CustomerEventRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewService creates a new booking Service
func NewService(events booking.CustomerEventRepository, publisher shared.EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		events:    events,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateEventRequest represents a request to book a customer event
type CreateEventRequest struct {
	CustomerName string
	EventName    string
	EventDate    time.Time
	AgreedAmount valueobject.Money
	Notes        string
}

// CreateEvent books a new customer event
func (s *Service) CreateEvent(ctx context.Context, req CreateEventRequest) (*booking.CustomerEvent, error) {
	event, err := booking.NewCustomerEvent(req.CustomerName, req.EventName, req.EventDate, req.AgreedAmount)
	if err != nil {
		return nil, err
	}
	event.Notes = req.Notes

	if err := s.events.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to save customer event: %w", err)
	}

	if err := s.publisher.Publish(ctx, booking.NewCustomerEventCreatedEvent(event)); err != nil {
		s.logger.Warn("failed to publish event created",
			zap.String("event_id", event.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("customer event booked",
		zap.String("event_id", event.ID.String()),
		zap.String("customer", event.CustomerName),
		zap.String("agreed_amount", event.AgreedAmount.String()),
	)

	return event, nil
}

// UpdateEvent applies an edit to an existing customer event
func (s *Service) UpdateEvent(ctx context.Context, id uuid.UUID, update booking.EventUpdate) (*booking.CustomerEvent, error) {
	existing, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := existing.WithUpdate(update)
	if err != nil {
		return nil, err
	}

	if err := s.events.Save(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to save customer event: %w", err)
	}

	if err := s.publisher.Publish(ctx, booking.NewCustomerEventUpdatedEvent(&next)); err != nil {
		s.logger.Warn("failed to publish event updated",
			zap.String("event_id", next.ID.String()),
			zap.Error(err),
		)
	}

	return &next, nil
}

// DeleteEvent removes a customer event. Its payments are not cascaded; they
// simply stop appearing in summaries once the event is gone.
func (s *Service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	existing, err := s.events.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer event: %w", err)
	}

	if err := s.publisher.Publish(ctx, booking.NewCustomerEventDeletedEvent(existing)); err != nil {
		s.logger.Warn("failed to publish event deleted",
			zap.String("event_id", id.String()),
			zap.Error(err),
		)
	}

	return nil
}

// GetEvent fetches a single customer event by ID
func (s *Service) GetEvent(ctx context.Context, id uuid.UUID) (*booking.CustomerEvent, error) {
	return s.events.FindByID(ctx, id)
}

// ListEvents returns all customer events
func (s *Service) ListEvents(ctx context.Context) ([]booking.CustomerEvent, error) {
	return s.events.ListAll(ctx)
}
