package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/eventbook/backend/internal/domain/payment"
	"github.com/eventbook/backend/internal/domain/shared"
	"github.com/eventbook/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingHandler implements EventHandler for testing
type recordingHandler struct {
	eventTypes []string
	handled    []shared.DomainEvent
	err        error
	mu         sync.Mutex
}

func newRecordingHandler(eventTypes ...string) *recordingHandler {
	return &recordingHandler{
		eventTypes: eventTypes,
		handled:    make([]shared.DomainEvent, 0),
	}
}

func (h *recordingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.eventTypes
}

func (h *recordingHandler) getHandled() []shared.DomainEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]shared.DomainEvent(nil), h.handled...)
}

func newRecordedEvent(t *testing.T) *payment.RecordedEvent {
	t.Helper()
	p, err := payment.NewPayment(uuid.New(), "Payer", payment.MethodUPI,
		valueobject.NewMoneyINRFromFloat(500), payment.EntryStatusPartial, time.Now())
	require.NoError(t, err)
	return payment.NewRecordedEvent(p)
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := newRecordingHandler(payment.EventTypePaymentRecorded)
	bus.Subscribe(handler)

	evt := newRecordedEvent(t)
	require.NoError(t, bus.Publish(context.Background(), evt))

	handled := handler.getHandled()
	require.Len(t, handled, 1)
	assert.Equal(t, evt, handled[0])
}

func TestInMemoryEventBus_Publish_MultipleHandlers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler1 := newRecordingHandler(payment.EventTypePaymentRecorded)
	handler2 := newRecordingHandler(payment.EventTypePaymentRecorded)
	bus.Subscribe(handler1)
	bus.Subscribe(handler2)

	require.NoError(t, bus.Publish(context.Background(), newRecordedEvent(t)))
	assert.Len(t, handler1.getHandled(), 1)
	assert.Len(t, handler2.getHandled(), 1)
}

func TestInMemoryEventBus_Publish_WildcardHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	wildcard := newRecordingHandler()
	bus.Subscribe(wildcard)

	require.NoError(t, bus.Publish(context.Background(), newRecordedEvent(t)))
	assert.Len(t, wildcard.getHandled(), 1)
}

func TestInMemoryEventBus_Publish_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	failing := newRecordingHandler(payment.EventTypePaymentRecorded)
	failing.err = errors.New("refresh failed")
	healthy := newRecordingHandler(payment.EventTypePaymentRecorded)
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), newRecordedEvent(t)))
	assert.Len(t, failing.getHandled(), 1)
	assert.Len(t, healthy.getHandled(), 1)
}

func TestInMemoryEventBus_Publish_NoMatchingHandlers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := newRecordingHandler(booking.EventTypeCustomerEventDeleted)
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newRecordedEvent(t)))
	assert.Empty(t, handler.getHandled())
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := newRecordingHandler(payment.EventTypePaymentRecorded)
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newRecordedEvent(t)))
	assert.Len(t, handler.getHandled(), 1)

	bus.Unsubscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newRecordedEvent(t)))
	assert.Len(t, handler.getHandled(), 1)
}

func TestInMemoryEventBus_StartStop(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	ctx := context.Background()
	require.NoError(t, bus.Start(ctx))

	handler := newRecordingHandler(payment.EventTypePaymentRecorded)
	bus.Subscribe(handler)
	require.NoError(t, bus.Publish(ctx, newRecordedEvent(t)))
	assert.Len(t, handler.getHandled(), 1)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, bus.Stop(stopCtx))
}

func TestHandlerRegistry(t *testing.T) {
	t.Run("specific types", func(t *testing.T) {
		registry := NewHandlerRegistry()
		handler := newRecordingHandler(payment.EventTypePaymentRecorded, payment.EventTypePaymentUpdated)

		registry.Register(handler, payment.EventTypePaymentRecorded, payment.EventTypePaymentUpdated)

		assert.Len(t, registry.GetHandlers(payment.EventTypePaymentRecorded), 1)
		assert.Len(t, registry.GetHandlers(payment.EventTypePaymentUpdated), 1)
		assert.Empty(t, registry.GetHandlers(payment.EventTypePaymentDeleted))
	})

	t.Run("wildcard sees every type", func(t *testing.T) {
		registry := NewHandlerRegistry()
		registry.Register(newRecordingHandler())

		assert.Len(t, registry.GetHandlers(payment.EventTypePaymentRecorded), 1)
		assert.Len(t, registry.GetHandlers(booking.EventTypeCustomerEventCreated), 1)
	})

	t.Run("unregister removes from all types", func(t *testing.T) {
		registry := NewHandlerRegistry()
		handler1 := newRecordingHandler(payment.EventTypePaymentRecorded)
		handler2 := newRecordingHandler(payment.EventTypePaymentRecorded)
		registry.Register(handler1, payment.EventTypePaymentRecorded)
		registry.Register(handler2, payment.EventTypePaymentRecorded)

		registry.Unregister(handler1)

		handlers := registry.GetHandlers(payment.EventTypePaymentRecorded)
		require.Len(t, handlers, 1)
		assert.Equal(t, shared.EventHandler(handler2), handlers[0])
	})

	t.Run("all handlers deduplicated", func(t *testing.T) {
		registry := NewHandlerRegistry()
		handler := newRecordingHandler(payment.EventTypePaymentRecorded, payment.EventTypePaymentUpdated)
		registry.Register(handler, payment.EventTypePaymentRecorded, payment.EventTypePaymentUpdated)
		registry.Register(newRecordingHandler())

		assert.Len(t, registry.GetAllHandlers(), 2)
	})
}
