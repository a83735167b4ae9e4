package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	bookingapp "github.com/eventbook/backend/internal/application/booking"
	paymentapp "github.com/eventbook/backend/internal/application/payment"
	reconapp "github.com/eventbook/backend/internal/application/reconciliation"
	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/eventbook/backend/internal/domain/payment"
	"github.com/eventbook/backend/internal/domain/shared"
	"github.com/eventbook/backend/internal/domain/shared/valueobject"
	"github.com/eventbook/backend/internal/interfaces/http/middleware"
	"github.com/eventbook/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// in-memory fakes shared by the handler tests

type fakeEventRepo struct {
	events []booking.CustomerEvent
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.CustomerEvent, error) {
	for i := range r.events {
		if r.events[i].ID == id {
			e := r.events[i]
			return &e, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeEventRepo) ListAll(_ context.Context) ([]booking.CustomerEvent, error) {
	return append([]booking.CustomerEvent(nil), r.events...), nil
}

func (r *fakeEventRepo) Save(_ context.Context, e *booking.CustomerEvent) error {
	for i := range r.events {
		if r.events[i].ID == e.ID {
			r.events[i] = *e
			return nil
		}
	}
	r.events = append(r.events, *e)
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type fakePaymentRepo struct {
	payments []payment.Payment
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*payment.Payment, error) {
	for i := range r.payments {
		if r.payments[i].ID == id {
			p := r.payments[i]
			return &p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakePaymentRepo) ListAll(_ context.Context) ([]payment.Payment, error) {
	return append([]payment.Payment(nil), r.payments...), nil
}

func (r *fakePaymentRepo) ListByEvent(_ context.Context, eventID uuid.UUID) ([]payment.Payment, error) {
	out := make([]payment.Payment, 0)
	for i := range r.payments {
		if r.payments[i].EventID == eventID {
			out = append(out, r.payments[i])
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Save(_ context.Context, p *payment.Payment) error {
	for i := range r.payments {
		if r.payments[i].ID == p.ID {
			r.payments[i] = *p
			return nil
		}
	}
	r.payments = append(r.payments, *p)
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.payments {
		if r.payments[i].ID == id {
			r.payments = append(r.payments[:i], r.payments[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, ...shared.DomainEvent) error { return nil }

// setupAPI wires the full HTTP surface over in-memory stores
func setupAPI(t *testing.T) (*gin.Engine, *fakeEventRepo, *fakePaymentRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	eventRepo := &fakeEventRepo{}
	paymentRepo := &fakePaymentRepo{}
	logger := zap.NewNop()
	publisher := nopPublisher{}

	paymentService := paymentapp.NewService(paymentRepo, eventRepo, publisher, logger)
	bookingService := bookingapp.NewService(eventRepo, publisher, logger)
	summaryService := reconapp.NewSummaryService(eventRepo, paymentRepo, logger)

	engine := gin.New()
	router.NewRouter(engine).
		Register(NewPaymentHandler(paymentService)).
		Register(NewEventHandler(bookingService)).
		Register(NewSummaryHandler(summaryService)).
		Setup()

	return engine, eventRepo, paymentRepo
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func seedAPIEvent(t *testing.T, repo *fakeEventRepo, customer, name, agreed string) booking.CustomerEvent {
	t.Helper()
	m, err := valueobject.NewMoneyINRFromString(agreed)
	require.NoError(t, err)
	e, err := booking.NewCustomerEvent(customer, name, time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC), m)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), e))
	return *e
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func dataListOf(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var resp struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestPaymentAPI_Record(t *testing.T) {
	engine, eventRepo, _ := setupAPI(t)
	event := seedAPIEvent(t, eventRepo, "Sharma", "Wedding", "100000.00")

	t.Run("records a valid payment", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/payments", `{
			"event_id": "`+event.ID.String()+`",
			"payer_name": "Rohit Sharma",
			"method": "UPI",
			"amount": "25000.00",
			"status": "PARTIAL",
			"reference": "UTR-001",
			"payment_date": "2026-10-02T00:00:00Z"
		}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		data := dataOf(t, w)
		assert.Equal(t, "25000.00", data["amount"])
		assert.Equal(t, "UPI", data["method"])
	})

	t.Run("rejects unrecognized method", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/payments", `{
			"event_id": "`+event.ID.String()+`",
			"payer_name": "Rohit Sharma",
			"method": "BARTER",
			"amount": "100.00",
			"payment_date": "2026-10-02T00:00:00Z"
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects payment against unknown event", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/payments", `{
			"event_id": "`+uuid.New().String()+`",
			"payer_name": "Rohit Sharma",
			"method": "CASH",
			"amount": "100.00",
			"payment_date": "2026-10-02T00:00:00Z"
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("rejects malformed amount", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/payments", `{
			"event_id": "`+event.ID.String()+`",
			"payer_name": "Rohit Sharma",
			"method": "CASH",
			"amount": "not-a-number",
			"payment_date": "2026-10-02T00:00:00Z"
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentAPI_UpdateAndDelete(t *testing.T) {
	engine, eventRepo, paymentRepo := setupAPI(t)
	event := seedAPIEvent(t, eventRepo, "Sharma", "Wedding", "100000.00")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/payments", `{
		"event_id": "`+event.ID.String()+`",
		"payer_name": "Rohit Sharma",
		"method": "UPI",
		"amount": "1000.00",
		"payment_date": "2026-10-02T00:00:00Z"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)
	paymentID := dataOf(t, w)["id"].(string)

	t.Run("partial update", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPut, "/api/v1/payments/"+paymentID, `{"amount": "1500.00"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := dataOf(t, w)
		assert.Equal(t, "1500.00", data["amount"])
		assert.Equal(t, "Rohit Sharma", data["payer_name"])
	})

	t.Run("get returns the updated payment", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/payments/"+paymentID, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1500.00", dataOf(t, w)["amount"])
	})

	t.Run("delete removes the payment", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, "/api/v1/payments/"+paymentID, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, paymentRepo.payments)

		w = doJSON(t, engine, http.MethodGet, "/api/v1/payments/"+paymentID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id is a bad request", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/payments/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventAPI(t *testing.T) {
	engine, _, _ := setupAPI(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/events", `{
		"customer_name": "Sharma",
		"event_name": "Wedding Reception",
		"event_date": "2026-11-20T00:00:00Z",
		"agreed_amount": "250000.00"
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := dataOf(t, w)
	assert.Equal(t, "ACTIVE", created["state"])
	eventID := created["id"].(string)

	t.Run("list includes the booked event", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/events", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, dataListOf(t, w), 1)
	})

	t.Run("cancel via update", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPut, "/api/v1/events/"+eventID, `{"state": "CANCELLED"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "CANCELLED", dataOf(t, w)["state"])
	})

	t.Run("invalid state is rejected by binding", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPut, "/api/v1/events/"+eventID, `{"state": "PAUSED"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, "/api/v1/events/"+eventID, "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, engine, http.MethodGet, "/api/v1/events/"+eventID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSummaryAPI(t *testing.T) {
	engine, eventRepo, paymentRepo := setupAPI(t)

	wedding := seedAPIEvent(t, eventRepo, "Sharma", "Wedding", "100000.00")
	seedAPIEvent(t, eventRepo, "Anand", "Conference", "50000.00")

	m, err := valueobject.NewMoneyINRFromString("85000.00")
	require.NoError(t, err)
	p, err := payment.NewPayment(wedding.ID, "Rohit Sharma", payment.MethodUPI, m,
		payment.EntryStatusPartial, time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, paymentRepo.Save(context.Background(), p))

	t.Run("lists summaries sorted by name by default", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/summaries", "")
		require.Equal(t, http.StatusOK, w.Code)

		list := dataListOf(t, w)
		require.Len(t, list, 2)
		assert.Equal(t, "Anand", list[0]["customer_name"])
		assert.Equal(t, "Sharma", list[1]["customer_name"])
	})

	t.Run("filters summaries by status", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/summaries?filter_mode=status&filter_value=partial", "")
		require.Equal(t, http.StatusOK, w.Code)

		list := dataListOf(t, w)
		require.Len(t, list, 1)
		assert.Equal(t, "Sharma", list[0]["customer_name"])
		assert.Equal(t, "15000.00", list[0]["remaining"])
	})

	t.Run("single event summary", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/summaries/"+wedding.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)

		data := dataOf(t, w)
		assert.Equal(t, "PARTIAL", data["status"])
		assert.Equal(t, "85000.00", data["total_paid"])
		assert.Equal(t, float64(1), data["payment_count"])
	})

	t.Run("payment list honors criteria", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/payments?search=rohit", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, dataListOf(t, w), 1)

		w = doJSON(t, engine, http.MethodGet, "/api/v1/payments?filter_mode=method&filter_value=cash", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, dataListOf(t, w))
	})

	t.Run("bad date range is rejected", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/payments?date_from=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown summary id is not found", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/summaries/"+uuid.New().String(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
