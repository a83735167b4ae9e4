package handler

import (
	"time"

	paymentapp "github.com/eventbook/backend/internal/application/payment"
	"github.com/eventbook/backend/internal/domain/payment"
	"github.com/eventbook/backend/internal/domain/shared/valueobject"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *paymentapp.Service
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *paymentapp.Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordPaymentRequest is the payload for recording a payment
type RecordPaymentRequest struct {
	EventID     string    `json:"event_id" binding:"required,uuid"`
	PayerName   string    `json:"payer_name" binding:"required,max=200"`
	Method      string    `json:"method" binding:"required,paymentmethod"`
	Amount      string    `json:"amount" binding:"required"`
	Status      string    `json:"status" binding:"omitempty,oneof=PENDING PARTIAL FULL"`
	Reference   string    `json:"reference" binding:"max=100"`
	Notes       string    `json:"notes"`
	PaymentDate time.Time `json:"payment_date" binding:"required"`
}

// UpdatePaymentRequest is the payload for editing a payment. Absent fields
// keep their stored values.
type UpdatePaymentRequest struct {
	PayerName   *string    `json:"payer_name" binding:"omitempty,max=200"`
	Method      *string    `json:"method" binding:"omitempty,paymentmethod"`
	Amount      *string    `json:"amount"`
	Status      *string    `json:"status" binding:"omitempty,oneof=PENDING PARTIAL FULL"`
	Reference   *string    `json:"reference" binding:"omitempty,max=100"`
	Notes       *string    `json:"notes"`
	PaymentDate *time.Time `json:"payment_date"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	PayerName   string    `json:"payer_name"`
	Method      string    `json:"method"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	Reference   string    `json:"reference,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	PaymentDate time.Time `json:"payment_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID.String(),
		EventID:     p.EventID.String(),
		PayerName:   p.PayerName,
		Method:      p.Method.String(),
		Amount:      p.Amount.StringFixed(2),
		Status:      p.Status.String(),
		Reference:   p.Reference,
		Notes:       p.Notes,
		PaymentDate: p.PaymentDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Record handles POST /payments
func (h *PaymentHandler) Record(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		h.BadRequest(c, "event_id is not a valid UUID")
		return
	}
	amount, err := valueobject.NewMoneyINRFromString(req.Amount)
	if err != nil {
		h.BadRequest(c, "amount is not a valid decimal number")
		return
	}
	status := payment.EntryStatus(req.Status)
	if req.Status == "" {
		status = payment.EntryStatusPending
	}

	p, err := h.paymentService.RecordPayment(c.Request.Context(), paymentapp.RecordPaymentRequest{
		EventID:     eventID,
		PayerName:   req.PayerName,
		Method:      payment.Method(req.Method),
		Amount:      amount,
		Status:      status,
		Reference:   req.Reference,
		Notes:       req.Notes,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toPaymentResponse(p))
}

// Get handles GET /payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	p, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPaymentResponse(p))
}

// Update handles PUT /payments/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	update := payment.Update{
		PayerName:   req.PayerName,
		Reference:   req.Reference,
		Notes:       req.Notes,
		PaymentDate: req.PaymentDate,
	}
	if req.Method != nil {
		method := payment.Method(*req.Method)
		update.Method = &method
	}
	if req.Amount != nil {
		amount, err := valueobject.NewMoneyINRFromString(*req.Amount)
		if err != nil {
			h.BadRequest(c, "amount is not a valid decimal number")
			return
		}
		update.Amount = &amount
	}
	if req.Status != nil {
		status := payment.EntryStatus(*req.Status)
		update.Status = &status
	}

	p, err := h.paymentService.UpdatePayment(c.Request.Context(), id, update)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPaymentResponse(p))
}

// Delete handles DELETE /payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// parseID reads and validates the :id path parameter
func (h *BaseHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "id is not a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// RegisterRoutes registers payment routes on the API group
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Record)
		payments.GET("/:id", h.Get)
		payments.PUT("/:id", h.Update)
		payments.DELETE("/:id", h.Delete)
	}
}
