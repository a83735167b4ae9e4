package handler

import (
	"time"

	bookingapp "github.com/eventbook/backend/internal/application/booking"
	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/eventbook/backend/internal/domain/shared/valueobject"
	"github.com/gin-gonic/gin"
)

// EventHandler handles customer event API endpoints
type EventHandler struct {
	BaseHandler
	bookingService *bookingapp.Service
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(bookingService *bookingapp.Service) *EventHandler {
	return &EventHandler{bookingService: bookingService}
}

// CreateEventRequest is the payload for booking a customer event
type CreateEventRequest struct {
	CustomerName string    `json:"customer_name" binding:"required,max=200"`
	EventName    string    `json:"event_name" binding:"required,max=200"`
	EventDate    time.Time `json:"event_date" binding:"required"`
	AgreedAmount string    `json:"agreed_amount" binding:"required"`
	Notes        string    `json:"notes"`
}

// UpdateEventRequest is the payload for editing a customer event. Absent
// fields keep their stored values.
type UpdateEventRequest struct {
	CustomerName *string    `json:"customer_name" binding:"omitempty,max=200"`
	EventName    *string    `json:"event_name" binding:"omitempty,max=200"`
	EventDate    *time.Time `json:"event_date"`
	AgreedAmount *string    `json:"agreed_amount"`
	State        *string    `json:"state" binding:"omitempty,oneof=ACTIVE COMPLETED CANCELLED"`
	Notes        *string    `json:"notes"`
}

// EventResponse represents a customer event in API responses
type EventResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	EventName    string    `json:"event_name"`
	EventDate    time.Time `json:"event_date"`
	AgreedAmount string    `json:"agreed_amount"`
	State        string    `json:"state"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toEventResponse(e *booking.CustomerEvent) EventResponse {
	return EventResponse{
		ID:           e.ID.String(),
		CustomerName: e.CustomerName,
		EventName:    e.EventName,
		EventDate:    e.EventDate,
		AgreedAmount: e.AgreedAmount.StringFixed(2),
		State:        e.State.String(),
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// Create handles POST /events
func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	amount, err := valueobject.NewMoneyINRFromString(req.AgreedAmount)
	if err != nil {
		h.BadRequest(c, "agreed_amount is not a valid decimal number")
		return
	}

	event, err := h.bookingService.CreateEvent(c.Request.Context(), bookingapp.CreateEventRequest{
		CustomerName: req.CustomerName,
		EventName:    req.EventName,
		EventDate:    req.EventDate,
		AgreedAmount: amount,
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toEventResponse(event))
}

// List handles GET /events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.bookingService.ListEvents(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = toEventResponse(&events[i])
	}
	h.Success(c, responses)
}

// Get handles GET /events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	event, err := h.bookingService.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toEventResponse(event))
}

// Update handles PUT /events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	update := booking.EventUpdate{
		CustomerName: req.CustomerName,
		EventName:    req.EventName,
		EventDate:    req.EventDate,
		Notes:        req.Notes,
	}
	if req.AgreedAmount != nil {
		amount, err := valueobject.NewMoneyINRFromString(*req.AgreedAmount)
		if err != nil {
			h.BadRequest(c, "agreed_amount is not a valid decimal number")
			return
		}
		update.AgreedAmount = &amount
	}
	if req.State != nil {
		state := booking.EventState(*req.State)
		update.State = &state
	}

	event, err := h.bookingService.UpdateEvent(c.Request.Context(), id, update)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toEventResponse(event))
}

// Delete handles DELETE /events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.bookingService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers customer event routes on the API group
func (h *EventHandler) RegisterRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/:id", h.Get)
		events.PUT("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
