package handler

import (
	"time"

	reconapp "github.com/eventbook/backend/internal/application/reconciliation"
	"github.com/eventbook/backend/internal/domain/reconciliation"
	"github.com/gin-gonic/gin"
)

// SummaryHandler exposes the reconciliation read side: filtered payment
// lists and per-event financial summaries. Everything here is derived on
// demand; nothing is cached between requests.
type SummaryHandler struct {
	BaseHandler
	summaryService *reconapp.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService *reconapp.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// CriteriaRequest carries the filter and sort query parameters. Unknown
// sort or filter tokens fall back to defaults rather than erroring.
type CriteriaRequest struct {
	Search      string `form:"search"`
	FilterMode  string `form:"filter_mode"`
	FilterValue string `form:"filter_value"`
	Sort        string `form:"sort"`
	Order       string `form:"order" binding:"omitempty,oneof=asc desc"`
	DateFrom    string `form:"date_from"`
	DateTo      string `form:"date_to"`
}

func (r *CriteriaRequest) toCriteria(defaults reconciliation.Criteria) (reconciliation.Criteria, error) {
	criteria := defaults

	if r.Search != "" {
		criteria.SearchTerm = r.Search
	}
	if r.FilterMode != "" {
		criteria.FilterMode = reconciliation.ParseFilterMode(r.FilterMode, criteria.FilterMode)
	}
	if r.FilterValue != "" {
		criteria.FilterValue = r.FilterValue
	}
	if r.Sort != "" {
		criteria.SortKey = reconciliation.ParseSortKey(r.Sort, criteria.SortKey)
	}
	if r.Order != "" {
		criteria.SortAscending = r.Order == "asc"
	}
	if r.DateFrom != "" {
		from, err := time.Parse(time.RFC3339, r.DateFrom)
		if err != nil {
			return criteria, err
		}
		criteria.DateFrom = &from
	}
	if r.DateTo != "" {
		to, err := time.Parse(time.RFC3339, r.DateTo)
		if err != nil {
			return criteria, err
		}
		criteria.DateTo = &to
	}

	return criteria, nil
}

// SummaryResponse represents one event's financial summary
type SummaryResponse struct {
	EventID           string            `json:"event_id"`
	CustomerName      string            `json:"customer_name"`
	EventName         string            `json:"event_name"`
	EventDate         time.Time         `json:"event_date"`
	EventState        string            `json:"event_state"`
	AgreedAmount      string            `json:"agreed_amount"`
	TotalPaid         string            `json:"total_paid"`
	Remaining         string            `json:"remaining"`
	Overpaid          bool              `json:"overpaid"`
	Status            string            `json:"status"`
	Progress          float64           `json:"progress"`
	PaymentCount      int               `json:"payment_count"`
	LatestPaymentDate *time.Time        `json:"latest_payment_date,omitempty"`
	Payments          []PaymentResponse `json:"payments"`
}

func toSummaryResponse(s *reconciliation.FinancialSummary) SummaryResponse {
	payments := make([]PaymentResponse, len(s.Payments))
	for i := range s.Payments {
		payments[i] = toPaymentResponse(&s.Payments[i])
	}
	return SummaryResponse{
		EventID:           s.EventID.String(),
		CustomerName:      s.CustomerName,
		EventName:         s.EventName,
		EventDate:         s.EventDate,
		EventState:        s.EventState.String(),
		AgreedAmount:      s.AgreedAmount.StringFixed(2),
		TotalPaid:         s.TotalPaid.StringFixed(2),
		Remaining:         s.Remaining.StringFixed(2),
		Overpaid:          s.Overpaid,
		Status:            s.Status.String(),
		Progress:          s.Progress().InexactFloat64(),
		PaymentCount:      s.PaymentCount(),
		LatestPaymentDate: s.LatestPaymentDate,
		Payments:          payments,
	}
}

// ListSummaries handles GET /summaries
func (h *SummaryHandler) ListSummaries(c *gin.Context) {
	var req CriteriaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	criteria, err := req.toCriteria(reconciliation.DefaultSummaryCriteria())
	if err != nil {
		h.BadRequest(c, "date_from and date_to must be RFC3339 timestamps")
		return
	}

	summaries, err := h.summaryService.ListSummaries(c.Request.Context(), criteria)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]SummaryResponse, len(summaries))
	for i := range summaries {
		responses[i] = toSummaryResponse(&summaries[i])
	}
	h.Success(c, responses)
}

// GetSummary handles GET /summaries/:id
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	summary, err := h.summaryService.GetEventSummary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toSummaryResponse(summary))
}

// ListPayments handles GET /payments
func (h *SummaryHandler) ListPayments(c *gin.Context) {
	var req CriteriaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	criteria, err := req.toCriteria(reconciliation.DefaultPaymentCriteria())
	if err != nil {
		h.BadRequest(c, "date_from and date_to must be RFC3339 timestamps")
		return
	}

	payments, err := h.summaryService.ListPayments(c.Request.Context(), criteria)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = toPaymentResponse(&payments[i])
	}
	h.Success(c, responses)
}

// RegisterRoutes registers reconciliation read routes on the API group
func (h *SummaryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments", h.ListPayments)

	summaries := rg.Group("/summaries")
	{
		summaries.GET("", h.ListSummaries)
		summaries.GET("/:id", h.GetSummary)
	}
}
