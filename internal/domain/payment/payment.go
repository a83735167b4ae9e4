package payment

import (
	"time"

	"github.com/eventbook/backend/internal/domain/shared"
	"github.com/eventbook/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Method represents how the money was received
type Method string

const (
	MethodCash         Method = "CASH"
	MethodCheque       Method = "CHEQUE"
	MethodBankTransfer Method = "BANK_TRANSFER"
	MethodUPI          Method = "UPI"
	MethodCard         Method = "CARD"
	MethodNetBanking   Method = "NET_BANKING"
	MethodOther        Method = "OTHER"
	MethodAdjustment   Method = "ADJUSTMENT"
)

// AllMethods lists every recognized payment method
var AllMethods = []Method{
	MethodCash, MethodCheque, MethodBankTransfer, MethodUPI,
	MethodCard, MethodNetBanking, MethodOther, MethodAdjustment,
}

// IsValid checks if the method is a recognized payment method
func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodCheque, MethodBankTransfer, MethodUPI,
		MethodCard, MethodNetBanking, MethodOther, MethodAdjustment:
		return true
	}
	return false
}

// String returns the string representation of Method
func (m Method) String() string {
	return string(m)
}

// EntryStatus is the status recorded at entry time by the person logging the
// payment. It is independent of the derived reconciliation status, which is
// always recomputed from amounts.
type EntryStatus string

const (
	EntryStatusPending EntryStatus = "PENDING"
	EntryStatusPartial EntryStatus = "PARTIAL"
	EntryStatusFull    EntryStatus = "FULL"
)

// IsValid checks if the entry status is valid
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusPending, EntryStatusPartial, EntryStatusFull:
		return true
	}
	return false
}

// String returns the string representation of EntryStatus
func (s EntryStatus) String() string {
	return string(s)
}

// Payment is one recorded money movement against a customer event's agreed
// amount. Values are immutable once created; edits go through WithUpdate,
// which yields a new value with the same identity.
type Payment struct {
	shared.BaseEntity
	EventID     uuid.UUID
	PayerName   string
	Method      Method
	Amount      decimal.Decimal
	Status      EntryStatus
	Reference   string
	Notes       string
	PaymentDate time.Time
}

// NewPayment creates a new payment record. Validation happens here, before
// the value can enter the reconciliation engine.
func NewPayment(
	eventID uuid.UUID,
	payerName string,
	method Method,
	amount valueobject.Money,
	status EntryStatus,
	paymentDate time.Time,
) (*Payment, error) {
	if eventID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EVENT", "Owning event ID cannot be empty")
	}
	if payerName == "" {
		return nil, shared.NewDomainError("INVALID_PAYER", "Payer name cannot be empty")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Payment method is not recognized")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount cannot be negative")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTRY_STATUS", "Payment entry status is not valid")
	}
	if paymentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date is required")
	}

	return &Payment{
		BaseEntity:  shared.NewBaseEntity(),
		EventID:     eventID,
		PayerName:   payerName,
		Method:      method,
		Amount:      amount.Amount(),
		Status:      status,
		PaymentDate: paymentDate,
	}, nil
}

// Update carries the fields an edit may override. Nil fields keep the
// existing value.
type Update struct {
	PayerName   *string
	Method      *Method
	Amount      *valueobject.Money
	Status      *EntryStatus
	Reference   *string
	Notes       *string
	PaymentDate *time.Time
}

// WithUpdate returns a new Payment with the given fields overridden.
// Identity, owning event and creation timestamp are preserved; the receiver
// is never mutated, so Payment values can be shared freely.
func (p Payment) WithUpdate(u Update) (Payment, error) {
	next := p

	if u.PayerName != nil {
		if *u.PayerName == "" {
			return Payment{}, shared.NewDomainError("INVALID_PAYER", "Payer name cannot be empty")
		}
		next.PayerName = *u.PayerName
	}
	if u.Method != nil {
		if !u.Method.IsValid() {
			return Payment{}, shared.NewDomainError("INVALID_METHOD", "Payment method is not recognized")
		}
		next.Method = *u.Method
	}
	if u.Amount != nil {
		if u.Amount.IsNegative() {
			return Payment{}, shared.NewDomainError("INVALID_AMOUNT", "Payment amount cannot be negative")
		}
		next.Amount = u.Amount.Amount()
	}
	if u.Status != nil {
		if !u.Status.IsValid() {
			return Payment{}, shared.NewDomainError("INVALID_ENTRY_STATUS", "Payment entry status is not valid")
		}
		next.Status = *u.Status
	}
	if u.Reference != nil {
		next.Reference = *u.Reference
	}
	if u.Notes != nil {
		next.Notes = *u.Notes
	}
	if u.PaymentDate != nil {
		if u.PaymentDate.IsZero() {
			return Payment{}, shared.NewDomainError("INVALID_DATE", "Payment date is required")
		}
		next.PaymentDate = *u.PaymentDate
	}

	next.UpdatedAt = time.Now()
	return next, nil
}

// GetAmountMoney returns the amount as Money
func (p *Payment) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyINR(p.Amount)
}

// SetReference sets the optional free-text reference
func (p *Payment) SetReference(reference string) {
	p.Reference = reference
}

// SetNotes sets the optional notes
func (p *Payment) SetNotes(notes string) {
	p.Notes = notes
}
