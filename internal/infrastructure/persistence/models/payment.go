package models

import (
	"time"

	"github.com/eventbook/backend/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for a recorded payment.
type PaymentModel struct {
	BaseModel
	EventID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	PayerName   string              `gorm:"type:varchar(200);not null;index"`
	Method      payment.Method      `gorm:"type:varchar(20);not null;index"`
	Amount      decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Status      payment.EntryStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Reference   string              `gorm:"type:varchar(100)"`
	Notes       string              `gorm:"type:text"`
	PaymentDate time.Time           `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() *payment.Payment {
	return &payment.Payment{
		BaseEntity:  m.BaseModel.ToDomain(),
		EventID:     m.EventID,
		PayerName:   m.PayerName,
		Method:      m.Method,
		Amount:      m.Amount,
		Status:      m.Status,
		Reference:   m.Reference,
		Notes:       m.Notes,
		PaymentDate: m.PaymentDate,
	}
}

// FromDomain populates the persistence model from a domain Payment
func (m *PaymentModel) FromDomain(p *payment.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.EventID = p.EventID
	m.PayerName = p.PayerName
	m.Method = p.Method
	m.Amount = p.Amount
	m.Status = p.Status
	m.Reference = p.Reference
	m.Notes = p.Notes
	m.PaymentDate = p.PaymentDate
}
