package models

import (
	"time"

	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/shopspring/decimal"
)

// CustomerEventModel is the persistence model for a booked customer event.
type CustomerEventModel struct {
	BaseModel
	CustomerName string             `gorm:"type:varchar(200);not null;index"`
	EventName    string             `gorm:"type:varchar(200);not null"`
	EventDate    time.Time          `gorm:"not null;index"`
	AgreedAmount decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	State        booking.EventState `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	Notes        string             `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerEventModel) TableName() string {
	return "customer_events"
}

// ToDomain converts the persistence model to a domain CustomerEvent
func (m *CustomerEventModel) ToDomain() *booking.CustomerEvent {
	return &booking.CustomerEvent{
		BaseEntity:   m.BaseModel.ToDomain(),
		CustomerName: m.CustomerName,
		EventName:    m.EventName,
		EventDate:    m.EventDate,
		AgreedAmount: m.AgreedAmount,
		State:        m.State,
		Notes:        m.Notes,
	}
}

// FromDomain populates the persistence model from a domain CustomerEvent
func (m *CustomerEventModel) FromDomain(e *booking.CustomerEvent) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.CustomerName = e.CustomerName
	m.EventName = e.EventName
	m.EventDate = e.EventDate
	m.AgreedAmount = e.AgreedAmount
	m.State = e.State
	m.Notes = e.Notes
}
