package persistence

import (
	"context"
	"errors"

	"github.com/eventbook/backend/internal/domain/payment"
	"github.com/eventbook/backend/internal/domain/shared"
	"github.com/eventbook/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentRepository implements payment.Repository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewStoreError("find payment", err)
	}
	return model.ToDomain(), nil
}

// ListAll returns every payment, oldest record first
func (r *GormPaymentRepository) ListAll(ctx context.Context) ([]payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, shared.NewStoreError("list payments", err)
	}
	return toDomainPayments(paymentModels), nil
}

// ListByEvent returns the payments recorded against one customer event
func (r *GormPaymentRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, shared.NewStoreError("list payments by event", err)
	}
	return toDomainPayments(paymentModels), nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	var model models.PaymentModel
	model.FromDomain(p)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return shared.NewStoreError("save payment", err)
	}
	return nil
}

// Delete removes a payment by ID
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return shared.NewStoreError("delete payment", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainPayments(paymentModels []models.PaymentModel) []payment.Payment {
	payments := make([]payment.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = *paymentModels[i].ToDomain()
	}
	return payments
}

// Ensure GormPaymentRepository implements the domain repository
var _ payment.Repository = (*GormPaymentRepository)(nil)
