package persistence

import (
	"context"
	"errors"

	"github.com/eventbook/backend/internal/domain/booking"
	"github.com/eventbook/backend/internal/domain/shared"
	"github.com/eventbook/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerEventRepository implements CustomerEventRepository using GORM
type GormCustomerEventRepository struct {
	db *gorm.DB
}

// NewGormCustomerEventRepository creates a new GormCustomerEventRepository
func NewGormCustomerEventRepository(db *gorm.DB) *GormCustomerEventRepository {
	return &GormCustomerEventRepository{db: db}
}

// FindByID finds a customer event by its ID
func (r *GormCustomerEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.CustomerEvent, error) {
	var model models.CustomerEventModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewStoreError("find customer event", err)
	}
	return model.ToDomain(), nil
}

// ListAll returns every customer event, oldest booking first
func (r *GormCustomerEventRepository) ListAll(ctx context.Context) ([]booking.CustomerEvent, error) {
	var eventModels []models.CustomerEventModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, shared.NewStoreError("list customer events", err)
	}

	events := make([]booking.CustomerEvent, len(eventModels))
	for i := range eventModels {
		events[i] = *eventModels[i].ToDomain()
	}
	return events, nil
}

// Save creates or updates a customer event
func (r *GormCustomerEventRepository) Save(ctx context.Context, event *booking.CustomerEvent) error {
	var model models.CustomerEventModel
	model.FromDomain(event)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return shared.NewStoreError("save customer event", err)
	}
	return nil
}

// Delete removes a customer event by ID
func (r *GormCustomerEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerEventModel{}, "id = ?", id)
	if result.Error != nil {
		return shared.NewStoreError("delete customer event", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCustomerEventRepository implements the domain repository
var _ booking.CustomerEventRepository = (*GormCustomerEventRepository)(nil)
