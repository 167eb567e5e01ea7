package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for orders.
type Repository interface {
	List(ctx context.Context, offset, limit int) ([]models.Order, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, offset, limit int) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Find(&rows).
		Error
	return rows, err
}

func (r *repository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}
