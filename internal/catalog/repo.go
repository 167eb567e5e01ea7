package catalog

import (
	"context"

	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles category and subcategory reads.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListCategories returns every category with its subcategories attached.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).
		Preload("SubCategories").
		Order("name ASC").
		Find(&rows).
		Error
	return rows, err
}
