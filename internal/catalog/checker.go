package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
	"gorm.io/gorm"
)

// Checker answers the existence and referential-integrity questions mutations
// must ask before writing. Pure reads, no side effects.
type Checker struct {
	db *gorm.DB
}

// NewChecker builds a checker bound to the provided GORM DB.
func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// ProductExists reports whether an inventory record with the given product id exists.
func (c *Checker) ProductExists(ctx context.Context, productID uuid.UUID) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Model(&models.Inventory{}).
		Where("product_id = ?", productID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CategoriesExist reports whether the subcategory belongs to the category.
// A subcategory row carrying the category id implies the category itself
// exists; the schema's foreign key guarantees it.
func (c *Checker) CategoriesExist(ctx context.Context, categoryID, subCategoryID uuid.UUID) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Model(&models.SubCategory{}).
		Where("id = ? AND category_id = ?", subCategoryID, categoryID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
