package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
	"gorm.io/gorm"
)

// totalOrdersExpr is the derived sort key: the count of orders per item.
const totalOrdersExpr = "(SELECT COUNT(*) FROM orders WHERE orders.product_id = inventories.product_id)"

// ListQuery carries the translated predicate/sort/window for a list call.
type ListQuery struct {
	Search *SearchInput
	Filter *FilterInput
	Sort   *SortInput
	Offset int
	Limit  int
}

// Repository wires together inventory persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns a page of inventory items matching the conjunction of all
// present predicates, with category, subcategory, and orders attached.
func (r *Repository) List(ctx context.Context, query ListQuery) ([]models.Inventory, error) {
	qb := r.db.WithContext(ctx).
		Model(&models.Inventory{}).
		Select("inventories.*").
		Preload("Category").
		Preload("SubCategory").
		Preload("Orders")

	if query.Search != nil && query.Search.Name != nil {
		pattern := "%" + strings.ToLower(*query.Search.Name) + "%"
		qb = qb.Where("LOWER(inventories.name) LIKE ?", pattern)
	}

	if filter := query.Filter; filter != nil {
		if filter.Category != nil {
			pattern := "%" + strings.ToLower(*filter.Category) + "%"
			qb = qb.
				Joins("JOIN categories ON categories.id = inventories.category_id").
				Where("LOWER(categories.name) LIKE ?", pattern)
		}
		if filter.SubCategory != nil {
			qb = qb.
				Joins("JOIN sub_categories ON sub_categories.id = inventories.sub_category_id").
				Where("sub_categories.name = ?", *filter.SubCategory)
		}
		if filter.InStock != nil {
			if *filter.InStock {
				qb = qb.Where("inventories.quantity > 0")
			} else {
				qb = qb.Where("inventories.quantity = 0")
			}
		}
	}

	if clause := orderClause(query.Sort); clause != "" {
		qb = qb.Order(clause)
	}

	var rows []models.Inventory
	err := qb.
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&rows).
		Error
	return rows, err
}

func orderClause(sort *SortInput) string {
	if sort == nil || sort.SortBy == "" {
		return ""
	}
	dir := "ASC"
	if sort.OrderBy == SortDesc {
		dir = "DESC"
	}
	switch sort.SortBy {
	case SortByQuantity:
		return "inventories.quantity " + dir
	case SortByTotalOrders:
		return totalOrdersExpr + " " + dir
	}
	return ""
}

// FindByProductID loads the item without associations.
func (r *Repository) FindByProductID(ctx context.Context, productID uuid.UUID) (*models.Inventory, error) {
	var item models.Inventory
	if err := r.db.WithContext(ctx).First(&item, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetDetail loads the item with category, subcategory, and orders attached.
func (r *Repository) GetDetail(ctx context.Context, productID uuid.UUID) (*models.Inventory, error) {
	var item models.Inventory
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		Preload("Orders").
		First(&item, "product_id = ?", productID).
		Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new inventory row.
func (r *Repository) Create(ctx context.Context, item *models.Inventory) (*models.Inventory, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// ApplyUpdate writes only the supplied columns to an existing row.
func (r *Repository) ApplyUpdate(ctx context.Context, productID uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Inventory{}).
		Where("product_id = ?", productID).
		Updates(updates).
		Error
}

// Delete removes an inventory row by product id.
func (r *Repository) Delete(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.Inventory{}).
		Error
}
