package inventory

import (
	"github.com/google/uuid"
	"github.com/suryalovesjs/dema-inventory-service/internal/catalog"
	"github.com/suryalovesjs/dema-inventory-service/internal/orders"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
	"github.com/suryalovesjs/dema-inventory-service/pkg/pagination"
)

// SortField enumerates the supported sort keys.
type SortField string

const (
	SortByQuantity    SortField = "quantity"
	SortByTotalOrders SortField = "totalOrders"
)

// SortOrder enumerates sort directions.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchInput restricts results by item name (substring match).
type SearchInput struct {
	Name *string
}

// FilterInput holds the optional filter knobs. Absent fields impose no
// restriction; InStock is tri-state on purpose.
type FilterInput struct {
	Category    *string
	SubCategory *string
	InStock     *bool
}

// SortInput selects a sort key and direction.
type SortInput struct {
	SortBy  SortField
	OrderBy SortOrder
}

// ListInput captures the inputs needed to search/filter/paginate inventory.
type ListInput struct {
	Search     *SearchInput
	Filter     *FilterInput
	Pagination pagination.Params
	Sort       *SortInput
}

// CreateInventoryInput holds the validated payload to create an item.
type CreateInventoryInput struct {
	Name          string    `validate:"required"`
	Quantity      int       `validate:"gte=0"`
	CategoryID    uuid.UUID `validate:"required"`
	SubCategoryID uuid.UUID `validate:"required"`
}

// UpdateInventoryInput holds optional mutation values for an item. Pointer
// fields distinguish "absent" from zero values, so Quantity of 0 is a real
// update rather than a dropped field.
type UpdateInventoryInput struct {
	ProductID     uuid.UUID `validate:"required"`
	Name          *string   `validate:"omitempty,min=1"`
	Quantity      *int      `validate:"omitempty,gte=0"`
	CategoryID    *uuid.UUID
	SubCategoryID *uuid.UUID
}

// InventoryDTO is the read shape exposed to the transport layer, enriched
// with relations and the derived inStock/totalOrders fields.
type InventoryDTO struct {
	ProductID   uuid.UUID
	Name        string
	Quantity    int
	InStock     bool
	TotalOrders int
	Category    *catalog.CategoryDTO
	SubCategory *catalog.SubCategoryDTO
	Orders      []orders.OrderDTO
}

// NewInventoryDTO maps an inventory record with whatever relations were loaded.
func NewInventoryDTO(item *models.Inventory) *InventoryDTO {
	if item == nil {
		return nil
	}
	dto := &InventoryDTO{
		ProductID:   item.ProductID,
		Name:        item.Name,
		Quantity:    item.Quantity,
		InStock:     item.InStock(),
		TotalOrders: len(item.Orders),
		Orders:      orders.NewOrderDTOs(item.Orders),
	}
	if item.Category != nil {
		dto.Category = catalog.NewCategoryDTO(item.Category)
	}
	if item.SubCategory != nil {
		sub := catalog.NewSubCategoryDTO(item.SubCategory)
		dto.SubCategory = &sub
	}
	return dto
}

// NewInventoryDTOs maps a slice of inventory records.
func NewInventoryDTOs(rows []models.Inventory) []InventoryDTO {
	dtos := make([]InventoryDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *NewInventoryDTO(&rows[i]))
	}
	return dtos
}
