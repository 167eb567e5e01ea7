package catalog

import (
	"github.com/google/uuid"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
)

// CategoryDTO is the read shape exposed to the transport layer.
type CategoryDTO struct {
	ID            uuid.UUID
	Name          string
	SubCategories []SubCategoryDTO
}

// SubCategoryDTO is the read shape for a subcategory.
type SubCategoryDTO struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID
}

// NewCategoryDTO maps a category record with its subcategories.
func NewCategoryDTO(category *models.Category) *CategoryDTO {
	if category == nil {
		return nil
	}
	dto := &CategoryDTO{
		ID:            category.ID,
		Name:          category.Name,
		SubCategories: make([]SubCategoryDTO, 0, len(category.SubCategories)),
	}
	for _, sub := range category.SubCategories {
		dto.SubCategories = append(dto.SubCategories, NewSubCategoryDTO(&sub))
	}
	return dto
}

// NewSubCategoryDTO maps a subcategory record.
func NewSubCategoryDTO(sub *models.SubCategory) SubCategoryDTO {
	return SubCategoryDTO{
		ID:         sub.ID,
		Name:       sub.Name,
		CategoryID: sub.CategoryID,
	}
}
