package models

import (
	"time"

	"github.com/google/uuid"
)

// Inventory is a stocked product linked to a category/subcategory pair.
type Inventory struct {
	ProductID     uuid.UUID    `gorm:"column:product_id;type:uuid;primaryKey"`
	Name          string       `gorm:"column:name;not null"`
	Quantity      int          `gorm:"column:quantity;not null;default:0"`
	CategoryID    uuid.UUID    `gorm:"column:category_id;type:uuid;not null"`
	SubCategoryID uuid.UUID    `gorm:"column:sub_category_id;type:uuid;not null"`
	Category      *Category    `gorm:"foreignKey:CategoryID"`
	SubCategory   *SubCategory `gorm:"foreignKey:SubCategoryID"`
	Orders        []Order      `gorm:"foreignKey:ProductID;references:ProductID"`
	CreatedAt     time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the plural the migrations use.
func (Inventory) TableName() string { return "inventories" }

// InStock reports whether any quantity remains.
func (i Inventory) InStock() bool { return i.Quantity > 0 }
