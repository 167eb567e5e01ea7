package models

import (
	"time"

	"github.com/google/uuid"
)

// Category owns a collection of subcategories.
type Category struct {
	ID            uuid.UUID     `gorm:"column:id;type:uuid;primaryKey"`
	Name          string        `gorm:"column:name;not null"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
