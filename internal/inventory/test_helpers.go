package inventory

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
	"gorm.io/gorm"
)

func mustCreateCategory(t *testing.T, tx *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:   uuid.New(),
		Name: name,
	}
	if err := tx.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

func mustCreateSubCategory(t *testing.T, tx *gorm.DB, categoryID uuid.UUID, name string) *models.SubCategory {
	t.Helper()
	sub := &models.SubCategory{
		ID:         uuid.New(),
		Name:       name,
		CategoryID: categoryID,
	}
	if err := tx.Create(sub).Error; err != nil {
		t.Fatalf("create sub_category: %v", err)
	}
	return sub
}

func mustCreateInventory(t *testing.T, tx *gorm.DB, name string, quantity int, categoryID, subCategoryID uuid.UUID) *models.Inventory {
	t.Helper()
	item := &models.Inventory{
		ProductID:     uuid.New(),
		Name:          name,
		Quantity:      quantity,
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
	}
	if err := tx.Create(item).Error; err != nil {
		t.Fatalf("create inventory: %v", err)
	}
	return item
}

func mustCreateOrder(t *testing.T, tx *gorm.DB, productID uuid.UUID) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderID:      uuid.New(),
		ProductID:    productID,
		Currency:     "USD",
		Quantity:     1,
		ShippingCost: decimal.NewFromFloat(4.99),
		Amount:       decimal.NewFromFloat(19.99),
		Channel:      fmt.Sprintf("channel-%s", uuid.NewString()[:8]),
		ChannelGroup: "paid",
		Campaign:     "spring",
		DateTime:     time.Now().UTC(),
	}
	if err := tx.Create(order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}
