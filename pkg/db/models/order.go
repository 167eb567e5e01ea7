package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order records a purchase of an inventory item with its marketing attribution.
// Orders are immutable once created; no update or delete path exists.
type Order struct {
	OrderID      uuid.UUID       `gorm:"column:order_id;type:uuid;primaryKey"`
	ProductID    uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	Currency     string          `gorm:"column:currency;not null"`
	Quantity     int             `gorm:"column:quantity;not null"`
	ShippingCost decimal.Decimal `gorm:"column:shipping_cost;type:numeric(12,2);not null"`
	Amount       decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	Channel      string          `gorm:"column:channel;not null"`
	ChannelGroup string          `gorm:"column:channel_group;not null"`
	Campaign     string          `gorm:"column:campaign;not null"`
	DateTime     time.Time       `gorm:"column:date_time;not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
}
