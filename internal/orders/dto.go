package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
)

// OrderDTO is the read shape exposed to the transport layer.
type OrderDTO struct {
	OrderID      uuid.UUID
	ProductID    uuid.UUID
	Currency     string
	Quantity     int
	ShippingCost decimal.Decimal
	Amount       decimal.Decimal
	Channel      string
	ChannelGroup string
	Campaign     string
	DateTime     time.Time
}

// CreateOrderInput holds the payload to record a new order.
type CreateOrderInput struct {
	ProductID    uuid.UUID       `validate:"required"`
	Currency     string          `validate:"required,len=3"`
	Quantity     int             `validate:"required,gt=0"`
	ShippingCost decimal.Decimal `validate:"-"`
	Amount       decimal.Decimal `validate:"-"`
	Channel      string          `validate:"required"`
	ChannelGroup string          `validate:"required"`
	Campaign     string          `validate:"required"`
	DateTime     time.Time       `validate:"required"`
}

// NewOrderDTO maps an order record.
func NewOrderDTO(order *models.Order) OrderDTO {
	return OrderDTO{
		OrderID:      order.OrderID,
		ProductID:    order.ProductID,
		Currency:     order.Currency,
		Quantity:     order.Quantity,
		ShippingCost: order.ShippingCost,
		Amount:       order.Amount,
		Channel:      order.Channel,
		ChannelGroup: order.ChannelGroup,
		Campaign:     order.Campaign,
		DateTime:     order.DateTime,
	}
}

// NewOrderDTOs maps a slice of order records.
func NewOrderDTOs(rows []models.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, NewOrderDTO(&rows[i]))
	}
	return dtos
}
