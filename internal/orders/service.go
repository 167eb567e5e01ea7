package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
	pkgerrors "github.com/suryalovesjs/dema-inventory-service/pkg/errors"
	"github.com/suryalovesjs/dema-inventory-service/pkg/pagination"
)

type productChecker interface {
	ProductExists(ctx context.Context, productID uuid.UUID) (bool, error)
}

// Service exposes order read and create operations. Orders are immutable
// after creation; there is deliberately no update or delete here.
type Service interface {
	FindAll(ctx context.Context, skip, take int) ([]OrderDTO, error)
	FindOne(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error)
	CreateOne(ctx context.Context, input CreateOrderInput) (*OrderDTO, error)
}

type service struct {
	repo    Repository
	checker productChecker
}

// NewService constructs an order service instance.
func NewService(repo Repository, checker productChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if checker == nil {
		return nil, fmt.Errorf("product checker required")
	}
	return &service{repo: repo, checker: checker}, nil
}

// FindAll returns a store-default-ordered page of orders.
func (s *service) FindAll(ctx context.Context, skip, take int) ([]OrderDTO, error) {
	if skip < 0 {
		skip = 0
	}
	if take <= 0 {
		take = pagination.DefaultPageSize
	}
	if take > pagination.MaxPageSize {
		take = pagination.MaxPageSize
	}

	rows, err := s.repo.List(ctx, skip, take)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list orders")
	}
	return NewOrderDTOs(rows), nil
}

// FindOne returns the unique order with the given id.
func (s *service) FindOne(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("order with id %s not found", orderID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load order")
	}
	dto := NewOrderDTO(order)
	return &dto, nil
}

// CreateOne records a new order under a generated order id. The referenced
// product must exist.
func (s *service) CreateOne(ctx context.Context, input CreateOrderInput) (*OrderDTO, error) {
	exists, err := s.checker.ProductExists(ctx, input.ProductID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check product")
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidReference,
			fmt.Sprintf("product with id %s does not exist", input.ProductID))
	}

	order := &models.Order{
		OrderID:      uuid.New(),
		ProductID:    input.ProductID,
		Currency:     input.Currency,
		Quantity:     input.Quantity,
		ShippingCost: input.ShippingCost,
		Amount:       input.Amount,
		Channel:      input.Channel,
		ChannelGroup: input.ChannelGroup,
		Campaign:     input.Campaign,
		DateTime:     input.DateTime,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order")
	}

	dto := NewOrderDTO(created)
	return &dto, nil
}
