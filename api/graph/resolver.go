package graph

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"
	"github.com/suryalovesjs/dema-inventory-service/api/validators"
	"github.com/suryalovesjs/dema-inventory-service/internal/catalog"
	"github.com/suryalovesjs/dema-inventory-service/internal/inventory"
	"github.com/suryalovesjs/dema-inventory-service/internal/orders"
	pkgerrors "github.com/suryalovesjs/dema-inventory-service/pkg/errors"
	"github.com/suryalovesjs/dema-inventory-service/pkg/logger"
	"github.com/suryalovesjs/dema-inventory-service/pkg/pagination"
)

// Resolver is the schema root. Every query and mutation hangs off it.
type Resolver struct {
	inventorySvc inventory.Service
	ordersSvc    orders.Service
	catalogRepo  *catalog.Repository
	logg         *logger.Logger
}

// NewResolver wires the root resolver to the domain services.
func NewResolver(
	inventorySvc inventory.Service,
	ordersSvc orders.Service,
	catalogRepo *catalog.Repository,
	logg *logger.Logger,
) (*Resolver, error) {
	if inventorySvc == nil {
		return nil, fmt.Errorf("inventory service required")
	}
	if ordersSvc == nil {
		return nil, fmt.Errorf("orders service required")
	}
	if catalogRepo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &Resolver{
		inventorySvc: inventorySvc,
		ordersSvc:    ordersSvc,
		catalogRepo:  catalogRepo,
		logg:         logg,
	}, nil
}

type searchArgs struct {
	Name *string
}

type filterArgs struct {
	Category    *string
	SubCategory *string
	InStock     *bool
}

type sortArgs struct {
	SortBy  string
	OrderBy string
}

type paginationArgs struct {
	Page     *int32
	PageSize *int32
}

type createInventoryArgs struct {
	Name          string
	Quantity      int32
	CategoryID    graphql.ID
	SubCategoryID graphql.ID
}

type updateInventoryArgs struct {
	ProductID     graphql.ID
	Name          *string
	Quantity      *int32
	CategoryID    *graphql.ID
	SubCategoryID *graphql.ID
}

type createOrderArgs struct {
	ProductID    graphql.ID
	Currency     string
	Quantity     int32
	ShippingCost float64
	Amount       float64
	Channel      string
	ChannelGroup string
	Campaign     string
	DateTime     graphql.Time
}

func (r *Resolver) GetInventories(ctx context.Context, args struct {
	Search     *searchArgs
	Filter     *filterArgs
	Sort       *sortArgs
	Pagination *paginationArgs
}) ([]*inventoryResolver, error) {
	input := inventory.ListInput{}

	if args.Search != nil {
		input.Search = &inventory.SearchInput{Name: args.Search.Name}
	}
	if args.Filter != nil {
		input.Filter = &inventory.FilterInput{
			Category:    args.Filter.Category,
			SubCategory: args.Filter.SubCategory,
			InStock:     args.Filter.InStock,
		}
	}
	if args.Sort != nil {
		input.Sort = &inventory.SortInput{
			SortBy:  inventory.SortField(args.Sort.SortBy),
			OrderBy: inventory.SortOrder(args.Sort.OrderBy),
		}
	}
	if args.Pagination != nil {
		input.Pagination = pagination.Params{
			Page:     fromInt32(args.Pagination.Page),
			PageSize: fromInt32(args.Pagination.PageSize),
		}
	}

	dtos, err := r.inventorySvc.FindAll(ctx, input)
	if err != nil {
		return nil, wrapErr(err)
	}
	return newInventoryResolvers(dtos), nil
}

func (r *Resolver) GetCategories(ctx context.Context) ([]*categoryResolver, error) {
	rows, err := r.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, wrapErr(pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list categories"))
	}

	resolvers := make([]*categoryResolver, 0, len(rows))
	for i := range rows {
		resolvers = append(resolvers, &categoryResolver{dto: *catalog.NewCategoryDTO(&rows[i])})
	}
	return resolvers, nil
}

func (r *Resolver) GetOrders(ctx context.Context, args struct {
	Skip *int32
	Take *int32
}) ([]*orderResolver, error) {
	dtos, err := r.ordersSvc.FindAll(ctx, fromInt32(args.Skip), fromInt32(args.Take))
	if err != nil {
		return nil, wrapErr(err)
	}
	return newOrderResolvers(dtos), nil
}

func (r *Resolver) FindOrder(ctx context.Context, args struct {
	OrderID graphql.ID
}) (*orderResolver, error) {
	orderID, err := parseID(args.OrderID, "orderId")
	if err != nil {
		return nil, wrapErr(err)
	}

	dto, err := r.ordersSvc.FindOne(ctx, orderID)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &orderResolver{dto: *dto}, nil
}

func (r *Resolver) CreateInventory(ctx context.Context, args struct {
	Input createInventoryArgs
}) (*inventoryResolver, error) {
	categoryID, err := parseID(args.Input.CategoryID, "categoryId")
	if err != nil {
		return nil, wrapErr(err)
	}
	subCategoryID, err := parseID(args.Input.SubCategoryID, "subCategoryId")
	if err != nil {
		return nil, wrapErr(err)
	}

	input := inventory.CreateInventoryInput{
		Name:          args.Input.Name,
		Quantity:      int(args.Input.Quantity),
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
	}
	if err := validators.ValidateInput(input); err != nil {
		return nil, wrapErr(err)
	}

	dto, err := r.inventorySvc.CreateOne(ctx, input)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &inventoryResolver{dto: *dto}, nil
}

func (r *Resolver) UpdateInventory(ctx context.Context, args struct {
	Input updateInventoryArgs
}) (*inventoryResolver, error) {
	input, err := toUpdateInput(args.Input)
	if err != nil {
		return nil, wrapErr(err)
	}
	if err := validators.ValidateInput(input); err != nil {
		return nil, wrapErr(err)
	}

	dto, err := r.inventorySvc.UpdateOne(ctx, input)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &inventoryResolver{dto: *dto}, nil
}

func (r *Resolver) BulkUpdateInventory(ctx context.Context, args struct {
	Inputs []updateInventoryArgs
}) ([]*inventoryResolver, error) {
	inputs := make([]inventory.UpdateInventoryInput, 0, len(args.Inputs))
	for _, raw := range args.Inputs {
		input, err := toUpdateInput(raw)
		if err != nil {
			return nil, wrapErr(err)
		}
		if err := validators.ValidateInput(input); err != nil {
			return nil, wrapErr(err)
		}
		inputs = append(inputs, input)
	}

	dtos, err := r.inventorySvc.UpdateMany(ctx, inputs)
	if err != nil {
		return nil, wrapErr(err)
	}
	return newInventoryResolvers(dtos), nil
}

func (r *Resolver) DeleteInventory(ctx context.Context, args struct {
	ProductID graphql.ID
}) (bool, error) {
	productID, err := parseID(args.ProductID, "productId")
	if err != nil {
		return false, wrapErr(err)
	}

	ok, err := r.inventorySvc.DeleteOne(ctx, productID)
	if err != nil {
		return false, wrapErr(err)
	}
	return ok, nil
}

func (r *Resolver) CreateOrder(ctx context.Context, args struct {
	Input createOrderArgs
}) (*orderResolver, error) {
	productID, err := parseID(args.Input.ProductID, "productId")
	if err != nil {
		return nil, wrapErr(err)
	}

	input := orders.CreateOrderInput{
		ProductID:    productID,
		Currency:     args.Input.Currency,
		Quantity:     int(args.Input.Quantity),
		ShippingCost: decimal.NewFromFloat(args.Input.ShippingCost),
		Amount:       decimal.NewFromFloat(args.Input.Amount),
		Channel:      args.Input.Channel,
		ChannelGroup: args.Input.ChannelGroup,
		Campaign:     args.Input.Campaign,
		DateTime:     args.Input.DateTime.Time,
	}
	if err := validators.ValidateInput(input); err != nil {
		return nil, wrapErr(err)
	}

	dto, err := r.ordersSvc.CreateOne(ctx, input)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &orderResolver{dto: *dto}, nil
}

func toUpdateInput(raw updateInventoryArgs) (inventory.UpdateInventoryInput, error) {
	productID, err := parseID(raw.ProductID, "productId")
	if err != nil {
		return inventory.UpdateInventoryInput{}, err
	}

	input := inventory.UpdateInventoryInput{
		ProductID: productID,
		Name:      raw.Name,
	}
	if raw.Quantity != nil {
		quantity := int(*raw.Quantity)
		input.Quantity = &quantity
	}
	if raw.CategoryID != nil {
		categoryID, err := parseID(*raw.CategoryID, "categoryId")
		if err != nil {
			return inventory.UpdateInventoryInput{}, err
		}
		input.CategoryID = &categoryID
	}
	if raw.SubCategoryID != nil {
		subCategoryID, err := parseID(*raw.SubCategoryID, "subCategoryId")
		if err != nil {
			return inventory.UpdateInventoryInput{}, err
		}
		input.SubCategoryID = &subCategoryID
	}
	return input, nil
}

func parseID(id graphql.ID, field string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(string(id))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s must be a valid uuid", field)).
			WithDetails(map[string]string{field: "must be a valid uuid"})
	}
	return parsed, nil
}

func fromInt32(value *int32) int {
	if value == nil {
		return 0
	}
	return int(*value)
}
