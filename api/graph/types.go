package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/suryalovesjs/dema-inventory-service/internal/catalog"
	"github.com/suryalovesjs/dema-inventory-service/internal/inventory"
	"github.com/suryalovesjs/dema-inventory-service/internal/orders"
)

type inventoryResolver struct {
	dto inventory.InventoryDTO
}

func (r *inventoryResolver) ProductID() graphql.ID { return graphql.ID(r.dto.ProductID.String()) }
func (r *inventoryResolver) Name() string          { return r.dto.Name }
func (r *inventoryResolver) Quantity() int32       { return int32(r.dto.Quantity) }
func (r *inventoryResolver) InStock() bool         { return r.dto.InStock }
func (r *inventoryResolver) TotalOrders() int32    { return int32(r.dto.TotalOrders) }

func (r *inventoryResolver) Category() *categoryResolver {
	if r.dto.Category == nil {
		return nil
	}
	return &categoryResolver{dto: *r.dto.Category}
}

func (r *inventoryResolver) SubCategory() *subCategoryResolver {
	if r.dto.SubCategory == nil {
		return nil
	}
	return &subCategoryResolver{dto: *r.dto.SubCategory}
}

func (r *inventoryResolver) Orders() []*orderResolver {
	return newOrderResolvers(r.dto.Orders)
}

func newInventoryResolvers(dtos []inventory.InventoryDTO) []*inventoryResolver {
	resolvers := make([]*inventoryResolver, 0, len(dtos))
	for _, dto := range dtos {
		resolvers = append(resolvers, &inventoryResolver{dto: dto})
	}
	return resolvers
}

type categoryResolver struct {
	dto catalog.CategoryDTO
}

func (r *categoryResolver) ID() graphql.ID { return graphql.ID(r.dto.ID.String()) }
func (r *categoryResolver) Name() string   { return r.dto.Name }

func (r *categoryResolver) SubCategories() []*subCategoryResolver {
	resolvers := make([]*subCategoryResolver, 0, len(r.dto.SubCategories))
	for _, sub := range r.dto.SubCategories {
		resolvers = append(resolvers, &subCategoryResolver{dto: sub})
	}
	return resolvers
}

type subCategoryResolver struct {
	dto catalog.SubCategoryDTO
}

func (r *subCategoryResolver) ID() graphql.ID         { return graphql.ID(r.dto.ID.String()) }
func (r *subCategoryResolver) Name() string           { return r.dto.Name }
func (r *subCategoryResolver) CategoryID() graphql.ID { return graphql.ID(r.dto.CategoryID.String()) }

type orderResolver struct {
	dto orders.OrderDTO
}

func (r *orderResolver) OrderID() graphql.ID   { return graphql.ID(r.dto.OrderID.String()) }
func (r *orderResolver) ProductID() graphql.ID { return graphql.ID(r.dto.ProductID.String()) }
func (r *orderResolver) Currency() string      { return r.dto.Currency }
func (r *orderResolver) Quantity() int32       { return int32(r.dto.Quantity) }

// Money fields are stored as exact decimals; the wire type is Float.
func (r *orderResolver) ShippingCost() float64 { return r.dto.ShippingCost.InexactFloat64() }
func (r *orderResolver) Amount() float64       { return r.dto.Amount.InexactFloat64() }

func (r *orderResolver) Channel() string      { return r.dto.Channel }
func (r *orderResolver) ChannelGroup() string { return r.dto.ChannelGroup }
func (r *orderResolver) Campaign() string     { return r.dto.Campaign }
func (r *orderResolver) DateTime() graphql.Time {
	return graphql.Time{Time: r.dto.DateTime}
}

func newOrderResolvers(dtos []orders.OrderDTO) []*orderResolver {
	resolvers := make([]*orderResolver, 0, len(dtos))
	for _, dto := range dtos {
		resolvers = append(resolvers, &orderResolver{dto: dto})
	}
	return resolvers
}
