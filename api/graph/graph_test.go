package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suryalovesjs/dema-inventory-service/internal/catalog"
	"github.com/suryalovesjs/dema-inventory-service/internal/inventory"
	"github.com/suryalovesjs/dema-inventory-service/internal/orders"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSchema(t *testing.T) (*graphql.Schema, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{`
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS sub_categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  category_id TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS inventories (
  product_id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0,
  category_id TEXT NOT NULL,
  sub_category_id TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE IF NOT EXISTS orders (
  order_id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  currency TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  shipping_cost NUMERIC NOT NULL DEFAULT 0,
  amount NUMERIC NOT NULL DEFAULT 0,
  channel TEXT NOT NULL DEFAULT '',
  channel_group TEXT NOT NULL DEFAULT '',
  campaign TEXT NOT NULL DEFAULT '',
  date_time DATETIME NOT NULL,
  created_at DATETIME
);`}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	checker := catalog.NewChecker(db)
	inventorySvc, err := inventory.NewService(inventory.NewRepository(db), checker)
	require.NoError(t, err)
	ordersSvc, err := orders.NewService(orders.NewRepository(db), checker)
	require.NoError(t, err)
	resolver, err := NewResolver(inventorySvc, ordersSvc, catalog.NewRepository(db), nil)
	require.NoError(t, err)

	schema, err := graphql.ParseSchema(Schema, resolver, graphql.MaxParallelism(10))
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	})
	return schema, db
}

func seedCatalogPair(t *testing.T, db *gorm.DB) (*models.Category, *models.SubCategory) {
	t.Helper()
	category := &models.Category{ID: uuid.New(), Name: "Clothes"}
	require.NoError(t, db.Create(category).Error)
	sub := &models.SubCategory{ID: uuid.New(), Name: "Shirts", CategoryID: category.ID}
	require.NoError(t, db.Create(sub).Error)
	return category, sub
}

func TestCreateAndQueryInventory(t *testing.T) {
	schema, db := setupSchema(t)
	ctx := context.Background()
	category, sub := seedCatalogPair(t, db)

	createQuery := `
		mutation($input: CreateInventoryInput!) {
			createInventory(input: $input) {
				productId
				name
				quantity
				inStock
				totalOrders
				category { name }
				subCategory { name }
			}
		}`
	vars := map[string]any{
		"input": map[string]any{
			"name":          "Linen Shirt",
			"quantity":      5,
			"categoryId":    category.ID.String(),
			"subCategoryId": sub.ID.String(),
		},
	}

	resp := schema.Exec(ctx, createQuery, "", vars)
	require.Empty(t, resp.Errors)

	var created struct {
		CreateInventory struct {
			ProductID   string `json:"productId"`
			Name        string `json:"name"`
			Quantity    int    `json:"quantity"`
			InStock     bool   `json:"inStock"`
			TotalOrders int    `json:"totalOrders"`
			Category    struct {
				Name string `json:"name"`
			} `json:"category"`
			SubCategory struct {
				Name string `json:"name"`
			} `json:"subCategory"`
		} `json:"createInventory"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "Linen Shirt", created.CreateInventory.Name)
	assert.Equal(t, 5, created.CreateInventory.Quantity)
	assert.True(t, created.CreateInventory.InStock)
	assert.Zero(t, created.CreateInventory.TotalOrders)
	assert.Equal(t, "Clothes", created.CreateInventory.Category.Name)
	assert.Equal(t, "Shirts", created.CreateInventory.SubCategory.Name)

	listQuery := `
		query {
			getInventories(filter: { inStock: true }, sort: { sortBy: quantity, orderBy: desc }) {
				productId
				name
			}
		}`
	resp = schema.Exec(ctx, listQuery, "", nil)
	require.Empty(t, resp.Errors)

	var listed struct {
		GetInventories []struct {
			ProductID string `json:"productId"`
			Name      string `json:"name"`
		} `json:"getInventories"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &listed))
	require.Len(t, listed.GetInventories, 1)
	assert.Equal(t, created.CreateInventory.ProductID, listed.GetInventories[0].ProductID)
}

func TestCreateInventoryRejectsMismatchedPair(t *testing.T) {
	schema, db := setupSchema(t)
	ctx := context.Background()
	category, _ := seedCatalogPair(t, db)

	query := `
		mutation($input: CreateInventoryInput!) {
			createInventory(input: $input) { productId }
		}`
	vars := map[string]any{
		"input": map[string]any{
			"name":          "Laptop",
			"quantity":      1,
			"categoryId":    category.ID.String(),
			"subCategoryId": uuid.NewString(),
		},
	}

	resp := schema.Exec(ctx, query, "", vars)
	require.Len(t, resp.Errors, 1)
	require.NotNil(t, resp.Errors[0].Extensions)
	assert.Equal(t, "INVALID_REFERENCE", resp.Errors[0].Extensions["code"])
}

func TestDeleteInventoryUnknownIDSurfacesNotFound(t *testing.T) {
	schema, _ := setupSchema(t)

	query := fmt.Sprintf(`mutation { deleteInventory(productId: %q) }`, uuid.NewString())
	resp := schema.Exec(context.Background(), query, "", nil)
	require.Len(t, resp.Errors, 1)
	require.NotNil(t, resp.Errors[0].Extensions)
	assert.Equal(t, "NOT_FOUND", resp.Errors[0].Extensions["code"])
}

func TestCreateOrderAndFindOrder(t *testing.T) {
	schema, db := setupSchema(t)
	ctx := context.Background()
	category, sub := seedCatalogPair(t, db)

	item := &models.Inventory{
		ProductID:     uuid.New(),
		Name:          "Linen Shirt",
		Quantity:      5,
		CategoryID:    category.ID,
		SubCategoryID: sub.ID,
	}
	require.NoError(t, db.Create(item).Error)

	createQuery := `
		mutation($input: CreateOrderInput!) {
			createOrder(input: $input) {
				orderId
				productId
				currency
				amount
			}
		}`
	vars := map[string]any{
		"input": map[string]any{
			"productId":    item.ProductID.String(),
			"currency":     "USD",
			"quantity":     2,
			"shippingCost": 4.99,
			"amount":       59.9,
			"channel":      "web",
			"channelGroup": "organic",
			"campaign":     "spring",
			"dateTime":     "2024-03-01T12:00:00Z",
		},
	}

	resp := schema.Exec(ctx, createQuery, "", vars)
	require.Empty(t, resp.Errors)

	var created struct {
		CreateOrder struct {
			OrderID   string  `json:"orderId"`
			ProductID string  `json:"productId"`
			Currency  string  `json:"currency"`
			Amount    float64 `json:"amount"`
		} `json:"createOrder"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, item.ProductID.String(), created.CreateOrder.ProductID)
	assert.Equal(t, "USD", created.CreateOrder.Currency)
	assert.InDelta(t, 59.9, created.CreateOrder.Amount, 0.001)

	findQuery := fmt.Sprintf(`query { findOrder(orderId: %q) { orderId quantity } }`, created.CreateOrder.OrderID)
	resp = schema.Exec(ctx, findQuery, "", nil)
	require.Empty(t, resp.Errors)

	var found struct {
		FindOrder struct {
			OrderID  string `json:"orderId"`
			Quantity int    `json:"quantity"`
		} `json:"findOrder"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &found))
	assert.Equal(t, created.CreateOrder.OrderID, found.FindOrder.OrderID)
	assert.Equal(t, 2, found.FindOrder.Quantity)
}

func TestGetCategories(t *testing.T) {
	schema, db := setupSchema(t)
	seedCatalogPair(t, db)

	resp := schema.Exec(context.Background(), `query { getCategories { name subCategories { name } } }`, "", nil)
	require.Empty(t, resp.Errors)

	var listed struct {
		GetCategories []struct {
			Name          string `json:"name"`
			SubCategories []struct {
				Name string `json:"name"`
			} `json:"subCategories"`
		} `json:"getCategories"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &listed))
	require.Len(t, listed.GetCategories, 1)
	assert.Equal(t, "Clothes", listed.GetCategories[0].Name)
	require.Len(t, listed.GetCategories[0].SubCategories, 1)
	assert.Equal(t, "Shirts", listed.GetCategories[0].SubCategories[0].Name)
}
