package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suryalovesjs/dema-inventory-service/pkg/db/models"
	pkgerrors "github.com/suryalovesjs/dema-inventory-service/pkg/errors"
	"gorm.io/gorm"
)

type fakeProductChecker struct {
	known map[uuid.UUID]bool
	err   error
}

func (f *fakeProductChecker) ProductExists(_ context.Context, productID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.known[productID], nil
}

func seedOrder(t *testing.T, db *gorm.DB, productID uuid.UUID, quantity int) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderID:      uuid.New(),
		ProductID:    productID,
		Currency:     "USD",
		Quantity:     quantity,
		ShippingCost: decimal.NewFromFloat(4.99),
		Amount:       decimal.NewFromFloat(59.90),
		Channel:      "web",
		ChannelGroup: "organic",
		Campaign:     "none",
		DateTime:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestFindAllPagesOrders(t *testing.T) {
	db := setupOrdersTestDB(t)
	productID := uuid.New()
	for i := 0; i < 12; i++ {
		seedOrder(t, db, productID, i+1)
	}

	svc, err := NewService(NewRepository(db), &fakeProductChecker{})
	require.NoError(t, err)
	ctx := context.Background()

	page, err := svc.FindAll(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, page, 10)

	rest, err := svc.FindAll(ctx, 10, 10)
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	// negative skip and zero take fall back to defaults
	defaulted, err := svc.FindAll(ctx, -5, 0)
	require.NoError(t, err)
	assert.Len(t, defaulted, 10)
}

func TestFindOne(t *testing.T) {
	db := setupOrdersTestDB(t)
	seeded := seedOrder(t, db, uuid.New(), 3)

	svc, err := NewService(NewRepository(db), &fakeProductChecker{})
	require.NoError(t, err)
	ctx := context.Background()

	found, err := svc.FindOne(ctx, seeded.OrderID)
	require.NoError(t, err)
	assert.Equal(t, seeded.OrderID, found.OrderID)
	assert.Equal(t, seeded.ProductID, found.ProductID)
	assert.True(t, seeded.Amount.Equal(found.Amount))

	_, err = svc.FindOne(ctx, uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestCreateOneRequiresExistingProduct(t *testing.T) {
	db := setupOrdersTestDB(t)
	productID := uuid.New()
	checker := &fakeProductChecker{known: map[uuid.UUID]bool{productID: true}}

	svc, err := NewService(NewRepository(db), checker)
	require.NoError(t, err)
	ctx := context.Background()

	input := CreateOrderInput{
		ProductID:    uuid.New(),
		Currency:     "SEK",
		Quantity:     2,
		ShippingCost: decimal.NewFromInt(5),
		Amount:       decimal.NewFromInt(200),
		Channel:      "web",
		ChannelGroup: "paid",
		Campaign:     "spring",
		DateTime:     time.Now().UTC(),
	}

	_, err = svc.CreateOne(ctx, input)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInvalidReference, typed.Code())

	var count int64
	require.NoError(t, db.Table("orders").Count(&count).Error)
	assert.Zero(t, count)

	input.ProductID = productID
	created, err := svc.CreateOne(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.OrderID)
	assert.Equal(t, productID, created.ProductID)
	assert.Equal(t, "SEK", created.Currency)
	assert.True(t, created.Amount.Equal(decimal.NewFromInt(200)))
}

func TestNewServiceRequiresDeps(t *testing.T) {
	if _, err := NewService(nil, &fakeProductChecker{}); err == nil {
		t.Fatal("expected error for nil repository")
	}
	db := setupOrdersTestDB(t)
	if _, err := NewService(NewRepository(db), nil); err == nil {
		t.Fatal("expected error for nil checker")
	}
}
