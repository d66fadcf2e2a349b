package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/snackhouse/food-orders/orders/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedOrder(t *testing.T, repo *GormOrderRepository, createdAt time.Time, status models.OrderStatus) *models.Order {
	t.Helper()
	number, err := repo.GetNextOrderNumber()
	require.NoError(t, err)

	order := models.NewOrder(nil, "", number)
	require.NoError(t, order.AddItem(models.OrderItem{
		ProductID:   1,
		ProductName: "Burger",
		Quantity:    1,
		UnitPrice:   decimal.RequireFromString("10.00"),
		CreatedAt:   createdAt,
	}))
	order.Status = status
	order.CreatedAt = createdAt
	order.UpdatedAt = createdAt

	saved, err := repo.Add(order)
	require.NoError(t, err)
	return saved
}

func TestGetNextOrderNumberSequence(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))

	next, err := repo.GetNextOrderNumber()
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	first := seedOrder(t, repo, time.Now().UTC(), models.OrderStatusReceived)
	assert.Equal(t, 1, first.Number)

	second := seedOrder(t, repo, time.Now().UTC(), models.OrderStatusReceived)
	assert.Equal(t, 2, second.Number)
}

func TestGetNextOrderNumberFollowsMaxNotCount(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))

	now := time.Now().UTC()
	order100 := models.NewOrder(nil, "", 100)
	order100.CreatedAt = now
	_, err := repo.Add(order100)
	require.NoError(t, err)

	order101 := models.NewOrder(nil, "", 101)
	order101.CreatedAt = now
	saved101, err := repo.Add(order101)
	require.NoError(t, err)

	deleted, err := repo.Delete(saved101.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	next, err := repo.GetNextOrderNumber()
	require.NoError(t, err)
	assert.Equal(t, 101, next, "allocation follows max(number), not the row count")
}

func TestAddReloadsItems(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))

	saved := seedOrder(t, repo, time.Now().UTC(), models.OrderStatusReceived)

	require.Len(t, saved.Items, 1)
	assert.NotZero(t, saved.Items[0].ID)
	assert.Equal(t, saved.ID, saved.Items[0].OrderID)
	assert.True(t, saved.TotalAmount.Equal(decimal.RequireFromString("10.00")))
}

func TestAddRetriesOnDuplicateNumber(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))

	first := models.NewOrder(nil, "", 7)
	first.CreatedAt = time.Now().UTC()
	_, err := repo.Add(first)
	require.NoError(t, err)

	// Simulates two creators racing for the same pre-allocated number.
	second := models.NewOrder(nil, "", 7)
	second.CreatedAt = time.Now().UTC()
	saved, err := repo.Add(second)

	require.NoError(t, err)
	assert.Equal(t, 8, saved.Number)
}

func TestGetByIDWithItemsMissingOrder(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))

	order, err := repo.GetByIDWithItems(999)

	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestGetAllNewestFirst(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))

	base := time.Now().UTC().Add(-time.Hour)
	old := seedOrder(t, repo, base, models.OrderStatusReceived)
	recent := seedOrder(t, repo, base.Add(30*time.Minute), models.OrderStatusReceived)

	orders, err := repo.GetAll()

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, recent.ID, orders[0].ID)
	assert.Equal(t, old.ID, orders[1].ID)
	assert.Len(t, orders[0].Items, 1)
}

func TestGetActiveOrdersExcludesFinalizedOldestFirst(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))

	base := time.Now().UTC().Add(-time.Hour)
	first := seedOrder(t, repo, base, models.OrderStatusReceived)
	second := seedOrder(t, repo, base.Add(10*time.Minute), models.OrderStatusReady)
	seedOrder(t, repo, base.Add(20*time.Minute), models.OrderStatusFinalized)

	orders, err := repo.GetActiveOrders()

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}

func TestGetByStatusOldestFirst(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))

	base := time.Now().UTC().Add(-time.Hour)
	newer := seedOrder(t, repo, base.Add(10*time.Minute), models.OrderStatusReceived)
	older := seedOrder(t, repo, base, models.OrderStatusReceived)
	seedOrder(t, repo, base.Add(20*time.Minute), models.OrderStatusReady)

	orders, err := repo.GetByStatus(models.OrderStatusReceived)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, older.ID, orders[0].ID)
	assert.Equal(t, newer.ID, orders[1].ID)
}

func TestDeleteRemovesOrderAndItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)

	saved := seedOrder(t, repo, time.Now().UTC(), models.OrderStatusReceived)

	deleted, err := repo.Delete(saved.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", saved.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount, "items are removed with their order")

	again, err := repo.Delete(saved.ID)
	require.NoError(t, err)
	assert.False(t, again, "second delete finds nothing")
}

func TestUpdateRefreshesTimestamp(t *testing.T) {
	repo := NewGormOrderRepository(setupTestDB(t))

	saved := seedOrder(t, repo, time.Now().UTC().Add(-time.Hour), models.OrderStatusReceived)
	stale := saved.UpdatedAt

	saved.PaymentStatus = models.PaymentStatusPaid
	updated, err := repo.Update(saved)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)
	assert.True(t, updated.UpdatedAt.After(stale))
	require.Len(t, updated.Items, 1)
}
