package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/store"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// every pooled connection would get its own in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.OrderRecord{})
	require.NoError(t, err)

	return db
}

func setupService(t *testing.T) OrderService {
	stores, err := OpenStores(ingredients.Regions(), true)
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	return NewOrderService(setupTestDB(t), stores, logger)
}

func TestOpenStores(t *testing.T) {
	stores, err := OpenStores([]ingredients.Region{ingredients.Midwest}, false)
	require.NoError(t, err)
	assert.Len(t, stores, 1)
	assert.Equal(t, "Chicago Style", stores["midwest"].Name())

	_, err = OpenStores([]ingredients.Region{"atlantis"}, false)
	assert.ErrorIs(t, err, ingredients.ErrUnknownRegion)
}

func TestStores(t *testing.T) {
	svc := setupService(t)

	infos := svc.Stores()
	require.Len(t, infos, 3)
	assert.Equal(t, "east-coast", infos[0].Key)
	assert.Equal(t, "gas-station", infos[1].Key)
	assert.Equal(t, "midwest", infos[2].Key)

	assert.Equal(t, []string{"cheese", "pepperoni", "veggie", "clam"}, infos[0].Menu)
	require.NotNil(t, infos[2].Style)
	assert.Equal(t, 45, infos[2].Style.BakeMinutes)
	assert.Nil(t, infos[1].Style)
	assert.Equal(t, []string{"pepperoni"}, infos[1].Menu)
}

func TestGetStoreByAlias(t *testing.T) {
	svc := setupService(t)

	info, err := svc.GetStore("chicago")
	require.NoError(t, err)
	assert.Equal(t, "midwest", info.Key)

	_, err = svc.GetStore("atlantis")
	assert.ErrorIs(t, err, ingredients.ErrUnknownRegion)
}

func TestPlaceOrder(t *testing.T) {
	svc := setupService(t)

	record, err := svc.PlaceOrder("midwest", "veggie")
	require.NoError(t, err)
	assert.Equal(t, "Veggie Pizza", record.PizzaName)
	assert.Equal(t, 45, record.BakeMinutes)
	assert.Equal(t, "squares", record.CutStyle)

	stored, err := svc.GetOrderByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Toppings, stored.Toppings)
	assert.Equal(t, record.Steps, stored.Steps)
	assert.Equal(t, "Chicago Style Veggie Pizza", stored.DisplayName)
}

func TestPlaceOrderRejected(t *testing.T) {
	svc := setupService(t)

	_, err := svc.PlaceOrder("east-coast", "sausage")
	assert.True(t, store.IsUnknownKind(err))

	_, err = svc.PlaceOrder("gas-station", "cheese")
	assert.True(t, store.IsUnknownKind(err))

	_, err = svc.PlaceOrder("atlantis", "cheese")
	assert.ErrorIs(t, err, ingredients.ErrUnknownRegion)

	orders, err := svc.GetAllOrders("", "")
	require.NoError(t, err)
	assert.Empty(t, orders, "rejected orders must not leave a receipt")
}

func TestPlaceOrderOnClosedRegion(t *testing.T) {
	stores, err := OpenStores([]ingredients.Region{ingredients.EastCoast}, false)
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	svc := NewOrderService(setupTestDB(t), stores, logger)

	_, err = svc.PlaceOrder("chicago", "cheese")
	assert.ErrorIs(t, err, ingredients.ErrUnknownRegion)
}

func TestGetAllOrdersFilters(t *testing.T) {
	svc := setupService(t)

	for _, o := range []struct{ store, kind string }{
		{"east-coast", "cheese"},
		{"east-coast", "clam"},
		{"midwest", "cheese"},
		{"gas-station", "pepperoni"},
	} {
		_, err := svc.PlaceOrder(o.store, o.kind)
		require.NoError(t, err)
	}

	all, err := svc.GetAllOrders("", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	east, err := svc.GetAllOrders("nyc", "")
	require.NoError(t, err)
	assert.Len(t, east, 2)

	cheese, err := svc.GetAllOrders("", "cheese")
	require.NoError(t, err)
	assert.Len(t, cheese, 2)

	midwestCheese, err := svc.GetAllOrders("midwest", "cheese")
	require.NoError(t, err)
	require.Len(t, midwestCheese, 1)
	assert.Equal(t, "Chicago Style", midwestCheese[0].Store)

	_, err = svc.GetAllOrders("atlantis", "")
	assert.ErrorIs(t, err, ingredients.ErrUnknownRegion)
}

func TestDeleteOrder(t *testing.T) {
	svc := setupService(t)

	record, err := svc.PlaceOrder("east-coast", "pepperoni")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(record.ID))

	_, err = svc.GetOrderByID(record.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.DeleteOrder(record.ID), gorm.ErrRecordNotFound)
}
