package services

import (
	"fmt"
	"sort"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/store"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FrozenCounterKey is the store key of the gas station counter
const FrozenCounterKey = "gas-station"

// StoreInfo describes a store that accepts orders
type StoreInfo struct {
	Key    string       `json:"key"`
	Name   string       `json:"name"`
	Region string       `json:"region,omitempty"`
	Style  *store.Style `json:"style,omitempty"`
	Menu   []string     `json:"menu"`
}

// OrderService places orders with the open stores and keeps their receipts
type OrderService interface {
	// Stores lists every open store, ordered by key
	Stores() []StoreInfo
	// GetStore returns the store registered under key, a region tag or alias
	GetStore(key string) (StoreInfo, error)
	// PlaceOrder orders a pizza of kind from the store at key and persists the receipt
	PlaceOrder(key, kind string) (models.OrderRecord, error)
	// GetAllOrders retrieves receipts, optionally filtered by region and kind
	GetAllOrders(region, kind string) ([]models.OrderRecord, error)
	// GetOrderByID retrieves a receipt by its order ID
	GetOrderByID(id string) (models.OrderRecord, error)
	// DeleteOrder removes a receipt by its order ID
	DeleteOrder(id string) error
}

// orderService is the implementation of the OrderService interface
type orderService struct {
	db     *gorm.DB
	stores map[string]store.Store
	log    logrus.FieldLogger
}

// NewOrderService creates a new instance of OrderService over the given stores
func NewOrderService(db *gorm.DB, stores map[string]store.Store, logger logrus.FieldLogger) OrderService {
	return &orderService{db: db, stores: stores, log: logger}
}

// OpenStores opens a store front per region, plus the frozen counter when asked to
func OpenStores(regions []ingredients.Region, frozenCounter bool, opts ...store.Option) (map[string]store.Store, error) {
	stores := make(map[string]store.Store, len(regions)+1)
	for _, region := range regions {
		front, err := store.New(region, opts...)
		if err != nil {
			return nil, err
		}
		stores[string(region)] = front
	}
	if frozenCounter {
		stores[FrozenCounterKey] = store.NewFrozenCounter("Gas Station", opts...)
	}
	return stores, nil
}

func (s *orderService) Stores() []StoreInfo {
	keys := make([]string, 0, len(s.stores))
	for key := range s.stores {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	infos := make([]StoreInfo, 0, len(keys))
	for _, key := range keys {
		infos = append(infos, describe(key, s.stores[key]))
	}
	return infos
}

func (s *orderService) GetStore(key string) (StoreInfo, error) {
	resolved, st, err := s.resolve(key)
	if err != nil {
		return StoreInfo{}, err
	}
	return describe(resolved, st), nil
}

func (s *orderService) PlaceOrder(key, kind string) (models.OrderRecord, error) {
	_, st, err := s.resolve(key)
	if err != nil {
		return models.OrderRecord{}, err
	}

	order, err := st.OrderByName(kind)
	if err != nil {
		s.log.WithFields(logrus.Fields{"store": key, "kind": kind}).WithError(err).Info("Order rejected")
		return models.OrderRecord{}, err
	}

	record := models.NewOrderRecord(order)
	if err := s.db.Create(&record).Error; err != nil {
		return models.OrderRecord{}, fmt.Errorf("failed to save order %s: %w", order.ID, err)
	}
	s.log.WithFields(logrus.Fields{
		"order_id": record.ID,
		"store":    record.Store,
		"pizza":    record.PizzaName,
	}).Info("Order completed")
	return record, nil
}

func (s *orderService) GetAllOrders(region, kind string) ([]models.OrderRecord, error) {
	query := s.db.Order("created_at")
	if region != "" {
		r, err := ingredients.ParseRegion(region)
		if err != nil {
			return nil, err
		}
		query = query.Where("region = ?", string(r))
	}
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	orders := []models.OrderRecord{}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id string) (models.OrderRecord, error) {
	var order models.OrderRecord
	if err := s.db.Where("id = ?", id).First(&order).Error; err != nil {
		return models.OrderRecord{}, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.OrderRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// resolve maps a store key or region alias to an open store
func (s *orderService) resolve(key string) (string, store.Store, error) {
	if st, ok := s.stores[key]; ok {
		return key, st, nil
	}
	region, err := ingredients.ParseRegion(key)
	if err != nil {
		return "", nil, err
	}
	st, ok := s.stores[string(region)]
	if !ok {
		return "", nil, &ingredients.ConfigurationError{Region: region}
	}
	return string(region), st, nil
}

func describe(key string, st store.Store) StoreInfo {
	info := StoreInfo{Key: key, Name: st.Name()}
	for _, kind := range st.Menu() {
		info.Menu = append(info.Menu, kind.String())
	}
	if front, ok := st.(*store.Front); ok {
		style := front.Style()
		info.Region = string(front.Region())
		info.Style = &style
	}
	return info
}
