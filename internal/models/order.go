package models

import (
	"time"

	"github.com/franciscosanchezn/pizza-factory/internal/store"
)

// OrderRecord is the persisted receipt of a completed order
type OrderRecord struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Store       string    `gorm:"not null" json:"store"`
	Region      string    `gorm:"index" json:"region,omitempty"`
	Kind        string    `gorm:"index;not null" json:"kind"`
	PizzaName   string    `gorm:"not null" json:"pizza_name"`
	DisplayName string    `json:"display_name"`
	Toppings    []string  `gorm:"serializer:json" json:"toppings"`
	BakeMinutes int       `json:"bake_minutes"`
	CutStyle    string    `json:"cut_style,omitempty"`
	Steps       []string  `gorm:"serializer:json" json:"steps"`
	CreatedAt   time.Time `json:"created_at"`
}

func (OrderRecord) TableName() string {
	return "orders"
}

// NewOrderRecord flattens a store receipt into its persisted form
func NewOrderRecord(o *store.Order) OrderRecord {
	toppings := o.Pizza.Toppings()
	labels := make([]string, len(toppings))
	for i, t := range toppings {
		labels[i] = t.Variant
	}

	steps := make([]string, len(o.Steps))
	for i, s := range o.Steps {
		steps[i] = string(s)
	}

	return OrderRecord{
		ID:          o.ID,
		Store:       o.Store,
		Region:      string(o.Region),
		Kind:        o.Kind.String(),
		PizzaName:   o.Pizza.Name,
		DisplayName: o.DisplayName(),
		Toppings:    labels,
		BakeMinutes: o.BakeMinutes,
		CutStyle:    o.CutStyle,
		Steps:       steps,
		CreatedAt:   o.CreatedAt,
	}
}
