package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
	"github.com/franciscosanchezn/pizza-factory/internal/pizza"
)

// ErrUnknownKind is matched by an OrderError for a pizza the store does not sell
var ErrUnknownKind = pizza.ErrUnknownKind

// Step is one stage an order passes through
type Step string

const (
	StepRequested  Step = "requested"
	StepAssembled  Step = "assembled"
	StepBaked      Step = "baked"
	StepMicrowaved Step = "microwaved"
	StepCut        Step = "cut"
	StepBoxed      Step = "boxed"
	StepRejected   Step = "rejected"
)

// Order is the receipt of a completed order
type Order struct {
	ID          string             `json:"id"`
	Store       string             `json:"store"`
	Region      ingredients.Region `json:"region,omitempty"`
	Kind        pizza.Kind         `json:"kind"`
	Pizza       *pizza.Pizza       `json:"pizza"`
	BakeMinutes int                `json:"bake_minutes"`
	CutStyle    string             `json:"cut_style,omitempty"`
	Steps       []Step             `json:"steps"`
	CreatedAt   time.Time          `json:"created_at"`
}

// DisplayName prefixes the pizza name with the store that made it
func (o *Order) DisplayName() string {
	return fmt.Sprintf("%s %s", o.Store, o.Pizza.Name)
}

// OrderError reports an order the store refused
type OrderError struct {
	Store     string
	Requested string
	Err       error
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s cannot make %q: %v", e.Store, e.Requested, e.Err)
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

// IsUnknownKind reports whether err is a rejection for a kind the store does not sell
func IsUnknownKind(err error) bool {
	return errors.Is(err, ErrUnknownKind)
}

// Store takes pizza orders
type Store interface {
	// Name is the style label of the store
	Name() string
	// Menu lists the kinds the store sells
	Menu() []pizza.Kind
	// Order runs the full preparation sequence for kind
	Order(kind pizza.Kind) (*Order, error)
	// OrderByName is Order keyed by a menu string such as "veggie"
	OrderByName(name string) (*Order, error)
}
