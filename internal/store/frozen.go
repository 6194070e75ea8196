package store

import (
	"fmt"
	"time"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
	"github.com/franciscosanchezn/pizza-factory/internal/pizza"
	"github.com/google/uuid"
)

const frozenPizzaName = "Totino's Pizza"

// FrozenCounter sells a single microwaved frozen pepperoni pizza
type FrozenCounter struct {
	name             string
	microwaveMinutes int
	notifier         Notifier
	now              func() time.Time
}

// NewFrozenCounter opens a counter. Only WithNotifier and WithClock apply to it.
func NewFrozenCounter(name string, opts ...Option) *FrozenCounter {
	// options are written against Front, so collect them there first
	f := &Front{notifier: nopNotifier{}, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return &FrozenCounter{
		name:             name,
		microwaveMinutes: 2,
		notifier:         f.notifier,
		now:              f.now,
	}
}

func (c *FrozenCounter) Name() string {
	return c.name
}

func (c *FrozenCounter) Menu() []pizza.Kind {
	return []pizza.Kind{pizza.Pepperoni}
}

// Order only accepts pepperoni; every other kind is rejected
func (c *FrozenCounter) Order(kind pizza.Kind) (*Order, error) {
	id := uuid.New().String()
	c.emit(Event{OrderID: id, Step: StepRequested, Detail: kind.String()})
	if kind != pizza.Pepperoni {
		return nil, c.reject(id, kind.String())
	}
	return c.microwave(id, kind), nil
}

func (c *FrozenCounter) OrderByName(name string) (*Order, error) {
	kind, err := pizza.ParseKind(name)
	if err != nil {
		id := uuid.New().String()
		c.emit(Event{OrderID: id, Step: StepRequested, Detail: name})
		return nil, c.reject(id, name)
	}
	return c.Order(kind)
}

func (c *FrozenCounter) reject(id, requested string) error {
	c.emit(Event{OrderID: id, Step: StepRejected, Detail: requested})
	return &OrderError{
		Store:     c.name,
		Requested: requested,
		Err:       fmt.Errorf("%w: %q", ErrUnknownKind, requested),
	}
}

func (c *FrozenCounter) microwave(id string, kind pizza.Kind) *Order {
	dough := ingredients.Generic(ingredients.Dough)
	sauce := ingredients.Generic(ingredients.Sauce)
	cheese := ingredients.Generic(ingredients.Cheese)
	pepperoni := ingredients.Ingredient{Kind: ingredients.Pepperoni, Variant: "chopped pepperoni"}
	p := &pizza.Pizza{
		Name:      frozenPizzaName,
		Dough:     &dough,
		Sauce:     &sauce,
		Cheese:    &cheese,
		Pepperoni: &pepperoni,
	}

	order := &Order{
		ID:        id,
		Store:     c.name,
		Kind:      kind,
		Pizza:     p,
		Steps:     []Step{StepRequested},
		CreatedAt: c.now(),
	}
	steps := []struct {
		step   Step
		detail string
	}{
		{StepAssembled, ""},
		{StepMicrowaved, fmt.Sprintf("%d minutes", c.microwaveMinutes)},
		{StepBoxed, ""},
	}
	for _, s := range steps {
		order.Steps = append(order.Steps, s.step)
		c.emit(Event{OrderID: id, Step: s.step, Pizza: p, Detail: s.detail})
	}
	return order
}

func (c *FrozenCounter) emit(e Event) {
	e.Store = c.name
	c.notifier.Notify(e)
}
