package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
	"github.com/franciscosanchezn/pizza-factory/internal/pizza"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Step, len(r.events))
	for i, e := range r.events {
		out[i] = e.Step
	}
	return out
}

func newFront(t *testing.T, region ingredients.Region, opts ...Option) *Front {
	t.Helper()
	f, err := New(region, opts...)
	require.NoError(t, err)
	return f
}

func TestEastCoastCheeseOrder(t *testing.T) {
	front := newFront(t, ingredients.EastCoast)

	order, err := front.Order(pizza.Cheese)
	require.NoError(t, err)

	assert.Equal(t, "Cheese Pizza", order.Pizza.Name)
	assert.Equal(t, "thin crust", order.Pizza.Dough.Variant)
	assert.Equal(t, "marinara sauce", order.Pizza.Sauce.Variant)
	assert.Equal(t, "reggiano cheese", order.Pizza.Cheese.Variant)
	assert.Equal(t, 25, order.BakeMinutes)
	assert.Equal(t, "triangles", order.CutStyle)
	assert.Equal(t, "New York Style Cheese Pizza", order.DisplayName())
	assert.Equal(t, ingredients.EastCoast, order.Region)
	assert.NotEmpty(t, order.ID)
}

func TestMidwestVeggieOrder(t *testing.T) {
	front := newFront(t, ingredients.Midwest)

	order, err := front.Order(pizza.Veggie)
	require.NoError(t, err)

	p := order.Pizza
	assert.Equal(t, "Veggie Pizza", p.Name)
	assert.Equal(t, "thick crust", p.Dough.Variant)
	assert.Equal(t, "plum tomato sauce", p.Sauce.Variant)
	assert.Equal(t, "mozzarella cheese", p.Cheese.Variant)

	var veggies []string
	for _, v := range p.Vegetables {
		veggies = append(veggies, v.Variant)
	}
	assert.Equal(t, []string{"garlic", "onion", "mushroom", "red pepper"}, veggies)
	assert.Equal(t, 45, order.BakeMinutes)
	assert.Equal(t, "squares", order.CutStyle)
	assert.Equal(t, "Chicago Style", front.Name())
}

func TestOrderStepSequence(t *testing.T) {
	expected := []Step{StepRequested, StepAssembled, StepBaked, StepCut, StepBoxed}

	for _, region := range ingredients.Regions() {
		for _, kind := range pizza.Kinds() {
			rec := &recorder{}
			front := newFront(t, region, WithNotifier(rec))

			order, err := front.Order(kind)
			require.NoError(t, err)

			assert.Equal(t, expected, order.Steps, "%s/%s", region, kind)
			assert.Equal(t, expected, rec.steps(), "%s/%s", region, kind)
			for _, e := range rec.events {
				assert.Equal(t, order.ID, e.OrderID)
				assert.Equal(t, front.Name(), e.Store)
			}
		}
	}
}

func TestNewUnknownRegion(t *testing.T) {
	front, err := New(ingredients.Region("gotham"))

	assert.Nil(t, front)
	assert.ErrorIs(t, err, ingredients.ErrUnknownRegion)
}

func TestOrderUnknownKind(t *testing.T) {
	rec := &recorder{}
	front := newFront(t, ingredients.EastCoast, WithNotifier(rec))

	order, err := front.Order(pizza.Kind(99))

	assert.Nil(t, order)
	require.Error(t, err)
	assert.True(t, IsUnknownKind(err))

	var orderErr *OrderError
	require.True(t, errors.As(err, &orderErr))
	assert.Equal(t, "New York Style", orderErr.Store)
	assert.Equal(t, []Step{StepRequested, StepRejected}, rec.steps())
}

func TestOrderByName(t *testing.T) {
	front := newFront(t, ingredients.Midwest)

	order, err := front.OrderByName("clam")
	require.NoError(t, err)
	assert.Equal(t, pizza.Clam, order.Kind)
	assert.Equal(t, "frozen clam", order.Pizza.Clam.Variant)

	t.Run("unsupported name produces no pizza", func(t *testing.T) {
		rec := &recorder{}
		front := newFront(t, ingredients.Midwest, WithNotifier(rec))

		order, err := front.OrderByName("sausage")

		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrUnknownKind)
		assert.Contains(t, err.Error(), "sausage")
		assert.Equal(t, []Step{StepRequested, StepRejected}, rec.steps())
	})
}

func TestWithStyleAndClock(t *testing.T) {
	fixed := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	custom := Style{Name: "Detroit Style", BakeTemperature: 500, BakeMinutes: 13, CutStyle: "rectangles"}
	front := newFront(t, ingredients.Midwest, WithStyle(custom), WithClock(func() time.Time { return fixed }))

	order, err := front.Order(pizza.Pepperoni)
	require.NoError(t, err)

	assert.Equal(t, fixed, order.CreatedAt)
	assert.Equal(t, 13, order.BakeMinutes)
	assert.Equal(t, "rectangles", order.CutStyle)
	assert.Equal(t, "Detroit Style Pepperoni Cheese", order.DisplayName())
	assert.Equal(t, "chopped pepperoni", order.Pizza.Pepperoni.Variant)
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, 25, StyleFor(ingredients.EastCoast).BakeMinutes)
	assert.Equal(t, "triangles", StyleFor(ingredients.EastCoast).CutStyle)
	assert.Equal(t, 45, StyleFor(ingredients.Midwest).BakeMinutes)
	assert.Equal(t, "squares", StyleFor(ingredients.Midwest).CutStyle)
	assert.Equal(t, DefaultStyle, StyleFor(ingredients.Region("nowhere")))
}

func TestConcurrentOrdersAreIndependent(t *testing.T) {
	front := newFront(t, ingredients.EastCoast)

	const n = 32
	orders := make([]*Order, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			order, err := front.Order(pizza.Kinds()[i%len(pizza.Kinds())])
			assert.NoError(t, err)
			orders[i] = order
		}(i)
	}
	wg.Wait()

	ids := map[string]bool{}
	for _, o := range orders {
		require.NotNil(t, o)
		assert.False(t, ids[o.ID], "duplicate order id %s", o.ID)
		ids[o.ID] = true
	}
	assert.NotSame(t, orders[0].Pizza, orders[4].Pizza)
}

func TestLogNotifier(t *testing.T) {
	logger, hook := test.NewNullLogger()
	front := newFront(t, ingredients.Midwest, WithNotifier(NewLogNotifier(logger)))

	_, err := front.Order(pizza.Cheese)
	require.NoError(t, err)

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{
		"order for cheese received",
		"preparing a Cheese Pizza with toppings: thick crust, plum tomato sauce, mozzarella cheese",
		"bake Cheese Pizza at 350F for 45 min",
		"cut Cheese Pizza into squares",
		"put Cheese Pizza in the pizza box",
	}, messages)
	assert.Equal(t, "boxed", hook.LastEntry().Data["step"])

	hook.Reset()
	_, err = front.OrderByName("sausage")
	require.Error(t, err)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "unable to make your sausage pizza, we don't sell it", hook.LastEntry().Message)
}
