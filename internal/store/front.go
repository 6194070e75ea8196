package store

import (
	"time"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
	"github.com/franciscosanchezn/pizza-factory/internal/pizza"
	"github.com/google/uuid"
)

// Front is a regional pizza store. The region fixes both the ingredient factory
// and the bake and cut parameters.
type Front struct {
	region    ingredients.Region
	style     Style
	assembler *pizza.Assembler
	notifier  Notifier
	now       func() time.Time
}

// Option customizes a Front
type Option func(*Front)

// WithNotifier sets the receiver of order events
func WithNotifier(n Notifier) Option {
	return func(f *Front) {
		f.notifier = n
	}
}

// WithStyle overrides the regional style
func WithStyle(s Style) Option {
	return func(f *Front) {
		f.style = s
	}
}

// WithClock sets the time source used to stamp receipts
func WithClock(now func() time.Time) Option {
	return func(f *Front) {
		f.now = now
	}
}

// New opens a store front for region.
// It fails with an *ingredients.ConfigurationError for an unknown region.
func New(region ingredients.Region, opts ...Option) (*Front, error) {
	factory, err := ingredients.NewFactory(region)
	if err != nil {
		return nil, err
	}

	f := &Front{
		region:    region,
		style:     StyleFor(region),
		assembler: pizza.NewAssembler(factory),
		notifier:  nopNotifier{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Front) Name() string {
	return f.style.Name
}

// Region returns the region the store was opened in
func (f *Front) Region() ingredients.Region {
	return f.region
}

// Style returns the bake and cut parameters of the store
func (f *Front) Style() Style {
	return f.style
}

func (f *Front) Menu() []pizza.Kind {
	return pizza.Kinds()
}

// Order assembles, bakes, cuts and boxes a pizza of kind, in that order
func (f *Front) Order(kind pizza.Kind) (*Order, error) {
	id := uuid.New().String()
	f.emit(Event{OrderID: id, Step: StepRequested, Detail: kind.String()})

	p, err := f.assembler.Assemble(kind)
	if err != nil {
		return nil, f.reject(id, kind.String(), err)
	}

	order := &Order{
		ID:          id,
		Store:       f.style.Name,
		Region:      f.region,
		Kind:        kind,
		Pizza:       p,
		BakeMinutes: f.style.BakeMinutes,
		CutStyle:    f.style.CutStyle,
		Steps:       []Step{StepRequested},
		CreatedAt:   f.now(),
	}
	for _, step := range []Step{StepAssembled, StepBaked, StepCut, StepBoxed} {
		order.Steps = append(order.Steps, step)
		f.emit(Event{OrderID: id, Step: step, Pizza: p})
	}
	return order, nil
}

// OrderByName parses name as a menu key and orders it
func (f *Front) OrderByName(name string) (*Order, error) {
	kind, err := pizza.ParseKind(name)
	if err != nil {
		id := uuid.New().String()
		f.emit(Event{OrderID: id, Step: StepRequested, Detail: name})
		return nil, f.reject(id, name, err)
	}
	return f.Order(kind)
}

func (f *Front) reject(id, requested string, err error) error {
	f.emit(Event{OrderID: id, Step: StepRejected, Detail: requested})
	return &OrderError{Store: f.style.Name, Requested: requested, Err: err}
}

func (f *Front) emit(e Event) {
	e.Store = f.style.Name
	e.Style = f.style
	f.notifier.Notify(e)
}
