package store

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-factory/internal/pizza"
	"github.com/sirupsen/logrus"
)

// Event is emitted at every step of an order
type Event struct {
	OrderID string
	Store   string
	Step    Step
	// Pizza is nil for requested and rejected events
	Pizza  *pizza.Pizza
	Style  Style
	Detail string
}

// Notifier receives order events. Implementations must not modify the pizza.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) {
	f(e)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Event) {}

// LogNotifier writes one informational line per step
type LogNotifier struct {
	Logger logrus.FieldLogger
}

// NewLogNotifier creates a LogNotifier writing to logger
func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Notify(e Event) {
	entry := n.Logger.WithFields(logrus.Fields{
		"order_id": e.OrderID,
		"store":    e.Store,
		"step":     string(e.Step),
	})
	if e.Step == StepRejected {
		entry.Warn(Describe(e))
		return
	}
	entry.Info(Describe(e))
}

// Describe renders the human readable line for an event
func Describe(e Event) string {
	switch e.Step {
	case StepRequested:
		return fmt.Sprintf("order for %s received", e.Detail)
	case StepRejected:
		return fmt.Sprintf("unable to make your %s pizza, we don't sell it", e.Detail)
	}

	if e.Pizza == nil {
		return string(e.Step)
	}
	name := e.Pizza.Name
	switch e.Step {
	case StepAssembled:
		return fmt.Sprintf("preparing a %s with toppings: %s", name, e.Pizza)
	case StepBaked:
		return fmt.Sprintf("bake %s at %dF for %d min", name, e.Style.BakeTemperature, e.Style.BakeMinutes)
	case StepMicrowaved:
		return fmt.Sprintf("microwave %s for %s", name, e.Detail)
	case StepCut:
		return fmt.Sprintf("cut %s into %s", name, e.Style.CutStyle)
	case StepBoxed:
		return fmt.Sprintf("put %s in the pizza box", name)
	}
	return fmt.Sprintf("%s %s", e.Step, name)
}
