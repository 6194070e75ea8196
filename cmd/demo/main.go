package main

import (
	"os"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
	"github.com/franciscosanchezn/pizza-factory/internal/pizza"
	"github.com/franciscosanchezn/pizza-factory/internal/store"
	log "github.com/sirupsen/logrus"
)

type visit struct {
	say   string
	store store.Store
	kinds []pizza.Kind
}

func main() {
	logger := log.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	notifier := store.WithNotifier(store.NewLogNotifier(logger))

	visits := []visit{
		{
			say:   "I went to New York and got some pizza",
			store: mustOpen(ingredients.EastCoast, notifier),
			kinds: []pizza.Kind{pizza.Cheese, pizza.Clam},
		},
		{
			say:   "I went to Chicago and got some pizza",
			store: mustOpen(ingredients.Midwest, notifier),
			kinds: []pizza.Kind{pizza.Cheese, pizza.Veggie},
		},
		{
			say:   "I went to the Gas Station and ordered some pizza",
			store: store.NewFrozenCounter("Gas Station", notifier),
			kinds: []pizza.Kind{pizza.Cheese, pizza.Pepperoni},
		},
	}

	for _, v := range visits {
		logger.Info(v.say)
		for _, kind := range v.kinds {
			order, err := v.store.Order(kind)
			if err != nil {
				logger.WithError(err).Debug("order not completed")
				continue
			}
			logger.WithField("order_id", order.ID).Infof("got a %s", order.DisplayName())
		}
	}
}

func mustOpen(region ingredients.Region, opts ...store.Option) *store.Front {
	front, err := store.New(region, opts...)
	if err != nil {
		log.WithError(err).Fatal("Failed to open store")
	}
	return front
}
