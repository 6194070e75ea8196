package ingredients

import (
	"errors"
	"fmt"
	"strings"
)

// Region selects the family of ingredient variants a Factory yields
type Region string

const (
	EastCoast Region = "east-coast"
	Midwest   Region = "midwest"
)

// ErrUnknownRegion is matched by every ConfigurationError
var ErrUnknownRegion = errors.New("unknown region")

// ConfigurationError reports a region no factory is defined for
type ConfigurationError struct {
	Region Region
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no ingredient factory for region %q", string(e.Region))
}

func (e *ConfigurationError) Unwrap() error {
	return ErrUnknownRegion
}

var regionAliases = map[string]Region{
	"east-coast": EastCoast,
	"eastcoast":  EastCoast,
	"new-york":   EastCoast,
	"nyc":        EastCoast,
	"midwest":    Midwest,
	"chicago":    Midwest,
}

// Regions returns the built-in regions in a stable order
func Regions() []Region {
	return []Region{EastCoast, Midwest}
}

// ParseRegion resolves a region tag or one of its city aliases
func ParseRegion(s string) (Region, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	if region, ok := regionAliases[key]; ok {
		return region, nil
	}
	return "", &ConfigurationError{Region: Region(s)}
}

// Factory produces one concrete ingredient per category, always from the same regional set
type Factory interface {
	// Region is the region the factory was built for
	Region() Region
	// Produce returns the regional variant of kind
	Produce(kind Kind) Ingredient
	// ProduceVegetables returns the vegetable toppings, in order
	ProduceVegetables() []Ingredient
}

// vegetables are the same in every region
var vegetables = []string{"garlic", "onion", "mushroom", "red pepper"}

var catalog = map[Region]map[Kind]string{
	EastCoast: {
		Dough:     "thin crust",
		Sauce:     "marinara sauce",
		Cheese:    "reggiano cheese",
		Pepperoni: "sliced pepperoni",
		Clam:      "fresh clam",
	},
	Midwest: {
		Dough:     "thick crust",
		Sauce:     "plum tomato sauce",
		Cheese:    "mozzarella cheese",
		Pepperoni: "chopped pepperoni",
		Clam:      "frozen clam",
	},
}

type regionalFactory struct {
	region   Region
	variants map[Kind]string
}

// NewFactory returns the ingredient factory of region.
// It fails with a *ConfigurationError when the region is not in the catalog.
func NewFactory(region Region) (Factory, error) {
	variants, ok := catalog[region]
	if !ok {
		return nil, &ConfigurationError{Region: region}
	}
	return &regionalFactory{region: region, variants: variants}, nil
}

// MustFactory is like NewFactory but panics on an unknown region
func MustFactory(region Region) Factory {
	f, err := NewFactory(region)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *regionalFactory) Region() Region {
	return f.region
}

func (f *regionalFactory) Produce(kind Kind) Ingredient {
	if kind == Vegetable {
		return Ingredient{Kind: Vegetable, Variant: vegetables[0]}
	}
	variant, ok := f.variants[kind]
	if !ok {
		return Generic(kind)
	}
	return Ingredient{Kind: kind, Variant: variant}
}

func (f *regionalFactory) ProduceVegetables() []Ingredient {
	out := make([]Ingredient, 0, len(vegetables))
	for _, v := range vegetables {
		out = append(out, Ingredient{Kind: Vegetable, Variant: v})
	}
	return out
}
