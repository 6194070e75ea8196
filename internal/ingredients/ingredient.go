package ingredients

import "fmt"

// Kind is the category an ingredient belongs to
type Kind int

const (
	Dough Kind = iota
	Sauce
	Cheese
	Vegetable
	Pepperoni
	Clam
)

var kindNames = map[Kind]string{
	Dough:     "dough",
	Sauce:     "sauce",
	Cheese:    "cheese",
	Vegetable: "vegetable",
	Pepperoni: "pepperoni",
	Clam:      "clam",
}

// Kinds returns every ingredient category in declaration order
func Kinds() []Kind {
	return []Kind{Dough, Sauce, Cheese, Vegetable, Pepperoni, Clam}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText encodes the kind by name so receipts stay readable
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown ingredient kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a kind name produced by MarshalText
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown ingredient kind %q", string(text))
}

// Ingredient is an immutable value produced by a Factory
type Ingredient struct {
	Kind    Kind   `json:"kind"`
	Variant string `json:"variant"`
}

func (i Ingredient) String() string {
	return i.Variant
}

// Generic returns the unbranded ingredient of a category. Frozen pizzas are made from these.
func Generic(kind Kind) Ingredient {
	switch kind {
	case Sauce:
		return Ingredient{Kind: Sauce, Variant: "tomato sauce"}
	default:
		return Ingredient{Kind: kind, Variant: "generic " + kind.String()}
	}
}
