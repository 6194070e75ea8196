package pizza

import (
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
)

// ErrUnknownKind is returned for a pizza kind that is not on the menu
var ErrUnknownKind = errors.New("unknown pizza kind")

// Kind is the variety of pizza being ordered
type Kind int

const (
	Cheese Kind = iota
	Pepperoni
	Veggie
	Clam
)

// Recipe describes what a kind of pizza is made of
type Recipe struct {
	Kind Kind
	// Name is the label the assembled pizza carries
	Name string
	// Topping is the category added on top of dough, sauce and cheese.
	// Cheese pizzas have none.
	Topping *ingredients.Kind
}

func topping(k ingredients.Kind) *ingredients.Kind {
	return &k
}

var recipes = []Recipe{
	{Kind: Cheese, Name: "Cheese Pizza"},
	{Kind: Pepperoni, Name: "Pepperoni Cheese", Topping: topping(ingredients.Pepperoni)},
	{Kind: Veggie, Name: "Veggie Pizza", Topping: topping(ingredients.Vegetable)},
	{Kind: Clam, Name: "Clam Pizza", Topping: topping(ingredients.Clam)},
}

var kindKeys = map[Kind]string{
	Cheese:    "cheese",
	Pepperoni: "pepperoni",
	Veggie:    "veggie",
	Clam:      "clam",
}

// Kinds returns the full menu in a stable order
func Kinds() []Kind {
	return []Kind{Cheese, Pepperoni, Veggie, Clam}
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	_, ok := kindKeys[k]
	return ok
}

// String returns the menu key of the kind
func (k Kind) String() string {
	if key, ok := kindKeys[k]; ok {
		return key
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText encodes the kind as its menu key
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a menu key
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a menu key such as "veggie" to its Kind
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for kind, name := range kindKeys {
		if name == key {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// RecipeFor returns the recipe of kind
func RecipeFor(kind Kind) (Recipe, error) {
	if !kind.Valid() {
		return Recipe{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return recipes[kind], nil
}

// Requires lists every ingredient category a pizza of this recipe must carry
func (r Recipe) Requires() []ingredients.Kind {
	required := []ingredients.Kind{ingredients.Dough, ingredients.Sauce, ingredients.Cheese}
	if r.Topping != nil {
		required = append(required, *r.Topping)
	}
	return required
}
