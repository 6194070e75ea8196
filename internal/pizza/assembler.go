package pizza

import (
	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
)

// Assembler builds pizzas from the ingredients of one factory
type Assembler struct {
	factory ingredients.Factory
}

// NewAssembler creates an Assembler bound to factory
func NewAssembler(factory ingredients.Factory) *Assembler {
	return &Assembler{factory: factory}
}

// Factory returns the ingredient factory the assembler pulls from
func (a *Assembler) Factory() ingredients.Factory {
	return a.factory
}

// Assemble creates a new pizza of kind. The returned error is always ErrUnknownKind
// and is only possible for a Kind value outside the menu.
func (a *Assembler) Assemble(kind Kind) (*Pizza, error) {
	recipe, err := RecipeFor(kind)
	if err != nil {
		return nil, err
	}

	p := &Pizza{Name: recipe.Name}
	p.set(a.factory.Produce(ingredients.Dough))
	p.set(a.factory.Produce(ingredients.Sauce))
	p.set(a.factory.Produce(ingredients.Cheese))

	if recipe.Topping == nil {
		return p, nil
	}
	switch *recipe.Topping {
	case ingredients.Vegetable:
		p.Vegetables = a.factory.ProduceVegetables()
	default:
		p.set(a.factory.Produce(*recipe.Topping))
	}
	return p, nil
}
