package pizza

import (
	"strings"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
)

// Pizza is the record the Assembler fills in. Only the categories required by its
// kind are set; all others stay nil or empty.
type Pizza struct {
	Name       string                   `json:"name"`
	Dough      *ingredients.Ingredient  `json:"dough,omitempty"`
	Sauce      *ingredients.Ingredient  `json:"sauce,omitempty"`
	Cheese     *ingredients.Ingredient  `json:"cheese,omitempty"`
	Vegetables []ingredients.Ingredient `json:"vegetables,omitempty"`
	Pepperoni  *ingredients.Ingredient  `json:"pepperoni,omitempty"`
	Clam       *ingredients.Ingredient  `json:"clam,omitempty"`
}

// Has reports whether the pizza carries an ingredient of kind
func (p *Pizza) Has(kind ingredients.Kind) bool {
	switch kind {
	case ingredients.Dough:
		return p.Dough != nil
	case ingredients.Sauce:
		return p.Sauce != nil
	case ingredients.Cheese:
		return p.Cheese != nil
	case ingredients.Vegetable:
		return len(p.Vegetables) > 0
	case ingredients.Pepperoni:
		return p.Pepperoni != nil
	case ingredients.Clam:
		return p.Clam != nil
	}
	return false
}

// Toppings lists the populated ingredients: dough, sauce, cheese, pepperoni, clam, then vegetables
func (p *Pizza) Toppings() []ingredients.Ingredient {
	var out []ingredients.Ingredient
	for _, i := range []*ingredients.Ingredient{p.Dough, p.Sauce, p.Cheese, p.Pepperoni, p.Clam} {
		if i != nil {
			out = append(out, *i)
		}
	}
	return append(out, p.Vegetables...)
}

func (p *Pizza) String() string {
	toppings := p.Toppings()
	labels := make([]string, len(toppings))
	for i, t := range toppings {
		labels[i] = t.String()
	}
	return strings.Join(labels, ", ")
}

func (p *Pizza) set(i ingredients.Ingredient) {
	switch i.Kind {
	case ingredients.Dough:
		p.Dough = &i
	case ingredients.Sauce:
		p.Sauce = &i
	case ingredients.Cheese:
		p.Cheese = &i
	case ingredients.Vegetable:
		p.Vegetables = append(p.Vegetables, i)
	case ingredients.Pepperoni:
		p.Pepperoni = &i
	case ingredients.Clam:
		p.Clam = &i
	}
}
