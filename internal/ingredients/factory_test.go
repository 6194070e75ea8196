package ingredients

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactory(t *testing.T) {
	testCases := []struct {
		name     string
		region   Region
		expected map[Kind]string
	}{
		{
			name:   "east coast yields the thin crust family",
			region: EastCoast,
			expected: map[Kind]string{
				Dough:     "thin crust",
				Sauce:     "marinara sauce",
				Cheese:    "reggiano cheese",
				Pepperoni: "sliced pepperoni",
				Clam:      "fresh clam",
			},
		},
		{
			name:   "midwest yields the thick crust family",
			region: Midwest,
			expected: map[Kind]string{
				Dough:     "thick crust",
				Sauce:     "plum tomato sauce",
				Cheese:    "mozzarella cheese",
				Pepperoni: "chopped pepperoni",
				Clam:      "frozen clam",
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			factory, err := NewFactory(tt.region)
			require.NoError(t, err)
			assert.Equal(t, tt.region, factory.Region())

			for kind, variant := range tt.expected {
				got := factory.Produce(kind)
				assert.Equal(t, kind, got.Kind)
				assert.Equal(t, variant, got.Variant, "kind %s", kind)
			}
		})
	}
}

func TestNewFactoryUnknownRegion(t *testing.T) {
	factory, err := NewFactory(Region("atlantis"))

	assert.Nil(t, factory)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRegion))

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, Region("atlantis"), cfgErr.Region)
}

func TestMustFactoryPanicsOnUnknownRegion(t *testing.T) {
	assert.Panics(t, func() { MustFactory(Region("")) })
	assert.NotPanics(t, func() { MustFactory(Midwest) })
}

func TestProduceIsDeterministic(t *testing.T) {
	for _, region := range Regions() {
		factory := MustFactory(region)
		for _, kind := range Kinds() {
			assert.Equal(t, factory.Produce(kind), factory.Produce(kind), "%s/%s", region, kind)
		}
		assert.Equal(t, factory.ProduceVegetables(), factory.ProduceVegetables())
	}
}

func TestRegionsNeverShareAVariant(t *testing.T) {
	east := MustFactory(EastCoast)
	midwest := MustFactory(Midwest)

	for _, kind := range []Kind{Dough, Sauce, Cheese, Pepperoni, Clam} {
		assert.NotEqual(t, east.Produce(kind).Variant, midwest.Produce(kind).Variant, "kind %s", kind)
	}
}

func TestProduceVegetables(t *testing.T) {
	expected := []Ingredient{
		{Kind: Vegetable, Variant: "garlic"},
		{Kind: Vegetable, Variant: "onion"},
		{Kind: Vegetable, Variant: "mushroom"},
		{Kind: Vegetable, Variant: "red pepper"},
	}

	for _, region := range Regions() {
		factory := MustFactory(region)
		assert.Equal(t, expected, factory.ProduceVegetables())
		assert.Equal(t, expected[0], factory.Produce(Vegetable))
	}
}

func TestProduceVegetablesReturnsFreshSlice(t *testing.T) {
	factory := MustFactory(EastCoast)

	first := factory.ProduceVegetables()
	first[0] = Ingredient{Kind: Vegetable, Variant: "pineapple"}

	assert.Equal(t, "garlic", factory.ProduceVegetables()[0].Variant)
}

func TestParseRegion(t *testing.T) {
	testCases := []struct {
		input    string
		expected Region
		wantErr  bool
	}{
		{input: "east-coast", expected: EastCoast},
		{input: "EAST_COAST", expected: EastCoast},
		{input: " nyc ", expected: EastCoast},
		{input: "new-york", expected: EastCoast},
		{input: "midwest", expected: Midwest},
		{input: "Chicago", expected: Midwest},
		{input: "gas-station", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.input, func(t *testing.T) {
			region, err := ParseRegion(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRegion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, region)
		})
	}
}

func TestGeneric(t *testing.T) {
	assert.Equal(t, "generic dough", Generic(Dough).Variant)
	assert.Equal(t, "tomato sauce", Generic(Sauce).Variant)
	assert.Equal(t, "generic cheese", Generic(Cheese).Variant)
	assert.Equal(t, Pepperoni, Generic(Pepperoni).Kind)
}

func TestIngredientJSON(t *testing.T) {
	raw, err := json.Marshal(Ingredient{Kind: Clam, Variant: "fresh clam"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"clam","variant":"fresh clam"}`, string(raw))

	var decoded Ingredient
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"sauce","variant":"marinara sauce"}`), &decoded))
	assert.Equal(t, Ingredient{Kind: Sauce, Variant: "marinara sauce"}, decoded)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"anchovy"}`), &decoded))
}
