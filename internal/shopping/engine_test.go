package shopping

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/kioskhub/dashboard/backend/internal/catalog"
	"github.com/kioskhub/dashboard/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday. With a Sunday week start the scanned week is 2024-05-12..18.
var fixedNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(opts ...Option) *Engine {
	n := 0
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithLocation(time.UTC),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("item-%d", n)
		}),
	}
	return NewEngine(nil, append(base, opts...)...)
}

func ing(name string, amount float64, unit, aisle string) model.Ingredient {
	return model.Ingredient{Name: name, Amount: model.Amount(amount), Unit: unit, Aisle: aisle}
}

func meal(name string, ings ...model.Ingredient) model.Meal {
	return model.Meal{ID: name, Name: name, Ingredients: ings}
}

func findItem(t *testing.T, list *model.ShoppingList, name string) model.ShoppingListItem {
	t.Helper()
	for _, it := range list.Items {
		if it.Name == name {
			return it
		}
	}
	t.Fatalf("item %q not found", name)
	return model.ShoppingListItem{}
}

func TestDateKeys(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, []string{
		"2024-05-12", "2024-05-13", "2024-05-14", "2024-05-15",
		"2024-05-16", "2024-05-17", "2024-05-18",
	}, e.DateKeys(7))
	assert.Len(t, e.DateKeys(0), DefaultDaysAhead)
	assert.Len(t, e.DateKeys(-3), DefaultDaysAhead)
	assert.Equal(t, []string{"2024-05-12", "2024-05-13", "2024-05-14"}, e.DateKeys(3))

	monday := newTestEngine(WithWeekStart(time.Monday))
	assert.Equal(t, "2024-05-13", monday.DateKeys(1)[0])
}

func TestWeekStartOnFirstDay(t *testing.T) {
	sunday := time.Date(2024, 5, 12, 0, 30, 0, 0, time.UTC)
	e := NewEngine(nil, WithClock(func() time.Time { return sunday }), WithLocation(time.UTC))
	assert.Equal(t, "2024-05-12", e.DateKeys(1)[0])
}

func TestWeekStartUsesLocation(t *testing.T) {
	// 02:00 UTC on Sunday is still Saturday evening in New York.
	loc := time.FixedZone("EDT", -4*3600)
	now := time.Date(2024, 5, 12, 2, 0, 0, 0, time.UTC)
	e := NewEngine(nil, WithClock(func() time.Time { return now }), WithLocation(loc))
	assert.Equal(t, "2024-05-05", e.DateKeys(1)[0])
}

func TestBasicConsolidation(t *testing.T) {
	plan := model.MealPlan{
		"2024-05-13": {"breakfast": {meal("Omelette", ing("egg", 2, "", ""))}},
		"2024-05-14": {"breakfast": {meal("Scramble", ing("Egg", 1, "", ""))}},
	}

	list := newTestEngine().GenerateFromMeals(plan, 7)

	require.Len(t, list.Items, 1)
	item := list.Items[0]
	assert.Equal(t, "egg", item.Name)
	assert.Equal(t, 3.0, item.Amount)
	assert.Equal(t, catalog.Dairy, item.Aisle)
	assert.Equal(t, []string{"Omelette", "Scramble"}, item.SourceRecipes)
	assert.False(t, item.Checked)
	assert.NotEmpty(t, item.ID)
}

func TestUnitNormalizationMerge(t *testing.T) {
	plan := model.MealPlan{
		"2024-05-13": {"dinner": {meal("Pancakes", ing("flour", 1, "cups", ""))}},
		"2024-05-15": {"dinner": {meal("Bread", ing("flour", 0.5, "cup", ""))}},
	}

	list := newTestEngine().GenerateFromMeals(plan, 7)

	require.Len(t, list.Items, 1)
	assert.Equal(t, "cup", list.Items[0].Unit)
	assert.Equal(t, 1.5, list.Items[0].Amount)
	assert.Equal(t, catalog.Pantry, list.Items[0].Aisle)
}

func TestDifferentUnitsStaySeparate(t *testing.T) {
	plan := model.MealPlan{
		"2024-05-13": {"dinner": {meal("Stew", ing("butter", 2, "tbsp", ""), ing("butter", 1, "stick", ""))}},
	}
	list := newTestEngine().GenerateFromMeals(plan, 7)
	assert.Len(t, list.Items, 2)
}

func TestUnknownIngredientDefaultsToOther(t *testing.T) {
	plan := model.MealPlan{
		"2024-05-13": {"dinner": {meal("Mystery", ing("xyzzy-spice-blend", 1, "tsp", ""))}},
	}
	list := newTestEngine().GenerateFromMeals(plan, 7)

	require.Len(t, list.Items, 1)
	assert.Equal(t, catalog.Other, list.Items[0].Aisle)
	assert.Equal(t, "teaspoon", list.Items[0].Unit)
}

func TestEmptyPlan(t *testing.T) {
	list := newTestEngine().GenerateFromMeals(model.MealPlan{}, 7)

	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
	require.NotNil(t, list.LastGenerated)
	assert.Equal(t, fixedNow, *list.LastGenerated)

	list = newTestEngine().GenerateFromMeals(nil, 7)
	assert.Empty(t, list.Items)
}

func TestExplicitAisleIsNormalized(t *testing.T) {
	plan := model.MealPlan{
		"2024-05-13": {"dinner": {meal("Curry", ing("cumin", 1, "tsp", "Spices and Seasonings;Ethnic Foods"))}},
		"2024-05-14": {"dinner": {meal("Tacos", ing("tortilla", 8, "", "Bakery/Bread"))}},
	}
	list := newTestEngine().GenerateFromMeals(plan, 7)

	assert.Equal(t, catalog.Spices, findItem(t, list, "cumin").Aisle)
	assert.Equal(t, catalog.Bakery, findItem(t, list, "tortilla").Aisle)
}

func TestFirstSeenMetadataWins(t *testing.T) {
	plan := model.MealPlan{
		"2024-05-12": {"lunch": {meal("Salad", ing("Tomato", 1, "", "Produce"))}},
		"2024-05-13": {"lunch": {meal("Sauce", ing("tomato", 2, "", "Canned and Jarred"))}},
	}
	list := newTestEngine().GenerateFromMeals(plan, 7)

	require.Len(t, list.Items, 1)
	assert.Equal(t, "Tomato", list.Items[0].Name)
	assert.Equal(t, catalog.Produce, list.Items[0].Aisle)
	assert.Equal(t, 3.0, list.Items[0].Amount)
}

func TestMalformedIngredientsAreKept(t *testing.T) {
	plan := model.MealPlan{
		"2024-05-13": {
			"dinner": {
				meal("Soup", ing("salt", 0, "", "")),
				{ID: "empty", Name: "Leftovers"},
				{ID: "nil", Name: "Takeout", Ingredients: []model.Ingredient{}},
			},
		},
	}
	list := newTestEngine().GenerateFromMeals(plan, 7)

	require.Len(t, list.Items, 1)
	assert.Equal(t, 0.0, list.Items[0].Amount)
	assert.Equal(t, catalog.Spices, list.Items[0].Aisle)
}

func TestDatesOutsideRangeAreIgnored(t *testing.T) {
	plan := model.MealPlan{
		"2024-05-11": {"dinner": {meal("Last week", ing("rice", 1, "cup", ""))}},
		"2024-05-16": {"dinner": {meal("Thursday", ing("pasta", 1, "lb", ""))}},
		"2024-05-19": {"dinner": {meal("Next week", ing("beef", 1, "lb", ""))}},
	}

	list := newTestEngine().GenerateFromMeals(plan, 7)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "pasta", list.Items[0].Name)

	list = newTestEngine().GenerateFromMeals(plan, 3)
	assert.Empty(t, list.Items)
}

func TestCategoryOrderWithinDay(t *testing.T) {
	plan := model.MealPlan{
		"2024-05-13": {
			"dessert":   {meal("Pie", ing("sugar", 1, "cup", ""))},
			"dinner":    {meal("Roast", ing("sugar", 1, "cup", ""))},
			"brunch":    {meal("Waffles", ing("sugar", 1, "cup", ""))},
			"breakfast": {meal("Oatmeal", ing("sugar", 1, "cup", ""))},
			"snack":     {meal("Cookies", ing("sugar", 1, "cup", ""))},
			"lunch":     {meal("Lemonade", ing("sugar", 1, "cup", ""))},
		},
	}
	list := newTestEngine().GenerateFromMeals(plan, 7)

	require.Len(t, list.Items, 1)
	assert.Equal(t, 6.0, list.Items[0].Amount)
	assert.Equal(t, []string{"Oatmeal", "Lemonade", "Roast", "Cookies", "Waffles", "Pie"}, list.Items[0].SourceRecipes)
}

func TestSortedByAisleThenName(t *testing.T) {
	plan := model.MealPlan{
		"2024-05-13": {"dinner": {meal("Everything",
			ing("zucchini", 1, "", ""),
			ing("xyzzy", 1, "", ""),
			ing("milk", 1, "cup", ""),
			ing("apple", 2, "", ""),
			ing("Banana", 2, "", ""),
			ing("chicken", 1, "lb", ""),
		)}},
	}
	list := newTestEngine().GenerateFromMeals(plan, 7)

	var names []string
	for _, it := range list.Items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"apple", "Banana", "zucchini", "chicken", "milk", "xyzzy"}, names)
}

func TestAggregationIsCommutative(t *testing.T) {
	a := meal("A", ing("flour", 1, "cups", ""), ing("egg", 2, "", ""))
	b := meal("B", ing("Flour", 0.25, "cup", ""), ing("egg", 1, "", ""), ing("milk", 1, "cup", ""))

	forward := model.MealPlan{
		"2024-05-13": {"dinner": {a}},
		"2024-05-14": {"dinner": {b}},
	}
	backward := model.MealPlan{
		"2024-05-13": {"dinner": {b}},
		"2024-05-14": {"dinner": {a}},
	}

	totals := func(list *model.ShoppingList) map[string]float64 {
		out := map[string]float64{}
		for _, it := range list.Items {
			out[fmt.Sprintf("%s|%s", strings.ToLower(it.Name), it.Unit)] = it.Amount
		}
		return out
	}

	e := newTestEngine()
	assert.Equal(t, totals(e.GenerateFromMeals(forward, 7)), totals(e.GenerateFromMeals(backward, 7)))
}

func TestConsolidationKeysAreUnique(t *testing.T) {
	names := []string{"Egg", "egg", "EGG", "flour", "Flour", "milk"}
	units := []string{"", "cup", "cups", "Cups", "tbsp", "tablespoon"}
	plan := model.MealPlan{}
	for d, date := range newTestEngine().DateKeys(7) {
		var ings []model.Ingredient
		for i := range names {
			ings = append(ings, ing(names[(i+d)%len(names)], 1, units[(i*d)%len(units)], ""))
		}
		plan[date] = model.DayPlan{"dinner": {meal(fmt.Sprintf("Meal %d", d), ings...)}}
	}

	list := newTestEngine().GenerateFromMeals(plan, 7)

	seen := map[string]bool{}
	total := 0.0
	for _, it := range list.Items {
		key := strings.ToLower(it.Name) + "|" + it.Unit
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
		total += it.Amount
	}
	assert.Equal(t, float64(7*len(names)), total)
}

func TestRegenerationReplaces(t *testing.T) {
	e := newTestEngine()
	first := e.GenerateFromMeals(model.MealPlan{
		"2024-05-13": {"dinner": {meal("Tacos", ing("tortilla", 8, "", ""))}},
	}, 7)
	require.Len(t, first.Items, 1)

	second := e.GenerateFromMeals(model.MealPlan{
		"2024-05-14": {"dinner": {meal("Curry", ing("rice", 2, "cups", ""))}},
	}, 7)

	require.Len(t, second.Items, 1)
	assert.Equal(t, "rice", second.Items[0].Name)
}

func TestToggleThenRegenerate(t *testing.T) {
	e := newTestEngine()
	plan := model.MealPlan{
		"2024-05-13": {"dinner": {meal("Tacos", ing("tortilla", 8, "", ""))}},
	}

	list := e.GenerateFromMeals(plan, 7)
	require.True(t, Toggle(list, list.Items[0].ID))
	assert.True(t, list.Items[0].Checked)

	list = e.GenerateFromMeals(plan, 7)
	require.Len(t, list.Items, 1)
	assert.False(t, list.Items[0].Checked)
}

func TestGenerateForDatesOnlyScansGivenDates(t *testing.T) {
	e := newTestEngine()
	plan := model.MealPlan{
		"2024-05-18": {"dinner": {meal("Pizza", ing("mozzarella", 1, "cup", ""))}},
		"2024-05-19": {"dinner": {meal("Soup", ing("carrot", 2, "", ""))}},
	}

	list := e.GenerateForDates(plan, []string{"2024-05-19"})
	require.Len(t, list.Items, 1)
	assert.Equal(t, "carrot", list.Items[0].Name)

	list = e.GenerateForDates(plan, nil)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
	require.NotNil(t, list.LastGenerated)
}
