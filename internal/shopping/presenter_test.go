package shopping

import (
	"testing"

	"github.com/kioskhub/dashboard/backend/internal/catalog"
	"github.com/kioskhub/dashboard/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleList() *model.ShoppingList {
	e := newTestEngine()
	return e.GenerateFromMeals(model.MealPlan{
		"2024-05-13": {
			"breakfast": {meal("Omelette", ing("egg", 3, "", ""), ing("spinach", 1, "bunch", ""))},
			"dinner":    {meal("Tacos", ing("tortilla", 8, "", ""), ing("salt", 0, "", ""), ing("ground beef", 1.5, "lbs", ""))},
		},
	}, 7)
}

func TestGroupOmitsEmptyAislesAndKeepsOrder(t *testing.T) {
	groups := Group(sampleList(), nil)

	var ids []model.AisleID
	for _, g := range groups {
		ids = append(ids, g.ID)
		assert.NotEmpty(t, g.Items)
	}
	assert.Equal(t, []model.AisleID{catalog.Produce, catalog.Meat, catalog.Dairy, catalog.Bakery, catalog.Spices}, ids)
	assert.Equal(t, "🥬", groups[0].Icon)
}

func TestGroupingIsComplete(t *testing.T) {
	list := sampleList()
	list.Items = append(list.Items, model.ShoppingListItem{ID: "stale", Name: "mystery", Aisle: "moon"})

	seen := map[string]int{}
	for _, g := range Group(list, catalog.Default()) {
		for _, it := range g.Items {
			seen[it.ID]++
		}
	}
	require.Len(t, seen, len(list.Items))
	for _, it := range list.Items {
		assert.Equal(t, 1, seen[it.ID], it.Name)
	}
}

func TestGroupNilList(t *testing.T) {
	assert.Empty(t, Group(nil, nil))
	assert.Empty(t, Group(model.NewShoppingList(), nil))
}

func TestExportText(t *testing.T) {
	list := sampleList()
	for i := range list.Items {
		if list.Items[i].Name == "egg" {
			list.Items[i].Checked = true
		}
	}

	want := "🥬 Produce\n" +
		"- [ ] 1 bunch spinach\n" +
		"\n" +
		"🥩 Meat & Seafood\n" +
		"- [ ] 1.5 lb ground beef\n" +
		"\n" +
		"🥛 Dairy & Eggs\n" +
		"- [x] 3 egg\n" +
		"\n" +
		"🍞 Bakery\n" +
		"- [ ] 8 tortilla\n" +
		"\n" +
		"🧂 Spices & Seasonings\n" +
		"- [ ] salt\n"
	assert.Equal(t, want, ExportText(list, nil))
}

func TestExportReflectsCurrentCheckedState(t *testing.T) {
	list := sampleList()
	before := ExportText(list, nil)
	assert.NotContains(t, before, "- [x]")

	Toggle(list, list.Items[0].ID)
	assert.Contains(t, ExportText(list, nil), "- [x]")
}

func TestExportEmptyList(t *testing.T) {
	assert.Equal(t, "", ExportText(model.NewShoppingList(), nil))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.5", FormatAmount(1.5))
	assert.Equal(t, "2", FormatAmount(2))
	assert.Equal(t, "0.33", FormatAmount(1.0/3))
}
