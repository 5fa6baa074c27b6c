package mealplan_test

import (
	"context"
	"testing"

	"github.com/kioskhub/dashboard/backend/internal/mealplan"
	"github.com/kioskhub/dashboard/backend/internal/model"
	"github.com/kioskhub/dashboard/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBSourceRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := mealplan.NewDBSource(testhelpers.SetupSQLite(t))

	for date, day := range testhelpers.WeekPlan() {
		require.NoError(t, src.ReplaceDay(ctx, "home", date, day))
	}

	plan, err := src.MealPlan(ctx, "home", []string{"2024-05-13", "2024-05-14", "2024-05-15"})
	require.NoError(t, err)
	require.Len(t, plan, 2)

	breakfast := plan["2024-05-13"]["breakfast"]
	require.Len(t, breakfast, 1)
	assert.Equal(t, "Omelette", breakfast[0].Name)
	assert.Equal(t, "Omelette", breakfast[0].ID)
	require.Len(t, breakfast[0].Ingredients, 2)
	assert.Equal(t, "egg", breakfast[0].Ingredients[0].Name)
	assert.Equal(t, 2.0, breakfast[0].Ingredients[0].Amount.Float())

	other, err := src.MealPlan(ctx, "cabin", []string{"2024-05-13"})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestDBSourceReplaceDayReplaces(t *testing.T) {
	ctx := context.Background()
	src := mealplan.NewDBSource(testhelpers.SetupSQLite(t))

	require.NoError(t, src.ReplaceDay(ctx, "home", "2024-05-13", model.DayPlan{
		"dinner": {testhelpers.Meal("Tacos"), testhelpers.Meal("Salad")},
		"lunch":  {testhelpers.Meal("Soup")},
	}))
	require.NoError(t, src.ReplaceDay(ctx, "home", "2024-05-13", model.DayPlan{
		"dinner": {{Name: "Curry", Ingredients: []model.Ingredient{testhelpers.Ingredient("rice", 2, "cups")}}},
	}))

	plan, err := src.Range(ctx, "home", "2024-05-12", "2024-05-18")
	require.NoError(t, err)
	require.Len(t, plan["2024-05-13"], 1)
	dinner := plan["2024-05-13"]["dinner"]
	require.Len(t, dinner, 1)
	assert.Equal(t, "Curry", dinner[0].Name)
	assert.NotEmpty(t, dinner[0].ID, "missing meal ids are generated")
}

func TestDBSourceKeepsMealOrder(t *testing.T) {
	ctx := context.Background()
	src := mealplan.NewDBSource(testhelpers.SetupSQLite(t))

	require.NoError(t, src.ReplaceDay(ctx, "home", "2024-05-13", model.DayPlan{
		"dinner": {testhelpers.Meal("Zucchini bake"), testhelpers.Meal("Apple pie"), testhelpers.Meal("Mango lassi")},
	}))

	plan, err := src.MealPlan(ctx, "home", []string{"2024-05-13"})
	require.NoError(t, err)
	var names []string
	for _, m := range plan["2024-05-13"]["dinner"] {
		names = append(names, m.Name)
		assert.NotNil(t, m.Ingredients)
	}
	assert.Equal(t, []string{"Zucchini bake", "Apple pie", "Mango lassi"}, names)
}

func TestDBSourceDeleteDay(t *testing.T) {
	ctx := context.Background()
	src := mealplan.NewDBSource(testhelpers.SetupSQLite(t))
	for date, day := range testhelpers.WeekPlan() {
		require.NoError(t, src.ReplaceDay(ctx, "home", date, day))
	}

	require.NoError(t, src.DeleteDay(ctx, "home", "2024-05-13"))

	plan, err := src.Range(ctx, "home", "2024-05-01", "2024-05-31")
	require.NoError(t, err)
	assert.NotContains(t, plan, "2024-05-13")
	assert.Contains(t, plan, "2024-05-14")
}

func TestDBSourceNoDates(t *testing.T) {
	src := mealplan.NewDBSource(testhelpers.SetupSQLite(t))
	plan, err := src.MealPlan(context.Background(), "home", nil)
	require.NoError(t, err)
	assert.Empty(t, plan)
}
