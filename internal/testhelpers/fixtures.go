package testhelpers

import (
	"time"

	"github.com/kioskhub/dashboard/backend/internal/model"
)

// FixedNow is a Wednesday; with a Sunday week start the current week runs
// from 2024-05-12 to 2024-05-18.
var FixedNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

// Clock returns FixedNow.
func Clock() time.Time { return FixedNow }

// Ingredient builds an ingredient without an explicit aisle.
func Ingredient(name string, amount float64, unit string) model.Ingredient {
	return model.Ingredient{Name: name, Amount: model.Amount(amount), Unit: unit}
}

// Meal builds a meal whose id equals its name.
func Meal(name string, ings ...model.Ingredient) model.Meal {
	if ings == nil {
		ings = []model.Ingredient{}
	}
	return model.Meal{ID: name, Name: name, Ingredients: ings}
}

// WeekPlan is a small plan inside FixedNow's week.
func WeekPlan() model.MealPlan {
	return model.MealPlan{
		"2024-05-13": {
			"breakfast": {Meal("Omelette", Ingredient("egg", 2, ""), Ingredient("spinach", 1, "cups"))},
			"dinner":    {Meal("Pancakes", Ingredient("flour", 1, "cups"), Ingredient("milk", 1, "cup"))},
		},
		"2024-05-14": {
			"breakfast": {Meal("Scramble", Ingredient("Egg", 1, ""))},
			"dinner":    {Meal("Bread", Ingredient("flour", 0.5, "cup"), Ingredient("salt", 1, "tsp"))},
		},
	}
}
