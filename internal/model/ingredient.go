package model

// AisleID identifies a grocery-store department.
type AisleID string

// Ingredient is a structured ingredient line owned by a Meal. Aisle carries
// the raw department string supplied by the recipe source (it may be empty
// or semicolon-delimited); it is normalised during aggregation.
type Ingredient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   Amount `json:"amount"`
	Unit     string `json:"unit"`
	Aisle    string `json:"aisle"`
	Original string `json:"original,omitempty"`
}

// Meal is a planned food item for one date and meal category.
type Meal struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

// DayPlan maps a meal-category id (breakfast, lunch, ...) to its meals.
type DayPlan map[string][]Meal

// MealPlan maps a YYYY-MM-DD date key to that day's plan.
type MealPlan map[string]DayPlan
