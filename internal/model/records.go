package model

import "time"

// PlannedMeal is one meal row of a household's meal plan.
type PlannedMeal struct {
	ID          string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Household   string         `gorm:"type:varchar(64);not null;index:idx_planned_meals_household_date,priority:1" json:"household"`
	Date        string         `gorm:"type:varchar(10);not null;index:idx_planned_meals_household_date,priority:2" json:"date"`
	Category    string         `gorm:"type:varchar(32);not null" json:"category"`
	Position    int            `gorm:"not null;default:0" json:"position"`
	MealID      string         `gorm:"type:varchar(64)" json:"mealId"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Ingredients IngredientList `gorm:"type:text" json:"ingredients"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Meal converts the row back into a Meal.
func (p PlannedMeal) Meal() Meal {
	ings := []Ingredient(p.Ingredients)
	if ings == nil {
		ings = []Ingredient{}
	}
	return Meal{ID: p.MealID, Name: p.Name, Ingredients: ings}
}

// StoredShoppingList is the database row holding one list.
type StoredShoppingList struct {
	StorageKey    string   `gorm:"type:varchar(128);primarykey"`
	Items         ItemList `gorm:"type:text"`
	LastGenerated *time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default table name.
func (StoredShoppingList) TableName() string {
	return "shopping_lists"
}
