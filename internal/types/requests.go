package types

import (
	"time"

	"github.com/kioskhub/dashboard/backend/internal/model"
)

// GenerateRequest is the optional body of POST .../shopping-list/generate.
// A zero DaysAhead means the configured default.
type GenerateRequest struct {
	DaysAhead int `json:"days_ahead" validate:"omitempty,min=1,max=31"`
}

// AddItemRequest adds a manual entry to the list.
type AddItemRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// ReplaceDayRequest replaces every category planned for one date.
type ReplaceDayRequest struct {
	Categories model.DayPlan `json:"categories" validate:"required,dive,keys,required,max=32,endkeys,max=50,dive"`
}

// MealRangeQuery bounds GET .../meals. Both dates are inclusive.
type MealRangeQuery struct {
	From string `form:"from" validate:"required,datetime=2006-01-02"`
	To   string `form:"to" validate:"required,datetime=2006-01-02"`
}

// ShoppingListResponse wraps a list together with its household.
type ShoppingListResponse struct {
	Household     string                   `json:"household"`
	Items         []model.ShoppingListItem `json:"items"`
	Total         int                      `json:"total"`
	Remaining     int                      `json:"remaining"`
	LastGenerated *time.Time               `json:"lastGenerated"`
}

// NewShoppingListResponse counts the unchecked items of list.
func NewShoppingListResponse(household string, list *model.ShoppingList) ShoppingListResponse {
	resp := ShoppingListResponse{Household: household, Items: []model.ShoppingListItem{}}
	if list == nil {
		return resp
	}
	if list.Items != nil {
		resp.Items = list.Items
	}
	resp.LastGenerated = list.LastGenerated
	resp.Total = len(resp.Items)
	for _, it := range resp.Items {
		if !it.Checked {
			resp.Remaining++
		}
	}
	return resp
}

// GroupedResponse is the aisle-grouped view of a list.
type GroupedResponse struct {
	Household string             `json:"household"`
	Groups    []model.AisleGroup `json:"groups"`
}

// MealPlanResponse lists planned meals keyed by date.
type MealPlanResponse struct {
	Household string         `json:"household"`
	Meals     model.MealPlan `json:"meals"`
}

// AisleLookupResponse reports how a free-text ingredient name was placed.
type AisleLookupResponse struct {
	Name        string              `json:"name"`
	Aisle       model.AisleCategory `json:"aisle"`
	DefaultUnit string              `json:"defaultUnit,omitempty"`
	Match       string              `json:"match"`
	Keyword     string              `json:"keyword,omitempty"`
}
