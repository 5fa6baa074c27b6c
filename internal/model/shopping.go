package model

import "time"

// ShoppingListItem is one consolidated line of the shopping list.
type ShoppingListItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Amount        float64  `json:"amount"`
	Unit          string   `json:"unit"`
	Aisle         AisleID  `json:"aisle"`
	Checked       bool     `json:"checked"`
	SourceRecipes []string `json:"sourceRecipes"`
}

// ShoppingList is the stored list. It is replaced wholesale on every
// generation.
type ShoppingList struct {
	Items         []ShoppingListItem `json:"items"`
	LastGenerated *time.Time         `json:"lastGenerated"`
}

// NewShoppingList returns an empty list that has never been generated.
func NewShoppingList() *ShoppingList {
	return &ShoppingList{Items: []ShoppingListItem{}}
}

// Clone returns a deep copy of the list.
func (l *ShoppingList) Clone() *ShoppingList {
	if l == nil {
		return nil
	}
	out := &ShoppingList{Items: make([]ShoppingListItem, len(l.Items))}
	for i, item := range l.Items {
		item.SourceRecipes = append([]string(nil), item.SourceRecipes...)
		out.Items[i] = item
	}
	if l.LastGenerated != nil {
		ts := *l.LastGenerated
		out.LastGenerated = &ts
	}
	return out
}

// AisleCategory is a static grocery department entry.
type AisleCategory struct {
	ID    AisleID `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Icon  string  `json:"icon" yaml:"icon"`
	Order int     `json:"order" yaml:"order"`
}

// AisleGroup is an aisle together with the list items that belong to it.
type AisleGroup struct {
	AisleCategory
	Items []ShoppingListItem `json:"items"`
}
