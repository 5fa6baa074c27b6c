package shopping

import (
	"strings"

	"github.com/kioskhub/dashboard/backend/internal/catalog"
	"github.com/kioskhub/dashboard/backend/internal/model"
)

// ManualSource is the provenance recorded for items typed in by hand.
const ManualSource = "Manual"

// Toggle flips the checked flag of the item with the given id. It reports
// whether the item was found; an unknown id leaves the list untouched.
func Toggle(list *model.ShoppingList, id string) bool {
	for i := range list.Items {
		if list.Items[i].ID == id {
			list.Items[i].Checked = !list.Items[i].Checked
			return true
		}
	}
	return false
}

// Delete removes the item with the given id and reports whether it existed.
func Delete(list *model.ShoppingList, id string) bool {
	for i := range list.Items {
		if list.Items[i].ID == id {
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear resets the list to its never-generated state.
func Clear(list *model.ShoppingList) {
	list.Items = []model.ShoppingListItem{}
	list.LastGenerated = nil
}

// AddManual appends a hand-entered item. It is never merged with existing
// items, even ones with the same name.
func (e *Engine) AddManual(list *model.ShoppingList, name string) model.ShoppingListItem {
	item := model.ShoppingListItem{
		ID:            e.newID(),
		Name:          strings.TrimSpace(name),
		Amount:        1,
		Unit:          "item",
		Aisle:         catalog.Other,
		Checked:       false,
		SourceRecipes: []string{ManualSource},
	}
	list.Items = append(list.Items, item)
	return item
}
