package shopping

import (
	"math"
	"strconv"
	"strings"

	"github.com/kioskhub/dashboard/backend/internal/catalog"
	"github.com/kioskhub/dashboard/backend/internal/model"
)

// Group partitions the list by aisle in aisle order. Aisles without items are
// left out and items keep their relative order. Items whose aisle is missing
// from the catalog are shown under the catch-all aisle.
func Group(list *model.ShoppingList, cat *catalog.Catalog) []model.AisleGroup {
	if cat == nil {
		cat = catalog.Default()
	}
	if list == nil {
		return []model.AisleGroup{}
	}

	byAisle := make(map[model.AisleID][]model.ShoppingListItem)
	for _, item := range list.Items {
		id := item.Aisle
		if _, ok := cat.Aisle(id); !ok {
			id = catalog.Other
		}
		byAisle[id] = append(byAisle[id], item)
	}

	groups := make([]model.AisleGroup, 0, len(byAisle))
	for _, a := range cat.Aisles() {
		items := byAisle[a.ID]
		if len(items) == 0 {
			continue
		}
		groups = append(groups, model.AisleGroup{AisleCategory: a, Items: items})
	}
	return groups
}

// ExportText renders the grouped list as a plain-text checklist:
//
//	🥬 Produce
//	- [ ] 2 carrot
//	- [x] 1 lb apple
//
//	🥛 Dairy & Eggs
//	- [ ] 3 egg
func ExportText(list *model.ShoppingList, cat *catalog.Catalog) string {
	var b strings.Builder
	for i, g := range Group(list, cat) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.TrimSpace(g.Icon + " " + g.Name))
		b.WriteString("\n")
		for _, item := range g.Items {
			b.WriteString(ItemLine(item))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ItemLine renders one checklist line. The amount is omitted when zero and
// the unit when empty.
func ItemLine(item model.ShoppingListItem) string {
	mark := " "
	if item.Checked {
		mark = "x"
	}
	parts := []string{"- [" + mark + "]"}
	if item.Amount > 0 {
		parts = append(parts, FormatAmount(item.Amount))
	}
	if item.Unit != "" {
		parts = append(parts, item.Unit)
	}
	parts = append(parts, item.Name)
	return strings.Join(parts, " ")
}

// FormatAmount prints an amount with at most two decimals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
