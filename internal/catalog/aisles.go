package catalog

import "github.com/kioskhub/dashboard/backend/internal/model"

// Aisle ids.
const (
	Produce   model.AisleID = "produce"
	Meat      model.AisleID = "meat"
	Dairy     model.AisleID = "dairy"
	Bakery    model.AisleID = "bakery"
	Frozen    model.AisleID = "frozen"
	Pantry    model.AisleID = "pantry"
	Spices    model.AisleID = "spices"
	Beverages model.AisleID = "beverages"
	Snacks    model.AisleID = "snacks"
	Household model.AisleID = "household"
	Other     model.AisleID = "other"
)

// OtherOrder is the sort position of the catch-all aisle and of any aisle
// id missing from the table.
const OtherOrder = 99

var defaultAisles = []model.AisleCategory{
	{ID: Produce, Name: "Produce", Icon: "🥬", Order: 1},
	{ID: Meat, Name: "Meat & Seafood", Icon: "🥩", Order: 2},
	{ID: Dairy, Name: "Dairy & Eggs", Icon: "🥛", Order: 3},
	{ID: Bakery, Name: "Bakery", Icon: "🍞", Order: 4},
	{ID: Frozen, Name: "Frozen", Icon: "🧊", Order: 5},
	{ID: Pantry, Name: "Pantry", Icon: "🥫", Order: 6},
	{ID: Spices, Name: "Spices & Seasonings", Icon: "🧂", Order: 7},
	{ID: Beverages, Name: "Beverages", Icon: "🥤", Order: 8},
	{ID: Snacks, Name: "Snacks", Icon: "🍿", Order: 9},
	{ID: Household, Name: "Household", Icon: "🧻", Order: 10},
	{ID: Other, Name: "Other", Icon: "🛒", Order: OtherOrder},
}

// Store department strings as reported by recipe providers, lower-cased.
var defaultAisleSynonyms = map[string]model.AisleID{
	"vegetables":       Produce,
	"fruit":            Produce,
	"fruits":           Produce,
	"fresh vegetables": Produce,
	"fresh fruits":     Produce,
	"fresh herbs":      Produce,

	"meat":             Meat,
	"seafood":          Meat,
	"meat & seafood":   Meat,
	"meat and seafood": Meat,
	"deli":             Meat,
	"poultry":          Meat,
	"fish":             Meat,

	"dairy, eggs, other dairy": Dairy,
	"milk, eggs, other dairy":  Dairy,
	"dairy & eggs":             Dairy,
	"dairy and eggs":           Dairy,
	"cheese":                   Dairy,
	"refrigerated":             Dairy,
	"eggs":                     Dairy,

	"bread":        Bakery,
	"bakery/bread": Bakery,

	"frozen foods": Frozen,

	"baking":                       Pantry,
	"pasta and rice":               Pantry,
	"canned and jarred":            Pantry,
	"condiments":                   Pantry,
	"oil, vinegar, salad dressing": Pantry,
	"nut butters, jams, and honey": Pantry,
	"cereal":                       Pantry,
	"ethnic foods":                 Pantry,
	"health foods":                 Pantry,
	"gluten free":                  Pantry,
	"gourmet":                      Pantry,
	"dried fruits":                 Pantry,
	"nuts":                         Pantry,
	"grains":                       Pantry,

	"spices and seasonings": Spices,
	"spices & seasonings":   Spices,
	"seasonings":            Spices,

	"tea and coffee":      Beverages,
	"alcoholic beverages": Beverages,
	"drinks":              Beverages,

	"savory snacks": Snacks,
	"sweet snacks":  Snacks,

	"grilling supplies": Household,
	"cleaning":          Household,
	"paper goods":       Household,

	"misc":                          Other,
	"miscellaneous":                 Other,
	"online":                        Other,
	"not in grocery store/homemade": Other,
	"homemade":                      Other,
}
