package catalog

// Plural and abbreviated unit spellings mapped to their canonical form.
// Canonical forms never appear as keys mapping to something else, which keeps
// NormalizeUnit idempotent.
var defaultUnitSynonyms = map[string]string{
	"cups": "cup",
	"c":    "cup",

	"tablespoons": "tablespoon",
	"tbsp":        "tablespoon",
	"tbsps":       "tablespoon",
	"tbs":         "tablespoon",
	"tbl":         "tablespoon",

	"teaspoons": "teaspoon",
	"tsp":       "teaspoon",
	"tsps":      "teaspoon",

	"lbs":    "lb",
	"pound":  "lb",
	"pounds": "lb",

	"ounce":  "oz",
	"ounces": "oz",
	"ozs":    "oz",

	"gram":      "g",
	"grams":     "g",
	"kilogram":  "kg",
	"kilograms": "kg",

	"milliliter":  "ml",
	"milliliters": "ml",
	"millilitre":  "ml",
	"millilitres": "ml",
	"liter":       "l",
	"liters":      "l",
	"litre":       "l",
	"litres":      "l",

	"pints":   "pint",
	"quarts":  "quart",
	"gallons": "gallon",

	"cloves":   "clove",
	"pinches":  "pinch",
	"dashes":   "dash",
	"cans":     "can",
	"slices":   "slice",
	"pieces":   "piece",
	"items":    "item",
	"servings": "serving",
	"bunches":  "bunch",
	"packages": "package",
	"pkg":      "package",
	"sticks":   "stick",
	"handfuls": "handful",
	"heads":    "head",
	"stalks":   "stalk",
	"sprigs":   "sprig",
	"jars":     "jar",
	"bottles":  "bottle",
	"boxes":    "box",
	"bags":     "bag",
}
