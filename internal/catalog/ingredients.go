package catalog

import "github.com/kioskhub/dashboard/backend/internal/model"

// IngredientEntry is one row of the ingredient dictionary.
type IngredientEntry struct {
	Name        string        `yaml:"name" json:"name"`
	Aisle       model.AisleID `yaml:"aisle" json:"aisle"`
	DefaultUnit string        `yaml:"default_unit" json:"defaultUnit,omitempty"`
}

func e(name string, aisle model.AisleID, unit string) IngredientEntry {
	return IngredientEntry{Name: name, Aisle: aisle, DefaultUnit: unit}
}

// Keywords are matched exactly first and then by containment, longest first.
// A keyword must not be a fragment of common unrelated words ("tea" is inside
// "steak", "ale" inside "kale"), so short generic stems are left out.
var defaultIngredients = []IngredientEntry{
	// Produce
	e("apple", Produce, ""),
	e("banana", Produce, ""),
	e("orange", Produce, ""),
	e("lemon", Produce, ""),
	e("lime", Produce, ""),
	e("avocado", Produce, ""),
	e("tomato", Produce, ""),
	e("potato", Produce, ""),
	e("sweet potato", Produce, ""),
	e("onion", Produce, ""),
	e("green onion", Produce, ""),
	e("shallot", Produce, ""),
	e("garlic", Produce, "clove"),
	e("lettuce", Produce, "head"),
	e("spinach", Produce, ""),
	e("kale", Produce, ""),
	e("broccoli", Produce, ""),
	e("cauliflower", Produce, ""),
	e("carrot", Produce, ""),
	e("celery", Produce, "stalk"),
	e("cucumber", Produce, ""),
	e("bell pepper", Produce, ""),
	e("jalapeno", Produce, ""),
	e("jalapeño", Produce, ""),
	e("mushroom", Produce, ""),
	e("zucchini", Produce, ""),
	e("eggplant", Produce, ""),
	e("asparagus", Produce, ""),
	e("green beans", Produce, ""),
	e("corn on the cob", Produce, ""),
	e("cabbage", Produce, ""),
	e("berries", Produce, ""),
	e("strawberr", Produce, ""),
	e("blueberr", Produce, ""),
	e("raspberr", Produce, ""),
	e("grapes", Produce, ""),
	e("pineapple", Produce, ""),
	e("mango", Produce, ""),
	e("peach", Produce, ""),
	e("pear", Produce, ""),
	e("melon", Produce, ""),
	e("cilantro", Produce, "bunch"),
	e("parsley", Produce, "bunch"),
	e("basil", Produce, ""),
	e("fresh mint", Produce, ""),
	e("ginger", Produce, ""),
	e("scallion", Produce, ""),
	e("peas", Produce, ""),
	e("squash", Produce, ""),
	e("butternut squash", Produce, ""),

	// Meat & seafood
	e("chicken", Meat, "lb"),
	e("beef", Meat, "lb"),
	e("ground beef", Meat, "lb"),
	e("pork", Meat, "lb"),
	e("turkey", Meat, "lb"),
	e("bacon", Meat, "slice"),
	e("sausage", Meat, ""),
	e("pepperoni", Meat, ""),
	e("salami", Meat, ""),
	e("prosciutto", Meat, ""),
	e("ham", Meat, ""),
	e("steak", Meat, ""),
	e("lamb", Meat, ""),
	e("salmon", Meat, ""),
	e("shrimp", Meat, ""),
	e("tuna steak", Meat, ""),
	e("cod", Meat, ""),
	e("tilapia", Meat, ""),
	e("crab", Meat, ""),

	// Dairy & eggs
	e("egg", Dairy, ""),
	e("eggs", Dairy, ""),
	e("milk", Dairy, "cup"),
	e("butter", Dairy, "tablespoon"),
	e("cheese", Dairy, ""),
	e("cheddar", Dairy, ""),
	e("mozzarella", Dairy, ""),
	e("parmesan", Dairy, ""),
	e("feta", Dairy, ""),
	e("cream cheese", Dairy, ""),
	e("sour cream", Dairy, ""),
	e("heavy cream", Dairy, ""),
	e("whipping cream", Dairy, ""),
	e("cream", Dairy, ""),
	e("yogurt", Dairy, ""),
	e("half and half", Dairy, ""),

	// Bakery
	e("bread", Bakery, "slice"),
	e("bagel", Bakery, ""),
	e("tortilla", Bakery, ""),
	e("buns", Bakery, ""),
	e("rolls", Bakery, ""),
	e("croissant", Bakery, ""),
	e("pita", Bakery, ""),
	e("naan", Bakery, ""),
	e("english muffin", Bakery, ""),

	// Frozen
	e("ice cream", Frozen, ""),
	e("frozen", Frozen, ""),
	e("popsicle", Frozen, ""),

	// Pantry
	e("flour", Pantry, "cup"),
	e("sugar", Pantry, "cup"),
	e("brown sugar", Pantry, "cup"),
	e("rice", Pantry, "cup"),
	e("pasta", Pantry, ""),
	e("spaghetti", Pantry, ""),
	e("noodle", Pantry, ""),
	e("oats", Pantry, "cup"),
	e("barley", Pantry, "cup"),
	e("olive oil", Pantry, "tablespoon"),
	e("vegetable oil", Pantry, ""),
	e("oil", Pantry, ""),
	e("vinegar", Pantry, ""),
	e("soy sauce", Pantry, ""),
	e("ketchup", Pantry, ""),
	e("mustard", Pantry, ""),
	e("mayonnaise", Pantry, ""),
	e("honey", Pantry, ""),
	e("maple syrup", Pantry, ""),
	e("peanut butter", Pantry, ""),
	e("jam", Pantry, ""),
	e("cereal", Pantry, ""),
	e("broth", Pantry, ""),
	e("stock", Pantry, ""),
	e("chicken broth", Pantry, ""),
	e("chicken stock", Pantry, ""),
	e("beans", Pantry, "can"),
	e("chickpeas", Pantry, "can"),
	e("lentils", Pantry, ""),
	e("tomato sauce", Pantry, "can"),
	e("tomato paste", Pantry, ""),
	e("canned tomatoes", Pantry, "can"),
	e("coconut milk", Pantry, "can"),
	e("baking powder", Pantry, "teaspoon"),
	e("baking soda", Pantry, "teaspoon"),
	e("cornstarch", Pantry, ""),
	e("yeast", Pantry, ""),
	e("vanilla", Pantry, "teaspoon"),
	e("chocolate chips", Pantry, ""),
	e("cocoa", Pantry, ""),
	e("breadcrumbs", Pantry, ""),
	e("salsa", Pantry, ""),

	// Spices
	e("salt", Spices, "teaspoon"),
	e("pepper", Spices, "teaspoon"),
	e("black pepper", Spices, "teaspoon"),
	e("peppercorn", Spices, ""),
	e("red pepper flakes", Spices, ""),
	e("cinnamon", Spices, "teaspoon"),
	e("cumin", Spices, "teaspoon"),
	e("paprika", Spices, "teaspoon"),
	e("oregano", Spices, "teaspoon"),
	e("thyme", Spices, "teaspoon"),
	e("rosemary", Spices, ""),
	e("nutmeg", Spices, ""),
	e("chili powder", Spices, "teaspoon"),
	e("garlic powder", Spices, "teaspoon"),
	e("onion powder", Spices, "teaspoon"),
	e("curry powder", Spices, ""),
	e("bay leaf", Spices, ""),
	e("bay leaves", Spices, ""),
	e("turmeric", Spices, ""),
	e("italian seasoning", Spices, ""),

	// Beverages
	e("coffee", Beverages, ""),
	e("green tea", Beverages, ""),
	e("black tea", Beverages, ""),
	e("tea bags", Beverages, ""),
	e("juice", Beverages, ""),
	e("apple juice", Beverages, ""),
	e("orange juice", Beverages, ""),
	e("lemonade", Beverages, ""),
	e("soda", Beverages, ""),
	e("sparkling water", Beverages, ""),
	e("wine", Beverages, ""),
	e("beer", Beverages, ""),
	e("champagne", Beverages, ""),
	e("eggnog", Beverages, ""),

	// Snacks
	e("chips", Snacks, ""),
	e("crackers", Snacks, ""),
	e("graham cracker", Snacks, ""),
	e("popcorn", Snacks, ""),
	e("pretzel", Snacks, ""),
	e("cookies", Snacks, ""),
	e("granola bar", Snacks, ""),
	e("almonds", Snacks, ""),
	e("walnuts", Snacks, ""),
	e("peanuts", Snacks, ""),

	// Household
	e("paper towel", Household, ""),
	e("toilet paper", Household, ""),
	e("aluminum foil", Household, ""),
	e("foil", Household, ""),
	e("plastic wrap", Household, ""),
	e("parchment paper", Household, ""),
	e("dish soap", Household, ""),
	e("trash bags", Household, ""),
	e("napkins", Household, ""),
	e("shampoo", Household, ""),
}
