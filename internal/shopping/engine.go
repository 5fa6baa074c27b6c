// Package shopping turns a meal plan into a consolidated, aisle-ordered
// shopping list and implements the checklist operations on that list.
package shopping

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kioskhub/dashboard/backend/internal/catalog"
	"github.com/kioskhub/dashboard/backend/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultDaysAhead is the number of days scanned when the caller passes a
// non-positive value.
const DefaultDaysAhead = 7

const dateKeyLayout = "2006-01-02"

// Meal categories in the order their meals are read within one day.
// Categories not listed here follow in alphabetical order.
var categoryOrder = []string{"breakfast", "lunch", "dinner", "snack"}

// Engine builds shopping lists. The zero value is not usable; use NewEngine.
type Engine struct {
	catalog   *catalog.Catalog
	now       func() time.Time
	loc       *time.Location
	weekStart time.Weekday
	newID     func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation sets the time zone used to decide what "this week" is.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithWeekStart sets the first day of the week. Sunday by default.
func WithWeekStart(d time.Weekday) Option {
	return func(e *Engine) { e.weekStart = d }
}

// WithIDGenerator replaces the item id generator.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// NewEngine returns an engine over the given catalog, or the built-in one
// when cat is nil.
func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	if cat == nil {
		cat = catalog.Default()
	}
	e := &Engine{
		catalog:   cat,
		now:       time.Now,
		loc:       time.Local,
		weekStart: time.Sunday,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine normalises with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// WeekStart returns the first day of the current week in the engine's time zone.
func (e *Engine) WeekStart() time.Time {
	now := e.now().In(e.loc)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.loc)
	offset := (int(day.Weekday()) - int(e.weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// DateKeys returns daysAhead consecutive YYYY-MM-DD keys starting at the
// current week's start.
func (e *Engine) DateKeys(daysAhead int) []string {
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}
	start := e.WeekStart()
	keys := make([]string, daysAhead)
	for i := range keys {
		keys[i] = start.AddDate(0, 0, i).Format(dateKeyLayout)
	}
	return keys
}

type consolidationKey struct {
	name string
	unit string
}

// GenerateFromMeals folds every ingredient of every meal planned in the
// current week's first daysAhead days into a fresh list.
func (e *Engine) GenerateFromMeals(plan model.MealPlan, daysAhead int) *model.ShoppingList {
	return e.GenerateForDates(plan, e.DateKeys(daysAhead))
}

// GenerateForDates builds a list from the meals planned on dates, scanned in
// the given order. Ingredients sharing a lower-cased name and normalised unit
// become one item whose amount is the sum. The first occurrence decides the
// item's name and aisle.
func (e *Engine) GenerateForDates(plan model.MealPlan, dates []string) *model.ShoppingList {
	items := make([]model.ShoppingListItem, 0)
	index := make(map[consolidationKey]int)

	for _, date := range dates {
		day, ok := plan[date]
		if !ok {
			continue
		}
		for _, meal := range flattenDay(day) {
			for _, ing := range meal.Ingredients {
				unit := e.catalog.NormalizeUnit(ing.Unit)
				key := consolidationKey{name: strings.ToLower(strings.TrimSpace(ing.Name)), unit: unit}

				if i, seen := index[key]; seen {
					items[i].Amount += ing.Amount.Float()
					items[i].SourceRecipes = append(items[i].SourceRecipes, meal.Name)
					continue
				}

				index[key] = len(items)
				items = append(items, model.ShoppingListItem{
					ID:            e.newID(),
					Name:          strings.TrimSpace(ing.Name),
					Amount:        ing.Amount.Float(),
					Unit:          unit,
					Aisle:         e.catalog.ResolveAisle(ing.Aisle, ing.Name),
					Checked:       false,
					SourceRecipes: []string{meal.Name},
				})
			}
		}
	}

	e.Sort(items)
	generated := e.now().UTC()
	return &model.ShoppingList{Items: items, LastGenerated: &generated}
}

// Sort orders items by aisle position and then by name.
func (e *Engine) Sort(items []model.ShoppingListItem) {
	col := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		oi, oj := e.catalog.Order(items[i].Aisle), e.catalog.Order(items[j].Aisle)
		if oi != oj {
			return oi < oj
		}
		return col.CompareString(items[i].Name, items[j].Name) < 0
	})
}

// flattenDay lists a day's meals category by category.
func flattenDay(day model.DayPlan) []model.Meal {
	seen := make(map[string]bool, len(day))
	var meals []model.Meal
	for _, cat := range categoryOrder {
		seen[cat] = true
		meals = append(meals, day[cat]...)
	}

	var rest []string
	for cat := range day {
		if !seen[cat] {
			rest = append(rest, cat)
		}
	}
	sort.Strings(rest)
	for _, cat := range rest {
		meals = append(meals, day[cat]...)
	}
	return meals
}
