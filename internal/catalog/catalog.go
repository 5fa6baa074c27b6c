// Package catalog holds the grocery reference data and the normalisation
// rules built on it. A Catalog is immutable once built.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/kioskhub/dashboard/backend/internal/logger"
	"github.com/kioskhub/dashboard/backend/internal/model"
	"go.uber.org/zap"
)

// MatchKind records how an ingredient name was resolved to an aisle.
type MatchKind string

const (
	MatchExact     MatchKind = "exact"
	MatchSubstring MatchKind = "substring"
	MatchNone      MatchKind = "none"
)

// Inference is the outcome of looking an ingredient name up in the dictionary.
type Inference struct {
	Aisle       model.AisleID `json:"aisle"`
	DefaultUnit string        `json:"defaultUnit,omitempty"`
	Match       MatchKind     `json:"match"`
	Keyword     string        `json:"keyword,omitempty"`
}

// Catalog is the set of lookup tables used to normalise ingredients.
type Catalog struct {
	aisles        []model.AisleCategory
	aisleByID     map[model.AisleID]model.AisleCategory
	aisleSynonyms map[string]model.AisleID
	units         map[string]string
	exact         map[string]IngredientEntry
	rules         []IngredientEntry
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(nil)
		if err != nil {
			panic(fmt.Sprintf("catalog: built-in tables are inconsistent: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// New builds a catalog from the built-in tables merged with overrides,
// which may be nil.
func New(overrides *Overrides) (*Catalog, error) {
	c := &Catalog{
		aisleByID:     make(map[model.AisleID]model.AisleCategory),
		aisleSynonyms: make(map[string]model.AisleID),
		units:         make(map[string]string),
		exact:         make(map[string]IngredientEntry),
	}

	c.aisles = append(c.aisles, defaultAisles...)
	for _, a := range c.aisles {
		c.aisleByID[a.ID] = a
		c.aisleSynonyms[string(a.ID)] = a.ID
		c.aisleSynonyms[strings.ToLower(a.Name)] = a.ID
	}
	for k, v := range defaultAisleSynonyms {
		c.aisleSynonyms[k] = v
	}
	for k, v := range defaultUnitSynonyms {
		c.units[k] = v
	}
	entries := append([]IngredientEntry(nil), defaultIngredients...)

	if overrides != nil {
		for k, v := range overrides.Units {
			c.units[clean(k)] = clean(v)
		}
		for k, v := range overrides.Aisles {
			id := model.AisleID(clean(v))
			if _, ok := c.aisleByID[id]; !ok {
				return nil, fmt.Errorf("aisle synonym %q points at unknown aisle %q", k, v)
			}
			c.aisleSynonyms[clean(k)] = id
		}
		for _, ent := range overrides.Ingredients {
			if _, ok := c.aisleByID[ent.Aisle]; !ok {
				return nil, fmt.Errorf("ingredient %q points at unknown aisle %q", ent.Name, ent.Aisle)
			}
			entries = append(entries, ent)
		}
	}

	if err := checkUnitChains(c.units); err != nil {
		return nil, err
	}

	for _, ent := range entries {
		ent.Name = clean(ent.Name)
		if ent.Name == "" {
			continue
		}
		// later entries (overrides) replace earlier ones with the same name
		if _, seen := c.exact[ent.Name]; seen {
			for i := range c.rules {
				if c.rules[i].Name == ent.Name {
					c.rules[i] = ent
				}
			}
		} else {
			c.rules = append(c.rules, ent)
		}
		c.exact[ent.Name] = ent
	}
	sort.SliceStable(c.rules, func(i, j int) bool {
		return len(c.rules[i].Name) > len(c.rules[j].Name)
	})

	return c, nil
}

// checkUnitChains rejects synonym tables where a canonical unit is itself
// remapped, since NormalizeUnit applies the table only once.
func checkUnitChains(units map[string]string) error {
	for from, to := range units {
		if next, ok := units[to]; ok && next != to {
			return fmt.Errorf("unit synonym chain %q -> %q -> %q", from, to, next)
		}
	}
	return nil
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeUnit lower-cases and trims a unit and maps known plural and
// abbreviated spellings to a canonical form. Unknown units pass through.
func (c *Catalog) NormalizeUnit(raw string) string {
	u := clean(raw)
	if u == "" {
		return ""
	}
	if canonical, ok := c.units[u]; ok {
		return canonical
	}
	return u
}

// NormalizeAisle maps a store department string to an aisle id. Only the
// first semicolon-separated segment is considered.
func (c *Catalog) NormalizeAisle(raw string) model.AisleID {
	first, _, _ := strings.Cut(raw, ";")
	key := clean(first)
	if key == "" {
		return Other
	}
	if id, ok := c.aisleSynonyms[key]; ok {
		return id
	}
	return Other
}

// InferAisleFromName guesses an aisle from an ingredient name.
func (c *Catalog) InferAisleFromName(name string) model.AisleID {
	return c.Infer(name).Aisle
}

// Infer looks a name up in the dictionary. An exact match wins. Otherwise the
// longest dictionary keyword contained in the name is used, ties broken by
// table order. Containment matches are logged so they can be reviewed.
func (c *Catalog) Infer(name string) Inference {
	key := clean(name)
	if key == "" {
		return Inference{Aisle: Other, Match: MatchNone}
	}
	if ent, ok := c.exact[key]; ok {
		return Inference{Aisle: ent.Aisle, DefaultUnit: ent.DefaultUnit, Match: MatchExact, Keyword: ent.Name}
	}
	for _, ent := range c.rules {
		if containsKeyword(key, ent.Name) {
			logger.Named("catalog").Debug("aisle inferred by keyword",
				zap.String("ingredient", key),
				zap.String("keyword", ent.Name),
				zap.String("aisle", string(ent.Aisle)),
			)
			return Inference{Aisle: ent.Aisle, DefaultUnit: ent.DefaultUnit, Match: MatchSubstring, Keyword: ent.Name}
		}
	}
	return Inference{Aisle: Other, Match: MatchNone}
}

// shortKeyword is the longest keyword that must match a whole word, so that
// "ham" does not hit "shampoo" nor "oil" hit "tin foil".
const shortKeyword = 4

// containsKeyword reports whether kw occurs in name. Short keywords only
// count as whole words, optionally followed by a plural "s" or "es".
func containsKeyword(name, kw string) bool {
	if utf8.RuneCountInString(kw) > shortKeyword {
		return strings.Contains(name, kw)
	}
	for from := 0; ; {
		i := strings.Index(name[from:], kw)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(kw)
		if wordEdgeBefore(name, start) && wordEdgeAfter(name, end) {
			return true
		}
		from = start + 1
	}
}

func wordEdgeBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r)
}

func wordEdgeAfter(s string, i int) bool {
	rest := s[i:]
	for _, suffix := range []string{"es", "s", ""} {
		if !strings.HasPrefix(rest, suffix) {
			continue
		}
		tail := rest[len(suffix):]
		if tail == "" {
			return true
		}
		if r, _ := utf8.DecodeRuneInString(tail); !unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// ResolveAisle uses the explicit department string when there is one and
// falls back to name inference otherwise.
func (c *Catalog) ResolveAisle(rawAisle, name string) model.AisleID {
	if strings.TrimSpace(rawAisle) != "" {
		return c.NormalizeAisle(rawAisle)
	}
	return c.InferAisleFromName(name)
}

// Aisles returns the aisle table ordered by Order.
func (c *Catalog) Aisles() []model.AisleCategory {
	out := append([]model.AisleCategory(nil), c.aisles...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Aisle looks up an aisle by id.
func (c *Catalog) Aisle(id model.AisleID) (model.AisleCategory, bool) {
	a, ok := c.aisleByID[id]
	return a, ok
}

// Order returns the sort position for an aisle id, OtherOrder when unknown.
func (c *Catalog) Order(id model.AisleID) int {
	if a, ok := c.aisleByID[id]; ok {
		return a.Order
	}
	return OtherOrder
}

// Package-level helpers over the built-in catalog.

func NormalizeUnit(raw string) string              { return Default().NormalizeUnit(raw) }
func NormalizeAisle(raw string) model.AisleID      { return Default().NormalizeAisle(raw) }
func InferAisleFromName(name string) model.AisleID { return Default().InferAisleFromName(name) }
