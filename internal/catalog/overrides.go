package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Overrides extends the built-in tables. It is read once at start-up.
//
//	units:
//	  tblsp: tablespoon
//	aisles:
//	  international: pantry
//	ingredients:
//	  - name: tofu
//	    aisle: produce
type Overrides struct {
	Units       map[string]string `yaml:"units"`
	Aisles      map[string]string `yaml:"aisles"`
	Ingredients []IngredientEntry `yaml:"ingredients"`
}

// LoadOverrides reads an overrides file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog overrides: %w", err)
	}
	var o Overrides
	if err := yaml.UnmarshalStrict(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse catalog overrides %s: %w", path, err)
	}
	return &o, nil
}

// Load returns the built-in catalog when path is empty, or one extended by
// the overrides file at path.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	o, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return New(o)
}
