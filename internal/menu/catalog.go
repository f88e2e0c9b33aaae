// Package menu implements the interactive menu controller: the
// distribution catalog, the explicit session state machine, and the
// prompt/validate/evaluate/display loop.
package menu

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Distribution identifiers the session knows how to collect parameters for.
const (
	DistBinomial    = "binomial"
	DistPoisson     = "poisson"
	DistNormal      = "normal"
	DistExponential = "exponential"
)

// Distribution is one selectable catalog entry.
type Distribution struct {
	// ID selects the parameter flow; must be one of the Dist* constants.
	ID string `yaml:"id"`
	// Name is the menu label.
	Name string `yaml:"name"`
	// Summary is the one-line description shown next to the label.
	Summary string `yaml:"summary"`
}

// Category groups distributions for the category selection screen.
type Category struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Description   string         `yaml:"description"`
	Distributions []Distribution `yaml:"distributions"`
}

// Catalog is the full menu hierarchy.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// DefaultCatalog parses the embedded catalog.
//
// Postcondition: Returns a valid catalog; failure here is a programming
// error in the embedded data and is returned for the caller to treat as
// a startup failure.
func DefaultCatalog() (Catalog, error) {
	return parseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads and parses a catalog YAML file.
//
// Precondition: path must be a readable file path.
// Postcondition: Returns a validated catalog or a non-nil error.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := parseCatalog(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

func parseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) validate() error {
	known := map[string]bool{
		DistBinomial: true, DistPoisson: true,
		DistNormal: true, DistExponential: true,
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %q has no name", cat.ID)
		}
		if len(cat.Distributions) == 0 {
			return fmt.Errorf("category %q has no distributions", cat.ID)
		}
		for _, d := range cat.Distributions {
			if !known[d.ID] {
				return fmt.Errorf("category %q references unknown distribution %q", cat.ID, d.ID)
			}
			if d.Name == "" {
				return fmt.Errorf("distribution %q has no name", d.ID)
			}
		}
	}
	return nil
}
