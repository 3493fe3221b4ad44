package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"vehicleagent/internal/model"
)

// Catalog provides read-only access to the vehicle fixture. It is loaded
// once at process start and never mutated afterwards, so it is safe for
// unrestricted concurrent reads.
type Catalog struct {
	vehicles []model.Vehicle
	byID     map[string]model.Vehicle
}

// LoadCatalog reads the catalog fixture from disk. Malformed or incomplete
// entries are a load-time error, not a runtime one.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var vehicles []model.Vehicle
	if err := json.Unmarshal(raw, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return NewCatalog(vehicles)
}

// NewCatalog builds a catalog from pre-parsed records, validating each entry.
func NewCatalog(vehicles []model.Vehicle) (*Catalog, error) {
	byID := make(map[string]model.Vehicle, len(vehicles))
	for i, v := range vehicles {
		if v.ID == "" || v.Make == "" || v.Model == "" {
			return nil, fmt.Errorf("catalog entry %d is missing id, make or model", i)
		}
		if _, exists := byID[v.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog id %q", v.ID)
		}
		byID[v.ID] = v
	}

	return &Catalog{vehicles: vehicles, byID: byID}, nil
}

// Empty returns a catalog with no entries, used when loading fails and the
// process continues in a degraded state.
func Empty() *Catalog {
	return &Catalog{byID: map[string]model.Vehicle{}}
}

// All returns every vehicle in catalog order. Callers must not mutate
// the returned slice.
func (c *Catalog) All() []model.Vehicle {
	return c.vehicles
}

// FindByID looks up a vehicle by its id.
func (c *Catalog) FindByID(id string) (model.Vehicle, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// Filter returns vehicles matching the given make, model and type.
// Empty criteria match everything; comparisons are case-insensitive
// equality, mirroring the backend's search semantics.
func (c *Catalog) Filter(mk, mdl, vtype string) []model.Vehicle {
	results := []model.Vehicle{}
	for _, v := range c.vehicles {
		if mk != "" && !strings.EqualFold(v.Make, mk) {
			continue
		}
		if mdl != "" && !strings.EqualFold(v.Model, mdl) {
			continue
		}
		if vtype != "" && !strings.EqualFold(v.Type, vtype) {
			continue
		}
		results = append(results, v)
	}
	return results
}

// Len returns the number of vehicles in the catalog.
func (c *Catalog) Len() int {
	return len(c.vehicles)
}
