package roster

import (
	"errors"
	"fmt"
	"strings"

	"radya-hi5/internal/entities"
)

// Catalog is the fixed set of value tags.
type Catalog struct {
	values []entities.ValueTag
	byID   map[string]int
}

// LoadValues reads the value catalog from a JSON or YAML file.
func LoadValues(path string) (*Catalog, error) {
	var values []entities.ValueTag
	if err := readFile(path, &values); err != nil {
		return nil, fmt.Errorf("load values: %w", err)
	}
	return NewCatalog(values)
}

// NewCatalog builds a Catalog; IDs must be present and unique.
func NewCatalog(values []entities.ValueTag) (*Catalog, error) {
	if len(values) == 0 {
		return nil, errors.New("value catalog is empty")
	}
	c := &Catalog{
		values: make([]entities.ValueTag, 0, len(values)),
		byID:   make(map[string]int, len(values)),
	}
	for i, v := range values {
		v.ID = strings.TrimSpace(v.ID)
		if v.ID == "" {
			return nil, fmt.Errorf("value %d: id is required", i)
		}
		if _, dup := c.byID[v.ID]; dup {
			return nil, fmt.Errorf("value %d: duplicate id %q", i, v.ID)
		}
		c.byID[v.ID] = len(c.values)
		c.values = append(c.values, v)
	}
	return c, nil
}

// Get returns the value tag with the given ID.
func (c *Catalog) Get(id string) (entities.ValueTag, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return entities.ValueTag{}, false
	}
	return c.values[idx], true
}

// All returns the catalog in source order.
func (c *Catalog) All() []entities.ValueTag {
	return append([]entities.ValueTag(nil), c.values...)
}
