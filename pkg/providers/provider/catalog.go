package provider

import (
	"fmt"
)

// UnknownProviderError is returned when a provider id is not registered. It
// signals a caller bug: ids are expected to come from the catalog itself.
type UnknownProviderError struct {
	ID string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("provider: unknown provider %q", e.ID)
}

// Catalog is an ordered, read-only registry of provider descriptors.
type Catalog struct {
	order     []string
	byID      map[string]Descriptor
	defaultID string
}

// NewCatalog builds a catalog from descs in registration order. Ids must be
// unique and exactly one descriptor must be marked Recommended; it becomes the
// default provider.
func NewCatalog(descs ...Descriptor) (*Catalog, error) {
	c := &Catalog{
		order: make([]string, 0, len(descs)),
		byID:  make(map[string]Descriptor, len(descs)),
	}

	for _, d := range descs {
		if d.ID == "" {
			return nil, fmt.Errorf("provider: catalog: descriptor id is required")
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("provider: catalog: duplicate id %q", d.ID)
		}
		if d.Recommended {
			if c.defaultID != "" {
				return nil, fmt.Errorf("provider: catalog: %q and %q are both recommended", c.defaultID, d.ID)
			}
			c.defaultID = d.ID
		}

		c.order = append(c.order, d.ID)
		c.byID[d.ID] = d.clone()
	}

	if c.defaultID == "" {
		return nil, fmt.Errorf("provider: catalog: no recommended provider")
	}

	return c, nil
}

// Describe returns the descriptor registered under id.
func (c *Catalog) Describe(id string) (Descriptor, error) {
	d, ok := c.byID[id]
	if !ok {
		return Descriptor{}, &UnknownProviderError{ID: id}
	}
	return d.clone(), nil
}

// DefaultID returns the id of the recommended provider.
func (c *Catalog) DefaultID() string { return c.defaultID }

// All returns every descriptor in registration order.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.order))
	for i, id := range c.order {
		out[i] = c.byID[id].clone()
	}
	return out
}

// Has reports whether id is registered.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Override replaces transport details of a registered descriptor. Empty
// fields keep the registered value.
type Override struct {
	Endpoint string
	Model    string
}

// WithOverrides returns a new catalog with overrides applied by id. The
// receiver is left untouched.
func (c *Catalog) WithOverrides(overrides map[string]Override) (*Catalog, error) {
	descs := c.All()
	for id := range overrides {
		if !c.Has(id) {
			return nil, &UnknownProviderError{ID: id}
		}
	}

	for i, d := range descs {
		o, ok := overrides[d.ID]
		if !ok {
			continue
		}
		if o.Endpoint != "" {
			d.Endpoint = o.Endpoint
		}
		if o.Model != "" {
			d.Model = o.Model
		}
		descs[i] = d
	}

	return NewCatalog(descs...)
}
