package skill

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateClass is returned when a class ID is registered twice.
var ErrDuplicateClass = errors.New("skill class already registered")

// Catalog holds built class descriptors for lookup by external tooling
// (shop menus, admin commands). Descriptors are queryable without
// instantiating a skill.
//
// Thread-safe: registration happens at startup, reads may come from
// any goroutine afterwards.
type Catalog struct {
	mu    sync.RWMutex
	byID  map[string]*ClassDescriptor
	order []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byID: make(map[string]*ClassDescriptor, 32),
	}
}

// Register adds a class descriptor. Duplicate class IDs are rejected.
func (c *Catalog) Register(desc *ClassDescriptor) error {
	if desc == nil {
		return errors.New("nil class descriptor")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[desc.classID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateClass, desc.classID)
	}
	c.byID[desc.classID] = desc
	c.order = append(c.order, desc.classID)
	return nil
}

// ClassInfo is the read-only identity snapshot of a skill class, consumed
// by shop and menu tooling without instantiating the skill.
type ClassInfo struct {
	ClassID     string
	DisplayName string
	Description string
	MaxLevel    int32
	HasMaxLevel bool
}

// Describe returns the identity snapshot for a class ID.
func (c *Catalog) Describe(classID string) (ClassInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.byID[classID]
	if !ok {
		return ClassInfo{}, false
	}
	max, hasMax := d.MaxLevel()
	return ClassInfo{
		ClassID:     d.classID,
		DisplayName: d.displayName,
		Description: d.description,
		MaxLevel:    max,
		HasMaxLevel: hasMax,
	}, true
}

// Get returns the descriptor for a class ID.
func (c *Catalog) Get(classID string) (*ClassDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.byID[classID]
	return d, ok
}

// List returns all registered descriptors in registration order.
func (c *Catalog) List() []*ClassDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*ClassDescriptor, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of registered classes.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}
