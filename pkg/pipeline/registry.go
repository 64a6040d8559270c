package pipeline

import (
	"fmt"
	"sort"
)

// Factory creates an element with the given name.
type Factory func(name string) (Element, error)

// Registry maps factory names to element factories.
type Registry struct {
	factories map[string]Factory
	counters  map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		counters:  make(map[string]int),
	}
}

// Register adds a factory. A later registration replaces an earlier one.
func (r *Registry) Register(factory string, f Factory) {
	r.factories[factory] = f
}

// Factories returns the registered factory names in sorted order.
func (r *Registry) Factories() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Make creates an element. An empty name is replaced by the factory name
// followed by a counter, e.g. "videoconvert0".
func (r *Registry) Make(factory, name string) (Element, error) {
	f, ok := r.factories[factory]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchFactory, factory)
	}
	if name == "" {
		name = fmt.Sprintf("%s%d", factory, r.counters[factory])
		r.counters[factory]++
	}
	e, err := f(name)
	if err != nil {
		return nil, fmt.Errorf("make %s %q: %w", factory, name, err)
	}
	return e, nil
}
