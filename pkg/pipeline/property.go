package pipeline

import (
	"fmt"
	"sync/atomic"
)

// Property is an integer element property safe for concurrent use.
// Values are stored as written; elements decide how to interpret values
// outside the range they understand.
type Property struct {
	name  string
	value atomic.Int64
}

// NewProperty returns a property with an initial value.
func NewProperty(name string, initial int) *Property {
	p := &Property{name: name}
	p.value.Store(int64(initial))
	return p
}

// Name returns the property name.
func (p *Property) Name() string { return p.name }

// Load returns the current value.
func (p *Property) Load() int { return int(p.value.Load()) }

// Store sets the current value.
func (p *Property) Store(v int) { p.value.Store(int64(v)) }

// Properties is a PropertyHolder over a fixed set of properties.
type Properties []*Property

func (ps Properties) find(name string) (*Property, error) {
	for _, p := range ps {
		if p.name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoSuchProperty, name)
}

// GetProperty implements PropertyHolder.
func (ps Properties) GetProperty(name string) (int, error) {
	p, err := ps.find(name)
	if err != nil {
		return 0, err
	}
	return p.Load(), nil
}

// SetProperty implements PropertyHolder.
func (ps Properties) SetProperty(name string, value int) error {
	p, err := ps.find(name)
	if err != nil {
		return err
	}
	p.Store(value)
	return nil
}
