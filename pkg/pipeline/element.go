package pipeline

import (
	"context"
	"image"
)

// Element is a named unit of work in a pipeline.
type Element interface {
	// Name is unique within a pipeline.
	Name() string
	// Factory is the registry name the element was made from.
	Factory() string
	// SinkCaps describes accepted input; empty for sources.
	SinkCaps() Caps
	// SrcCaps describes produced output; empty for sinks.
	SrcCaps() Caps
}

// Source is the first element of a pipeline.
type Source interface {
	Element
	Read(ctx context.Context) (image.Image, error)
}

// Filter transforms buffers between the source and the sink.
type Filter interface {
	Element
	Stage[Buffer, Buffer]
}

// Sink is the last element of a pipeline.
type Sink interface {
	Element
	Render(ctx context.Context, buf Buffer) error
}

// Starter is implemented by elements holding resources for the duration of
// the playing state.
type Starter interface {
	Start(ctx context.Context) error
	Stop() error
}

// Negotiator is implemented by elements whose output format is chosen by the
// element linked downstream.
type Negotiator interface {
	Negotiate(downstream Caps) error
}

// PropertyHolder exposes integer properties of an element. Implementations
// must allow SetProperty from the UI goroutine while the streaming goroutine
// is running.
type PropertyHolder interface {
	GetProperty(name string) (int, error)
	SetProperty(name string, value int) error
}

// Base carries the identity and caps of an element and is meant to be
// embedded.
type Base struct {
	name     string
	factory  string
	sinkCaps Caps
	srcCaps  Caps
}

// NewBase returns a Base for an element.
func NewBase(name, factory string, sinkCaps, srcCaps Caps) Base {
	return Base{name: name, factory: factory, sinkCaps: sinkCaps, srcCaps: srcCaps}
}

func (b *Base) Name() string    { return b.name }
func (b *Base) Factory() string { return b.factory }
func (b *Base) SinkCaps() Caps  { return b.sinkCaps }
func (b *Base) SrcCaps() Caps   { return b.srcCaps }

// SetSrcCaps narrows the output caps, typically during negotiation.
func (b *Base) SetSrcCaps(c Caps) { b.srcCaps = c }
