// Package flip implements the videoflip element.
package flip

import (
	"context"

	"github.com/user/hairline/pkg/orientation"
	"github.com/user/hairline/pkg/pipeline"
)

// PropertyMethod holds the orientation as an orientation.Method value.
const PropertyMethod = "method"

// Element rotates and flips raw frames according to its method property.
type Element struct {
	pipeline.Base
	pipeline.Properties
	method *pipeline.Property
}

// New creates a flip element with the identity method.
func New(name string) *Element {
	method := pipeline.NewProperty(PropertyMethod, orientation.Identity.External())
	return &Element{
		Base:       pipeline.NewBase(name, "videoflip", pipeline.RawCaps(), pipeline.RawCaps()),
		Properties: pipeline.Properties{method},
		method:     method,
	}
}

// Execute applies the current method. Values outside the enumeration are
// treated as the identity.
func (e *Element) Execute(ctx context.Context, buf pipeline.Buffer) (pipeline.Buffer, error) {
	m := orientation.FromExternal(e.method.Load())
	if m == orientation.Identity {
		return buf, nil
	}
	return pipeline.RawBuffer(buf, orientation.Apply(buf.Image, m)), nil
}

var (
	_ pipeline.Filter         = (*Element)(nil)
	_ pipeline.PropertyHolder = (*Element)(nil)
)
