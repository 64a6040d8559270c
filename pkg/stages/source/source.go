// Package source implements the source elements wrapping a capture device.
package source

import (
	"context"
	"fmt"
	"image"

	"github.com/user/hairline/pkg/pipeline"
	"github.com/user/hairline/pkg/ports"
)

// Element adapts a ports.VideoSource to a pipeline source. The device is
// opened when the pipeline starts playing and closed when it stops.
type Element struct {
	pipeline.Base
	src    ports.VideoSource
	props  ports.VideoProperties
	logger ports.Logger
}

// New creates a source element.
func New(name, factory string, src ports.VideoSource, props ports.VideoProperties, logger ports.Logger) *Element {
	return &Element{
		Base:   pipeline.NewBase(name, factory, pipeline.Caps{}, pipeline.RawCaps()),
		src:    src,
		props:  props,
		logger: logger.WithComponent(name),
	}
}

// Start opens the device.
func (e *Element) Start(ctx context.Context) error {
	if err := e.src.Open(e.props); err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	device := e.props.Device
	if device == "" {
		device = e.Factory()
	}
	e.logger.Debug("Opened %s at %dx%d (%s)", device, e.props.Width, e.props.Height, e.Factory())
	return nil
}

// Stop closes the device.
func (e *Element) Stop() error {
	return e.src.Close()
}

// Read returns the next captured frame.
func (e *Element) Read(ctx context.Context) (image.Image, error) {
	return e.src.Read(ctx)
}

var (
	_ pipeline.Source  = (*Element)(nil)
	_ pipeline.Starter = (*Element)(nil)
)
