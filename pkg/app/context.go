// Package app wires the element graph to the UI and pipeline event handlers.
package app

import (
	"context"
	"sync/atomic"

	"github.com/user/hairline/pkg/colorfx"
	"github.com/user/hairline/pkg/orientation"
	"github.com/user/hairline/pkg/pipeline"
	"github.com/user/hairline/pkg/ports"
	"github.com/user/hairline/pkg/stages/coloreffects"
	"github.com/user/hairline/pkg/stages/flip"
)

// Controller changes the playback state of a pipeline.
type Controller interface {
	SetState(ctx context.Context, state pipeline.State) error
}

// Context holds what the event handlers need: the pipeline and the two
// elements whose properties the buttons drive. It keeps no copy of the
// property values.
type Context struct {
	ctx      context.Context
	pipeline Controller
	flip     pipeline.PropertyHolder
	invert   pipeline.PropertyHolder
	logger   ports.Logger
	closed   atomic.Bool
}

// NewContext creates a Context. ctx is passed to every state change.
func NewContext(ctx context.Context, p Controller, flip, invert pipeline.PropertyHolder, logger ports.Logger) *Context {
	return &Context{
		ctx:      ctx,
		pipeline: p,
		flip:     flip,
		invert:   invert,
		logger:   logger,
	}
}

// Closed reports whether the close request has been handled.
func (c *Context) Closed() bool {
	return c.closed.Load()
}

// OnClick applies the action of the button to its element property.
func (c *Context) OnClick(b ports.Button) {
	switch b {
	case ports.ButtonFlipHorizontal:
		c.orient(orientation.ActionFlipHorizontal)
	case ports.ButtonFlipVertical:
		c.orient(orientation.ActionFlipVertical)
	case ports.ButtonRotateClockwise:
		c.orient(orientation.ActionRotateClockwise)
	case ports.ButtonRotateCounterClockwise:
		c.orient(orientation.ActionRotateCounterClockwise)
	case ports.ButtonInvert:
		c.toggleColor()
	}
}

func (c *Context) orient(action orientation.Action) {
	current, ok := c.read(c.flip, flip.PropertyMethod)
	if !ok {
		return
	}
	next := orientation.Next(action, current)
	if c.write(c.flip, flip.PropertyMethod, next) {
		c.logger.Debug("Orientation changed: %s -> %s",
			orientation.FromExternal(current), orientation.FromExternal(next))
	}
}

func (c *Context) toggleColor() {
	current, ok := c.read(c.invert, coloreffects.PropertyPreset)
	if !ok {
		return
	}
	next := colorfx.Toggle(current)
	if c.write(c.invert, coloreffects.PropertyPreset, next) {
		c.logger.Debug("Color preset changed: %s -> %s",
			colorfx.FromExternal(current), colorfx.FromExternal(next))
	}
}

func (c *Context) read(h pipeline.PropertyHolder, name string) (int, bool) {
	v, err := h.GetProperty(name)
	if err != nil {
		c.logger.Warn("Failed to read property %s: %s", name, err)
		return 0, false
	}
	return v, true
}

func (c *Context) write(h pipeline.PropertyHolder, name string, v int) bool {
	if err := h.SetProperty(name, v); err != nil {
		c.logger.Warn("Failed to set property %s: %s", name, err)
		return false
	}
	return true
}

// OnError logs the failing element and restarts the pipeline.
func (c *Context) OnError(e ports.PipelineError) {
	if c.Closed() {
		return
	}
	c.logger.Error("Error received from element %s: %s", e.Source, e.Err)
	debug := e.Debug
	if debug == "" {
		debug = "none"
	}
	c.logger.Error("Debugging information: %s", debug)
	c.restart()
}

// OnEndOfStream restarts the pipeline.
func (c *Context) OnEndOfStream() {
	if c.Closed() {
		return
	}
	c.logger.Info("End-Of-Stream reached.")
	c.restart()
}

// OnCloseRequested stops the pipeline. Later calls and later bus messages are
// ignored.
func (c *Context) OnCloseRequested() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.logger.Info("Window closed, stopping pipeline")
	if err := c.pipeline.SetState(c.ctx, pipeline.StateNull); err != nil {
		c.logger.Error("Failed to stop pipeline: %s", err)
	}
}

// restart cycles the pipeline through NULL back to PLAYING. A source that
// fails to start posts an error on the bus, which lands here again.
func (c *Context) restart() {
	if err := c.pipeline.SetState(c.ctx, pipeline.StateNull); err != nil {
		c.logger.Error("Failed to stop pipeline: %s", err)
		return
	}
	c.logger.Info("Restarting pipeline")
	if err := c.pipeline.SetState(c.ctx, pipeline.StatePlaying); err != nil {
		c.logger.Error("Failed to restart pipeline: %s", err)
	}
}

var (
	_ ports.UIEvents       = (*Context)(nil)
	_ ports.PipelineEvents = (*Context)(nil)
)
