package ui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/user/hairline/pkg/pipeline"
	"github.com/user/hairline/pkg/ports"
)

// Headless runs the event loop without a window. SIGINT, SIGTERM and
// cancellation of the run context are the close request.
type Headless struct {
	bus    *pipeline.Bus
	logger ports.Logger
}

// NewHeadless creates a headless host reading from bus.
func NewHeadless(bus *pipeline.Bus, logger ports.Logger) *Headless {
	return &Headless{bus: bus, logger: logger}
}

// Run blocks until the close request has been delivered.
func (h *Headless) Run(ctx context.Context, ui ports.UIEvents, events ports.PipelineEvents) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	for {
		select {
		case msg := <-h.bus.Messages():
			Dispatch(msg, events)
		case <-sig:
			h.logger.Warn("Interrupted, shutting down...")
			ui.OnCloseRequested()
			return nil
		case <-ctx.Done():
			h.logger.Info("Shutting down")
			ui.OnCloseRequested()
			return nil
		}
	}
}
