// Package window hosts the event loop in a native window drawn with Gio.
package window

import (
	"context"
	"image/color"
	"os"
	"os/signal"
	"syscall"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/user/hairline/pkg/pipeline"
	"github.com/user/hairline/pkg/ports"
	"github.com/user/hairline/pkg/stages/display"
	"github.com/user/hairline/pkg/ui"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var background = color.NRGBA{A: 0xff}

// Options configures the window.
type Options struct {
	Title  string
	Width  int // In dp
	Height int // In dp
}

// Window shows the latest frame of the display slot above a row of control
// buttons. Window events and bus messages are handled on one goroutine.
type Window struct {
	bus     *pipeline.Bus
	slot    *display.Slot
	opts    Options
	logger  ports.Logger
	theme   *material.Theme
	buttons []widget.Clickable
	closing bool
}

// New creates a window host. The native window is opened by Run.
func New(bus *pipeline.Bus, slot *display.Slot, opts Options, logger ports.Logger) *Window {
	return &Window{
		bus:     bus,
		slot:    slot,
		opts:    opts,
		logger:  logger,
		theme:   material.NewTheme(gofont.Collection()),
		buttons: make([]widget.Clickable, len(ports.Buttons)),
	}
}

// Run opens the window and blocks until it is destroyed. The caller must
// run app.Main on the main goroutine.
func (w *Window) Run(ctx context.Context, input ports.UIEvents, events ports.PipelineEvents) error {
	win := app.NewWindow(
		app.Title(w.opts.Title),
		app.Size(unit.Dp(w.opts.Width), unit.Dp(w.opts.Height)),
	)
	w.slot.OnUpdate(win.Invalidate)
	defer w.slot.OnUpdate(nil)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	done := ctx.Done()
	var ops op.Ops
	for {
		select {
		case e := <-win.Events():
			switch e := e.(type) {
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				w.handleClicks(input)
				w.layout(gtx)
				e.Frame(gtx.Ops)
			case key.Event:
				if e.Name == key.NameEscape && e.State == key.Press {
					w.close(win)
				}
			case system.DestroyEvent:
				input.OnCloseRequested()
				return e.Err
			}
		case msg := <-w.bus.Messages():
			ui.Dispatch(msg, events)
		case <-sig:
			w.logger.Warn("Interrupted, shutting down...")
			w.close(win)
		case <-done:
			done = nil
			w.close(win)
		}
	}
}

// close asks the window to close. The DestroyEvent that follows delivers
// the close request.
func (w *Window) close(win *app.Window) {
	if w.closing {
		return
	}
	w.closing = true
	win.Perform(system.ActionClose)
}

func (w *Window) handleClicks(input ports.UIEvents) {
	ui.DeliverClicks(func(b ports.Button) bool { return w.buttons[b].Clicked() }, input)
}

func (w *Window) layout(gtx C) D {
	paint.Fill(gtx.Ops, background)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, w.layoutVideo),
		layout.Rigid(w.layoutControls),
	)
}

func (w *Window) layoutVideo(gtx C) D {
	size := gtx.Constraints.Max
	w.slot.SetTarget(size.X, size.Y)

	img, _ := w.slot.Latest()
	if img == nil {
		return D{Size: size}
	}
	return widget.Image{
		Src:      paint.NewImageOp(img),
		Fit:      widget.Contain,
		Position: layout.Center,
		Scale:    1 / gtx.Metric.PxPerDp,
	}.Layout(gtx)
}

func (w *Window) layoutControls(gtx C) D {
	children := make([]layout.FlexChild, len(w.buttons))
	for i := range w.buttons {
		btn := &w.buttons[i]
		label := ui.Label(ports.Buttons[i])
		children[i] = layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(2)).Layout(gtx, material.Button(w.theme, btn, label).Layout)
		})
	}
	return layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceSides}.Layout(gtx, children...)
	})
}
