// Package ui hosts the event loops that deliver button clicks, close
// requests and pipeline bus messages to the application handlers.
package ui

import (
	"github.com/user/hairline/pkg/pipeline"
	"github.com/user/hairline/pkg/ports"
)

// Dispatch routes a bus message to its handler. State changes are ignored.
func Dispatch(msg pipeline.Message, events ports.PipelineEvents) {
	switch msg.Type {
	case pipeline.MessageError:
		events.OnError(msg.Error)
	case pipeline.MessageEOS:
		events.OnEndOfStream()
	}
}

// DeliverClicks drains the clicks pending on every button in layout order and
// calls OnClick once per click.
func DeliverClicks(pending func(ports.Button) bool, events ports.UIEvents) {
	for _, b := range ports.Buttons {
		for pending(b) {
			events.OnClick(b)
		}
	}
}
