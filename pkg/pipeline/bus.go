package pipeline

import (
	"context"

	"github.com/user/hairline/pkg/ports"
)

// MessageType identifies the kind of a bus message.
type MessageType int

const (
	MessageError MessageType = iota
	MessageEOS
	MessageStateChanged
)

// String returns the message type name.
func (t MessageType) String() string {
	switch t {
	case MessageError:
		return "error"
	case MessageEOS:
		return "eos"
	case MessageStateChanged:
		return "state-changed"
	default:
		return "unknown"
	}
}

// Message is posted on the bus by a pipeline.
type Message struct {
	Type    MessageType
	Session string // Playing session the message belongs to
	Error   ports.PipelineError
	State   State // New state, for MessageStateChanged
}

const busCapacity = 16

// Bus carries messages from the streaming goroutine to the event loop.
type Bus struct {
	ch chan Message
}

// NewBus creates a bus.
func NewBus() *Bus {
	return &Bus{ch: make(chan Message, busCapacity)}
}

// Messages returns the channel the event loop reads from.
func (b *Bus) Messages() <-chan Message {
	return b.ch
}

// Post delivers msg unless ctx is cancelled first.
func (b *Bus) Post(ctx context.Context, msg Message) bool {
	select {
	case b.ch <- msg:
		return true
	case <-ctx.Done():
		return false
	}
}

// TryPost delivers msg if there is room on the bus.
func (b *Bus) TryPost(msg Message) bool {
	select {
	case b.ch <- msg:
		return true
	default:
		return false
	}
}
