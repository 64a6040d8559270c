package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/user/hairline/pkg/ports"
)

// State is the playback state of a pipeline.
type State int

const (
	// StateNull holds no resources and runs nothing.
	StateNull State = iota
	// StatePlaying streams buffers from the source to the sink.
	StatePlaying
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNull:
		return "NULL"
	case StatePlaying:
		return "PLAYING"
	default:
		return "UNKNOWN"
	}
}

// Options configures a Pipeline.
type Options struct {
	Logger     ports.Logger
	DebugSink  ports.DebugSink
	DebugEvery int // Save every Nth frame to DebugSink, 0 disables the tap
}

// Pipeline is a linear chain of elements with a playback state.
type Pipeline struct {
	name     string
	logger   ports.Logger
	debug    ports.DebugSink
	every    uint64
	bus      *Bus
	elements []Element
	byName   map[string]Element
	next     map[string]Element
	prev     map[string]Element

	mu      sync.Mutex
	state   State
	session string
	started []Starter
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates an empty pipeline.
func New(name string, opts Options) *Pipeline {
	p := &Pipeline{
		name:   name,
		logger: opts.Logger,
		debug:  opts.DebugSink,
		bus:    NewBus(),
		byName: make(map[string]Element),
		next:   make(map[string]Element),
		prev:   make(map[string]Element),
	}
	if opts.DebugEvery > 0 {
		p.every = uint64(opts.DebugEvery)
	}
	return p
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string { return p.name }

// Bus returns the message bus of the pipeline.
func (p *Pipeline) Bus() *Bus { return p.bus }

// Add adds elements to the pipeline.
func (p *Pipeline) Add(elems ...Element) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range elems {
		if _, ok := p.byName[e.Name()]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, e.Name())
		}
		p.byName[e.Name()] = e
		p.elements = append(p.elements, e)
	}
	return nil
}

// ByName returns the element with the given name, or nil.
func (p *Pipeline) ByName(name string) Element {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.byName[name]
}

// Link connects the output of src to the input of dst. Negotiating
// elements narrow their output caps to what dst accepts.
func (p *Pipeline) Link(src, dst Element) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range []Element{src, dst} {
		if p.byName[e.Name()] != e {
			return fmt.Errorf("%w: %q", ErrNotInPipeline, e.Name())
		}
	}
	if _, ok := p.next[src.Name()]; ok {
		return fmt.Errorf("%w: %q has a downstream element", ErrAlreadyLinked, src.Name())
	}
	if _, ok := p.prev[dst.Name()]; ok {
		return fmt.Errorf("%w: %q has an upstream element", ErrAlreadyLinked, dst.Name())
	}

	if n, ok := src.(Negotiator); ok {
		if err := n.Negotiate(dst.SinkCaps()); err != nil {
			return fmt.Errorf("link %s -> %s: %w", src.Name(), dst.Name(), err)
		}
	}
	if _, ok := src.SrcCaps().Intersect(dst.SinkCaps()); !ok {
		return fmt.Errorf("link %s -> %s: %w: %s vs %s",
			src.Name(), dst.Name(), ErrCapsMismatch, src.SrcCaps(), dst.SinkCaps())
	}

	p.next[src.Name()] = dst
	p.prev[dst.Name()] = src
	return nil
}

// LinkMany links the elements in order.
func (p *Pipeline) LinkMany(elems ...Element) error {
	for i := 0; i+1 < len(elems); i++ {
		if err := p.Link(elems[i], elems[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// chain resolves the linked elements into source, filters and sink.
// Must be called with p.mu held.
func (p *Pipeline) chain() (Source, []Filter, Sink, error) {
	var head Element
	for _, e := range p.elements {
		if _, ok := p.prev[e.Name()]; !ok {
			if head != nil {
				return nil, nil, nil, fmt.Errorf("%w: %q and %q both lack upstream elements", ErrNotLinked, head.Name(), e.Name())
			}
			head = e
		}
	}
	if head == nil {
		return nil, nil, nil, fmt.Errorf("%w: no source", ErrNotLinked)
	}
	src, ok := head.(Source)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: %q is not a source", ErrNotLinked, head.Name())
	}

	var filters []Filter
	var sink Sink
	visited := 1
	for e := p.next[head.Name()]; e != nil; e = p.next[e.Name()] {
		visited++
		if _, more := p.next[e.Name()]; !more {
			s, ok := e.(Sink)
			if !ok {
				return nil, nil, nil, fmt.Errorf("%w: %q is not a sink", ErrNotLinked, e.Name())
			}
			sink = s
			break
		}
		f, ok := e.(Filter)
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: %q is not a filter", ErrNotLinked, e.Name())
		}
		filters = append(filters, f)
	}
	if sink == nil {
		return nil, nil, nil, fmt.Errorf("%w: no sink", ErrNotLinked)
	}
	if visited != len(p.elements) {
		return nil, nil, nil, fmt.Errorf("%w: %d of %d elements reachable from %q",
			ErrNotLinked, visited, len(p.elements), head.Name())
	}
	return src, filters, sink, nil
}

// State returns the current state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Session returns the ID of the current playing session, or "" in StateNull.
func (p *Pipeline) Session() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session
}

// SetState changes the playback state. Setting the current state again is a
// no-op. Entering StatePlaying starts every Starter element and the
// streaming goroutine; entering StateNull stops them.
func (p *Pipeline) SetState(ctx context.Context, state State) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if state == p.state {
		return nil
	}
	switch state {
	case StatePlaying:
		return p.play(ctx)
	case StateNull:
		p.stop()
		return nil
	default:
		return fmt.Errorf("pipeline: unsupported state %d", state)
	}
}

// play must be called with p.mu held.
func (p *Pipeline) play(ctx context.Context) error {
	src, filters, sink, err := p.chain()
	if err != nil {
		return err
	}

	for _, e := range p.elements {
		s, ok := e.(Starter)
		if !ok {
			continue
		}
		if err := s.Start(ctx); err != nil {
			p.stopStarters()
			err = fmt.Errorf("start %s: %w", e.Name(), err)
			// Reported on the bus like a streaming error.
			p.bus.TryPost(Message{Type: MessageError, Error: ports.PipelineError{
				Source: e.Name(),
				Err:    err,
				Debug:  fmt.Sprintf("%s %q failed to change state to %s", e.Factory(), e.Name(), StatePlaying),
			}})
			return err
		}
		p.started = append(p.started, s)
	}

	p.session = uuid.NewString()
	streamCtx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.state = StatePlaying

	if p.logger != nil {
		p.logger.Debug("Pipeline %s playing, session %s", p.name, p.session)
	}
	p.bus.TryPost(Message{Type: MessageStateChanged, Session: p.session, State: StatePlaying})

	go p.stream(streamCtx, p.session, src, filters, sink, p.done)
	return nil
}

// stop must be called with p.mu held.
func (p *Pipeline) stop() {
	if p.cancel != nil {
		p.cancel()
		<-p.done
		p.cancel = nil
		p.done = nil
	}
	p.stopStarters()

	session := p.session
	p.session = ""
	p.state = StateNull

	if p.logger != nil {
		p.logger.Debug("Pipeline %s stopped, session %s", p.name, session)
	}
	p.bus.TryPost(Message{Type: MessageStateChanged, Session: session, State: StateNull})
}

func (p *Pipeline) stopStarters() {
	for i := len(p.started) - 1; i >= 0; i-- {
		if err := p.started[i].Stop(); err != nil && p.logger != nil {
			p.logger.Warn("Failed to stop element: %s", err)
		}
	}
	p.started = nil
}

// stream runs on its own goroutine until ctx is cancelled or an element
// fails.
func (p *Pipeline) stream(ctx context.Context, session string, src Source, filters []Filter, sink Sink, done chan struct{}) {
	defer close(done)

	start := time.Now()
	postError := func(e Element, seq uint64, err error) {
		p.bus.Post(ctx, Message{
			Type:    MessageError,
			Session: session,
			Error: ports.PipelineError{
				Source: e.Name(),
				Err:    err,
				Debug:  fmt.Sprintf("%s %q, session %s, frame %d", e.Factory(), e.Name(), session, seq),
			},
		})
	}

	for seq := uint64(0); ; seq++ {
		img, err := src.Read(ctx)
		if ctx.Err() != nil {
			return
		}
		if errors.Is(err, io.EOF) {
			p.bus.Post(ctx, Message{Type: MessageEOS, Session: session})
			return
		}
		if err != nil {
			postError(src, seq, err)
			return
		}

		buf := RawBuffer(Buffer{Sequence: seq, PTS: time.Since(start)}, img)
		p.tap(seq, img, ports.DebugSink.SaveRawFrame)

		dropped := false
		for _, f := range filters {
			buf, err = f.Execute(ctx, buf)
			if errors.Is(err, ErrDropped) {
				dropped = true
				break
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				postError(f, seq, err)
				return
			}
		}
		if dropped {
			continue
		}

		p.tap(seq, buf.Image, ports.DebugSink.SaveProcessedFrame)
		if err := sink.Render(ctx, buf); err != nil {
			if ctx.Err() != nil {
				return
			}
			postError(sink, seq, err)
			return
		}
	}
}

func (p *Pipeline) tap(seq uint64, img image.Image, save func(ports.DebugSink, uint64, image.Image) error) {
	if p.debug == nil || p.every == 0 || img == nil || !p.debug.Enabled() || seq%p.every != 0 {
		return
	}
	if err := save(p.debug, seq, img); err != nil && p.logger != nil {
		p.logger.Warn("Failed to save debug frame %d: %s", seq, err)
	}
}
