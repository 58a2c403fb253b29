// Package notify delivers mode-change notifications to external observers.
//
// Delivery is decoupled from key processing: the engine publishes each mode
// transition into a buffered channel drained by a single goroutine, so a
// slow status bar can never stall keystroke handling. Transitions are
// delivered in the order they occurred; when the buffer is full new
// transitions are dropped rather than blocking the caller.
package notify

import (
	"sync"

	"github.com/modalkit/modalkit/internal/input/mode"
)

// Sink receives mode transitions. Implementations must tolerate delivery
// from a background goroutine.
type Sink interface {
	// ModeChanged is called after each mode transition.
	ModeChanged(m mode.Mode)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(m mode.Mode)

// ModeChanged calls f.
func (f SinkFunc) ModeChanged(m mode.Mode) {
	f(m)
}

// Notifier fans mode transitions out to attached sinks.
type Notifier struct {
	mu     sync.RWMutex
	sinks  map[uint64]Sink
	nextID uint64
	closed bool

	buffer chan mode.Mode
	done   chan struct{}
	wg     sync.WaitGroup
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithBufferSize overrides the delivery buffer size.
func WithBufferSize(size int) Option {
	return func(n *Notifier) {
		if size > 0 {
			n.buffer = make(chan mode.Mode, size)
		}
	}
}

// New creates a notifier and starts its delivery goroutine.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		sinks:  make(map[uint64]Sink),
		buffer: make(chan mode.Mode, 16),
		done:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(n)
	}

	n.wg.Add(1)
	go n.process()

	return n
}

// Attach registers a sink. Returns a function to detach it.
func (n *Notifier) Attach(sink Sink) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.sinks[id] = sink

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.sinks, id)
	}
}

// Publish queues a transition for delivery. It never blocks: with a full
// buffer the transition is dropped.
func (n *Notifier) Publish(m mode.Mode) {
	n.mu.RLock()
	closed := n.closed
	n.mu.RUnlock()
	if closed {
		return
	}

	select {
	case n.buffer <- m:
	default:
	}
}

// Callback adapts the notifier to the mode manager's change hook.
func (n *Notifier) Callback() mode.ChangeCallback {
	return func(from, to mode.Mode) {
		n.Publish(to)
	}
}

// Close stops delivery after draining queued transitions. Safe to call
// multiple times.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

// process drains the buffer on a single goroutine so sinks observe
// transitions in publish order.
func (n *Notifier) process() {
	defer n.wg.Done()

	for {
		select {
		case m := <-n.buffer:
			n.deliver(m)
		case <-n.done:
			for {
				select {
				case m := <-n.buffer:
					n.deliver(m)
				default:
					return
				}
			}
		}
	}
}

// deliver fans one transition out to all sinks.
func (n *Notifier) deliver(m mode.Mode) {
	n.mu.RLock()
	sinks := make([]Sink, 0, len(n.sinks))
	for _, s := range n.sinks {
		sinks = append(sinks, s)
	}
	n.mu.RUnlock()

	for _, s := range sinks {
		s.ModeChanged(m)
	}
}
