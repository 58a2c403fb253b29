package engine

import (
	"time"

	"github.com/modalkit/modalkit/internal/buffer"
	"github.com/modalkit/modalkit/internal/config"
	"github.com/modalkit/modalkit/internal/engine/escape"
	"github.com/modalkit/modalkit/internal/input/key"
	"github.com/modalkit/modalkit/internal/input/mode"
	"github.com/modalkit/modalkit/internal/input/vim"
)

// Engine is the modal command engine. It is not safe for concurrent use;
// callers must serialize HandleKey.
type Engine struct {
	state      *state
	modes      *mode.Manager
	buf        buffer.Buffer
	registers  *vim.RegisterStore
	recognizer *escape.Recognizer
}

// Option configures an Engine.
type Option func(*Engine)

// WithEscapeSequence overrides the insert-mode exit sequence and timeout.
func WithEscapeSequence(sequence string, timeout time.Duration) Option {
	return func(e *Engine) {
		e.recognizer.Configure(sequence, timeout)
	}
}

// WithClipboard installs a clipboard provider for the + and * registers.
func WithClipboard(clipboard vim.ClipboardProvider) Option {
	return func(e *Engine) {
		e.registers.SetClipboard(clipboard)
	}
}

// New creates an engine operating on buf, starting in normal mode with the
// default configuration.
func New(buf buffer.Buffer, opts ...Option) (*Engine, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}

	def := config.Default()
	e := &Engine{
		state:      newState(),
		modes:      mode.NewManager(),
		buf:        buf,
		registers:  vim.NewRegisterStore(),
		recognizer: escape.NewRecognizer(def.Escape.Sequence, def.Escape.Timeout),
	}

	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Modes exposes the mode manager so hosts can observe transitions.
func (e *Engine) Modes() *mode.Manager {
	return e.modes
}

// Registers exposes the register store.
func (e *Engine) Registers() *vim.RegisterStore {
	return e.registers
}

// Mode returns the current mode.
func (e *Engine) Mode() mode.Mode {
	return e.modes.Current()
}

// ApplyConfig hot-applies a configuration snapshot.
func (e *Engine) ApplyConfig(cfg config.Config) {
	e.recognizer.Configure(cfg.Escape.Sequence, cfg.Escape.Timeout)
}

// HandleKey processes one key event to completion and reports whether it
// was consumed. Unconsumed keys should pass through to the host.
func (e *Engine) HandleKey(ev key.Event) bool {
	switch e.modes.Current() {
	case mode.Insert:
		return e.handleInsert(ev)
	case mode.Normal:
		return e.handleNormal(ev)
	case mode.Visual, mode.VisualLine:
		return e.handleVisual(ev)
	case mode.OperatorPending:
		return e.handleOperatorPending(ev)
	default:
		return false
	}
}

// setMode performs a mode transition with the associated state resets:
// entering normal clears pending state and the recognizer window, leaving
// a visual mode drops the anchor, and entering a visual mode captures it.
func (e *Engine) setMode(to mode.Mode) {
	from := e.modes.Current()
	if from == to {
		return
	}

	if from.IsVisual() && !to.IsVisual() {
		e.state.visualAnchor = noAnchor
		e.state.visualCursor = 0
	}
	if to == mode.Normal {
		e.state.reset()
		e.recognizer.Reset()
	}

	e.modes.Switch(to)
}

// abortToNormal discards pending state after a buffer failure or an
// unrecognized key in a pending context.
func (e *Engine) abortToNormal() {
	if e.modes.Current() == mode.Normal {
		e.state.reset()
		e.recognizer.Reset()
		return
	}
	e.setMode(mode.Normal)
}
