package engine

import "github.com/modalkit/modalkit/internal/input/vim"

// noAnchor marks an absent visual anchor.
const noAnchor = -1

// pendingObjectState tracks the i/a modifier while an operator waits for a
// text object.
type pendingObjectState uint8

const (
	objectNone pendingObjectState = iota
	objectInner
	objectAround
)

// state is the engine's mutable command state. One instance lives for the
// engine's lifetime and is mutated in place.
type state struct {
	// count is the resolved count carried into operator-pending mode.
	// Zero means no count was typed.
	count int

	// accum collects digits still being typed.
	accum vim.CountState

	// pendingOperator is the operator awaiting a range.
	pendingOperator vim.Operator

	// registerName is the register selected by a " prefix. Zero means the
	// unnamed register.
	registerName rune

	// pendingRegister is set after " while awaiting the register name.
	pendingRegister bool

	// visualAnchor is the fixed end of the visual selection, noAnchor
	// outside the visual modes.
	visualAnchor int

	// visualCursor is the moving end of the visual selection. Selections
	// are recomputed from it on every motion rather than extended
	// incrementally.
	visualCursor int

	// keyBuffer accumulates multi-key sequences such as gg.
	keyBuffer []rune

	// lastFind is the most recent executed character search, repeated by
	// ; and ,.
	lastFind *vim.FindMotion

	// pendingFind is the find kind awaiting its target character.
	pendingFind vim.FindKind

	// pendingObject is the i/a modifier awaiting its object key.
	pendingObject pendingObjectState
}

func newState() *state {
	return &state{visualAnchor: noAnchor}
}

// reset clears all pending command state. It runs on every transition into
// normal mode. The visual anchor and lastFind survive: the anchor is
// cleared on leaving the visual modes, and lastFind persists so ; and ,
// work across commands.
func (s *state) reset() {
	s.count = 0
	s.accum.Reset()
	s.pendingOperator = vim.OpNone
	s.registerName = 0
	s.pendingRegister = false
	s.keyBuffer = s.keyBuffer[:0]
	s.pendingFind = vim.FindNone
	s.pendingObject = objectNone
}

// takeRegister consumes the selected register, returning the unnamed
// register when none was selected.
func (s *state) takeRegister() rune {
	name := s.registerName
	s.registerName = 0
	if name == 0 {
		return vim.Unnamed
	}
	return name
}

// resolveCount folds any digits still in the accumulator into the resolved
// count and returns it. Zero means no count was typed.
func (s *state) resolveCount() int {
	if s.accum.Active {
		s.count = vim.CombineCounts(s.count, s.accum.Explicit())
		s.accum.Reset()
	}
	return s.count
}

// countOr1 returns the resolved count, defaulting to one.
func (s *state) countOr1() int {
	if n := s.resolveCount(); n > 0 {
		return n
	}
	return 1
}
