package engine

import (
	"unicode/utf8"

	"github.com/modalkit/modalkit/internal/engine/motion"
	"github.com/modalkit/modalkit/internal/engine/textobject"
	"github.com/modalkit/modalkit/internal/input/key"
	"github.com/modalkit/modalkit/internal/input/mode"
	"github.com/modalkit/modalkit/internal/input/vim"
)

// handleOperatorPending processes a key while an operator awaits its range.
func (e *Engine) handleOperatorPending(ev key.Event) bool {
	if !ev.IsRune() {
		if ev.Key == key.KeyEscape {
			e.setMode(mode.Normal)
			return true
		}
		if m, ok := arrowMotions[ev.Key]; ok {
			return e.operatorMotion(m)
		}
		e.abortToNormal()
		return false
	}

	r := ev.Rune

	if e.state.pendingFind != vim.FindNone {
		return e.operatorFind(r)
	}

	if e.state.pendingObject != objectNone {
		return e.operatorTextObject(r)
	}

	if vim.IsCountDigit(r) && (e.state.accum.Active || vim.IsCountStart(r)) {
		return e.state.accum.AccumulateDigit(r)
	}

	if r == e.state.pendingOperator.Key() {
		return e.operatorLines()
	}

	switch r {
	case 'i':
		e.state.pendingObject = objectInner
		return true
	case 'a':
		e.state.pendingObject = objectAround
		return true
	case 'f', 'F', 't', 'T':
		kind, _ := vim.FindKindForKey(r)
		e.state.pendingFind = kind
		return true
	}

	if m, ok := vim.MotionForKey(r); ok {
		return e.operatorMotion(m)
	}

	e.abortToNormal()
	return false
}

// operatorMotion converts a motion into a range and executes the pending
// operator over it. Linewise motions expand to whole lines; inclusive
// motions take the rune under the endpoint.
func (e *Engine) operatorMotion(m vim.Motion) bool {
	count := e.state.resolveCount()

	text, err := e.buf.Text()
	if err != nil {
		e.abortToNormal()
		return false
	}
	pos, err := e.buf.CursorOffset()
	if err != nil {
		e.abortToNormal()
		return false
	}

	target := motion.Apply(m, text, pos, count)
	start, end := pos, target
	if start > end {
		start, end = end, start
	}

	if m.IsLinewise() {
		start = motion.LineStart(text, start)
		end = motion.LineEnd(text, end)
		if end < len(text) {
			end++
		}
	} else if m.IsInclusive() && end < len(text) && end > start {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}

	return e.executeOperatorRange(text, start, end, m.IsLinewise())
}

// operatorFind completes the find-initiated operator path: d f x and
// friends. A missing target collapses to a zero-width range, which still
// executes the operator as a no-op mutation.
func (e *Engine) operatorFind(target rune) bool {
	kind := e.state.pendingFind
	e.state.pendingFind = vim.FindNone
	fm := vim.FindMotion{Char: target, Kind: kind}
	e.state.lastFind = &fm

	count := e.state.resolveCount()

	text, err := e.buf.Text()
	if err != nil {
		e.abortToNormal()
		return false
	}
	pos, err := e.buf.CursorOffset()
	if err != nil {
		e.abortToNormal()
		return false
	}

	landing := motion.Find(text, pos, fm, count)

	var start, end int
	if landing >= pos {
		start, end = pos, landing
		if landing > pos {
			// Finds are inclusive under an operator.
			_, size := utf8.DecodeRuneInString(text[end:])
			end += size
		}
	} else {
		start, end = landing, pos
	}

	return e.executeOperatorRange(text, start, end, false)
}

// operatorTextObject completes the text-object path: d i b and friends.
// An unknown object key aborts and passes the key through; a known object
// that is absent around the cursor aborts after consuming the key.
func (e *Engine) operatorTextObject(objKey rune) bool {
	inner := e.state.pendingObject == objectInner
	e.state.pendingObject = objectNone

	obj, ok := vim.TextObjectForKey(objKey)
	if !ok {
		e.abortToNormal()
		return false
	}

	text, err := e.buf.Text()
	if err != nil {
		e.abortToNormal()
		return false
	}
	pos, err := e.buf.CursorOffset()
	if err != nil {
		e.abortToNormal()
		return false
	}

	rng, found := textobject.Resolve(obj, text, pos, inner)
	if !found {
		e.abortToNormal()
		return true
	}

	return e.executeOperatorRange(text, rng.Start, rng.End, false)
}

// operatorLines implements the doubled forms dd, cc, and yy: the operator
// applies linewise to count whole lines starting at the cursor's line.
func (e *Engine) operatorLines() bool {
	count := e.state.resolveCount()
	if count <= 0 {
		count = 1
	}

	text, err := e.buf.Text()
	if err != nil {
		e.abortToNormal()
		return false
	}
	pos, err := e.buf.CursorOffset()
	if err != nil {
		e.abortToNormal()
		return false
	}

	start := motion.LineStart(text, pos)
	end := start
	for i := 0; i < count; i++ {
		end = motion.LineEnd(text, end)
		if end < len(text) {
			end++
		}
	}

	return e.executeOperatorRange(text, start, end, true)
}
