package engine

import (
	"unicode/utf8"

	"github.com/modalkit/modalkit/internal/buffer"
	"github.com/modalkit/modalkit/internal/engine/motion"
	"github.com/modalkit/modalkit/internal/input/key"
	"github.com/modalkit/modalkit/internal/input/mode"
	"github.com/modalkit/modalkit/internal/input/vim"
)

// handleVisual processes a key in the visual modes.
func (e *Engine) handleVisual(ev key.Event) bool {
	if !ev.IsRune() {
		if ev.Key == key.KeyEscape {
			e.setMode(mode.Normal)
			return true
		}
		if m, ok := arrowMotions[ev.Key]; ok {
			return e.extendSelection(m)
		}
		return false
	}

	r := ev.Rune

	if e.state.pendingRegister {
		e.state.pendingRegister = false
		if vim.IsValidName(r) {
			e.state.registerName = r
			return true
		}
		return false
	}

	if vim.IsCountDigit(r) && (e.state.accum.Active || vim.IsCountStart(r)) {
		return e.state.accum.AccumulateDigit(r)
	}

	switch r {
	case 'v':
		if e.modes.Is(mode.Visual) {
			e.setMode(mode.Normal)
			return true
		}
		return e.switchVisualKind(mode.Visual)
	case 'V':
		if e.modes.Is(mode.VisualLine) {
			e.setMode(mode.Normal)
			return true
		}
		return e.switchVisualKind(mode.VisualLine)

	case 'd', 'x':
		return e.visualOperator(vim.OpDelete)
	case 'c', 's':
		return e.visualOperator(vim.OpChange)
	case 'y':
		return e.visualOperator(vim.OpYank)

	case '"':
		e.state.pendingRegister = true
		return true
	}

	if m, ok := vim.MotionForKey(r); ok {
		return e.extendSelection(m)
	}

	return false
}

// switchVisualKind toggles between character-wise and line-wise visual,
// keeping the anchor and reshaping the selection.
func (e *Engine) switchVisualKind(to mode.Mode) bool {
	e.modes.Switch(to)
	text, err := e.buf.Text()
	if err != nil {
		e.abortToNormal()
		return false
	}
	return e.applyVisualSelection(text)
}

// extendSelection moves the live cursor edge by a motion and recomputes
// the selection from the anchor and the new endpoint.
func (e *Engine) extendSelection(m vim.Motion) bool {
	count := e.state.resolveCount()
	e.state.count = 0

	text, err := e.buf.Text()
	if err != nil {
		e.abortToNormal()
		return false
	}

	e.state.visualCursor = motion.Apply(m, text, e.state.visualCursor, count)
	return e.applyVisualSelection(text)
}

// applyVisualSelection pushes the selection [min(anchor, cursor),
// max(anchor, cursor)] inclusive into the buffer, expanded to whole lines
// in line-wise visual.
func (e *Engine) applyVisualSelection(text string) bool {
	anchor := e.state.visualAnchor
	cursor := e.state.visualCursor

	start, end := anchor, cursor
	if start > end {
		start, end = end, start
	}

	if e.modes.Is(mode.VisualLine) {
		start = motion.LineStart(text, start)
		end = motion.LineEnd(text, end)
		if end < len(text) {
			end++ // include the newline
		}
	} else if end < len(text) && text[end] != '\n' {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}

	if err := e.buf.SetSelectedRange(buffer.Range{Start: start, Len: end - start}); err != nil {
		e.abortToNormal()
		return false
	}
	return true
}

// visualOperator applies an operator to the current selection.
func (e *Engine) visualOperator(op vim.Operator) bool {
	r, err := e.buf.SelectedRange()
	if err != nil {
		e.abortToNormal()
		return false
	}
	selected, err := e.buf.SelectedText()
	if err != nil {
		e.abortToNormal()
		return false
	}

	linewise := e.modes.Is(mode.VisualLine)
	e.registers.Set(e.state.takeRegister(), selected, linewise)

	if op.DeletesText() {
		if err := e.buf.ReplaceSelection(""); err != nil {
			e.abortToNormal()
			return false
		}
	}
	if err := e.buf.SetCursorOffset(r.Start); err != nil {
		e.abortToNormal()
		return false
	}

	if op.EntersInsert() {
		e.state.visualAnchor = noAnchor
		e.state.visualCursor = 0
		e.state.reset()
		e.modes.Switch(mode.Insert)
		return true
	}
	e.setMode(mode.Normal)
	return true
}
