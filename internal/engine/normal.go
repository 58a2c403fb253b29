package engine

import (
	"unicode/utf8"

	"github.com/modalkit/modalkit/internal/engine/motion"
	"github.com/modalkit/modalkit/internal/input/key"
	"github.com/modalkit/modalkit/internal/input/mode"
	"github.com/modalkit/modalkit/internal/input/vim"
)

// arrowMotions maps arrow keys to their motions.
var arrowMotions = map[key.Key]vim.Motion{
	key.KeyLeft:  vim.MotionLeft,
	key.KeyRight: vim.MotionRight,
	key.KeyUp:    vim.MotionUp,
	key.KeyDown:  vim.MotionDown,
}

// handleNormal processes a key in normal mode.
func (e *Engine) handleNormal(ev key.Event) bool {
	if !ev.IsRune() {
		// A special key cancels a pending character search.
		if e.state.pendingFind != vim.FindNone {
			e.state.pendingFind = vim.FindNone
			return false
		}
		if m, ok := arrowMotions[ev.Key]; ok {
			return e.moveMotion(m)
		}
		if ev.Key == key.KeyEscape {
			e.state.reset()
			e.recognizer.Reset()
			return true
		}
		return false
	}

	r := ev.Rune

	if e.state.pendingFind != vim.FindNone {
		return e.completeFind(r)
	}

	if e.state.pendingRegister {
		e.state.pendingRegister = false
		if vim.IsValidName(r) {
			e.state.registerName = r
			return true
		}
		e.state.reset()
		return false
	}

	if len(e.state.keyBuffer) > 0 {
		return e.completeMultiKey(r)
	}

	if vim.IsCountDigit(r) && (e.state.accum.Active || vim.IsCountStart(r)) {
		return e.state.accum.AccumulateDigit(r)
	}

	switch r {
	case 'i':
		e.setMode(mode.Insert)
		return true
	case 'a':
		return e.appendAfterCursor()
	case 'I':
		return e.insertAtFirstNonBlank()
	case 'A':
		return e.appendAtLineEnd()
	case 'o':
		return e.openLineBelow()
	case 'O':
		return e.openLineAbove()

	case 'v':
		return e.enterVisualFromNormal(mode.Visual)
	case 'V':
		return e.enterVisualFromNormal(mode.VisualLine)

	case 'd', 'c', 'y':
		op, _ := vim.OperatorForKey(r)
		e.state.count = e.state.resolveCount()
		e.state.pendingOperator = op
		e.setMode(mode.OperatorPending)
		return true

	case 'f', 'F', 't', 'T':
		kind, _ := vim.FindKindForKey(r)
		e.state.pendingFind = kind
		return true

	case ';':
		return e.repeatFind(false)
	case ',':
		return e.repeatFind(true)

	case 'g':
		e.state.keyBuffer = append(e.state.keyBuffer, r)
		return true

	case '"':
		e.state.pendingRegister = true
		return true

	case 'x':
		return e.deleteForward()
	case 'X':
		return e.deleteBackwardCommand()

	case 'p':
		return e.paste(true)
	case 'P':
		return e.paste(false)

	case 'u':
		return e.undo()
	}

	if m, ok := vim.MotionForKey(r); ok {
		return e.moveMotion(m)
	}

	return false
}

// moveMotion applies a motion to the cursor, consuming any typed count.
func (e *Engine) moveMotion(m vim.Motion) bool {
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

	newPos := motion.Apply(m, text, pos, count)
	if err := e.buf.SetCursorOffset(newPos); err != nil {
		e.abortToNormal()
		return false
	}
	e.state.count = 0
	return true
}

// completeMultiKey folds a key into the multi-key buffer and executes the
// sequence when it matches. Unrecognized sequences clear the buffer and
// pass the key through.
func (e *Engine) completeMultiKey(r rune) bool {
	e.state.keyBuffer = append(e.state.keyBuffer, r)
	if string(e.state.keyBuffer) == "gg" {
		e.state.keyBuffer = e.state.keyBuffer[:0]
		return e.moveMotion(vim.MotionDocumentStart)
	}
	e.state.keyBuffer = e.state.keyBuffer[:0]
	return false
}

// completeFind executes a character search with the typed target and
// records it for ; and , repeats.
func (e *Engine) completeFind(target rune) bool {
	kind := e.state.pendingFind
	e.state.pendingFind = vim.FindNone
	fm := vim.FindMotion{Char: target, Kind: kind}
	e.state.lastFind = &fm
	return e.runFind(fm)
}

// repeatFind re-executes the last character search, inverted for the ,
// command. With no search recorded it is a consumed no-op.
func (e *Engine) repeatFind(inverse bool) bool {
	if e.state.lastFind == nil {
		e.state.count = 0
		e.state.accum.Reset()
		return true
	}
	fm := *e.state.lastFind
	if inverse {
		fm.Kind = fm.Kind.Inverse()
	}
	return e.runFind(fm)
}

// runFind moves the cursor by a character search, consuming any count.
func (e *Engine) runFind(fm vim.FindMotion) bool {
	count := e.state.resolveCount()
	e.state.count = 0

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

	newPos := motion.Find(text, pos, fm, count)
	if err := e.buf.SetCursorOffset(newPos); err != nil {
		e.abortToNormal()
		return false
	}
	return true
}

// enterVisualFromNormal captures the anchor and switches into a visual
// mode, selecting the character under the cursor.
func (e *Engine) enterVisualFromNormal(to mode.Mode) bool {
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

	e.state.visualAnchor = pos
	e.state.visualCursor = pos
	e.modes.Switch(to)
	return e.applyVisualSelection(text)
}

// appendAfterCursor implements a: advance one rune, stopping at the line
// end, then enter insert mode.
func (e *Engine) appendAfterCursor() bool {
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

	if pos < len(text) && text[pos] != '\n' {
		_, size := utf8.DecodeRuneInString(text[pos:])
		if err := e.buf.SetCursorOffset(pos + size); err != nil {
			e.abortToNormal()
			return false
		}
	}
	e.setMode(mode.Insert)
	return true
}

// insertAtFirstNonBlank implements I.
func (e *Engine) insertAtFirstNonBlank() bool {
	if !e.moveMotion(vim.MotionFirstNonBlank) {
		return false
	}
	e.setMode(mode.Insert)
	return true
}

// appendAtLineEnd implements A.
func (e *Engine) appendAtLineEnd() bool {
	if !e.moveMotion(vim.MotionLineEnd) {
		return false
	}
	e.setMode(mode.Insert)
	return true
}

// openLineBelow implements o: a new empty line under the cursor's line.
func (e *Engine) openLineBelow() bool {
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

	end := motion.LineEnd(text, pos)
	if err := e.buf.SetCursorOffset(end); err != nil {
		e.abortToNormal()
		return false
	}
	if err := e.buf.InsertText("\n"); err != nil {
		e.abortToNormal()
		return false
	}
	e.setMode(mode.Insert)
	return true
}

// openLineAbove implements O: a new empty line above the cursor's line.
func (e *Engine) openLineAbove() bool {
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
	if err := e.buf.SetCursorOffset(start); err != nil {
		e.abortToNormal()
		return false
	}
	if err := e.buf.InsertText("\n"); err != nil {
		e.abortToNormal()
		return false
	}
	if err := e.buf.SetCursorOffset(start); err != nil {
		e.abortToNormal()
		return false
	}
	e.setMode(mode.Insert)
	return true
}

// deleteForward implements x: delete count characters at the cursor,
// stopping at the line end. The removed text lands in the active register.
func (e *Engine) deleteForward() bool {
	count := e.state.countOr1()
	e.state.count = 0

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

	end := pos
	for i := 0; i < count && end < len(text) && text[end] != '\n'; i++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	if end == pos {
		e.state.takeRegister()
		return true
	}

	e.registers.Set(e.state.takeRegister(), text[pos:end], false)
	return e.deleteRange(pos, end)
}

// deleteBackwardCommand implements X: delete count characters before the
// cursor, stopping at the line start.
func (e *Engine) deleteBackwardCommand() bool {
	count := e.state.countOr1()
	e.state.count = 0

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

	start := pos
	for i := 0; i < count && start > 0 && text[start-1] != '\n'; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}
	if start == pos {
		e.state.takeRegister()
		return true
	}

	e.registers.Set(e.state.takeRegister(), text[start:pos], false)
	return e.deleteRange(start, pos)
}

// undo issues count undo requests to the buffer.
func (e *Engine) undo() bool {
	count := e.state.countOr1()
	e.state.count = 0

	for i := 0; i < count; i++ {
		if err := e.buf.Undo(); err != nil {
			e.abortToNormal()
			return false
		}
	}
	return true
}
