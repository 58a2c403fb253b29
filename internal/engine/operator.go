package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/modalkit/modalkit/internal/buffer"
	"github.com/modalkit/modalkit/internal/engine/motion"
	"github.com/modalkit/modalkit/internal/input/mode"
)

// executeOperatorRange snapshots [start, end) into the active register,
// deletes it for the deleting operators, and leaves operator-pending mode.
// Zero-width ranges execute as no-op mutations.
func (e *Engine) executeOperatorRange(text string, start, end int, linewise bool) bool {
	op := e.state.pendingOperator

	e.registers.Set(e.state.takeRegister(), text[start:end], linewise)

	if op.DeletesText() && end > start {
		if !e.deleteRange(start, end) {
			return false
		}
	} else {
		if err := e.buf.SetCursorOffset(start); err != nil {
			e.abortToNormal()
			return false
		}
	}

	if op.EntersInsert() {
		e.state.reset()
		e.recognizer.Reset()
		e.modes.Switch(mode.Insert)
		return true
	}
	e.setMode(mode.Normal)
	return true
}

// deleteRange removes [start, end) from the buffer and parks the cursor
// at start.
func (e *Engine) deleteRange(start, end int) bool {
	if err := e.buf.SetSelectedRange(buffer.Range{Start: start, Len: end - start}); err != nil {
		e.abortToNormal()
		return false
	}
	if err := e.buf.ReplaceSelection(""); err != nil {
		e.abortToNormal()
		return false
	}
	if err := e.buf.SetCursorOffset(start); err != nil {
		e.abortToNormal()
		return false
	}
	return true
}

// paste inserts the active register's content: linewise content as a new
// line below (p) or above (P) the cursor's line, character content after
// (p) or at (P) the cursor.
func (e *Engine) paste(after bool) bool {
	count := e.state.countOr1()
	e.state.count = 0

	content, linewise := e.registers.Get(e.state.takeRegister())
	if content == "" {
		return true
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

	if linewise {
		line := strings.TrimSuffix(content, "\n")
		if count > 1 {
			lines := make([]string, count)
			for i := range lines {
				lines[i] = line
			}
			line = strings.Join(lines, "\n")
		}
		return e.pasteLinewise(text, pos, line, after)
	}

	if count > 1 {
		content = strings.Repeat(content, count)
	}

	insertAt := pos
	if after && pos < len(text) && text[pos] != '\n' {
		_, size := utf8.DecodeRuneInString(text[pos:])
		insertAt = pos + size
	}
	if err := e.buf.SetCursorOffset(insertAt); err != nil {
		e.abortToNormal()
		return false
	}
	if err := e.buf.InsertText(content); err != nil {
		e.abortToNormal()
		return false
	}
	return true
}

// pasteLinewise inserts line as a whole line below or above the cursor's
// line and parks the cursor at the start of the pasted text.
func (e *Engine) pasteLinewise(text string, pos int, line string, after bool) bool {
	var insertAt int
	var payload string

	if after {
		end := motion.LineEnd(text, pos)
		if end >= len(text) {
			// Last line without a trailing newline.
			insertAt = len(text)
			payload = "\n" + line
		} else {
			insertAt = end + 1
			payload = line + "\n"
		}
	} else {
		insertAt = motion.LineStart(text, pos)
		payload = line + "\n"
	}

	if err := e.buf.SetCursorOffset(insertAt); err != nil {
		e.abortToNormal()
		return false
	}
	if err := e.buf.InsertText(payload); err != nil {
		e.abortToNormal()
		return false
	}

	cursor := insertAt
	if after && insertAt == len(text) {
		cursor = insertAt + 1 // skip the separator newline
	}
	if err := e.buf.SetCursorOffset(cursor); err != nil {
		e.abortToNormal()
		return false
	}
	return true
}
