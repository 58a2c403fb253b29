package engine

import (
	"time"

	"github.com/modalkit/modalkit/internal/input/key"
	"github.com/modalkit/modalkit/internal/input/mode"
)

// handleInsert processes a key in insert mode. Only Escape and a completed
// exit sequence are consumed; everything else passes through to the host
// so the focused application receives the typed text.
func (e *Engine) handleInsert(ev key.Event) bool {
	if ev.IsEscape() {
		e.setMode(mode.Normal)
		return true
	}

	if !ev.IsChar() || ev.IsModified() {
		e.recognizer.Reset()
		return false
	}

	at := ev.Timestamp
	if at.IsZero() {
		at = time.Now()
	}

	if !e.recognizer.Feed(ev.Rune, at) {
		return false
	}

	// The sequence completed: the host has already inserted all but this
	// final character, so delete what was typed before leaving insert.
	for i := 0; i < e.recognizer.SequenceLen()-1; i++ {
		if err := e.buf.DeleteBackward(); err != nil {
			break
		}
	}
	e.setMode(mode.Normal)
	return true
}
