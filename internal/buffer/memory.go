package buffer

import "unicode/utf8"

// snapshot captures buffer content for undo.
type snapshot struct {
	text      string
	cursor    int
	selection Range
}

// MemoryBuffer is an in-process Buffer used by tests and the demo binary.
// The selection is kept separate from the cursor: SetCursorOffset collapses
// it, SetSelectedRange establishes it.
type MemoryBuffer struct {
	text        string
	cursor      int
	selection   Range
	undoStack   []snapshot
	unavailable bool
	caps        Capabilities
}

// NewMemoryBuffer creates a buffer holding text with the cursor at offset 0.
func NewMemoryBuffer(text string) *MemoryBuffer {
	return &MemoryBuffer{
		text: text,
		caps: Capabilities{SupportsPreciseRange: true},
	}
}

// SetUnavailable toggles failure mode: while set, every accessor returns
// ErrUnavailable. Used by tests to exercise abort paths.
func (b *MemoryBuffer) SetUnavailable(unavailable bool) {
	b.unavailable = unavailable
}

// SetCapabilities overrides the reported capability record.
func (b *MemoryBuffer) SetCapabilities(caps Capabilities) {
	b.caps = caps
}

func (b *MemoryBuffer) pushUndo() {
	b.undoStack = append(b.undoStack, snapshot{
		text:      b.text,
		cursor:    b.cursor,
		selection: b.selection,
	})
}

func (b *MemoryBuffer) clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(b.text) {
		return len(b.text)
	}
	return offset
}

// Text returns the full buffer content.
func (b *MemoryBuffer) Text() (string, error) {
	if b.unavailable {
		return "", ErrUnavailable
	}
	return b.text, nil
}

// CursorOffset returns the cursor position.
func (b *MemoryBuffer) CursorOffset() (int, error) {
	if b.unavailable {
		return 0, ErrUnavailable
	}
	return b.cursor, nil
}

// SetCursorOffset moves the cursor and collapses the selection.
func (b *MemoryBuffer) SetCursorOffset(offset int) error {
	if b.unavailable {
		return ErrUnavailable
	}
	b.cursor = b.clampOffset(offset)
	b.selection = Range{Start: b.cursor}
	return nil
}

// SelectedRange returns the current selection, collapsed at the cursor when
// nothing is selected.
func (b *MemoryBuffer) SelectedRange() (Range, error) {
	if b.unavailable {
		return Range{}, ErrUnavailable
	}
	if b.selection.Len == 0 {
		return Range{Start: b.cursor}, nil
	}
	return b.selection, nil
}

// SetSelectedRange selects a span, clamped to the text bounds, and moves
// the cursor to its start.
func (b *MemoryBuffer) SetSelectedRange(r Range) error {
	if b.unavailable {
		return ErrUnavailable
	}
	start := b.clampOffset(r.Start)
	end := b.clampOffset(r.Start + r.Len)
	b.selection = Range{Start: start, Len: end - start}
	b.cursor = start
	return nil
}

// SelectedText returns the content of the current selection.
func (b *MemoryBuffer) SelectedText() (string, error) {
	if b.unavailable {
		return "", ErrUnavailable
	}
	r, _ := b.SelectedRange()
	return b.text[r.Start:r.End()], nil
}

// ReplaceSelection replaces the selected span, collapsing the selection to
// the end of the inserted text.
func (b *MemoryBuffer) ReplaceSelection(text string) error {
	if b.unavailable {
		return ErrUnavailable
	}
	r, _ := b.SelectedRange()
	b.pushUndo()
	b.text = b.text[:r.Start] + text + b.text[r.End():]
	b.cursor = r.Start + len(text)
	b.selection = Range{Start: b.cursor}
	return nil
}

// InsertText inserts at the cursor, advancing past the inserted text.
func (b *MemoryBuffer) InsertText(text string) error {
	if b.unavailable {
		return ErrUnavailable
	}
	b.pushUndo()
	b.text = b.text[:b.cursor] + text + b.text[b.cursor:]
	b.cursor += len(text)
	b.selection = Range{Start: b.cursor}
	return nil
}

// DeleteBackward removes the rune before the cursor. A cursor at offset 0
// leaves the text unchanged.
func (b *MemoryBuffer) DeleteBackward() error {
	if b.unavailable {
		return ErrUnavailable
	}
	if b.cursor == 0 {
		return nil
	}
	_, size := utf8.DecodeLastRuneInString(b.text[:b.cursor])
	b.pushUndo()
	b.text = b.text[:b.cursor-size] + b.text[b.cursor:]
	b.cursor -= size
	b.selection = Range{Start: b.cursor}
	return nil
}

// Undo reverts the most recent mutation. With nothing to undo it is a no-op.
func (b *MemoryBuffer) Undo() error {
	if b.unavailable {
		return ErrUnavailable
	}
	if len(b.undoStack) == 0 {
		return nil
	}
	s := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.text = s.text
	b.cursor = s.cursor
	b.selection = s.selection
	return nil
}

// Capabilities describes what this implementation can honor.
func (b *MemoryBuffer) Capabilities() Capabilities {
	return b.caps
}
