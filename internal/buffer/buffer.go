package buffer

import "time"

// Range is a span of text expressed as a byte offset and length.
type Range struct {
	// Start is the offset of the first byte.
	Start int

	// Len is the number of bytes covered.
	Len int
}

// End returns the offset one past the last byte.
func (r Range) End() int {
	return r.Start + r.Len
}

// Capabilities describes what a buffer implementation can honor. The engine
// issues the same abstract calls regardless; the capability record exists so
// the host can select between a precise-range implementation and a simulated
// select-then-type one.
type Capabilities struct {
	// SupportsPreciseRange reports whether arbitrary range selection and
	// replacement work reliably.
	SupportsPreciseRange bool

	// WriteDelay is the settle time the host needs between mutations, zero
	// for in-process buffers.
	WriteDelay time.Duration
}

// Buffer is the text target the engine operates on. Accessors return
// ErrUnavailable when the underlying target cannot be reached; the engine
// aborts the in-flight command on any such failure.
type Buffer interface {
	// Text returns the full buffer content.
	Text() (string, error)

	// CursorOffset returns the cursor position as a byte offset.
	CursorOffset() (int, error)

	// SetCursorOffset moves the cursor, collapsing any selection.
	SetCursorOffset(offset int) error

	// SelectedRange returns the current selection. A collapsed selection has
	// Len zero at the cursor.
	SelectedRange() (Range, error)

	// SetSelectedRange selects a span of text.
	SetSelectedRange(r Range) error

	// SelectedText returns the content of the current selection.
	SelectedText() (string, error)

	// ReplaceSelection replaces the selected span with text, collapsing the
	// selection to the end of the inserted text.
	ReplaceSelection(text string) error

	// InsertText inserts at the cursor, advancing it past the inserted text.
	InsertText(text string) error

	// DeleteBackward removes the character before the cursor.
	DeleteBackward() error

	// Undo reverts the most recent mutation.
	Undo() error

	// Capabilities describes what this implementation can honor.
	Capabilities() Capabilities
}

// NeedsFallback reports whether the buffer requires the simulated
// select-then-type strategy instead of precise range mutation.
func NeedsFallback(b Buffer) bool {
	return !b.Capabilities().SupportsPreciseRange
}
