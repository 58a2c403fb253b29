package key

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Event is a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune carries the character for KeyRune events.
	Rune rune

	// Modifiers holds the modifier keys held during the press.
	Modifiers Modifier

	// Timestamp records when the press occurred.
	Timestamp time.Time
}

// NewRuneEvent creates an event for a character key, stamped now.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods, Timestamp: time.Now()}
}

// NewSpecialEvent creates an event for a non-character key, stamped now.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods, Timestamp: time.Now()}
}

// IsRune reports whether the event carries a character.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar reports whether the event carries a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified reports whether a modifier beyond Shift is held. Shift on a
// character event is not counted: it already changed the character.
func (e Event) IsModified() bool {
	mods := e.Modifiers
	if e.IsRune() {
		mods = mods.Without(ModShift)
	}
	return mods != ModNone
}

// IsEscape reports whether this is a bare Escape press.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// Equals compares two events ignoring timestamps.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Modifiers == other.Modifiers
}

// String renders the event in compact notation: "a", "C-s", "Escape",
// "C-A-Left".
func (e Event) String() string {
	var sb strings.Builder
	for _, mn := range []struct {
		bit   Modifier
		short string
	}{
		{ModCtrl, "C"},
		{ModAlt, "A"},
		{ModMeta, "M"},
		{ModShift, "S"},
	} {
		if mn.bit == ModShift && e.IsRune() {
			continue
		}
		if e.Modifiers.Has(mn.bit) {
			sb.WriteString(mn.short)
			sb.WriteByte('-')
		}
	}

	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		sb.WriteString("Space")
	case e.Key == KeyRune:
		sb.WriteRune(e.Rune)
	default:
		sb.WriteString(e.Key.String())
	}
	return sb.String()
}

// GoString implements fmt.GoStringer for test failure output.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}", e.Key, e.Rune, e.Modifiers)
}
