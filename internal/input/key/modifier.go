package key

import "strings"

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone Modifier = 0
)

// ordered for display
var modifierNames = []struct {
	bit  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// Has reports whether every bit of mod is set in m.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m with mod cleared.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String returns a form like "Ctrl+Alt", or "" for no modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	parts := make([]string, 0, len(modifierNames))
	for _, mn := range modifierNames {
		if m.Has(mn.bit) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}
