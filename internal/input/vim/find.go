package vim

// FindKind identifies one of the four character-search motions.
type FindKind uint8

const (
	// FindNone represents no pending character search.
	FindNone FindKind = iota

	// FindForward lands on the next occurrence of the target (f).
	FindForward

	// FindBackward lands on the previous occurrence of the target (F).
	FindBackward

	// TillForward lands one cell before the next occurrence (t).
	TillForward

	// TillBackward lands one cell after the previous occurrence (T).
	TillBackward
)

// String returns the find kind name.
func (k FindKind) String() string {
	switch k {
	case FindForward:
		return "findForward"
	case FindBackward:
		return "findBackward"
	case TillForward:
		return "tillForward"
	case TillBackward:
		return "tillBackward"
	default:
		return "none"
	}
}

// Forward reports whether the search scans toward the end of the text.
func (k FindKind) Forward() bool {
	return k == FindForward || k == TillForward
}

// TillBefore reports whether the motion stops one cell short of the match.
func (k FindKind) TillBefore() bool {
	return k == TillForward || k == TillBackward
}

// Inverse returns the kind with its scan direction flipped, as used by the
// ',' repeat command. FindNone inverts to itself.
func (k FindKind) Inverse() FindKind {
	switch k {
	case FindForward:
		return FindBackward
	case FindBackward:
		return FindForward
	case TillForward:
		return TillBackward
	case TillBackward:
		return TillForward
	default:
		return FindNone
	}
}

// findKeys maps the initiator keys to their kinds.
var findKeys = map[rune]FindKind{
	'f': FindForward,
	'F': FindBackward,
	't': TillForward,
	'T': TillBackward,
}

// FindKindForKey returns the find kind bound to an initiator key.
func FindKindForKey(r rune) (FindKind, bool) {
	k, ok := findKeys[r]
	return k, ok
}

// FindMotion is a fully specified character search: the target character and
// the kind. The engine remembers the last executed FindMotion so that ';'
// and ',' can repeat it.
type FindMotion struct {
	// Char is the target character.
	Char rune

	// Kind is the search variant.
	Kind FindKind
}
