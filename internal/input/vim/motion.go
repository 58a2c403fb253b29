package vim

// Motion identifies a cursor motion. The set is closed so that operator
// range conversion can exhaustively branch on the variant.
type Motion uint8

const (
	// MotionNone represents no motion.
	MotionNone Motion = iota

	// Character motions
	MotionLeft
	MotionRight
	MotionUp
	MotionDown

	// Word motions (letters/digits/underscore form a word)
	MotionWordForward
	MotionWordBackward
	MotionWordEnd

	// WORD motions (whitespace-delimited)
	MotionWORDForward
	MotionWORDBackward
	MotionWORDEnd

	// Line motions
	MotionLineStart
	MotionLineEnd
	MotionFirstNonBlank

	// Document motions
	MotionDocumentStart
	MotionDocumentEnd

	// MotionFindChar is the f/F/t/T family; the target character and
	// direction travel separately as a FindMotion.
	MotionFindChar
)

// String returns the motion identifier.
func (m Motion) String() string {
	switch m {
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	case MotionWordForward:
		return "wordForward"
	case MotionWordBackward:
		return "wordBackward"
	case MotionWordEnd:
		return "wordEnd"
	case MotionWORDForward:
		return "WORDForward"
	case MotionWORDBackward:
		return "WORDBackward"
	case MotionWORDEnd:
		return "WORDEnd"
	case MotionLineStart:
		return "lineStart"
	case MotionLineEnd:
		return "lineEnd"
	case MotionFirstNonBlank:
		return "firstNonBlank"
	case MotionDocumentStart:
		return "documentStart"
	case MotionDocumentEnd:
		return "documentEnd"
	case MotionFindChar:
		return "findChar"
	default:
		return "none"
	}
}

// IsLinewise reports whether an operator applied over this motion affects
// whole lines rather than a character range.
func (m Motion) IsLinewise() bool {
	switch m {
	case MotionUp, MotionDown, MotionDocumentStart, MotionDocumentEnd:
		return true
	}
	return false
}

// IsInclusive reports whether the motion's destination character is included
// in the range an operator affects.
func (m Motion) IsInclusive() bool {
	switch m {
	case MotionWordEnd, MotionWORDEnd, MotionFindChar:
		return true
	}
	return false
}

// motionKeys maps single-key motions to their variants.
var motionKeys = map[rune]Motion{
	'h': MotionLeft,
	'l': MotionRight,
	'k': MotionUp,
	'j': MotionDown,
	'w': MotionWordForward,
	'b': MotionWordBackward,
	'e': MotionWordEnd,
	'W': MotionWORDForward,
	'B': MotionWORDBackward,
	'E': MotionWORDEnd,
	'0': MotionLineStart,
	'$': MotionLineEnd,
	'^': MotionFirstNonBlank,
	'G': MotionDocumentEnd,
}

// MotionForKey returns the motion bound to a single key.
func MotionForKey(r rune) (Motion, bool) {
	m, ok := motionKeys[r]
	return m, ok
}
