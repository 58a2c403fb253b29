package vim

// Operator identifies a pending text operation awaiting a range.
type Operator uint8

const (
	// OpNone represents no pending operator.
	OpNone Operator = iota

	// OpDelete removes the resolved range (d).
	OpDelete

	// OpChange removes the resolved range and enters insert mode (c).
	OpChange

	// OpYank copies the resolved range without modifying the text (y).
	OpYank
)

// String returns the operator name.
func (o Operator) String() string {
	switch o {
	case OpDelete:
		return "delete"
	case OpChange:
		return "change"
	case OpYank:
		return "yank"
	default:
		return "none"
	}
}

// Key returns the key that initiates the operator, used to recognize the
// doubled forms dd, cc, and yy.
func (o Operator) Key() rune {
	switch o {
	case OpDelete:
		return 'd'
	case OpChange:
		return 'c'
	case OpYank:
		return 'y'
	default:
		return 0
	}
}

// DeletesText reports whether executing the operator removes the range from
// the buffer.
func (o Operator) DeletesText() bool {
	return o == OpDelete || o == OpChange
}

// EntersInsert reports whether the operator leaves the engine in insert mode.
func (o Operator) EntersInsert() bool {
	return o == OpChange
}

// operatorKeys maps initiator keys to operators.
var operatorKeys = map[rune]Operator{
	'd': OpDelete,
	'c': OpChange,
	'y': OpYank,
}

// OperatorForKey returns the operator bound to a key.
func OperatorForKey(r rune) (Operator, bool) {
	op, ok := operatorKeys[r]
	return op, ok
}
