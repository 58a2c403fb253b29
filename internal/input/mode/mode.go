package mode

// Mode identifies an editing mode.
type Mode uint8

const (
	// Normal is command mode, the mode the engine starts in.
	Normal Mode = iota

	// Insert passes typed text through to the buffer.
	Insert

	// Visual tracks a character-wise selection.
	Visual

	// VisualLine tracks a line-wise selection.
	VisualLine

	// OperatorPending waits for the motion or text object that completes a
	// pending operator.
	OperatorPending
)

// String returns the mode identifier used in logs and configuration.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Visual:
		return "visual"
	case VisualLine:
		return "visual-line"
	case OperatorPending:
		return "operator-pending"
	default:
		return "unknown"
	}
}

// DisplayName returns the status-line form of the mode name.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Visual:
		return "VISUAL"
	case VisualLine:
		return "VISUAL LINE"
	case OperatorPending:
		return "O-PENDING"
	default:
		return "UNKNOWN"
	}
}

// IsVisual reports whether the mode tracks a selection.
func (m Mode) IsVisual() bool {
	return m == Visual || m == VisualLine
}
