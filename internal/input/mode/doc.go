// Package mode defines the editing modes and the manager that tracks the
// active mode.
//
// The engine interprets every key event through the lens of the current
// mode: normal mode dispatches commands, insert mode passes text through,
// the visual modes track a selection, and operator-pending mode waits for
// the range that completes an operator. The Manager owns the current mode
// and notifies registered callbacks after each transition, so status lines
// and other observers can react without polling.
package mode
