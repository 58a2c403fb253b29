// Package engine implements the modal command engine.
//
// The engine consumes key events one at a time and turns them into buffer
// operations following the modal grammar: an optional count, an optional
// register, an operator, and a motion, text object, or character search.
// Processing is strictly synchronous; callers must serialize HandleKey.
// Each call returns whether the key was consumed, which hosts use to decide
// whether to suppress the original keystroke.
//
// The engine owns all command state. Pending state (count, operator,
// register, multi-key buffer, find and text-object modifiers) is reset on
// every transition into normal mode and never expires on its own; Escape in
// any non-normal mode discards it unconditionally. Registers are the only
// state that persists across commands.
package engine
