// Package vim defines the closed vocabulary of the modal command grammar:
// motions, operators, text objects, find kinds, count accumulation, and the
// register store.
//
// # Grammar
//
// The normal-mode grammar accepted by the engine is:
//
//	[count]["register][operator][count][motion|text-object|find]
//	[count]["register][operator][operator]  (line-wise: dd, yy, cc)
//	[count][motion]
//	[count]["register][simple-command]
//
// Examples:
//   - "5j": count=5, motion=down
//   - "d3w": operator=delete, count=3, motion=wordForward
//   - "diw": operator=delete, text-object=inner word
//   - `"ayw`: register=a, operator=yank, motion=wordForward
//   - "2d3w": outer and inner counts multiply (delete 6 words)
//
// This package holds only the vocabulary and its derived properties
// (linewise, inclusive, deletes-text, enters-insert). The algorithms that
// resolve motions and text objects against buffer text live in
// internal/engine/motion and internal/engine/textobject; the state machine
// that composes these pieces lives in internal/engine.
package vim
