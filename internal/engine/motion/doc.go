// Package motion resolves cursor motions against buffer text.
//
// Motions are pure functions of the text, the cursor offset, and a count:
// they never mutate anything. All offsets are byte offsets and all scans are
// UTF-8 aware. A count of zero means the user typed no count, which most
// motions treat as one; the document motions treat an explicit count as a
// 1-based line number instead.
package motion
