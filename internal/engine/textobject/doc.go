// Package textobject resolves text objects to text ranges.
//
// A text object names a region around the cursor: a word, a quoted string,
// a bracketed group, a sentence, or a paragraph. Resolution is a pure
// function of the text, the cursor offset, and the inner flag. Inner
// variants exclude delimiters and surrounding whitespace; around variants
// include them. Resolution can fail when no such object exists at or after
// the cursor, which callers treat as a command abort rather than an error.
package textobject
