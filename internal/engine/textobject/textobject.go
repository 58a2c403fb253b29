package textobject

import (
	"unicode"
	"unicode/utf8"

	"github.com/modalkit/modalkit/internal/input/vim"
)

// Range is a half-open byte span [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of bytes covered.
func (r Range) Len() int {
	return r.End - r.Start
}

// Resolve computes the span a text object selects around pos. It returns
// false when no such object exists, which aborts the pending command.
func Resolve(obj vim.TextObject, text string, pos int, inner bool) (Range, bool) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		pos = len(text)
	}

	switch obj.Kind {
	case vim.ObjectWord:
		return wordRange(text, pos, inner, false)
	case vim.ObjectWORD:
		return wordRange(text, pos, inner, true)
	case vim.ObjectQuoted:
		return quotedRange(text, pos, obj.Delim, inner)
	case vim.ObjectBracket:
		return bracketRange(text, pos, obj.Open, obj.Close, inner)
	case vim.ObjectSentence:
		return sentenceRange(text, pos, inner)
	case vim.ObjectParagraph:
		return paragraphRange(text, pos, inner)
	default:
		return Range{}, false
	}
}

// runClass buckets a rune for word-object expansion.
type runClass uint8

const (
	classWhitespace runClass = iota
	classWord
	classPunct
)

func classify(r rune, bigWord bool) runClass {
	if unicode.IsSpace(r) {
		return classWhitespace
	}
	if bigWord || unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		return classWord
	}
	return classPunct
}

// wordRange expands pos to the maximal contiguous run of its character
// class. Around variants additionally consume trailing non-newline
// whitespace, or leading whitespace when there is none trailing.
func wordRange(text string, pos int, inner, bigWord bool) (Range, bool) {
	if len(text) == 0 || pos >= len(text) {
		return Range{}, false
	}

	r, _ := utf8.DecodeRuneInString(text[pos:])
	class := classify(r, bigWord)

	start := pos
	for start > 0 {
		prev := prevRuneStart(text, start)
		pr, _ := utf8.DecodeRuneInString(text[prev:])
		if pr == '\n' || classify(pr, bigWord) != class {
			break
		}
		start = prev
	}

	end := pos
	for end < len(text) {
		cr, size := utf8.DecodeRuneInString(text[end:])
		if cr == '\n' || classify(cr, bigWord) != class {
			break
		}
		end += size
	}

	if inner {
		return Range{Start: start, End: end}, true
	}

	trailed := end
	for trailed < len(text) {
		cr, size := utf8.DecodeRuneInString(text[trailed:])
		if cr == '\n' || !unicode.IsSpace(cr) {
			break
		}
		trailed += size
	}
	if trailed > end {
		return Range{Start: start, End: trailed}, true
	}

	for start > 0 {
		prev := prevRuneStart(text, start)
		pr, _ := utf8.DecodeRuneInString(text[prev:])
		if pr == '\n' || !unicode.IsSpace(pr) {
			break
		}
		start = prev
	}
	return Range{Start: start, End: end}, true
}

// quotedRange pairs unescaped delimiters on the current line left to right
// and selects the pair enclosing pos, or failing that the next pair after
// it.
func quotedRange(text string, pos int, delim rune, inner bool) (Range, bool) {
	lineStart := pos
	for lineStart > 0 && text[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := pos
	for lineEnd < len(text) && text[lineEnd] != '\n' {
		lineEnd++
	}

	var delims []int
	escaped := false
	for i := lineStart; i < lineEnd; {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == delim:
			delims = append(delims, i)
		}
		i += size
	}

	delimSize := utf8.RuneLen(delim)
	for i := 0; i+1 < len(delims); i += 2 {
		open, close := delims[i], delims[i+1]
		if pos <= close || open > pos {
			if inner {
				return Range{Start: open + delimSize, End: close}, true
			}
			return Range{Start: open, End: close + delimSize}, true
		}
	}
	return Range{}, false
}

// bracketRange finds the innermost bracket pair around pos with depth
// tracking for nesting. A cursor on the close delimiter selects that pair.
func bracketRange(text string, pos int, open, close rune, inner bool) (Range, bool) {
	if len(text) == 0 {
		return Range{}, false
	}
	if pos >= len(text) {
		pos = prevRuneStart(text, len(text))
	}

	var openPos int
	found := false

	cur, _ := utf8.DecodeRuneInString(text[pos:])
	if cur == close {
		depth := 0
		for i := pos; i > 0; {
			i = prevRuneStart(text, i)
			r, _ := utf8.DecodeRuneInString(text[i:])
			if r == close {
				depth++
			} else if r == open {
				if depth == 0 {
					openPos = i
					found = true
					break
				}
				depth--
			}
		}
		if !found {
			return Range{}, false
		}
		openSize := utf8.RuneLen(open)
		closeSize := utf8.RuneLen(close)
		if inner {
			return Range{Start: openPos + openSize, End: pos}, true
		}
		return Range{Start: openPos, End: pos + closeSize}, true
	}

	// Search backward, counting unmatched closes so nested siblings are
	// skipped over.
	depth := 0
	for i := pos; ; {
		r, _ := utf8.DecodeRuneInString(text[i:])
		if r == close && i != pos {
			depth++
		} else if r == open {
			if depth == 0 {
				openPos = i
				found = true
				break
			}
			depth--
		}
		if i == 0 {
			break
		}
		i = prevRuneStart(text, i)
	}
	if !found {
		return Range{}, false
	}

	// Forward from the open for its matching close.
	depth = 0
	openSize := utf8.RuneLen(open)
	for i := openPos + openSize; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == open {
			depth++
		} else if r == close {
			if depth == 0 {
				if inner {
					return Range{Start: openPos + openSize, End: i}, true
				}
				return Range{Start: openPos, End: i + size}, true
			}
			depth--
		}
		i += size
	}
	return Range{}, false
}

// sentenceRange selects the sentence containing pos. Sentences end at
// '.', '!', or '?' followed by whitespace or text end.
func sentenceRange(text string, pos int, inner bool) (Range, bool) {
	if len(text) == 0 {
		return Range{}, false
	}
	if pos >= len(text) {
		pos = prevRuneStart(text, len(text))
	}

	// Sentence starts: offset 0 plus the first non-whitespace after each
	// terminator.
	start := 0
	for start < len(text) {
		r, size := utf8.DecodeRuneInString(text[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}

	for {
		term, hasTerm := nextTerminator(text, start)
		segEnd := len(text)
		nextStart := len(text)
		if hasTerm {
			segEnd = term + 1
			nextStart = segEnd
			for nextStart < len(text) {
				r, size := utf8.DecodeRuneInString(text[nextStart:])
				if !unicode.IsSpace(r) {
					break
				}
				nextStart += size
			}
		}

		if pos < nextStart || nextStart == len(text) {
			if inner {
				return Range{Start: start, End: segEnd}, true
			}
			return Range{Start: start, End: nextStart}, true
		}
		start = nextStart
	}
}

// nextTerminator finds the next sentence terminator at or after offset.
func nextTerminator(text string, offset int) (int, bool) {
	for i := offset; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '.' || r == '!' || r == '?' {
			next := i + size
			if next >= len(text) {
				return i, true
			}
			nr, _ := utf8.DecodeRuneInString(text[next:])
			if unicode.IsSpace(nr) {
				return i, true
			}
		}
		i += size
	}
	return 0, false
}

// paragraphRange selects the paragraph containing pos. Paragraphs are
// separated by blank lines; around variants consume trailing blank lines.
func paragraphRange(text string, pos int, inner bool) (Range, bool) {
	if len(text) == 0 {
		return Range{}, false
	}
	if pos >= len(text) {
		pos = len(text) - 1
	}

	// Walk line starts backward until a blank line or the text start.
	start := lineStartAt(text, pos)
	for start > 0 {
		prevStart := lineStartAt(text, start-1)
		if isBlankLine(text, prevStart) {
			break
		}
		start = prevStart
	}

	onBlank := isBlankLine(text, lineStartAt(text, pos))

	// Walk forward to the first boundary line of the opposite kind.
	end := lineStartAt(text, pos)
	for end < len(text) {
		if isBlankLine(text, end) != onBlank {
			break
		}
		end = nextLineStart(text, end)
	}

	// Recompute start for a blank-line run: its paragraph is the run
	// itself.
	if onBlank {
		start = lineStartAt(text, pos)
		for start > 0 {
			prevStart := lineStartAt(text, start-1)
			if !isBlankLine(text, prevStart) {
				break
			}
			start = prevStart
		}
	}

	if inner {
		return Range{Start: start, End: end}, true
	}

	trailed := end
	for trailed < len(text) && isBlankLine(text, trailed) {
		trailed = nextLineStart(text, trailed)
	}
	return Range{Start: start, End: trailed}, true
}

// lineStartAt returns the start offset of the line containing pos.
func lineStartAt(text string, pos int) int {
	for pos > 0 && text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// nextLineStart returns the start of the line after the one at lineStart,
// or len(text) for the final line.
func nextLineStart(text string, lineStart int) int {
	for lineStart < len(text) {
		if text[lineStart] == '\n' {
			return lineStart + 1
		}
		lineStart++
	}
	return len(text)
}

// isBlankLine reports whether the line starting at lineStart is empty.
func isBlankLine(text string, lineStart int) bool {
	return lineStart >= len(text) || text[lineStart] == '\n'
}

// prevRuneStart returns the offset of the rune preceding pos.
func prevRuneStart(text string, pos int) int {
	if pos <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:pos])
	return pos - size
}
