package motion

import (
	"unicode"
	"unicode/utf8"

	"github.com/modalkit/modalkit/internal/input/vim"
)

// Apply resolves a motion to a new cursor offset. A count of zero means the
// user typed no count: repeating motions run once, and the document motions
// fall back to their default target (first or last line). An explicit count
// on a document motion is a 1-based line number.
func Apply(m vim.Motion, text string, pos, count int) int {
	pos = clampOffset(text, pos)
	repeat := count
	if repeat <= 0 {
		repeat = 1
	}

	switch m {
	case vim.MotionLeft:
		for i := 0; i < repeat && pos > 0; i++ {
			pos = prevRuneStart(text, pos)
		}
		return pos

	case vim.MotionRight:
		for i := 0; i < repeat && pos < len(text); i++ {
			_, size := utf8.DecodeRuneInString(text[pos:])
			pos += size
		}
		return pos

	case vim.MotionUp:
		for i := 0; i < repeat; i++ {
			pos = lineUp(text, pos)
		}
		return pos

	case vim.MotionDown:
		for i := 0; i < repeat; i++ {
			pos = lineDown(text, pos)
		}
		return pos

	case vim.MotionWordForward:
		for i := 0; i < repeat && pos < len(text); i++ {
			pos = nextWordStart(text, pos, false)
		}
		return pos

	case vim.MotionWordBackward:
		for i := 0; i < repeat && pos > 0; i++ {
			pos = prevWordStart(text, pos, false)
		}
		return pos

	case vim.MotionWordEnd:
		for i := 0; i < repeat && pos < len(text); i++ {
			pos = wordEnd(text, pos, false)
		}
		return pos

	case vim.MotionWORDForward:
		for i := 0; i < repeat && pos < len(text); i++ {
			pos = nextWordStart(text, pos, true)
		}
		return pos

	case vim.MotionWORDBackward:
		for i := 0; i < repeat && pos > 0; i++ {
			pos = prevWordStart(text, pos, true)
		}
		return pos

	case vim.MotionWORDEnd:
		for i := 0; i < repeat && pos < len(text); i++ {
			pos = wordEnd(text, pos, true)
		}
		return pos

	case vim.MotionLineStart:
		return LineStart(text, pos)

	case vim.MotionLineEnd:
		return LineEnd(text, pos)

	case vim.MotionFirstNonBlank:
		return firstNonBlank(text, pos)

	case vim.MotionDocumentStart:
		if count > 0 {
			return lineStartByNumber(text, count)
		}
		return 0

	case vim.MotionDocumentEnd:
		if count > 0 {
			return lineStartByNumber(text, count)
		}
		return LineStart(text, len(text))

	default:
		return pos
	}
}

// Find resolves a character-search motion. Scanning strictly excludes the
// starting position, and the till variants land one cell short of the match
// in the scan direction. When the character is not found the original
// position comes back unchanged, a well-defined no-op.
func Find(text string, pos int, fm vim.FindMotion, count int) int {
	pos = clampOffset(text, pos)
	if fm.Kind == vim.FindNone {
		return pos
	}
	repeat := count
	if repeat <= 0 {
		repeat = 1
	}

	cur := pos
	for i := 0; i < repeat; i++ {
		next, ok := findStep(text, cur, fm)
		if !ok {
			return pos
		}
		cur = next
	}
	return cur
}

// findStep performs one character search from pos.
func findStep(text string, pos int, fm vim.FindMotion) (int, bool) {
	if fm.Kind.Forward() {
		i := pos
		if i < len(text) {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
		}
		for i < len(text) {
			r, size := utf8.DecodeRuneInString(text[i:])
			if r == fm.Char {
				if fm.Kind.TillBefore() {
					return prevRuneStart(text, i), true
				}
				return i, true
			}
			i += size
		}
		return pos, false
	}

	i := pos
	for i > 0 {
		i = prevRuneStart(text, i)
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == fm.Char {
			if fm.Kind.TillBefore() {
				return i + size, true
			}
			return i, true
		}
	}
	return pos, false
}

// LineStart returns the offset of the first byte of pos's line.
func LineStart(text string, pos int) int {
	pos = clampOffset(text, pos)
	for pos > 0 && text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// LineEnd returns the offset of pos's line terminator, or len(text) for the
// final line.
func LineEnd(text string, pos int) int {
	pos = clampOffset(text, pos)
	for pos < len(text) && text[pos] != '\n' {
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return pos
}

// firstNonBlank returns the offset of the first non-space character on
// pos's line, or the line end for a blank line.
func firstNonBlank(text string, pos int) int {
	start := LineStart(text, pos)
	end := LineEnd(text, pos)
	for start < end {
		r, size := utf8.DecodeRuneInString(text[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	return start
}

// lineStartByNumber returns the start offset of a 1-based line number,
// clamped to the last line.
func lineStartByNumber(text string, lineNum int) int {
	if lineNum < 1 {
		lineNum = 1
	}
	offset := 0
	for line := 1; line < lineNum; line++ {
		next := LineEnd(text, offset)
		if next >= len(text) {
			break
		}
		offset = next + 1
	}
	return offset
}

// lineUp moves to the previous line preserving the rune column. On the
// first line the cursor stays put.
func lineUp(text string, pos int) int {
	start := LineStart(text, pos)
	if start == 0 {
		return pos
	}
	col := runeColumn(text, start, pos)
	prevStart := LineStart(text, start-1)
	return offsetAtColumn(text, prevStart, col)
}

// lineDown moves to the next line preserving the rune column. On the last
// line the cursor stays put.
func lineDown(text string, pos int) int {
	end := LineEnd(text, pos)
	if end >= len(text) {
		return pos
	}
	col := runeColumn(text, LineStart(text, pos), pos)
	return offsetAtColumn(text, end+1, col)
}

// runeColumn counts runes between a line start and an offset on that line.
func runeColumn(text string, lineStart, pos int) int {
	col := 0
	for i := lineStart; i < pos; {
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
		col++
	}
	return col
}

// offsetAtColumn returns the offset of the given rune column on the line
// starting at lineStart, clamped to the line end.
func offsetAtColumn(text string, lineStart, col int) int {
	pos := lineStart
	for i := 0; i < col && pos < len(text) && text[pos] != '\n'; i++ {
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return pos
}

// nextWordStart finds the start of the next word. A word is a run of
// word-class characters or a run of punctuation; for bigWord any run of
// non-whitespace is one word.
func nextWordStart(text string, offset int, bigWord bool) int {
	if offset >= len(text) {
		return len(text)
	}

	r, size := utf8.DecodeRuneInString(text[offset:])
	if !unicode.IsSpace(r) {
		class := charClass(r, bigWord)
		offset += size
		for offset < len(text) {
			r, size := utf8.DecodeRuneInString(text[offset:])
			if unicode.IsSpace(r) || charClass(r, bigWord) != class {
				break
			}
			offset += size
		}
	}

	for offset < len(text) {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if !unicode.IsSpace(r) {
			break
		}
		offset += size
	}
	return offset
}

// prevWordStart finds the start of the previous word.
func prevWordStart(text string, offset int, bigWord bool) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	offset = prevRuneStart(text, offset)

	for offset > 0 {
		r, _ := utf8.DecodeRuneInString(text[offset:])
		if !unicode.IsSpace(r) {
			break
		}
		offset = prevRuneStart(text, offset)
	}

	r, _ := utf8.DecodeRuneInString(text[offset:])
	if unicode.IsSpace(r) {
		return offset
	}
	class := charClass(r, bigWord)

	for offset > 0 {
		prev := prevRuneStart(text, offset)
		pr, _ := utf8.DecodeRuneInString(text[prev:])
		if unicode.IsSpace(pr) || charClass(pr, bigWord) != class {
			break
		}
		offset = prev
	}
	return offset
}

// wordEnd finds the end of the current or next word.
func wordEnd(text string, offset int, bigWord bool) int {
	if offset >= len(text) {
		return len(text)
	}

	_, size := utf8.DecodeRuneInString(text[offset:])
	offset += size

	for offset < len(text) {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if !unicode.IsSpace(r) {
			break
		}
		offset += size
	}
	if offset >= len(text) {
		return prevRuneStart(text, len(text))
	}

	r, _ := utf8.DecodeRuneInString(text[offset:])
	class := charClass(r, bigWord)
	for {
		_, size := utf8.DecodeRuneInString(text[offset:])
		next := offset + size
		if next >= len(text) {
			return offset
		}
		nextR, _ := utf8.DecodeRuneInString(text[next:])
		if unicode.IsSpace(nextR) || charClass(nextR, bigWord) != class {
			return offset
		}
		offset = next
	}
}

// isWordCharacter reports whether r belongs to a word. For bigWord only
// whitespace breaks a word.
func isWordCharacter(r rune, bigWord bool) bool {
	if bigWord {
		return !unicode.IsSpace(r)
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// charClass distinguishes word-class runs from punctuation runs. Callers
// must not pass whitespace.
func charClass(r rune, bigWord bool) int {
	if bigWord || isWordCharacter(r, false) {
		return 0
	}
	return 1
}

// prevRuneStart returns the offset of the rune preceding pos.
func prevRuneStart(text string, pos int) int {
	if pos <= 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:pos])
	return pos - size
}

// clampOffset bounds pos to [0, len(text)].
func clampOffset(text string, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(text) {
		return len(text)
	}
	return pos
}
