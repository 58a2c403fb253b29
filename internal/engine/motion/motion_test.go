package motion

import (
	"testing"

	"github.com/modalkit/modalkit/internal/input/vim"
)

func TestApplyCharMotions(t *testing.T) {
	text := "hello"

	tests := []struct {
		name   string
		motion vim.Motion
		pos    int
		count  int
		want   int
	}{
		{"left", vim.MotionLeft, 3, 0, 2},
		{"left with count", vim.MotionLeft, 3, 2, 1},
		{"left clamps at start", vim.MotionLeft, 1, 5, 0},
		{"right", vim.MotionRight, 0, 0, 1},
		{"right with count", vim.MotionRight, 0, 3, 3},
		{"right clamps at end", vim.MotionRight, 4, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.motion, text, tt.pos, tt.count); got != tt.want {
				t.Errorf("Apply(%v, %d, %d) = %d, want %d", tt.motion, tt.pos, tt.count, got, tt.want)
			}
		})
	}
}

func TestApplyCharMotionsMultibyte(t *testing.T) {
	text := "héllo" // é is two bytes

	if got := Apply(vim.MotionRight, text, 1, 0); got != 3 {
		t.Errorf("right over é = %d, want 3", got)
	}
	if got := Apply(vim.MotionLeft, text, 3, 0); got != 1 {
		t.Errorf("left over é = %d, want 1", got)
	}
}

func TestApplyWordForward(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		pos   int
		count int
		want  int
	}{
		{"hello world", "hello world", 0, 0, 6},
		{"two words", "one two three", 0, 2, 8},
		{"punctuation is a word", "foo.bar", 0, 0, 3},
		{"from punctuation", "foo.bar", 3, 0, 4},
		{"from whitespace", "  foo", 0, 0, 2},
		{"clamps at end", "foo", 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(vim.MotionWordForward, tt.text, tt.pos, tt.count); got != tt.want {
				t.Errorf("w from %d in %q = %d, want %d", tt.pos, tt.text, got, tt.want)
			}
		})
	}
}

func TestApplyWordBackward(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want int
	}{
		{"from second word", "hello world", 6, 0},
		{"mid word", "hello world", 8, 6},
		{"over punctuation", "foo.bar", 4, 3},
		{"punct to word", "foo.bar", 3, 0},
		{"at start", "hello", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(vim.MotionWordBackward, tt.text, tt.pos, 0); got != tt.want {
				t.Errorf("b from %d in %q = %d, want %d", tt.pos, tt.text, got, tt.want)
			}
		})
	}
}

func TestApplyWordEnd(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want int
	}{
		{"start of word", "hello world", 0, 4},
		{"at word end hops", "hello world", 4, 10},
		{"punctuation run", "foo..bar", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(vim.MotionWordEnd, tt.text, tt.pos, 0); got != tt.want {
				t.Errorf("e from %d in %q = %d, want %d", tt.pos, tt.text, got, tt.want)
			}
		})
	}
}

func TestApplyWORDMotions(t *testing.T) {
	text := "foo.bar baz"

	// W treats foo.bar as one chunk.
	if got := Apply(vim.MotionWORDForward, text, 0, 0); got != 8 {
		t.Errorf("W = %d, want 8", got)
	}
	if got := Apply(vim.MotionWORDBackward, text, 8, 0); got != 0 {
		t.Errorf("B = %d, want 0", got)
	}
	if got := Apply(vim.MotionWORDEnd, text, 0, 0); got != 6 {
		t.Errorf("E = %d, want 6", got)
	}
}

func TestApplyLineMotions(t *testing.T) {
	text := "first line\n  second\nthird"

	tests := []struct {
		name   string
		motion vim.Motion
		pos    int
		want   int
	}{
		{"line start", vim.MotionLineStart, 16, 11},
		{"line start on first line", vim.MotionLineStart, 5, 0},
		{"line end", vim.MotionLineEnd, 11, 19},
		{"line end last line", vim.MotionLineEnd, 21, 25},
		{"first non blank", vim.MotionFirstNonBlank, 16, 13},
		{"first non blank no indent", vim.MotionFirstNonBlank, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.motion, text, tt.pos, 0); got != tt.want {
				t.Errorf("Apply(%v, %d) = %d, want %d", tt.motion, tt.pos, got, tt.want)
			}
		})
	}
}

func TestApplyUpDown(t *testing.T) {
	text := "short\nlonger line\nmid"

	tests := []struct {
		name   string
		motion vim.Motion
		pos    int
		count  int
		want   int
	}{
		{"down preserves column", vim.MotionDown, 2, 0, 8},
		{"down clamps to short line", vim.MotionDown, 16, 0, 18 + 3}, // column 10 clamps to end of "mid"
		{"up preserves column", vim.MotionUp, 8, 0, 2},
		{"up on first line stays", vim.MotionUp, 3, 0, 3},
		{"down on last line stays", vim.MotionDown, 19, 0, 19},
		{"down twice", vim.MotionDown, 0, 2, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.motion, text, tt.pos, tt.count); got != tt.want {
				t.Errorf("Apply(%v, %d, %d) = %d, want %d", tt.motion, tt.pos, tt.count, got, tt.want)
			}
		})
	}
}

func TestApplyDocumentMotions(t *testing.T) {
	text := "one\ntwo\nthree\nfour"

	tests := []struct {
		name   string
		motion vim.Motion
		count  int
		want   int
	}{
		{"gg without count", vim.MotionDocumentStart, 0, 0},
		{"gg with count goes to line", vim.MotionDocumentStart, 3, 8},
		{"G without count goes to last line", vim.MotionDocumentEnd, 0, 14},
		{"G with count goes to line", vim.MotionDocumentEnd, 2, 4},
		{"count past end clamps", vim.MotionDocumentEnd, 99, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.motion, text, 5, tt.count); got != tt.want {
				t.Errorf("Apply(%v, count=%d) = %d, want %d", tt.motion, tt.count, got, tt.want)
			}
		})
	}
}

func TestFindForward(t *testing.T) {
	text := "foo.bar.baz"

	tests := []struct {
		name  string
		pos   int
		fm    vim.FindMotion
		count int
		want  int
	}{
		{"f finds next", 0, vim.FindMotion{Char: '.', Kind: vim.FindForward}, 0, 3},
		{"f excludes start", 3, vim.FindMotion{Char: '.', Kind: vim.FindForward}, 0, 7},
		{"f with count", 0, vim.FindMotion{Char: '.', Kind: vim.FindForward}, 2, 7},
		{"t lands short", 0, vim.FindMotion{Char: '.', Kind: vim.TillForward}, 0, 2},
		{"not found is no-op", 0, vim.FindMotion{Char: 'z', Kind: vim.FindForward}, 0, 0},
		{"count past last occurrence is no-op", 0, vim.FindMotion{Char: '.', Kind: vim.FindForward}, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Find(text, tt.pos, tt.fm, tt.count); got != tt.want {
				t.Errorf("Find(%d, %+v, %d) = %d, want %d", tt.pos, tt.fm, tt.count, got, tt.want)
			}
		})
	}
}

func TestFindBackward(t *testing.T) {
	text := "foo.bar.baz"

	tests := []struct {
		name string
		pos  int
		fm   vim.FindMotion
		want int
	}{
		{"F finds previous", 10, vim.FindMotion{Char: '.', Kind: vim.FindBackward}, 7},
		{"F excludes start", 7, vim.FindMotion{Char: '.', Kind: vim.FindBackward}, 3},
		{"T lands after", 10, vim.FindMotion{Char: '.', Kind: vim.TillBackward}, 8},
		{"not found is no-op", 10, vim.FindMotion{Char: 'z', Kind: vim.FindBackward}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Find(text, tt.pos, tt.fm, 0); got != tt.want {
				t.Errorf("Find(%d, %+v) = %d, want %d", tt.pos, tt.fm, got, tt.want)
			}
		})
	}
}

func TestFindRepeatSkipsPassedMatches(t *testing.T) {
	// After f. lands at 3, a repeat must find position 7, not stay at 3.
	text := "foo.bar.baz"
	fm := vim.FindMotion{Char: '.', Kind: vim.FindForward}

	first := Find(text, 0, fm, 0)
	if first != 3 {
		t.Fatalf("first find = %d, want 3", first)
	}
	second := Find(text, first, fm, 0)
	if second != 7 {
		t.Errorf("repeat find = %d, want 7", second)
	}
}

func TestCountedMotionEqualsRepeatedSteps(t *testing.T) {
	text := "alpha beta gamma delta epsilon"

	for n := 1; n <= 4; n++ {
		counted := Apply(vim.MotionWordForward, text, 0, n)
		stepped := 0
		for i := 0; i < n; i++ {
			stepped = Apply(vim.MotionWordForward, text, stepped, 0)
		}
		if counted != stepped {
			t.Errorf("count %d: counted = %d, stepped = %d", n, counted, stepped)
		}
	}
}
