package vim

import (
	"errors"
	"math"
	"testing"
)

func TestMotionForKey(t *testing.T) {
	tests := []struct {
		key  rune
		want Motion
	}{
		{'h', MotionLeft},
		{'l', MotionRight},
		{'k', MotionUp},
		{'j', MotionDown},
		{'w', MotionWordForward},
		{'b', MotionWordBackward},
		{'e', MotionWordEnd},
		{'W', MotionWORDForward},
		{'B', MotionWORDBackward},
		{'E', MotionWORDEnd},
		{'0', MotionLineStart},
		{'$', MotionLineEnd},
		{'^', MotionFirstNonBlank},
		{'G', MotionDocumentEnd},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, ok := MotionForKey(tt.key)
			if !ok {
				t.Fatalf("MotionForKey(%q) not found", tt.key)
			}
			if got != tt.want {
				t.Errorf("MotionForKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}

	if _, ok := MotionForKey('z'); ok {
		t.Error("MotionForKey('z') should not be found")
	}
}

func TestMotionIsLinewise(t *testing.T) {
	tests := []struct {
		motion Motion
		want   bool
	}{
		{MotionUp, true},
		{MotionDown, true},
		{MotionDocumentStart, true},
		{MotionDocumentEnd, true},
		{MotionLeft, false},
		{MotionWordForward, false},
		{MotionLineEnd, false},
		{MotionFindChar, false},
	}

	for _, tt := range tests {
		t.Run(tt.motion.String(), func(t *testing.T) {
			if got := tt.motion.IsLinewise(); got != tt.want {
				t.Errorf("IsLinewise() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMotionIsInclusive(t *testing.T) {
	tests := []struct {
		motion Motion
		want   bool
	}{
		{MotionWordEnd, true},
		{MotionWORDEnd, true},
		{MotionFindChar, true},
		{MotionWordForward, false},
		{MotionLineEnd, false},
		{MotionLeft, false},
	}

	for _, tt := range tests {
		t.Run(tt.motion.String(), func(t *testing.T) {
			if got := tt.motion.IsInclusive(); got != tt.want {
				t.Errorf("IsInclusive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindKindForKey(t *testing.T) {
	tests := []struct {
		key     rune
		want    FindKind
		forward bool
		till    bool
	}{
		{'f', FindForward, true, false},
		{'F', FindBackward, false, false},
		{'t', TillForward, true, true},
		{'T', TillBackward, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, ok := FindKindForKey(tt.key)
			if !ok {
				t.Fatalf("FindKindForKey(%q) not found", tt.key)
			}
			if got != tt.want {
				t.Errorf("FindKindForKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
			if got.Forward() != tt.forward {
				t.Errorf("Forward() = %v, want %v", got.Forward(), tt.forward)
			}
			if got.TillBefore() != tt.till {
				t.Errorf("TillBefore() = %v, want %v", got.TillBefore(), tt.till)
			}
		})
	}

	if _, ok := FindKindForKey('g'); ok {
		t.Error("FindKindForKey('g') should not be found")
	}
}

func TestFindKindInverse(t *testing.T) {
	tests := []struct {
		kind FindKind
		want FindKind
	}{
		{FindForward, FindBackward},
		{FindBackward, FindForward},
		{TillForward, TillBackward},
		{TillBackward, TillForward},
		{FindNone, FindNone},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Inverse(); got != tt.want {
				t.Errorf("Inverse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOperatorForKey(t *testing.T) {
	tests := []struct {
		key          rune
		want         Operator
		deletes      bool
		entersInsert bool
	}{
		{'d', OpDelete, true, false},
		{'c', OpChange, true, true},
		{'y', OpYank, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, ok := OperatorForKey(tt.key)
			if !ok {
				t.Fatalf("OperatorForKey(%q) not found", tt.key)
			}
			if got != tt.want {
				t.Errorf("OperatorForKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
			if got.DeletesText() != tt.deletes {
				t.Errorf("DeletesText() = %v, want %v", got.DeletesText(), tt.deletes)
			}
			if got.EntersInsert() != tt.entersInsert {
				t.Errorf("EntersInsert() = %v, want %v", got.EntersInsert(), tt.entersInsert)
			}
			if got.Key() != tt.key {
				t.Errorf("Key() = %q, want %q", got.Key(), tt.key)
			}
		})
	}

	if _, ok := OperatorForKey('x'); ok {
		t.Error("OperatorForKey('x') should not be found")
	}
}

func TestTextObjectForKey(t *testing.T) {
	tests := []struct {
		key  rune
		want TextObject
	}{
		{'w', TextObject{Kind: ObjectWord}},
		{'W', TextObject{Kind: ObjectWORD}},
		{'s', TextObject{Kind: ObjectSentence}},
		{'p', TextObject{Kind: ObjectParagraph}},
		{'"', TextObject{Kind: ObjectQuoted, Delim: '"'}},
		{'\'', TextObject{Kind: ObjectQuoted, Delim: '\''}},
		{'`', TextObject{Kind: ObjectQuoted, Delim: '`'}},
		{'(', TextObject{Kind: ObjectBracket, Open: '(', Close: ')'}},
		{')', TextObject{Kind: ObjectBracket, Open: '(', Close: ')'}},
		{'b', TextObject{Kind: ObjectBracket, Open: '(', Close: ')'}},
		{'{', TextObject{Kind: ObjectBracket, Open: '{', Close: '}'}},
		{'B', TextObject{Kind: ObjectBracket, Open: '{', Close: '}'}},
		{'[', TextObject{Kind: ObjectBracket, Open: '[', Close: ']'}},
		{'<', TextObject{Kind: ObjectBracket, Open: '<', Close: '>'}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, ok := TextObjectForKey(tt.key)
			if !ok {
				t.Fatalf("TextObjectForKey(%q) not found", tt.key)
			}
			if got != tt.want {
				t.Errorf("TextObjectForKey(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}

	if _, ok := TextObjectForKey('q'); ok {
		t.Error("TextObjectForKey('q') should not be found")
	}
}

func TestCountStateAccumulate(t *testing.T) {
	var c CountState

	if c.Get() != 1 {
		t.Errorf("empty count Get() = %d, want 1", c.Get())
	}
	if c.Explicit() != 0 {
		t.Errorf("empty count Explicit() = %d, want 0", c.Explicit())
	}

	for _, r := range "25" {
		if !c.AccumulateDigit(r) {
			t.Fatalf("AccumulateDigit(%q) failed", r)
		}
	}
	if c.Get() != 25 {
		t.Errorf("Get() = %d, want 25", c.Get())
	}
	if c.Explicit() != 25 {
		t.Errorf("Explicit() = %d, want 25", c.Explicit())
	}

	c.Reset()
	if c.Active || c.Value != 0 {
		t.Errorf("after Reset: Active=%v Value=%d", c.Active, c.Value)
	}
}

func TestCountStateRejectsNonDigit(t *testing.T) {
	var c CountState
	if c.AccumulateDigit('w') {
		t.Error("AccumulateDigit('w') should fail")
	}
	if c.Active {
		t.Error("non-digit should not activate the count")
	}
}

func TestCountStateOverflow(t *testing.T) {
	c := CountState{Value: math.MaxInt/10 + 1, Active: true}
	if c.AccumulateDigit('9') {
		t.Error("AccumulateDigit should refuse an overflowing digit")
	}
	if c.Value != math.MaxInt/10+1 {
		t.Errorf("overflowing digit mutated value: %d", c.Value)
	}
}

func TestIsCountStart(t *testing.T) {
	if IsCountStart('0') {
		t.Error("'0' must not start a count")
	}
	if !IsCountStart('1') || !IsCountStart('9') {
		t.Error("'1'..'9' must start a count")
	}
	if !IsCountDigit('0') {
		t.Error("'0' must extend an active count")
	}
}

func TestCombineCounts(t *testing.T) {
	tests := []struct {
		operator, motion, want int
	}{
		{0, 0, 1},
		{2, 0, 2},
		{0, 3, 3},
		{2, 3, 6},
	}

	for _, tt := range tests {
		if got := CombineCounts(tt.operator, tt.motion); got != tt.want {
			t.Errorf("CombineCounts(%d, %d) = %d, want %d", tt.operator, tt.motion, got, tt.want)
		}
	}
}

func TestRegisterStoreSetGet(t *testing.T) {
	rs := NewRegisterStore()

	if content, _ := rs.Get('a'); content != "" {
		t.Errorf("unset register reads %q, want empty", content)
	}

	rs.Set('a', "hello", false)
	content, linewise := rs.Get('a')
	if content != "hello" || linewise {
		t.Errorf("Get('a') = %q, %v; want %q, false", content, linewise, "hello")
	}

	rs.Set(Unnamed, "line\n", true)
	content, linewise = rs.Get(Unnamed)
	if content != "line\n" || !linewise {
		t.Errorf("Get('\"') = %q, %v; want %q, true", content, linewise, "line\n")
	}
}

func TestRegisterStoreUppercaseAppend(t *testing.T) {
	rs := NewRegisterStore()

	rs.Set('a', "one", false)
	rs.Set('A', " two", false)
	if content, _ := rs.Get('a'); content != "one two" {
		t.Errorf("append: got %q, want %q", content, "one two")
	}

	rs.Set('b', "first", true)
	rs.Set('B', "second", true)
	if content, _ := rs.Get('b'); content != "first\nsecond" {
		t.Errorf("linewise append: got %q, want %q", content, "first\nsecond")
	}

	// Uppercase reads alias the lowercase register.
	if content, _ := rs.Get('A'); content != "one two" {
		t.Errorf("Get('A') = %q, want %q", content, "one two")
	}
}

func TestRegisterStoreBlackHole(t *testing.T) {
	rs := NewRegisterStore()
	rs.Set('_', "discarded", false)
	if content, _ := rs.Get('_'); content != "" {
		t.Errorf("black hole retained %q", content)
	}
}

type fakeClipboard struct {
	content string
	err     error
}

func (c *fakeClipboard) Get() (string, error) { return c.content, c.err }

func (c *fakeClipboard) Set(content string) error {
	c.content = content
	return c.err
}

func TestRegisterStoreClipboard(t *testing.T) {
	rs := NewRegisterStore()
	clip := &fakeClipboard{}
	rs.SetClipboard(clip)

	rs.Set('+', "copied", false)
	if clip.content != "copied" {
		t.Errorf("clipboard content = %q, want %q", clip.content, "copied")
	}

	clip.content = "external"
	if content, _ := rs.Get('*'); content != "external" {
		t.Errorf("Get('*') = %q, want %q", content, "external")
	}

	clip.err = errors.New("unavailable")
	if content, _ := rs.Get('+'); content != "" {
		t.Errorf("failed clipboard read returned %q, want empty", content)
	}
}

func TestIsValidName(t *testing.T) {
	valid := []rune{'"', 'a', 'z', 'A', 'Z', '0', '9', '_', '+', '*'}
	for _, r := range valid {
		if !IsValidName(r) {
			t.Errorf("IsValidName(%q) = false, want true", r)
		}
	}

	invalid := []rune{'$', '!', ' ', '\n', '['}
	for _, r := range invalid {
		if IsValidName(r) {
			t.Errorf("IsValidName(%q) = true, want false", r)
		}
	}
}
