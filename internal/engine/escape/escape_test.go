package escape

import (
	"testing"
	"time"
)

func feedAll(r *Recognizer, chars string, base time.Time, gap time.Duration) bool {
	matched := false
	for i, ch := range []rune(chars) {
		matched = r.Feed(ch, base.Add(time.Duration(i)*gap))
	}
	return matched
}

func TestRecognizerMatches(t *testing.T) {
	r := NewRecognizer("jk", 300*time.Millisecond)
	base := time.Now()

	if r.Feed('j', base) {
		t.Error("partial sequence should not match")
	}
	if !r.Feed('k', base.Add(100*time.Millisecond)) {
		t.Error("completed sequence should match")
	}
}

func TestRecognizerTimeoutClearsWindow(t *testing.T) {
	r := NewRecognizer("jk", 300*time.Millisecond)
	base := time.Now()

	r.Feed('j', base)
	if r.Feed('k', base.Add(time.Second)) {
		t.Error("gap past the timeout should not match")
	}

	// The late k starts a fresh window; a j then k within the timeout
	// still works.
	if r.Feed('j', base.Add(1100*time.Millisecond)) {
		t.Error("j alone should not match")
	}
	if !r.Feed('k', base.Add(1200*time.Millisecond)) {
		t.Error("fresh sequence within timeout should match")
	}
}

func TestRecognizerRollingWindow(t *testing.T) {
	r := NewRecognizer("jk", 300*time.Millisecond)
	base := time.Now()

	// jjk: the second j restarts the match.
	if feedAll(r, "jj", base, 50*time.Millisecond) {
		t.Error("jj should not match")
	}
	if !r.Feed('k', base.Add(150*time.Millisecond)) {
		t.Error("k after jj should match")
	}
}

func TestRecognizerLongerSequence(t *testing.T) {
	r := NewRecognizer("abc", 300*time.Millisecond)
	base := time.Now()

	if !feedAll(r, "xabc", base, 50*time.Millisecond) {
		t.Error("abc should match inside a longer stream")
	}
}

func TestRecognizerShortSequencesNeverMatch(t *testing.T) {
	base := time.Now()

	r := NewRecognizer("", 300*time.Millisecond)
	if feedAll(r, "anything", base, 10*time.Millisecond) {
		t.Error("empty sequence must never match")
	}

	r = NewRecognizer("j", 300*time.Millisecond)
	if r.Feed('j', base) {
		t.Error("single-character sequence must never match")
	}
}

func TestRecognizerConfigureClearsState(t *testing.T) {
	r := NewRecognizer("jk", 300*time.Millisecond)
	base := time.Now()

	r.Feed('j', base)
	r.Configure("fd", 300*time.Millisecond)

	if r.Feed('k', base.Add(50*time.Millisecond)) {
		t.Error("stale partial match survived reconfiguration")
	}
	if !feedAll(r, "fd", base.Add(100*time.Millisecond), 50*time.Millisecond) {
		t.Error("new sequence should match after reconfiguration")
	}
	if r.SequenceLen() != 2 {
		t.Errorf("SequenceLen() = %d, want 2", r.SequenceLen())
	}
}

func TestRecognizerResetClearsPartial(t *testing.T) {
	r := NewRecognizer("jk", 300*time.Millisecond)
	base := time.Now()

	r.Feed('j', base)
	r.Reset()
	if r.Feed('k', base.Add(50*time.Millisecond)) {
		t.Error("partial match survived Reset")
	}
}

func TestRecognizerMatchClearsWindow(t *testing.T) {
	r := NewRecognizer("jk", 300*time.Millisecond)
	base := time.Now()

	if !feedAll(r, "jk", base, 50*time.Millisecond) {
		t.Fatal("jk should match")
	}
	// Immediately after a match the window is empty.
	if r.Feed('k', base.Add(100*time.Millisecond)) {
		t.Error("window should be empty after a match")
	}
}
