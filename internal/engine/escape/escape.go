// Package escape recognizes a configurable multi-key sequence typed in
// insert mode, such as "jk", within a timeout window.
package escape

import "time"

// Recognizer matches a rolling window of typed characters against a
// configured exit sequence. Callers feed each insert-mode character with
// its arrival time; a gap longer than the timeout clears the window.
// Sequences shorter than two characters never match, so a host can disable
// the recognizer by configuring an empty sequence.
type Recognizer struct {
	sequence []rune
	timeout  time.Duration
	buf      []rune
	last     time.Time
}

// NewRecognizer creates a recognizer for the given sequence and inter-key
// timeout.
func NewRecognizer(sequence string, timeout time.Duration) *Recognizer {
	r := &Recognizer{}
	r.Configure(sequence, timeout)
	return r
}

// Configure hot-applies a new sequence and timeout, clearing any partial
// match.
func (r *Recognizer) Configure(sequence string, timeout time.Duration) {
	r.sequence = []rune(sequence)
	r.timeout = timeout
	r.Reset()
}

// SequenceLen returns the configured sequence length in characters.
func (r *Recognizer) SequenceLen() int {
	return len(r.sequence)
}

// Feed records one typed character and reports whether it completes the
// sequence. On a match the window is cleared.
func (r *Recognizer) Feed(ch rune, at time.Time) bool {
	if len(r.sequence) < 2 {
		return false
	}

	if len(r.buf) > 0 && at.Sub(r.last) > r.timeout {
		r.buf = r.buf[:0]
	}
	r.last = at

	r.buf = append(r.buf, ch)
	if len(r.buf) > len(r.sequence) {
		copy(r.buf, r.buf[len(r.buf)-len(r.sequence):])
		r.buf = r.buf[:len(r.sequence)]
	}

	if len(r.buf) < len(r.sequence) {
		return false
	}
	for i, want := range r.sequence {
		if r.buf[i] != want {
			return false
		}
	}
	r.buf = r.buf[:0]
	return true
}

// Reset clears any partial match.
func (r *Recognizer) Reset() {
	r.buf = r.buf[:0]
	r.last = time.Time{}
}
