package vim

import "math"

// CountState accumulates a numeric prefix digit by digit.
//
// A leading zero is never part of a count: '0' with no accumulated digits is
// the line-start motion, so callers must check IsCountStart before feeding it
// here.
type CountState struct {
	// Value is the accumulated count.
	Value int

	// Active reports whether at least one digit has been accumulated.
	Active bool
}

// AccumulateDigit folds one digit key into the count. It returns false if the
// rune is not a digit or if accumulating it would overflow.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	d := int(r - '0')
	if c.Value > (math.MaxInt-d)/10 {
		return false
	}
	c.Value = c.Value*10 + d
	c.Active = true
	return true
}

// Get returns the accumulated count, defaulting to 1 when no digits have
// been entered.
func (c *CountState) Get() int {
	if !c.Active {
		return 1
	}
	return c.Value
}

// Explicit returns the accumulated count, or 0 when no digits have been
// entered. Motions that treat an absent count differently from 1, such as G,
// distinguish the two through this accessor.
func (c *CountState) Explicit() int {
	if !c.Active {
		return 0
	}
	return c.Value
}

// Reset clears the accumulated count.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// IsCountStart reports whether a rune can begin a count. Zero cannot: a bare
// '0' is the line-start motion.
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}

// IsCountDigit reports whether a rune can extend an active count.
func IsCountDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// CombineCounts multiplies an operator count with a motion count, where zero
// means the count was omitted. 2d3w resolves to six words; d3w and 3dw both
// resolve to three.
func CombineCounts(operator, motion int) int {
	if operator == 0 {
		operator = 1
	}
	if motion == 0 {
		motion = 1
	}
	return operator * motion
}
