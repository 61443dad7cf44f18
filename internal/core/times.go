package core

import (
	"fmt"
	"math"
)

// Times is a call-count constraint: an expectation must be called at least
// min and at most max times. The zero value is not ready for use; call
// NewTimes.
type Times struct {
	min   int
	max   int
	count int
}

// NewTimes returns an unbounded constraint, [0, ∞).
func NewTimes() Times {
	return Times{min: 0, max: unbounded}
}

// Any allows any number of calls.
func (t *Times) Any() {
	t.min, t.max = 0, unbounded
}

// Count returns the number of calls recorded so far.
func (t *Times) Count() int {
	return t.count
}

// IsDone reports whether another call would exceed the upper bound.
func (t *Times) IsDone() bool {
	return t.count >= t.max
}

// IsExact reports whether the constraint names exactly one call count.
func (t *Times) IsExact() bool {
	return t.min == t.max
}

// IsSatisfied reports whether the lower bound has been reached.
func (t *Times) IsSatisfied() bool {
	return t.count >= t.min
}

// N requires exactly n calls. A negative n is rejected.
func (t *Times) N(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: exactly %d", ErrInvalidRange, n)
	}

	t.min, t.max = n, n

	return nil
}

// Never forbids any call.
func (t *Times) Never() {
	t.min, t.max = 0, 0
}

// Range allows between lo (inclusive) and hi (exclusive) calls.
func (t *Times) Range(lo, hi int) error {
	if lo < 0 || hi <= lo {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, lo, hi)
	}

	t.min, t.max = lo, hi-1

	return nil
}

// String renders the constraint for diagnostics.
func (t *Times) String() string {
	switch {
	case t.max == unbounded:
		return fmt.Sprintf("at least %d times", t.min)
	case t.IsExact():
		return fmt.Sprintf("exactly %d times", t.min)
	default:
		return fmt.Sprintf("between %d and %d times", t.min, t.max)
	}
}

// call records one call, failing if that would exceed the upper bound.
func (t *Times) call() error {
	if t.count >= t.max {
		return fmt.Errorf("%w: expectation called more than %d times", ErrCalledTooMany, t.max)
	}

	t.count++

	return nil
}

// verifySatisfied fails if the lower bound was never reached.
func (t *Times) verifySatisfied() error {
	if t.IsSatisfied() {
		return nil
	}

	return fmt.Errorf("%w: expectation called %d times, expected %s", ErrCalledTooFew, t.count, t)
}

// unexported constants.
const (
	unbounded = math.MaxInt
)
