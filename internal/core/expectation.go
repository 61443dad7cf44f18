package core

import (
	"sync"
)

// Expectation is one configured rule for a method that returns R by value:
// which arguments it accepts, how many times, in what order, and what it
// returns. A is the method's argument tuple.
type Expectation[A, R any] struct {
	common[A]

	rmu   sync.Mutex
	rfunc returner[A, R]
}

// NewExpectation creates a standalone expectation reporting to t. Most
// expectations are created through Expectations.Expect instead.
func NewExpectation[A, R any](t TestReporter) *Expectation[A, R] {
	return newExpectation[A, R](t, "")
}

// Call simulates calling the mocked method for this expectation alone.
func (e *Expectation[A, R]) Call(args A) R {
	helper(e.t)

	if err := e.admit(args); err != nil {
		fail(e.t, err)

		var zero R

		return zero
	}

	out, err := e.produce(args)
	if err != nil {
		fail(e.t, err)
	}

	return out
}

// InSequence adds this expectation to seq. The expectation must have an
// exact call count.
func (e *Expectation[A, R]) InSequence(seq *Sequence) *Expectation[A, R] {
	e.inSequence(seq)

	return e
}

// Never forbids this expectation from ever being called.
func (e *Expectation[A, R]) Never() *Expectation[A, R] {
	return e.Times(0)
}

// Once expects exactly one call. Shortcut for Times(1).
func (e *Expectation[A, R]) Once() *Expectation[A, R] {
	return e.Times(1)
}

// ReturnConst returns value from every call.
func (e *Expectation[A, R]) ReturnConst(value R) *Expectation[A, R] {
	return e.Returning(func(A) R { return value })
}

// ReturnOnce supplies a function that provides the return value for exactly
// one call. Calling this expectation again is an error.
func (e *Expectation[A, R]) ReturnOnce(fn func(A) R) *Expectation[A, R] {
	e.setReturner(once(fn))

	return e
}

// ReturnOnceST is ReturnOnce for functions that must run on the goroutine
// that registered them.
func (e *Expectation[A, R]) ReturnOnceST(fn func(A) R) *Expectation[A, R] {
	e.setReturner(once(fn).confined())

	return e
}

// Returning supplies a function that computes the return value of every
// call. Calls are serialized, so fn may mutate captured state.
func (e *Expectation[A, R]) Returning(fn func(A) R) *Expectation[A, R] {
	e.setReturner(repeat(fn))

	return e
}

// ReturningST is Returning for functions that must run on the goroutine that
// registered them.
func (e *Expectation[A, R]) ReturningST(fn func(A) R) *Expectation[A, R] {
	e.setReturner(repeat(fn).confined())

	return e
}

// Times requires exactly n calls.
func (e *Expectation[A, R]) Times(n int) *Expectation[A, R] {
	e.setTimes(exactly(n))

	return e
}

// TimesAny allows any number of calls. This is the default.
func (e *Expectation[A, R]) TimesAny() *Expectation[A, R] {
	e.setTimes(anyTimes)

	return e
}

// TimesRange allows between lo (inclusive) and hi (exclusive) calls.
func (e *Expectation[A, R]) TimesRange(lo, hi int) *Expectation[A, R] {
	e.setTimes(between(lo, hi))

	return e
}

// With matches each argument against the corresponding entry of expected.
// Entries implementing Matcher (including gomega matchers) are used as
// predicates; anything else is compared with reflect.DeepEqual.
func (e *Expectation[A, R]) With(expected ...any) *Expectation[A, R] {
	e.with(expected)

	return e
}

// Withf matches the whole argument tuple with a single predicate.
func (e *Expectation[A, R]) Withf(predicate func(A) bool) *Expectation[A, R] {
	e.withf(predicate)

	return e
}

func newExpectation[A, R any](t TestReporter, label string) *Expectation[A, R] {
	e := &Expectation[A, R]{}
	e.init(t, label)

	return e
}

func (e *Expectation[A, R]) produce(args A) (R, error) {
	e.rmu.Lock()
	defer e.rmu.Unlock()

	out, err := e.rfunc.call(args)
	if err != nil {
		return out, e.describe(err)
	}

	return out, nil
}

func (e *Expectation[A, R]) setReturner(r returner[A, R]) {
	e.rmu.Lock()
	defer e.rmu.Unlock()

	e.rfunc = r
}
