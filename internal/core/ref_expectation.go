package core

import (
	"fmt"
	"sync"
)

// RefExpectation is an expectation for a method that returns a pointer into
// storage owned by the mock. The pointed-to value lives as long as the
// expectation, so it can only be a constant set with ReturnConst.
type RefExpectation[A, R any] struct {
	common[A]

	rmu    sync.Mutex
	result *R
}

// Call simulates calling the mocked method for this expectation alone.
func (e *RefExpectation[A, R]) Call(args A) *R {
	helper(e.t)

	if err := e.admit(args); err != nil {
		fail(e.t, err)

		return nil
	}

	out, err := e.produce(args)
	if err != nil {
		fail(e.t, err)
	}

	return out
}

// InSequence adds this expectation to seq. The expectation must have an
// exact call count.
func (e *RefExpectation[A, R]) InSequence(seq *Sequence) *RefExpectation[A, R] {
	e.inSequence(seq)

	return e
}

// Never forbids this expectation from ever being called.
func (e *RefExpectation[A, R]) Never() *RefExpectation[A, R] {
	return e.Times(0)
}

// Once expects exactly one call.
func (e *RefExpectation[A, R]) Once() *RefExpectation[A, R] {
	return e.Times(1)
}

// ReturnConst stores value; every call returns a pointer to it.
func (e *RefExpectation[A, R]) ReturnConst(value R) *RefExpectation[A, R] {
	e.rmu.Lock()
	defer e.rmu.Unlock()

	e.result = &value

	return e
}

// Times requires exactly n calls.
func (e *RefExpectation[A, R]) Times(n int) *RefExpectation[A, R] {
	e.setTimes(exactly(n))

	return e
}

// TimesAny allows any number of calls.
func (e *RefExpectation[A, R]) TimesAny() *RefExpectation[A, R] {
	e.setTimes(anyTimes)

	return e
}

// TimesRange allows between lo (inclusive) and hi (exclusive) calls.
func (e *RefExpectation[A, R]) TimesRange(lo, hi int) *RefExpectation[A, R] {
	e.setTimes(between(lo, hi))

	return e
}

// With matches each argument against the corresponding entry of expected.
func (e *RefExpectation[A, R]) With(expected ...any) *RefExpectation[A, R] {
	e.with(expected)

	return e
}

// Withf matches the whole argument tuple with a single predicate.
func (e *RefExpectation[A, R]) Withf(predicate func(A) bool) *RefExpectation[A, R] {
	e.withf(predicate)

	return e
}

func newRefExpectation[A, R any](t TestReporter, label string) *RefExpectation[A, R] {
	e := &RefExpectation[A, R]{}
	e.init(t, label)

	return e
}

func (e *RefExpectation[A, R]) produce(A) (*R, error) {
	e.rmu.Lock()
	defer e.rmu.Unlock()

	if e.result == nil {
		return nil, e.describe(fmt.Errorf("%w: must set return value with ReturnConst", ErrNoReturnValue))
	}

	return e.result, nil
}

// RefMutExpectation is an expectation for a method that returns a mutable
// pointer into storage owned by the mock. The stored value is either set
// directly with ReturnVar or recomputed on every call by a return function.
type RefMutExpectation[A, R any] struct {
	common[A]

	rmu    sync.Mutex
	result *R
	rfunc  returner[A, R]
}

// CallMut simulates calling the mocked method for this expectation alone.
func (e *RefMutExpectation[A, R]) CallMut(args A) *R {
	helper(e.t)

	if err := e.admit(args); err != nil {
		fail(e.t, err)

		return nil
	}

	out, err := e.produce(args)
	if err != nil {
		fail(e.t, err)
	}

	return out
}

// InSequence adds this expectation to seq. The expectation must have an
// exact call count.
func (e *RefMutExpectation[A, R]) InSequence(seq *Sequence) *RefMutExpectation[A, R] {
	e.inSequence(seq)

	return e
}

// Never forbids this expectation from ever being called.
func (e *RefMutExpectation[A, R]) Never() *RefMutExpectation[A, R] {
	return e.Times(0)
}

// Once expects exactly one call.
func (e *RefMutExpectation[A, R]) Once() *RefMutExpectation[A, R] {
	return e.Times(1)
}

// ReturnVar stores value; every call returns a mutable pointer to it.
// Changes made through the pointer are visible to later calls.
func (e *RefMutExpectation[A, R]) ReturnVar(value R) *RefMutExpectation[A, R] {
	e.rmu.Lock()
	defer e.rmu.Unlock()

	e.result = &value

	return e
}

// Returning recomputes the stored value with fn on every call.
func (e *RefMutExpectation[A, R]) Returning(fn func(A) R) *RefMutExpectation[A, R] {
	e.rmu.Lock()
	defer e.rmu.Unlock()

	e.rfunc = repeat(fn)

	return e
}

// ReturningST is Returning for functions that must run on the goroutine that
// registered them.
func (e *RefMutExpectation[A, R]) ReturningST(fn func(A) R) *RefMutExpectation[A, R] {
	e.rmu.Lock()
	defer e.rmu.Unlock()

	e.rfunc = repeat(fn).confined()

	return e
}

// Times requires exactly n calls.
func (e *RefMutExpectation[A, R]) Times(n int) *RefMutExpectation[A, R] {
	e.setTimes(exactly(n))

	return e
}

// TimesAny allows any number of calls.
func (e *RefMutExpectation[A, R]) TimesAny() *RefMutExpectation[A, R] {
	e.setTimes(anyTimes)

	return e
}

// TimesRange allows between lo (inclusive) and hi (exclusive) calls.
func (e *RefMutExpectation[A, R]) TimesRange(lo, hi int) *RefMutExpectation[A, R] {
	e.setTimes(between(lo, hi))

	return e
}

// With matches each argument against the corresponding entry of expected.
func (e *RefMutExpectation[A, R]) With(expected ...any) *RefMutExpectation[A, R] {
	e.with(expected)

	return e
}

// Withf matches the whole argument tuple with a single predicate.
func (e *RefMutExpectation[A, R]) Withf(predicate func(A) bool) *RefMutExpectation[A, R] {
	e.withf(predicate)

	return e
}

func newRefMutExpectation[A, R any](t TestReporter, label string) *RefMutExpectation[A, R] {
	e := &RefMutExpectation[A, R]{}
	e.init(t, label)

	return e
}

func (e *RefMutExpectation[A, R]) produce(args A) (*R, error) {
	e.rmu.Lock()
	defer e.rmu.Unlock()

	if e.rfunc.kind != returnDefault {
		value, err := e.rfunc.call(args)
		if err != nil {
			return nil, e.describe(err)
		}

		if e.result == nil {
			e.result = new(R)
		}

		*e.result = value
	}

	if e.result == nil {
		return nil, e.describe(fmt.Errorf("%w: must set return value with Returning or ReturnVar", ErrNoReturnValue))
	}

	return e.result, nil
}
