package core

// ExpectationGuard holds a StaticExpectations store locked while the
// expectation it created is configured. Every method configures that
// expectation and returns the guard; Release unlocks the store.
type ExpectationGuard[A, R any] struct {
	store    *StaticExpectations[A, R]
	index    int
	released bool
}

// InSequence is Expectation.InSequence.
func (g *ExpectationGuard[A, R]) InSequence(seq *Sequence) *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.InSequence(seq) })
}

// Never is Expectation.Never.
func (g *ExpectationGuard[A, R]) Never() *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.Never() })
}

// Once is Expectation.Once.
func (g *ExpectationGuard[A, R]) Once() *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.Once() })
}

// Release unlocks the store. Further configuration through g is invalid.
// Releasing twice is a no-op.
func (g *ExpectationGuard[A, R]) Release() {
	if g.released {
		return
	}

	g.released = true
	g.store.mu.Unlock()
}

// ReturnConst is Expectation.ReturnConst.
func (g *ExpectationGuard[A, R]) ReturnConst(value R) *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.ReturnConst(value) })
}

// ReturnOnce is Expectation.ReturnOnce.
func (g *ExpectationGuard[A, R]) ReturnOnce(fn func(A) R) *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.ReturnOnce(fn) })
}

// ReturnOnceST is Expectation.ReturnOnceST.
func (g *ExpectationGuard[A, R]) ReturnOnceST(fn func(A) R) *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.ReturnOnceST(fn) })
}

// Returning is Expectation.Returning.
func (g *ExpectationGuard[A, R]) Returning(fn func(A) R) *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.Returning(fn) })
}

// ReturningST is Expectation.ReturningST.
func (g *ExpectationGuard[A, R]) ReturningST(fn func(A) R) *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.ReturningST(fn) })
}

// Times is Expectation.Times.
func (g *ExpectationGuard[A, R]) Times(n int) *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.Times(n) })
}

// TimesAny is Expectation.TimesAny.
func (g *ExpectationGuard[A, R]) TimesAny() *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.TimesAny() })
}

// TimesRange is Expectation.TimesRange.
func (g *ExpectationGuard[A, R]) TimesRange(lo, hi int) *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.TimesRange(lo, hi) })
}

// With is Expectation.With.
func (g *ExpectationGuard[A, R]) With(expected ...any) *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.With(expected...) })
}

// Withf is Expectation.Withf.
func (g *ExpectationGuard[A, R]) Withf(predicate func(A) bool) *ExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.Withf(predicate) })
}

// configure applies fn to the guarded expectation. If fn reports a failure
// that stops the goroutine, the store is released on the way out.
func (g *ExpectationGuard[A, R]) configure(fn func(*Expectation[A, R])) *ExpectationGuard[A, R] {
	if g.released {
		panic("impmock: expectation configured after its guard was released")
	}

	completed := false

	defer func() {
		if !completed {
			g.Release()
		}
	}()

	fn(g.store.set.at(g.index))

	completed = true

	return g
}

// GenericExpectationGuard holds a GenericExpectations store locked while the
// expectation it created for one instantiation is configured.
type GenericExpectationGuard[A, R any] struct {
	store    *GenericExpectations
	set      *Expectations[A, R]
	index    int
	released bool
}

// NewGenericExpectationGuard locks g, registers a new expectation for the
// instantiation with arguments A and return R, and returns a guard for
// configuring it.
func NewGenericExpectationGuard[A, R any](g *GenericExpectations) *GenericExpectationGuard[A, R] {
	g.mu.Lock()

	s := valueSetLocked[A, R](g)
	s.Expect()

	return &GenericExpectationGuard[A, R]{store: g, set: s, index: s.Len() - 1}
}

// InSequence is Expectation.InSequence.
func (g *GenericExpectationGuard[A, R]) InSequence(seq *Sequence) *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.InSequence(seq) })
}

// Never is Expectation.Never.
func (g *GenericExpectationGuard[A, R]) Never() *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.Never() })
}

// Once is Expectation.Once.
func (g *GenericExpectationGuard[A, R]) Once() *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.Once() })
}

// Release unlocks the store. Releasing twice is a no-op.
func (g *GenericExpectationGuard[A, R]) Release() {
	if g.released {
		return
	}

	g.released = true
	g.store.mu.Unlock()
}

// ReturnConst is Expectation.ReturnConst.
func (g *GenericExpectationGuard[A, R]) ReturnConst(value R) *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.ReturnConst(value) })
}

// ReturnOnce is Expectation.ReturnOnce.
func (g *GenericExpectationGuard[A, R]) ReturnOnce(fn func(A) R) *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.ReturnOnce(fn) })
}

// ReturnOnceST is Expectation.ReturnOnceST.
func (g *GenericExpectationGuard[A, R]) ReturnOnceST(fn func(A) R) *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.ReturnOnceST(fn) })
}

// Returning is Expectation.Returning.
func (g *GenericExpectationGuard[A, R]) Returning(fn func(A) R) *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.Returning(fn) })
}

// ReturningST is Expectation.ReturningST.
func (g *GenericExpectationGuard[A, R]) ReturningST(fn func(A) R) *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.ReturningST(fn) })
}

// Times is Expectation.Times.
func (g *GenericExpectationGuard[A, R]) Times(n int) *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.Times(n) })
}

// TimesAny is Expectation.TimesAny.
func (g *GenericExpectationGuard[A, R]) TimesAny() *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.TimesAny() })
}

// TimesRange is Expectation.TimesRange.
func (g *GenericExpectationGuard[A, R]) TimesRange(lo, hi int) *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.TimesRange(lo, hi) })
}

// With is Expectation.With.
func (g *GenericExpectationGuard[A, R]) With(expected ...any) *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.With(expected...) })
}

// Withf is Expectation.Withf.
func (g *GenericExpectationGuard[A, R]) Withf(predicate func(A) bool) *GenericExpectationGuard[A, R] {
	return g.configure(func(e *Expectation[A, R]) { e.Withf(predicate) })
}

// configure applies fn to the guarded expectation. If fn reports a failure
// that stops the goroutine, the store is released on the way out.
func (g *GenericExpectationGuard[A, R]) configure(fn func(*Expectation[A, R])) *GenericExpectationGuard[A, R] {
	if g.released {
		panic("impmock: expectation configured after its guard was released")
	}

	completed := false

	defer func() {
		if !completed {
			g.Release()
		}
	}()

	fn(g.set.at(g.index))

	completed = true

	return g
}
