package core

import "sync"

// StaticExpectations is a process-wide set of expectations for a
// package-level function, which has no mock instance to hold its
// expectations. Configuration happens through an ExpectationGuard that keeps
// the store locked until released.
type StaticExpectations[A, R any] struct {
	mu    sync.Mutex
	set   *Expectations[A, R]
	bound TestReporter
}

// NewStaticExpectations creates an empty store. Failures are reported to the
// test that most recently called Expect.
func NewStaticExpectations[A, R any](opts ...Option) *StaticExpectations[A, R] {
	return &StaticExpectations[A, R]{set: NewExpectations[A, R](nil, opts...)}
}

// Call simulates calling the mocked function. The store is locked only while
// the expectation is chosen, so return functions may call other mocks.
func (s *StaticExpectations[A, R]) Call(args A) R {
	s.mu.Lock()
	t := s.set.t
	e, err := s.set.selectAndAdmit(args)
	s.mu.Unlock()

	helper(t)

	var out R
	if err == nil {
		out, err = e.produce(args)
	}

	if err != nil {
		fail(t, err)
	}

	return out
}

// Checkpoint verifies and clears every expectation.
func (s *StaticExpectations[A, R]) Checkpoint() {
	s.mu.Lock()
	t := s.set.t
	err := s.set.checkpoint()
	s.mu.Unlock()

	helper(t)

	if err != nil {
		fail(t, err)
	}
}

// Expect locks the store, registers a new expectation reporting to t and
// returns a guard for configuring it. The store stays locked until the guard
// is released. When t supports Cleanup, the store is checkpointed at the end
// of the test.
func (s *StaticExpectations[A, R]) Expect(t TestReporter) *ExpectationGuard[A, R] {
	s.mu.Lock()

	if t != s.bound {
		s.bind(t)
	}

	s.set.Expect()

	return &ExpectationGuard[A, R]{store: s, index: s.set.Len() - 1}
}

// Len returns the number of registered expectations.
func (s *StaticExpectations[A, R]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set.Len()
}

// bind routes failures to t. s.mu must be held.
func (s *StaticExpectations[A, R]) bind(t TestReporter) {
	s.bound = t
	s.set.t = t

	if registrar, ok := t.(cleanupRegistrar); ok {
		registrar.Cleanup(func() {
			defer s.unbind(t)

			s.Checkpoint()
		})
	}
}

// unbind stops routing failures to t once its test has finished. Calls made
// before the next Expect report with a nil reporter.
func (s *StaticExpectations[A, R]) unbind(t TestReporter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bound == t {
		s.bound = nil
		s.set.t = nil
	}
}

// NewExpectationGuard is s.Expect(t).
func NewExpectationGuard[A, R any](s *StaticExpectations[A, R], t TestReporter) *ExpectationGuard[A, R] {
	return s.Expect(t)
}
