package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Expectations is the ordered set of expectations for one method returning
// R by value. Calls are routed to the first matching expectation in
// registration order.
type Expectations[A, R any] struct {
	set[A, *Expectation[A, R]]
}

// NewExpectations creates an empty set reporting failures to t.
func NewExpectations[A, R any](t TestReporter, opts ...Option) *Expectations[A, R] {
	s := &Expectations[A, R]{}
	s.init(t, newConfig(opts))

	return s
}

// Call simulates calling the mocked method.
func (s *Expectations[A, R]) Call(args A) R {
	helper(s.t)

	out, err := s.dispatch(args)
	if err != nil {
		fail(s.t, err)
	}

	return out
}

// Expect registers a new expectation and returns it for configuration.
func (s *Expectations[A, R]) Expect() *Expectation[A, R] {
	return s.add(func(label string) *Expectation[A, R] {
		return newExpectation[A, R](s.t, label)
	})
}

func (s *Expectations[A, R]) dispatch(args A) (R, error) {
	e, err := s.selectAndAdmit(args)
	if err != nil {
		var zero R

		return zero, err
	}

	return e.produce(args)
}

// RefExpectations is the ordered set of expectations for one method that
// returns a pointer into mock-owned storage.
type RefExpectations[A, R any] struct {
	set[A, *RefExpectation[A, R]]
}

// NewRefExpectations creates an empty set reporting failures to t.
func NewRefExpectations[A, R any](t TestReporter, opts ...Option) *RefExpectations[A, R] {
	s := &RefExpectations[A, R]{}
	s.init(t, newConfig(opts))

	return s
}

// Call simulates calling the mocked method.
func (s *RefExpectations[A, R]) Call(args A) *R {
	helper(s.t)

	e, err := s.selectAndAdmit(args)
	if err != nil {
		fail(s.t, err)

		return nil
	}

	out, err := e.produce(args)
	if err != nil {
		fail(s.t, err)
	}

	return out
}

// Expect registers a new expectation and returns it for configuration.
func (s *RefExpectations[A, R]) Expect() *RefExpectation[A, R] {
	return s.add(func(label string) *RefExpectation[A, R] {
		return newRefExpectation[A, R](s.t, label)
	})
}

// RefMutExpectations is the ordered set of expectations for one method that
// returns a mutable pointer into mock-owned storage.
type RefMutExpectations[A, R any] struct {
	set[A, *RefMutExpectation[A, R]]
}

// NewRefMutExpectations creates an empty set reporting failures to t.
func NewRefMutExpectations[A, R any](t TestReporter, opts ...Option) *RefMutExpectations[A, R] {
	s := &RefMutExpectations[A, R]{}
	s.init(t, newConfig(opts))

	return s
}

// CallMut simulates calling the mocked method.
func (s *RefMutExpectations[A, R]) CallMut(args A) *R {
	helper(s.t)

	e, err := s.selectAndAdmit(args)
	if err != nil {
		fail(s.t, err)

		return nil
	}

	out, err := e.produce(args)
	if err != nil {
		fail(s.t, err)
	}

	return out
}

// Expect registers a new expectation and returns it for configuration.
func (s *RefMutExpectations[A, R]) Expect() *RefMutExpectation[A, R] {
	return s.add(func(label string) *RefMutExpectation[A, R] {
		return newRefMutExpectation[A, R](s.t, label)
	})
}

// candidate is what a set needs from each of its expectations.
type candidate[A any] interface {
	matches(args A) bool
	isDone() bool
	admit(args A) error
	explain(args A) error
	verifySatisfied() error
}

// set holds the dispatch policy shared by every expectation kind.
type set[A any, E candidate[A]] struct {
	t   TestReporter
	cfg Config

	mu   sync.Mutex
	list []E
}

// Checkpoint verifies that every expectation was called at least as often
// as required, then removes them all.
func (s *set[A, E]) Checkpoint() {
	helper(s.t)

	if err := s.checkpoint(); err != nil {
		fail(s.t, err)
	}
}

// Len returns the number of registered expectations.
func (s *set[A, E]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.list)
}

func (s *set[A, E]) add(create func(label string) E) E {
	s.mu.Lock()
	defer s.mu.Unlock()

	label := fmt.Sprintf("expectation #%d", len(s.list)+1)
	if s.cfg.Name != "" {
		label = s.cfg.Name + " " + label
	}

	e := create(label)
	s.list = append(s.list, e)

	return e
}

func (s *set[A, E]) at(index int) E {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list[index]
}

func (s *set[A, E]) checkpoint() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := make([]error, 0, len(s.list))
	for _, e := range s.list {
		errs = append(errs, e.verifySatisfied())
	}

	s.cfg.Logger.Debug("checkpoint", zap.String("method", s.cfg.Name), zap.Int("expectations", len(s.list)))
	s.list = nil

	return errors.Join(errs...)
}

func (s *set[A, E]) init(t TestReporter, cfg Config) {
	s.t = t
	s.cfg = cfg
}

// selectAndAdmit picks the first expectation accepting args, in
// registration order. A miss lists why each expectation declined. An exhausted expectation is skipped unless it is the
// only one, so that over-calling a lone expectation reports the call count
// rather than a missing match. The chosen expectation is admitted before the
// set is unlocked.
func (s *set[A, E]) selectAndAdmit(args A) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.list {
		if !e.matches(args) || (e.isDone() && len(s.list) != 1) {
			continue
		}

		s.cfg.Logger.Debug("dispatch",
			zap.String("method", s.cfg.Name),
			zap.Int("expectation", i+1),
			zap.String("args", formatArgs(args)),
		)

		return e, e.admit(args)
	}

	s.cfg.Logger.Debug("no match", zap.String("method", s.cfg.Name), zap.String("args", formatArgs(args)))

	var zero E

	name := s.cfg.Name
	if name == "" {
		name = "call"
	}

	reasons := make([]string, 0, len(s.list))
	for _, e := range s.list {
		reasons = append(reasons, "\n  "+indent(e.explain(args).Error()))
	}

	return zero, fmt.Errorf("%w for %s%s%s", ErrNoMatch, name, formatArgs(args), strings.Join(reasons, ""))
}
