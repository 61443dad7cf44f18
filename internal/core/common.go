package core

import (
	"fmt"
	"sync"
)

// common holds the parts of an expectation that do not depend on the
// return type: argument matcher, call count and sequence position. All of
// them are guarded by mu, so a call is matched, counted and ordered as one
// step.
type common[A any] struct {
	t     TestReporter
	label string

	mu      sync.Mutex
	matcher argMatcher[A]
	times   Times
	seq     *SeqHandle
}

func (c *common[A]) init(t TestReporter, label string) {
	c.t = t
	c.label = label
	c.times = NewTimes()
}

// CallCount returns the number of calls admitted so far.
func (c *common[A]) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.times.Count()
}

// IsDone reports whether the expectation has reached its upper call bound.
func (c *common[A]) IsDone() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.times.IsDone()
}

// IsSatisfied reports whether the expectation has reached its lower call bound.
func (c *common[A]) IsSatisfied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.times.IsSatisfied()
}

// Matches reports whether the expectation accepts args.
func (c *common[A]) Matches(args A) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.matcher.matches(args)
}

// admit verifies args and sequence order, then counts the call. A rejected
// call is not counted.
func (c *common[A]) admit(args A) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.matcher.verify(args)
	if err == nil && c.seq != nil {
		err = c.seq.verify()
	}

	if err == nil {
		err = c.times.call()
	}

	if err == nil && c.seq != nil && c.times.IsSatisfied() {
		c.seq.satisfy()
	}

	if err != nil {
		return c.describe(err)
	}

	return nil
}

func (c *common[A]) describe(err error) error {
	if c.label == "" {
		return err
	}

	return fmt.Errorf("%s: %w", c.label, err)
}

// explain says why the expectation would not be chosen for args.
func (c *common[A]) explain(args A) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.matcher.verify(args); err != nil {
		return c.describe(err)
	}

	if c.times.IsDone() {
		return c.describe(fmt.Errorf("already called %s", &c.times)) //nolint:err113 // diagnostic only
	}

	return c.describe(errAccepts)
}

func (c *common[A]) inSequence(seq *Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.times.IsExact() {
		c.report(fmt.Errorf("%w (expected %s)", ErrNotExact, &c.times))

		return
	}

	c.seq = seq.Next()

	// An expectation that must never be called is satisfied from the start.
	if c.times.IsSatisfied() {
		c.seq.satisfy()
	}
}

func (c *common[A]) matches(args A) bool {
	return c.Matches(args)
}

func (c *common[A]) isDone() bool {
	return c.IsDone()
}

func (c *common[A]) report(err error) {
	helper(c.t)
	fail(c.t, c.describe(err))
}

func (c *common[A]) setTimes(apply func(*Times) error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := apply(&c.times); err != nil {
		c.report(err)

		return
	}

	if c.seq != nil && !c.times.IsExact() {
		c.report(fmt.Errorf("%w (expected %s)", ErrNotExact, &c.times))
	}
}

func (c *common[A]) verifySatisfied() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.times.verifySatisfied(); err != nil {
		return c.describe(err)
	}

	return nil
}

func (c *common[A]) with(expected []any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.matcher = matchEachArg[A](expected)
}

func (c *common[A]) withf(predicate func(A) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.matcher = matchWith(predicate)
}

func exactly(n int) func(*Times) error {
	return func(t *Times) error {
		return t.N(n)
	}
}

func anyTimes(t *Times) error {
	t.Any()

	return nil
}

func between(lo, hi int) func(*Times) error {
	return func(t *Times) error {
		return t.Range(lo, hi)
	}
}

func helper(t TestReporter) {
	if t != nil {
		t.Helper()
	}
}
