package core

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Mock is the expectation table of one mock instance: one set per method
// name. Generated mock types embed a *Mock and route every method through
// Dispatch and every expect accessor through Expect.
type Mock struct {
	t   TestReporter
	cfg Config

	mu      sync.Mutex
	methods map[string]checkpointer
	order   []string
}

// NewMock creates an empty mock named name, reporting failures to t.
func NewMock(t TestReporter, name string, opts ...Option) *Mock {
	cfg := newConfig(opts)
	if name != "" {
		cfg.Name = name
	}

	return &Mock{t: t, cfg: cfg, methods: map[string]checkpointer{}}
}

// Dispatch routes a call of method to its expectations.
func Dispatch[A, R any](m *Mock, method string, args A) R {
	helper(m.t)

	s, err := lookupMethod[*Expectations[A, R]](m, method)
	if err != nil {
		fail(m.t, err)

		var zero R

		return zero
	}

	return s.Call(args)
}

// DispatchRef routes a call of a reference-returning method.
func DispatchRef[A, R any](m *Mock, method string, args A) *R {
	helper(m.t)

	s, err := lookupMethod[*RefExpectations[A, R]](m, method)
	if err != nil {
		fail(m.t, err)

		return nil
	}

	return s.Call(args)
}

// DispatchRefMut routes a call of a mutable-reference-returning method.
func DispatchRefMut[A, R any](m *Mock, method string, args A) *R {
	helper(m.t)

	s, err := lookupMethod[*RefMutExpectations[A, R]](m, method)
	if err != nil {
		fail(m.t, err)

		return nil
	}

	return s.CallMut(args)
}

// Expect registers a new expectation for method.
func Expect[A, R any](m *Mock, method string) *Expectation[A, R] {
	s := methodSet(m, method, func(cfg Config) *Expectations[A, R] {
		return NewExpectations[A, R](m, WithName(cfg.Name), WithLogger(cfg.Logger))
	})
	if s == nil {
		return NewExpectation[A, R](m)
	}

	return s.Expect()
}

// ExpectRef registers a new expectation for a reference-returning method.
func ExpectRef[A, R any](m *Mock, method string) *RefExpectation[A, R] {
	s := methodSet(m, method, func(cfg Config) *RefExpectations[A, R] {
		return NewRefExpectations[A, R](m, WithName(cfg.Name), WithLogger(cfg.Logger))
	})
	if s == nil {
		return newRefExpectation[A, R](m, "")
	}

	return s.Expect()
}

// ExpectRefMut registers a new expectation for a mutable-reference-returning
// method.
func ExpectRefMut[A, R any](m *Mock, method string) *RefMutExpectation[A, R] {
	s := methodSet(m, method, func(cfg Config) *RefMutExpectations[A, R] {
		return NewRefMutExpectations[A, R](m, WithName(cfg.Name), WithLogger(cfg.Logger))
	})
	if s == nil {
		return newRefMutExpectation[A, R](m, "")
	}

	return s.Expect()
}

// Checkpoint verifies that every expectation of every method was called
// often enough, then clears them all. Generic methods are cleared for all
// instantiations at once.
func (m *Mock) Checkpoint() {
	helper(m.t)

	if err := m.checkpoint(); err != nil {
		fail(m.t, err)
	}
}

// Fatalf fails the test with a formatted message.
// Implements TestReporter interface.
func (m *Mock) Fatalf(format string, args ...any) {
	if m.t == nil {
		panic(fmt.Errorf(format, args...)) //nolint:err113 // reporter contract takes a format string
	}

	m.t.Helper()
	m.t.Fatalf(format, args...)
}

// Generic returns the store for a generic method, creating it on first use.
// Use ExpectGeneric and CallGeneric on the result.
func (m *Mock) Generic(method string) *GenericExpectations {
	s := methodSet(m, method, func(cfg Config) *GenericExpectations {
		return NewGenericExpectations(m, WithName(cfg.Name), WithLogger(cfg.Logger))
	})
	if s == nil {
		return NewGenericExpectations(m)
	}

	return s
}

// Helper marks the calling function as a test helper.
// Implements TestReporter interface.
func (m *Mock) Helper() {
	helper(m.t)
}

// Methods returns the names of methods with expectations, in the order they
// were first configured.
func (m *Mock) Methods() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.order...)
}

// Name returns the mock's name.
func (m *Mock) Name() string {
	return m.cfg.Name
}

func (m *Mock) checkpoint() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	errs := make([]error, 0, len(m.order))
	for _, name := range m.order {
		errs = append(errs, m.methods[name].checkpoint())
	}

	m.cfg.Logger.Debug("mock checkpoint", zap.String("mock", m.cfg.Name), zap.Int("methods", len(m.order)))

	return errors.Join(errs...)
}

// forward reports err to the underlying reporter unchanged.
func (m *Mock) forward(err error) {
	fail(m.t, err)
}

// lookupMethod finds the set of method without creating it.
func lookupMethod[S checkpointer](m *Mock, method string) (S, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero S

	found, ok := m.methods[method]
	if !ok {
		return zero, fmt.Errorf("%w: no expectations registered for %s", ErrNoMatch, m.cfg.child(method).Name)
	}

	typed, ok := found.(S)
	if !ok {
		return zero, fmt.Errorf("%w: %s was configured as %T", ErrTypeMismatch, m.cfg.child(method).Name, found)
	}

	return typed, nil
}

// methodSet returns the set of method, creating it with create if absent.
// It reports a failure and returns nil if method was configured with a
// different signature.
func methodSet[S checkpointer](m *Mock, method string, create func(Config) S) S {
	m.mu.Lock()
	defer m.mu.Unlock()

	if found, ok := m.methods[method]; ok {
		typed, ok := found.(S)
		if !ok {
			helper(m.t)
			fail(m.t, fmt.Errorf("%w: %s was configured as %T", ErrTypeMismatch, m.cfg.child(method).Name, found))
		}

		return typed
	}

	s := create(m.cfg.child(method))
	m.methods[method] = s
	m.order = append(m.order, method)

	return s
}
