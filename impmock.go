// Package impmock provides the runtime engine for mock objects in Go tests.
// Mocks register expectations describing which calls are allowed, how many
// times, in what order, and what they return; calls are dispatched to the
// first matching expectation.
//
// This is the public API entry point. Implementation lives in internal/core.
package impmock

import (
	"github.com/toejough/impmock/internal/core"
	"go.uber.org/zap"
)

// Types re-exported from internal/core.

// Args0 is the argument tuple of a method without parameters.
type Args0 = core.Args0

// Args1 is the argument tuple of a one-parameter method.
type Args1[T1 any] = core.Args1[T1]

// Args2 is the argument tuple of a two-parameter method.
type Args2[T1, T2 any] = core.Args2[T1, T2]

// Args3 is the argument tuple of a three-parameter method.
type Args3[T1, T2, T3 any] = core.Args3[T1, T2, T3]

// Args4 is the argument tuple of a four-parameter method.
type Args4[T1, T2, T3, T4 any] = core.Args4[T1, T2, T3, T4]

// Args5 is the argument tuple of a five-parameter method.
type Args5[T1, T2, T3, T4, T5 any] = core.Args5[T1, T2, T3, T4, T5]

// Args6 is the argument tuple of a six-parameter method.
type Args6[T1, T2, T3, T4, T5, T6 any] = core.Args6[T1, T2, T3, T4, T5, T6]

// Config holds the settings shared by mocks, sets and stores.
type Config = core.Config

// Defaulter lets a return type choose the value returned when no return
// function is configured.
type Defaulter[R any] = core.Defaulter[R]

// Expectation is one configured rule for a method returning R by value.
type Expectation[A, R any] = core.Expectation[A, R]

// ExpectationGuard configures an expectation of a StaticExpectations store
// while holding it locked.
type ExpectationGuard[A, R any] = core.ExpectationGuard[A, R]

// Expectations is the ordered set of expectations of one method.
type Expectations[A, R any] = core.Expectations[A, R]

// GenericExpectationGuard configures an expectation of one generic
// instantiation while holding its store locked.
type GenericExpectationGuard[A, R any] = core.GenericExpectationGuard[A, R]

// GenericExpectations stores expectations per instantiation of a generic method.
type GenericExpectations = core.GenericExpectations

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// Mock is the expectation table of one mock instance.
type Mock = core.Mock

// Option configures a Config.
type Option = core.Option

// RefExpectation is an expectation for a method returning a pointer into
// mock-owned storage.
type RefExpectation[A, R any] = core.RefExpectation[A, R]

// RefExpectations is the set of RefExpectation for one method.
type RefExpectations[A, R any] = core.RefExpectations[A, R]

// RefMutExpectation is an expectation for a method returning a mutable
// pointer into mock-owned storage.
type RefMutExpectation[A, R any] = core.RefMutExpectation[A, R]

// RefMutExpectations is the set of RefMutExpectation for one method.
type RefMutExpectations[A, R any] = core.RefMutExpectations[A, R]

// SeqHandle is one expectation's position within a Sequence.
type SeqHandle = core.SeqHandle

// Sequence orders expectations across methods and mocks.
type Sequence = core.Sequence

// SetKind distinguishes value, reference and mutable-reference sets.
type SetKind = core.SetKind

// StaticExpectations is a process-wide set of expectations for a
// package-level function.
type StaticExpectations[A, R any] = core.StaticExpectations[A, R]

// TestReporter is the minimal interface impmock needs from test frameworks.
type TestReporter = core.TestReporter

// Times is a call-count constraint.
type Times = core.Times

// Tuple is implemented by multi-argument tuples.
type Tuple = core.Tuple

// TypeKey identifies one instantiation of a generic method.
type TypeKey = core.TypeKey

// Set kinds.
const (
	ValueSet  = core.ValueSet
	RefSet    = core.RefSet
	RefMutSet = core.RefMutSet
)

// Errors re-exported from internal/core. Compare with errors.Is.
//
//nolint:gochecknoglobals // re-exported sentinels
var (
	ErrNoMatch           = core.ErrNoMatch
	ErrArgumentMismatch  = core.ErrArgumentMismatch
	ErrCalledTooMany     = core.ErrCalledTooMany
	ErrCalledTooFew      = core.ErrCalledTooFew
	ErrOnceExpired       = core.ErrOnceExpired
	ErrSequenceViolation = core.ErrSequenceViolation
	ErrWrongGoroutine    = core.ErrWrongGoroutine
	ErrNoReturnValue     = core.ErrNoReturnValue
	ErrTypeMismatch      = core.ErrTypeMismatch
	ErrNotExact          = core.ErrNotExact
	ErrInvalidRange      = core.ErrInvalidRange
)

// Functions re-exported from internal/core.

// CallGeneric dispatches a call to the instantiation of a generic method
// with arguments A and return R.
func CallGeneric[A, R any](g *GenericExpectations, args A) R {
	return core.CallGeneric[A, R](g, args)
}

// CallGenericRef is CallGeneric for reference-returning instantiations.
func CallGenericRef[A, R any](g *GenericExpectations, args A) *R {
	return core.CallGenericRef[A, R](g, args)
}

// CallGenericRefMut is CallGeneric for mutable-reference-returning instantiations.
func CallGenericRefMut[A, R any](g *GenericExpectations, args A) *R {
	return core.CallGenericRefMut[A, R](g, args)
}

// DefaultLogger returns the logger used when no WithLogger option is given.
// Set IMPMOCK_LOG=debug to see dispatch decisions.
func DefaultLogger() *zap.Logger {
	return core.DefaultLogger()
}

// Dispatch routes a call of method to its expectations.
func Dispatch[A, R any](m *Mock, method string, args A) R {
	return core.Dispatch[A, R](m, method, args)
}

// DispatchRef routes a call of a reference-returning method.
func DispatchRef[A, R any](m *Mock, method string, args A) *R {
	return core.DispatchRef[A, R](m, method, args)
}

// DispatchRefMut routes a call of a mutable-reference-returning method.
func DispatchRefMut[A, R any](m *Mock, method string, args A) *R {
	return core.DispatchRefMut[A, R](m, method, args)
}

// Expect registers a new expectation for method.
func Expect[A, R any](m *Mock, method string) *Expectation[A, R] {
	return core.Expect[A, R](m, method)
}

// ExpectGeneric registers an expectation for the instantiation of a generic
// method with arguments A and return R.
func ExpectGeneric[A, R any](g *GenericExpectations) *Expectation[A, R] {
	return core.ExpectGeneric[A, R](g)
}

// ExpectGenericRef is ExpectGeneric for reference-returning instantiations.
func ExpectGenericRef[A, R any](g *GenericExpectations) *RefExpectation[A, R] {
	return core.ExpectGenericRef[A, R](g)
}

// ExpectGenericRefMut is ExpectGeneric for mutable-reference-returning instantiations.
func ExpectGenericRefMut[A, R any](g *GenericExpectations) *RefMutExpectation[A, R] {
	return core.ExpectGenericRefMut[A, R](g)
}

// ExpectRef registers a new expectation for a reference-returning method.
func ExpectRef[A, R any](m *Mock, method string) *RefExpectation[A, R] {
	return core.ExpectRef[A, R](m, method)
}

// ExpectRefMut registers a new expectation for a mutable-reference-returning method.
func ExpectRefMut[A, R any](m *Mock, method string) *RefMutExpectation[A, R] {
	return core.ExpectRefMut[A, R](m, method)
}

// KeyOf returns the key of the instantiation with arguments A and return R.
func KeyOf[A, R any](kind SetKind) TypeKey {
	return core.KeyOf[A, R](kind)
}

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// NewExpectation creates a standalone expectation reporting to t.
func NewExpectation[A, R any](t TestReporter) *Expectation[A, R] {
	return core.NewExpectation[A, R](t)
}

// NewExpectationGuard locks s and registers a new expectation reporting to t.
func NewExpectationGuard[A, R any](s *StaticExpectations[A, R], t TestReporter) *ExpectationGuard[A, R] {
	return core.NewExpectationGuard(s, t)
}

// NewExpectations creates an empty set reporting failures to t.
func NewExpectations[A, R any](t TestReporter, opts ...Option) *Expectations[A, R] {
	return core.NewExpectations[A, R](t, opts...)
}

// NewGenericExpectationGuard locks g and registers a new expectation for the
// instantiation with arguments A and return R.
func NewGenericExpectationGuard[A, R any](g *GenericExpectations) *GenericExpectationGuard[A, R] {
	return core.NewGenericExpectationGuard[A, R](g)
}

// NewGenericExpectations creates an empty generic store reporting failures to t.
func NewGenericExpectations(t TestReporter, opts ...Option) *GenericExpectations {
	return core.NewGenericExpectations(t, opts...)
}

// NewMock creates a mock named name and registers it with t, so it is
// checkpointed when the test completes.
func NewMock(t TestReporter, name string, opts ...Option) *Mock {
	return core.Register(t, core.NewMock(t, name, opts...))
}

// NewRefExpectations creates an empty set reporting failures to t.
func NewRefExpectations[A, R any](t TestReporter, opts ...Option) *RefExpectations[A, R] {
	return core.NewRefExpectations[A, R](t, opts...)
}

// NewRefMutExpectations creates an empty set reporting failures to t.
func NewRefMutExpectations[A, R any](t TestReporter, opts ...Option) *RefMutExpectations[A, R] {
	return core.NewRefMutExpectations[A, R](t, opts...)
}

// NewSequence creates an empty Sequence.
func NewSequence() *Sequence {
	return core.NewSequence()
}

// NewStaticExpectations creates an empty process-wide store.
func NewStaticExpectations[A, R any](opts ...Option) *StaticExpectations[A, R] {
	return core.NewStaticExpectations[A, R](opts...)
}

// NewTimes returns an unbounded call-count constraint.
func NewTimes() Times {
	return core.NewTimes()
}

// WithLogger sends dispatch records to logger.
func WithLogger(logger *zap.Logger) Option {
	return core.WithLogger(logger)
}

// WithName sets the name used in diagnostics.
func WithName(name string) Option {
	return core.WithName(name)
}
