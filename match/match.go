// Package match provides matchers for use with impmock's With.
// Matchers can be mixed freely with gomega matchers:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    "github.com/toejough/impmock/match"
//	)
//
//	mock.ExpectAdd().With(BeNumerically(">", 0), match.Lt(10)).ReturnConst(42)
//
// Every matcher implements Match and FailureMessage, the same duck-typed
// interface gomega matchers implement.
package match

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/akedrou/textdiff"
)

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// BeAny is a matcher that matches any value.
// Useful when you don't care about a particular argument or return value.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny Matcher = anyMatcher{}

// Eq matches values deeply equal to want.
func Eq(want any) Matcher {
	return eqMatcher{want: want}
}

// Func returns a matcher that accepts values for which predicate returns
// true. description names the predicate in failure messages.
func Func[T any](description string, predicate func(T) bool) Matcher {
	return &satisfyMatcher[T]{
		predicate: func(val T) error {
			if predicate(val) {
				return nil
			}

			return errors.New(description) //nolint:err113 // user-provided description
		},
	}
}

// In matches values deeply equal to one of values.
func In(values ...any) Matcher {
	return inMatcher{values: values}
}

// Ne matches values not deeply equal to want.
func Ne(want any) Matcher {
	return Not(Eq(want))
}

// Nil matches nil values, including typed nil pointers, maps, slices,
// channels, functions and interfaces.
func Nil() Matcher {
	return nilMatcher{}
}

// NotNil matches values Nil does not.
func NotNil() Matcher {
	return Not(Nil())
}

// Satisfy returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	mock.ExpectAdd().With(Satisfy(func(x int) error {
//	    if x < 0 { return fmt.Errorf("expected positive, got %d", x) }
//	    return nil
//	}), BeAny)
func Satisfy[T any](predicate func(T) error) Matcher {
	return &satisfyMatcher[T]{predicate: predicate}
}

// unexported variables.
var (
	// errTypeMismatch is a sentinel error for type assertion failures.
	errTypeMismatch = errors.New("type mismatch")
)

// anyMatcher is the implementation of the BeAny matcher.
type anyMatcher struct{}

// FailureMessage returns an empty string since BeAny always matches.
func (anyMatcher) FailureMessage(any) string {
	return ""
}

// Match always returns true - matches any value.
func (anyMatcher) Match(any) (bool, error) {
	return true, nil
}

type eqMatcher struct {
	want any
}

func (m eqMatcher) FailureMessage(actual any) string {
	want, wantOK := m.want.(string)
	got, gotOK := actual.(string)

	if wantOK && gotOK && (strings.Contains(want, "\n") || strings.Contains(got, "\n")) {
		return "strings differ:\n" + textdiff.Unified("expected", "actual", want, got)
	}

	return fmt.Sprintf("expected %#v to equal %#v", actual, m.want)
}

func (m eqMatcher) Match(actual any) (bool, error) {
	return reflect.DeepEqual(actual, m.want), nil
}

func (m eqMatcher) String() string {
	return fmt.Sprintf("equal to %#v", m.want)
}

type inMatcher struct {
	values []any
}

func (m inMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("expected %#v to be one of %#v", actual, m.values)
}

func (m inMatcher) Match(actual any) (bool, error) {
	for _, value := range m.values {
		if reflect.DeepEqual(actual, value) {
			return true, nil
		}
	}

	return false, nil
}

func (m inMatcher) String() string {
	return fmt.Sprintf("one of %#v", m.values)
}

type nilMatcher struct{}

func (nilMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("expected %#v to be nil", actual)
}

func (nilMatcher) Match(actual any) (bool, error) {
	if actual == nil {
		return true, nil
	}

	value := reflect.ValueOf(actual)

	switch value.Kind() { //nolint:exhaustive // only nillable kinds can be nil
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return value.IsNil(), nil
	default:
		return false, nil
	}
}

func (nilMatcher) String() string {
	return "nil"
}

type satisfyMatcher[T any] struct {
	predicate func(T) error
	lastErr   error
}

func (m *satisfyMatcher[T]) FailureMessage(actual any) string {
	if m.lastErr != nil {
		return fmt.Sprintf("value %v does not satisfy predicate: %v", actual, m.lastErr)
	}

	return fmt.Sprintf("value %v does not satisfy predicate", actual)
}

func (m *satisfyMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)

	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", errTypeMismatch, *new(T), actual)
	}

	m.lastErr = m.predicate(val)

	return m.lastErr == nil, nil
}

// describe names a matcher for use inside another matcher's message.
func describe(m Matcher) string {
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", m)
}
