package core

import (
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

// MatchValue checks if actual matches expected.
// If expected implements the Matcher interface, uses its Match method.
// Otherwise, uses reflect.DeepEqual for comparison.
// Returns (success, errorMessage). If success is true, errorMessage is empty.
func MatchValue(actual, expected any) (bool, string) {
	if matcher, ok := expected.(Matcher); ok {
		success, err := matcher.Match(actual)
		if err != nil {
			return false, err.Error()
		}

		if !success {
			return false, matcher.FailureMessage(actual)
		}

		return true, ""
	}

	if reflect.DeepEqual(actual, expected) {
		return true, ""
	}

	return false, mismatchMessage(expected, actual)
}

// mismatchMessage describes two unequal values, with a unified diff when
// both are multi-line strings.
func mismatchMessage(expected, actual any) string {
	want, wantOK := expected.(string)
	got, gotOK := actual.(string)

	if wantOK && gotOK && (strings.Contains(want, "\n") || strings.Contains(got, "\n")) {
		return "strings differ:\n" + textdiff.Unified("expected", "actual", want, got)
	}

	return fmt.Sprintf("expected %#v, got %#v", expected, actual)
}

// argMatcher decides whether an expectation accepts an argument tuple.
// The zero value accepts everything.
type argMatcher[A any] struct {
	kind matcherKind
	each []any
	fn   func(A) bool
}

func matchEachArg[A any](expected []any) argMatcher[A] {
	return argMatcher[A]{kind: matchEach, each: expected}
}

func matchWith[A any](predicate func(A) bool) argMatcher[A] {
	return argMatcher[A]{kind: matchFunc, fn: predicate}
}

// matches is the non-fatal test used to choose a dispatch candidate.
func (m argMatcher[A]) matches(args A) bool {
	switch m.kind {
	case matchEach:
		values := argValues(args)
		if len(values) != len(m.each) {
			return false
		}

		for i, expected := range m.each {
			if ok, _ := MatchValue(values[i], expected); !ok {
				return false
			}
		}

		return true
	case matchFunc:
		return m.fn(args)
	default:
		return true
	}
}

// verify re-checks the arguments of a selected expectation and explains
// exactly which argument was rejected and why.
func (m argMatcher[A]) verify(args A) error {
	switch m.kind {
	case matchEach:
		values := argValues(args)
		if len(values) != len(m.each) {
			return fmt.Errorf("%w: expected %d arguments, got %d %s",
				ErrArgumentMismatch, len(m.each), len(values), formatArgs(args))
		}

		var failures []string

		for i, expected := range m.each {
			if ok, msg := MatchValue(values[i], expected); !ok {
				failures = append(failures, fmt.Sprintf("argument %d (%#v): %s", i+1, values[i], indent(msg)))
			}
		}

		if len(failures) > 0 {
			return fmt.Errorf("%w %s:\n  %s", ErrArgumentMismatch, formatArgs(args), strings.Join(failures, "\n  "))
		}
	case matchFunc:
		if !m.fn(args) {
			return fmt.Errorf("%w: predicate function rejected %s", ErrArgumentMismatch, formatArgs(args))
		}
	case matchAny:
	}

	return nil
}

type matcherKind int

// unexported constants.
const (
	matchAny matcherKind = iota
	matchEach
	matchFunc
)

// indent nests a multi-line message under its argument line.
func indent(msg string) string {
	return strings.ReplaceAll(msg, "\n", "\n    ")
}
