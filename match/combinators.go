package match

import (
	"fmt"
	"strings"
)

// AllOf matches values every one of matchers accepts.
func AllOf(matchers ...Matcher) Matcher {
	return &allOfMatcher{matchers: matchers}
}

// AnyOf matches values at least one of matchers accepts.
func AnyOf(matchers ...Matcher) Matcher {
	return &anyOfMatcher{matchers: matchers}
}

// Not matches values matcher rejects.
func Not(matcher Matcher) Matcher {
	return notMatcher{matcher: matcher}
}

// allOfMatcher remembers the first child that rejected the last value so the
// failure message can name it.
type allOfMatcher struct {
	matchers []Matcher
	failed   Matcher
	failErr  error
}

func (m *allOfMatcher) FailureMessage(actual any) string {
	if m.failed == nil {
		return fmt.Sprintf("expected %#v to satisfy all of %d matchers", actual, len(m.matchers))
	}

	var child string
	if m.failErr != nil {
		child = m.failErr.Error()
	} else {
		child = m.failed.FailureMessage(actual)
	}

	return fmt.Sprintf("all of: %s\n%s", describe(m.failed), nest(child))
}

func (m *allOfMatcher) Match(actual any) (bool, error) {
	m.failed, m.failErr = nil, nil

	for _, matcher := range m.matchers {
		ok, err := matcher.Match(actual)
		if err != nil || !ok {
			m.failed, m.failErr = matcher, err

			return false, nil
		}
	}

	return true, nil
}

func (m *allOfMatcher) String() string {
	return "all of " + describeAll(m.matchers)
}

type anyOfMatcher struct {
	matchers []Matcher
	messages []string
}

func (m *anyOfMatcher) FailureMessage(actual any) string {
	if len(m.messages) == 0 {
		return fmt.Sprintf("expected %#v to satisfy any of %d matchers", actual, len(m.matchers))
	}

	return "none of:\n" + nest(strings.Join(m.messages, "\n"))
}

func (m *anyOfMatcher) Match(actual any) (bool, error) {
	m.messages = m.messages[:0]

	for _, matcher := range m.matchers {
		ok, err := matcher.Match(actual)
		if err == nil && ok {
			return true, nil
		}

		if err != nil {
			m.messages = append(m.messages, err.Error())
		} else {
			m.messages = append(m.messages, matcher.FailureMessage(actual))
		}
	}

	return false, nil
}

func (m *anyOfMatcher) String() string {
	return "any of " + describeAll(m.matchers)
}

type notMatcher struct {
	matcher Matcher
}

func (m notMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("expected %#v not to be %s", actual, describe(m.matcher))
}

func (m notMatcher) Match(actual any) (bool, error) {
	ok, err := m.matcher.Match(actual)
	if err != nil {
		return false, err
	}

	return !ok, nil
}

func (m notMatcher) String() string {
	return "not " + describe(m.matcher)
}

func describeAll(matchers []Matcher) string {
	parts := make([]string, len(matchers))
	for i, matcher := range matchers {
		parts[i] = describe(matcher)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// nest indents a child message one level under its parent.
func nest(msg string) string {
	return "  " + strings.ReplaceAll(msg, "\n", "\n  ")
}
