package match

import (
	"fmt"
	"regexp"
	"strings"
)

// ContainsSubstring matches strings containing sub.
func ContainsSubstring(sub string) Matcher {
	return stringMatcher{
		desc:   fmt.Sprintf("containing %q", sub),
		accept: func(s string) bool { return strings.Contains(s, sub) },
	}
}

// HasPrefix matches strings starting with prefix.
func HasPrefix(prefix string) Matcher {
	return stringMatcher{
		desc:   fmt.Sprintf("starting with %q", prefix),
		accept: func(s string) bool { return strings.HasPrefix(s, prefix) },
	}
}

// HasSuffix matches strings ending with suffix.
func HasSuffix(suffix string) Matcher {
	return stringMatcher{
		desc:   fmt.Sprintf("ending with %q", suffix),
		accept: func(s string) bool { return strings.HasSuffix(s, suffix) },
	}
}

// MatchRegexp matches strings matching pattern. It panics if pattern does
// not compile.
func MatchRegexp(pattern string) Matcher {
	re := regexp.MustCompile(pattern)

	return stringMatcher{
		desc:   fmt.Sprintf("matching /%s/", pattern),
		accept: re.MatchString,
	}
}

type stringMatcher struct {
	desc   string
	accept func(string) bool
}

func (m stringMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("expected %#v to be a string %s", actual, m.desc)
}

func (m stringMatcher) Match(actual any) (bool, error) {
	s, ok := actual.(string)
	if !ok {
		return false, fmt.Errorf("%w: expected string, got %T", errTypeMismatch, actual)
	}

	return m.accept(s), nil
}

func (m stringMatcher) String() string {
	return "a string " + m.desc
}
