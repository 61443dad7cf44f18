package match

import (
	"cmp"
	"fmt"
)

// Ge matches values greater than or equal to bound.
func Ge[T cmp.Ordered](bound T) Matcher {
	return orderedMatcher[T]{bound: bound, op: ">=", accept: func(c int) bool { return c >= 0 }}
}

// Gt matches values greater than bound.
func Gt[T cmp.Ordered](bound T) Matcher {
	return orderedMatcher[T]{bound: bound, op: ">", accept: func(c int) bool { return c > 0 }}
}

// Le matches values less than or equal to bound.
func Le[T cmp.Ordered](bound T) Matcher {
	return orderedMatcher[T]{bound: bound, op: "<=", accept: func(c int) bool { return c <= 0 }}
}

// Lt matches values less than bound.
func Lt[T cmp.Ordered](bound T) Matcher {
	return orderedMatcher[T]{bound: bound, op: "<", accept: func(c int) bool { return c < 0 }}
}

// orderedMatcher compares the actual value against bound. accept receives
// cmp.Compare(actual, bound).
type orderedMatcher[T cmp.Ordered] struct {
	bound  T
	op     string
	accept func(int) bool
}

func (m orderedMatcher[T]) FailureMessage(actual any) string {
	return fmt.Sprintf("expected %#v %s %#v", actual, m.op, m.bound)
}

func (m orderedMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)
	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", errTypeMismatch, m.bound, actual)
	}

	return m.accept(cmp.Compare(val, m.bound)), nil
}

func (m orderedMatcher[T]) String() string {
	return fmt.Sprintf("%s %#v", m.op, m.bound)
}
