package core

import (
	"fmt"
	"strings"
)

// Tuple is implemented by argument types that carry more than one argument.
// Generated code passes one of the ArgsN types; any other argument type is
// treated as a single argument.
type Tuple interface {
	Values() []any
}

// Args0 is the argument tuple of a method without parameters.
type Args0 struct{}

// Values returns no values.
func (Args0) Values() []any { return nil }

// Args1 is the argument tuple of a method with one parameter.
type Args1[T1 any] struct {
	A1 T1
}

// Values returns the arguments in declaration order.
func (a Args1[T1]) Values() []any { return []any{a.A1} }

// Args2 is the argument tuple of a method with two parameters.
type Args2[T1, T2 any] struct {
	A1 T1
	A2 T2
}

// Values returns the arguments in declaration order.
func (a Args2[T1, T2]) Values() []any { return []any{a.A1, a.A2} }

// Args3 is the argument tuple of a method with three parameters.
type Args3[T1, T2, T3 any] struct {
	A1 T1
	A2 T2
	A3 T3
}

// Values returns the arguments in declaration order.
func (a Args3[T1, T2, T3]) Values() []any { return []any{a.A1, a.A2, a.A3} }

// Args4 is the argument tuple of a method with four parameters.
type Args4[T1, T2, T3, T4 any] struct {
	A1 T1
	A2 T2
	A3 T3
	A4 T4
}

// Values returns the arguments in declaration order.
func (a Args4[T1, T2, T3, T4]) Values() []any { return []any{a.A1, a.A2, a.A3, a.A4} }

// Args5 is the argument tuple of a method with five parameters.
type Args5[T1, T2, T3, T4, T5 any] struct {
	A1 T1
	A2 T2
	A3 T3
	A4 T4
	A5 T5
}

// Values returns the arguments in declaration order.
func (a Args5[T1, T2, T3, T4, T5]) Values() []any {
	return []any{a.A1, a.A2, a.A3, a.A4, a.A5}
}

// Args6 is the argument tuple of a method with six parameters.
// Wider methods define their own Tuple.
type Args6[T1, T2, T3, T4, T5, T6 any] struct {
	A1 T1
	A2 T2
	A3 T3
	A4 T4
	A5 T5
	A6 T6
}

// Values returns the arguments in declaration order.
func (a Args6[T1, T2, T3, T4, T5, T6]) Values() []any {
	return []any{a.A1, a.A2, a.A3, a.A4, a.A5, a.A6}
}

// argValues splits an argument tuple into its individual arguments.
func argValues(args any) []any {
	if tuple, ok := args.(Tuple); ok {
		return tuple.Values()
	}

	return []any{args}
}

// formatArgs renders arguments the way a call site would look.
func formatArgs(args any) string {
	values := argValues(args)
	parts := make([]string, len(values))

	for i, value := range values {
		parts[i] = fmt.Sprintf("%#v", value)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
