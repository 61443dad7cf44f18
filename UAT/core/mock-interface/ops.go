// Package mockinterface demonstrates the core mocking features of impmock
// against an interface dependency.
package mockinterface

import (
	"errors"
	"fmt"
)

// BasicOps covers single and multiple return values, void methods, and
// variadic arguments.
type BasicOps interface {
	// Add demonstrates a simple method with parameters and a single return value.
	Add(a, b int) int

	// Store demonstrates a method with multiple return values.
	Store(key string, value any) (int, error)

	// Log demonstrates a void method.
	Log(message string)

	// Notify demonstrates variadic arguments.
	Notify(message string, ids ...int) bool
}

// PerformOps is a helper that uses the BasicOps interface.
func PerformOps(ops BasicOps) (string, error) {
	const (
		val1 = 1
		val2 = 2
		val3 = 3
	)

	sum := ops.Add(val1, val2)

	size, err := ops.Store("foo", "bar")
	if err != nil {
		ops.Log("store failed")

		return "", fmt.Errorf("storing foo: %w", err)
	}

	ops.Log("action performed")

	if !ops.Notify("alert", val1, val2, val3) {
		return "", ErrNotDelivered
	}

	return fmt.Sprintf("sum=%d size=%d", sum, size), nil
}

// ErrNotDelivered is returned when Notify reports failure.
var ErrNotDelivered = errors.New("notification not delivered") //nolint:gochecknoglobals // sentinel
