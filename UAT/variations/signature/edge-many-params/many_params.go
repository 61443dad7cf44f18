// Package many_params demonstrates mocking methods with more parameters than
// the predefined argument tuples hold.
//
//nolint:revive // Package name intentionally uses underscore for clarity
package many_params

//go:generate impgen ManyParams

// ManyParams is an interface with a method that has 10 parameters.
type ManyParams interface {
	// Process has 10 parameters, more than the largest predefined tuple.
	Process(a, b, c, d, e, f, g, h, i, j int) string
}

// Sum calls Process with 1 through 10.
func Sum(p ManyParams) string {
	return p.Process(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
}
