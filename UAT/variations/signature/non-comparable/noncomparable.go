// Package noncomparable demonstrates mocking interfaces with non-comparable
// parameter types like slices and maps.
package noncomparable

// DataProcessor handles types that don't support the '==' operator.
type DataProcessor interface {
	ProcessSlice(data []string) int
	ProcessMap(config map[string]int) bool
}

// RunProcessor uses the DataProcessor interface with non-comparable types.
func RunProcessor(p DataProcessor) (int, bool) {
	const threshold = 10

	n := p.ProcessSlice([]string{"a", "b", "c"})
	ok := p.ProcessMap(map[string]int{"threshold": threshold})

	return n, ok
}
