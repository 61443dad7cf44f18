package core

// TestReporter is the minimal interface impmock needs from test frameworks.
// testing.T, testing.B, and *Mock all implement this interface.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// fail delivers err to t. With no reporter the error is raised as a panic so
// that misuse is never silently ignored.
func fail(t TestReporter, err error) {
	if forward, ok := t.(errorForwarder); ok {
		forward.forward(err)

		return
	}

	if t == nil {
		panic(err)
	}

	t.Helper()
	t.Fatalf("%v", err)
}

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}

// errorForwarder is implemented by reporters that wrap another reporter and
// can pass the original error through unchanged.
type errorForwarder interface {
	forward(err error)
}
