package impmock

import "github.com/toejough/impmock/internal/core"

// Checkpoint verifies every mock created with NewMock under t and clears
// their expectations. Mocks are checkpointed automatically when t completes;
// call Checkpoint to verify an earlier phase of a test.
func Checkpoint(t TestReporter) {
	core.CheckpointAll(t)
}

// Mocks returns the mocks created with NewMock under t, in creation order.
func Mocks(t TestReporter) []*Mock {
	return core.Registered(t)
}
