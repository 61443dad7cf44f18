package core

import (
	"errors"
	"sync"
)

// Register records m as belonging to t. If t supports Cleanup (like
// *testing.T), every mock registered under t is checkpointed when the test
// completes and the registry entry is removed.
func Register(t TestReporter, m *Mock) *Mock {
	registryMu.Lock()
	defer registryMu.Unlock()

	mocks, seen := registry[t]
	registry[t] = append(mocks, m)

	if seen {
		return m
	}

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			helper(t)

			if err := checkpointRegistered(t); err != nil {
				fail(t, err)
			}
		})
	}

	return m
}

// CheckpointAll checkpoints every mock registered under t. Registrations
// are kept, so mocks can be configured again for the next test phase.
func CheckpointAll(t TestReporter) {
	helper(t)

	registryMu.Lock()
	mocks := append([]*Mock(nil), registry[t]...)
	registryMu.Unlock()

	errs := make([]error, 0, len(mocks))
	for _, m := range mocks {
		errs = append(errs, m.checkpoint())
	}

	if err := errors.Join(errs...); err != nil {
		fail(t, err)
	}
}

// Registered returns the mocks registered under t.
func Registered(t TestReporter) []*Mock {
	registryMu.Lock()
	defer registryMu.Unlock()

	return append([]*Mock(nil), registry[t]...)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for test coordination
	registry = make(map[TestReporter][]*Mock)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)

// checkpointRegistered checkpoints and forgets every mock registered under t.
func checkpointRegistered(t TestReporter) error {
	registryMu.Lock()
	mocks := registry[t]
	delete(registry, t)
	registryMu.Unlock()

	errs := make([]error, 0, len(mocks))
	for _, m := range mocks {
		errs = append(errs, m.checkpoint())
	}

	return errors.Join(errs...)
}
