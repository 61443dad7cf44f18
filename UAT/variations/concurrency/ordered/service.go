// Package ordered demonstrates sequences and concurrent calls.
package ordered

import (
	"fmt"
	"sync"
)

// Service is a dependency whose operations must happen in a fixed order.
type Service interface {
	// OperationA represents the first operation in a sequence.
	OperationA(id int) error

	// OperationB represents the second operation in a sequence.
	OperationB(id int) error

	// OperationC represents the third operation in a sequence.
	OperationC(id int) error
}

// RunInOrder performs A, B and C for id, stopping at the first error.
func RunInOrder(svc Service, id int) error {
	if err := svc.OperationA(id); err != nil {
		return fmt.Errorf("operation A: %w", err)
	}

	if err := svc.OperationB(id); err != nil {
		return fmt.Errorf("operation B: %w", err)
	}

	if err := svc.OperationC(id); err != nil {
		return fmt.Errorf("operation C: %w", err)
	}

	return nil
}

// RunConcurrent performs OperationA for every id on its own goroutine.
func RunConcurrent(svc Service, ids []int) []error {
	var wg sync.WaitGroup

	errs := make([]error, len(ids))

	for i, id := range ids {
		wg.Add(1)

		go func() {
			defer wg.Done()

			errs[i] = svc.OperationA(id)
		}()
	}

	wg.Wait()

	return errs
}
