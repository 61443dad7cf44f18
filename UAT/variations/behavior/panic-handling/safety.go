// Package safety exercises return functions that panic.
package safety

import "fmt"

// Worker performs a unit of work that may crash.
type Worker interface {
	Work(job string) int
}

// RunGuarded runs every job and converts a crash into an error. Jobs after
// the crash are not run.
func RunGuarded(w Worker, jobs ...string) (total int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker crashed: %v", r)
		}
	}()

	for _, job := range jobs {
		total += w.Work(job)
	}

	return total, nil
}

// RunUnguarded runs every job and lets a crash propagate.
func RunUnguarded(w Worker, jobs ...string) int {
	total := 0

	for _, job := range jobs {
		total += w.Work(job)
	}

	return total
}
