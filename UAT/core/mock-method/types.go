// Package mockmethod demonstrates mocking individual methods: the code under
// test depends on a single method value rather than a whole interface.
package mockmethod

// Counter is a struct type whose methods are injected individually.
type Counter struct {
	val int
}

// Add adds a value to the counter and returns the new value.
func (c *Counter) Add(n int) int {
	c.val += n

	return c.val
}

// Inc increments the counter and returns the new value.
func (c *Counter) Inc() int {
	c.val++

	return c.val
}

// Slot returns a pointer to the counter's storage.
func (c *Counter) Slot() *int {
	return &c.val
}

// Value returns the current counter value.
func (c *Counter) Value() int {
	return c.val
}

// UseCounterAdd depends on a function matching Counter.Add's signature.
func UseCounterAdd(addFunc func(n int) int, values ...int) int {
	last := 0

	for _, v := range values {
		last = addFunc(v)
	}

	return last
}

// ResetThroughSlot zeroes a counter through a function matching
// Counter.Slot's signature and reports the value it held.
func ResetThroughSlot(slot func() *int) int {
	p := slot()
	old := *p
	*p = 0

	return old
}
