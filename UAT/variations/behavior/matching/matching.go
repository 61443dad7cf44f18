// Package matching demonstrates mocking interfaces with complex struct parameters
// and using matchers for partial field validation.
package matching

import "time"

// ComplexService is an interface taking a complex struct.
type ComplexService interface {
	Process(d Data) bool
}

// Data is a complex struct where we might only care about matching some fields.
type Data struct {
	ID        int
	Payload   string
	Timestamp int64
}

// UseService is a function that uses the ComplexService.
func UseService(svc ComplexService, payload string) bool {
	const id = 123

	return svc.Process(Data{
		ID:        id,
		Payload:   payload,
		Timestamp: time.Now().UnixNano(),
	})
}
