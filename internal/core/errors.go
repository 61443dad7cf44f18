package core

import "errors"

// Sentinel errors for every way a mock can be misused. Failures are always
// delivered wrapped, so callers compare with errors.Is.
var (
	// ErrNoMatch is reported when no expectation accepts a call.
	ErrNoMatch = errors.New("no matching expectation found")
	// ErrArgumentMismatch is reported when a selected expectation rejects its arguments.
	ErrArgumentMismatch = errors.New("expectation didn't match arguments")
	// ErrCalledTooMany is reported when an expectation is called past its upper bound.
	ErrCalledTooMany = errors.New("called more times than expected")
	// ErrCalledTooFew is reported at checkpoint for expectations below their lower bound.
	ErrCalledTooFew = errors.New("called fewer times than expected")
	// ErrOnceExpired is reported when a one-shot return value is requested again.
	ErrOnceExpired = errors.New("called a method twice that was expected only once")
	// ErrSequenceViolation is reported when a sequenced expectation is called out of order.
	ErrSequenceViolation = errors.New("method sequence violation")
	// ErrWrongGoroutine is reported when a goroutine-confined return function is
	// called from a goroutine other than the one that registered it.
	ErrWrongGoroutine = errors.New("goroutine-confined return function called from another goroutine")
	// ErrNoReturnValue is reported when a reference-returning expectation has nothing stored.
	ErrNoReturnValue = errors.New("no return value configured")
	// ErrTypeMismatch is reported when stored expectations have a different signature
	// than the one being requested.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNotExact is reported when a non-exact expectation is added to a sequence.
	ErrNotExact = errors.New("only expectations with an exact call count can be in a sequence")
	// ErrInvalidRange is reported for an empty call-count range.
	ErrInvalidRange = errors.New("invalid call-count range")
)

// errAccepts explains a candidate that was not rejected.
var errAccepts = errors.New("accepts these arguments") //nolint:gochecknoglobals // internal sentinel
