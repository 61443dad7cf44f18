package core

import "fmt"

// Defaulter lets a return type choose the value a mock returns when no
// return function was configured. Types that do not implement it get their
// zero value.
type Defaulter[R any] interface {
	MockDefault() R
}

// returner produces an expectation's return value.
// The zero value returns R's default.
type returner[A, R any] struct {
	kind  returnKind
	fn    func(A) R
	owner uint64 // registering goroutine for confined functions, 0 if shareable
}

func repeat[A, R any](fn func(A) R) returner[A, R] {
	return returner[A, R]{kind: returnRepeat, fn: fn}
}

func once[A, R any](fn func(A) R) returner[A, R] {
	return returner[A, R]{kind: returnOnce, fn: fn}
}

// confined pins r to the calling goroutine.
func (r returner[A, R]) confined() returner[A, R] {
	r.owner = goroutineID()

	return r
}

func (r *returner[A, R]) call(args A) (R, error) {
	var zero R

	if r.owner != 0 {
		if id := goroutineID(); id != r.owner {
			return zero, fmt.Errorf("%w: registered on goroutine %d, called on goroutine %d",
				ErrWrongGoroutine, r.owner, id)
		}
	}

	switch r.kind {
	case returnExpired:
		return zero, ErrOnceExpired
	case returnRepeat:
		return r.fn(args), nil
	case returnOnce:
		fn := r.fn
		r.kind, r.fn = returnExpired, nil

		return fn(args), nil
	case returnDefault:
	}

	return defaultValue[R](), nil
}

type returnKind int

// unexported constants.
const (
	returnDefault returnKind = iota
	returnExpired
	returnRepeat
	returnOnce
)

// defaultValue returns R's Defaulter value if it has one, else its zero value.
func defaultValue[R any]() R {
	var zero R

	if d, ok := any(zero).(Defaulter[R]); ok {
		return d.MockDefault()
	}

	if d, ok := any(&zero).(Defaulter[R]); ok {
		return d.MockDefault()
	}

	return zero
}
