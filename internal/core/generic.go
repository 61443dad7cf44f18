package core

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// TypeKey identifies one instantiation of a generic method: its argument
// tuple type, its return type and the kind of set that serves it.
type TypeKey struct {
	Args   reflect.Type
	Return reflect.Type
	Kind   SetKind
}

// String renders the key for diagnostics.
func (k TypeKey) String() string {
	return fmt.Sprintf("%s%s -> %s", k.Kind.prefix(), k.Args, k.Return)
}

// KeyOf returns the key of the instantiation with arguments A and return R.
func KeyOf[A, R any](kind SetKind) TypeKey {
	return TypeKey{Args: reflect.TypeFor[A](), Return: reflect.TypeFor[R](), Kind: kind}
}

// SetKind distinguishes value, reference and mutable-reference sets that
// share argument and return types.
type SetKind int

// Set kinds.
const (
	ValueSet SetKind = iota
	RefSet
	RefMutSet
)

func (k SetKind) prefix() string {
	switch k {
	case RefSet:
		return "ref "
	case RefMutSet:
		return "ref mut "
	case ValueSet:
	}

	return ""
}

// GenericExpectations stores an independent set of expectations for every
// instantiation of a generic method, keyed by TypeKey. A single mutex
// guards the whole map.
type GenericExpectations struct {
	t   TestReporter
	cfg Config

	mu    sync.Mutex
	store map[TypeKey]checkpointer
}

// NewGenericExpectations creates an empty store reporting failures to t.
func NewGenericExpectations(t TestReporter, opts ...Option) *GenericExpectations {
	return &GenericExpectations{t: t, cfg: newConfig(opts), store: map[TypeKey]checkpointer{}}
}

// CallGeneric simulates calling the instantiation of a generic method with
// arguments A and return R.
func CallGeneric[A, R any](g *GenericExpectations, args A) R {
	helper(g.t)

	s, err := lookupSet[*Expectations[A, R]](g, KeyOf[A, R](ValueSet))
	if err != nil {
		fail(g.t, err)

		var zero R

		return zero
	}

	return s.Call(args)
}

// CallGenericRef is CallGeneric for reference-returning instantiations.
func CallGenericRef[A, R any](g *GenericExpectations, args A) *R {
	helper(g.t)

	s, err := lookupSet[*RefExpectations[A, R]](g, KeyOf[A, R](RefSet))
	if err != nil {
		fail(g.t, err)

		return nil
	}

	return s.Call(args)
}

// CallGenericRefMut is CallGeneric for mutable-reference-returning
// instantiations.
func CallGenericRefMut[A, R any](g *GenericExpectations, args A) *R {
	helper(g.t)

	s, err := lookupSet[*RefMutExpectations[A, R]](g, KeyOf[A, R](RefMutSet))
	if err != nil {
		fail(g.t, err)

		return nil
	}

	return s.CallMut(args)
}

// ExpectGeneric registers an expectation for the instantiation with
// arguments A and return R, creating its set on first use.
func ExpectGeneric[A, R any](g *GenericExpectations) *Expectation[A, R] {
	g.mu.Lock()
	defer g.mu.Unlock()

	return valueSetLocked[A, R](g).Expect()
}

// ExpectGenericRef is ExpectGeneric for reference-returning instantiations.
func ExpectGenericRef[A, R any](g *GenericExpectations) *RefExpectation[A, R] {
	g.mu.Lock()
	defer g.mu.Unlock()

	return setLocked(g, KeyOf[A, R](RefSet), func(cfg Config) *RefExpectations[A, R] {
		return NewRefExpectations[A, R](g.t, WithName(cfg.Name), WithLogger(cfg.Logger))
	}).Expect()
}

// ExpectGenericRefMut is ExpectGeneric for mutable-reference-returning
// instantiations.
func ExpectGenericRefMut[A, R any](g *GenericExpectations) *RefMutExpectation[A, R] {
	g.mu.Lock()
	defer g.mu.Unlock()

	return setLocked(g, KeyOf[A, R](RefMutSet), func(cfg Config) *RefMutExpectations[A, R] {
		return NewRefMutExpectations[A, R](g.t, WithName(cfg.Name), WithLogger(cfg.Logger))
	}).Expect()
}

// Checkpoint verifies and clears the expectations of every instantiation.
func (g *GenericExpectations) Checkpoint() {
	helper(g.t)

	if err := g.checkpoint(); err != nil {
		fail(g.t, err)
	}
}

// Len returns the number of instantiations with a set.
func (g *GenericExpectations) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.store)
}

func (g *GenericExpectations) checkpoint() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	errs := make([]error, 0, len(g.store))
	for _, s := range g.store {
		errs = append(errs, s.checkpoint())
	}

	g.cfg.Logger.Debug("checkpoint", zap.String("method", g.cfg.Name), zap.Int("instantiations", len(g.store)))
	clear(g.store)

	return errors.Join(errs...)
}

// checkpointer is any set that can be verified and cleared.
type checkpointer interface {
	checkpoint() error
}

// lookupSet finds the set for key without creating it.
func lookupSet[S checkpointer](g *GenericExpectations, key TypeKey) (S, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var zero S

	found, ok := g.store[key]
	if !ok {
		name := g.cfg.Name
		if name == "" {
			name = "generic method"
		}

		return zero, fmt.Errorf("%w: no expectations registered for %s with %s", ErrNoMatch, name, key)
	}

	return found.(S), nil //nolint:forcetypeassert // key.Kind fixes the set type
}

// setLocked returns the set for key, creating it with create if absent.
// g.mu must be held. The key's kind together with its argument and return
// types determine S, so a stored set always has type S.
func setLocked[S checkpointer](g *GenericExpectations, key TypeKey, create func(Config) S) S {
	if found, ok := g.store[key]; ok {
		return found.(S) //nolint:forcetypeassert // key.Kind fixes the set type
	}

	g.cfg.Logger.Debug("new instantiation", zap.String("method", g.cfg.Name), zap.Stringer("key", key))

	s := create(g.cfg.child("[" + key.Args.String() + "]"))
	g.store[key] = s

	return s
}

// valueSetLocked returns the value set for A and R. g.mu must be held.
func valueSetLocked[A, R any](g *GenericExpectations) *Expectations[A, R] {
	return setLocked(g, KeyOf[A, R](ValueSet), func(cfg Config) *Expectations[A, R] {
		return NewExpectations[A, R](g.t, WithName(cfg.Name), WithLogger(cfg.Logger))
	})
}
