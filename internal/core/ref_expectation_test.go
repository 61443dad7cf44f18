package core_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/impmock/internal/core"
)

func TestRefExpectation_ReturnConstIsStable(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewRefExpectations[string, point](nil)
	s.Expect().With("origin").ReturnConst(point{X: 1, Y: 2})

	first := s.Call("origin")
	second := s.Call("origin")

	g.Expect(*first).To(Equal(point{X: 1, Y: 2}))
	g.Expect(second).To(BeIdenticalTo(first), "the mock owns one stored value")
}

func TestRefExpectation_MissingValue(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewRefExpectations[int, point](nil)
	s.Expect()

	g.Expect(failure(func() { s.Call(1) })).To(MatchError(core.ErrNoReturnValue))
}

func TestRefExpectation_Standalone(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewRefExpectations[int, int](nil)
	e := s.Expect().Once().ReturnConst(3)

	g.Expect(*e.Call(0)).To(Equal(3))
	g.Expect(failure(func() { s.Call(0) })).To(MatchError(core.ErrCalledTooMany))
}

func TestRefMutExpectation_ReturnVarIsMutable(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewRefMutExpectations[core.Args0, []string](nil)
	s.Expect().ReturnVar([]string{"a"})

	buf := s.CallMut(core.Args0{})
	*buf = append(*buf, "b")

	g.Expect(*s.CallMut(core.Args0{})).To(Equal([]string{"a", "b"}))
}

func TestRefMutExpectation_ReturningStoresInPlace(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewRefMutExpectations[int, int](nil)
	s.Expect().Returning(func(n int) int { return n * 10 })

	first := s.CallMut(1)
	g.Expect(*first).To(Equal(10))

	second := s.CallMut(2)
	g.Expect(second).To(BeIdenticalTo(first))
	g.Expect(*first).To(Equal(20), "each call overwrites the stored value")
}

func TestRefMutExpectation_MissingValue(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewRefMutExpectations[int, int](nil)
	s.Expect().Times(1)

	err := failure(func() { s.CallMut(1) })
	g.Expect(err).To(MatchError(core.ErrNoReturnValue))
	g.Expect(err.Error()).To(ContainSubstring("Returning or ReturnVar"))
}

func TestRefMutExpectation_ReturningSTRejectsOtherGoroutines(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewRefMutExpectations[int, int](nil)
	s.Expect().ReturningST(func(n int) int { return n })

	done := make(chan error)

	go func() {
		done <- failure(func() { s.CallMut(1) })
	}()

	g.Expect(<-done).To(MatchError(core.ErrWrongGoroutine))
	g.Expect(*s.CallMut(5)).To(Equal(5))
}

func TestRefMutExpectation_Checkpoint(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewRefMutExpectations[int, int](nil)
	s.Expect().With(1).Once().ReturnVar(1)
	s.Expect().With(2).Never()

	g.Expect(failure(s.Checkpoint)).To(MatchError(core.ErrCalledTooFew))
	g.Expect(s.Len()).To(BeZero())
}
