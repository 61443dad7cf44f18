package core_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/impmock/internal/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rapid"
)

func TestExpectations_FirstMatchWins(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewExpectations[int, string](nil)
	s.Expect().With(1).ReturnConst("first")
	s.Expect().With(1).ReturnConst("second")

	g.Expect(s.Call(1)).To(Equal("first"))
	g.Expect(s.Call(1)).To(Equal("first"), "an unbounded expectation keeps winning")
}

func TestExpectations_ExhaustedExpectationIsSkipped(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewExpectations[int, string](nil)
	s.Expect().With(1).Once().ReturnConst("first")
	s.Expect().With(1).ReturnConst("second")

	g.Expect(s.Call(1)).To(Equal("first"))
	g.Expect(s.Call(1)).To(Equal("second"))
	g.Expect(s.Call(1)).To(Equal("second"))
}

func TestExpectations_SoleExpectationReportsOverLimit(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewExpectations[int, int](nil)
	s.Expect().Times(2)

	s.Call(0)
	s.Call(0)

	g.Expect(failure(func() { s.Call(0) })).To(MatchError(core.ErrCalledTooMany))
}

func TestExpectations_AllExhaustedIsNoMatch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewExpectations[int, int](nil)
	s.Expect().Once()
	s.Expect().Once()

	s.Call(0)
	s.Call(0)

	g.Expect(failure(func() { s.Call(0) })).To(MatchError(core.ErrNoMatch))
}

func TestExpectations_RoutesByArgumentToReturnFunctions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewExpectations[int, int](nil, core.WithName("foo"))
	s.Expect().With(5).Returning(func(x int) int { return x + 1 })
	s.Expect().With(6).Returning(func(x int) int { return x * 2 })

	g.Expect(s.Call(5)).To(Equal(6))
	g.Expect(s.Call(6)).To(Equal(12))
	g.Expect(s.Call(5)).To(Equal(6), "an unbounded expectation keeps matching")

	err := failure(func() { s.Call(7) })
	g.Expect(err).To(MatchError(core.ErrNoMatch))
	g.Expect(err.Error()).To(HavePrefix("no matching expectation found for foo(7)\n"))
}

func TestExpectations_TimesTwoThenOverflow(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewExpectations[core.Args0, int](nil, core.WithName("foo"))
	s.Expect().Times(2).Returning(func(core.Args0) int { return 1 })

	g.Expect(s.Call(core.Args0{})).To(Equal(1))
	g.Expect(s.Call(core.Args0{})).To(Equal(1))

	err := failure(func() { s.Call(core.Args0{}) })
	g.Expect(err).To(MatchError(core.ErrCalledTooMany))
	g.Expect(err.Error()).To(ContainSubstring("called more than 2 times"))
}

// TestExpectations_ArgumentRouting checks routing among With(5).Once(),
// With(6) and a call nobody expects.
func TestExpectations_ArgumentRouting(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewExpectations[int, int](nil, core.WithName("foo"))
	s.Expect().With(5).Once().ReturnConst(50)
	s.Expect().With(6).ReturnConst(60)

	g.Expect(s.Call(5)).To(Equal(50))
	g.Expect(s.Call(6)).To(Equal(60))

	err := failure(func() { s.Call(7) })
	g.Expect(err).To(MatchError(core.ErrNoMatch))
	g.Expect(err.Error()).To(HavePrefix("no matching expectation found for foo(7)\n"))
	g.Expect(err.Error()).To(ContainSubstring("foo expectation #1: expectation didn't match arguments (7)"))
	g.Expect(err.Error()).To(ContainSubstring("argument 1 (7): expected 6, got 7"))

	err = failure(func() { s.Call(5) })
	g.Expect(err).To(MatchError(core.ErrNoMatch), "foo(5) was used up and another expectation exists")
	g.Expect(err.Error()).To(ContainSubstring("foo expectation #1: already called exactly 1 times"))
}

func TestExpectations_UnnamedMissMentionsCall(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewExpectations[core.Args2[string, bool], int](nil)

	err := failure(func() { s.Call(core.Args2[string, bool]{A1: "k", A2: true}) })
	g.Expect(err).To(MatchError(`no matching expectation found for call("k", true)`))
}

func TestExpectations_ReporterFailureReturnsZero(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	quiet := &quietReporter{}
	s := core.NewExpectations[int, string](quiet)
	s.Expect().With(1).ReturnConst("one")

	g.Expect(s.Call(2)).To(BeEmpty())
	g.Expect(quiet.failures).To(Equal(1))
}

func TestExpectations_CheckpointReportsShortfallsAndClears(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewExpectations[int, int](nil, core.WithName("Save"))
	s.Expect().Times(2)
	s.Expect().Once()
	s.Expect().TimesAny()

	s.Call(0)

	err := failure(s.Checkpoint)
	g.Expect(err).To(MatchError(core.ErrCalledTooFew))
	g.Expect(err.Error()).To(ContainSubstring("Save expectation #1: called fewer times than expected: expectation called 1 times, expected exactly 2 times"))
	g.Expect(err.Error()).To(ContainSubstring("Save expectation #2"))
	g.Expect(err.Error()).NotTo(ContainSubstring("Save expectation #3"))
	g.Expect(s.Len()).To(BeZero())

	g.Expect(failure(func() { s.Call(0) })).To(MatchError(core.ErrNoMatch), "checkpoint removed every expectation")
}

func TestExpectations_CheckpointSatisfiedIsSilent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	s := core.NewExpectations[int, int](nil)
	s.Expect().Once()
	s.Call(1)

	g.Expect(failure(s.Checkpoint)).To(Succeed())

	s.Expect().ReturnConst(9)
	g.Expect(s.Call(1)).To(Equal(9), "expectations can be added after a checkpoint")
}

func TestExpectations_LogsDispatch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	obs, logs := observer.New(zapcore.DebugLevel)
	s := newLoggedSet(zap.New(obs))
	s.Expect().With(1)

	s.Call(1)
	_ = failure(func() { s.Call(2) })

	dispatched := logs.FilterMessage("dispatch").All()
	g.Expect(dispatched).To(HaveLen(1))
	g.Expect(dispatched[0].ContextMap()).To(HaveKeyWithValue("method", "Lookup"))
	g.Expect(dispatched[0].ContextMap()).To(HaveKeyWithValue("args", "(1)"))
	g.Expect(logs.FilterMessage("no match").Len()).To(Equal(1))
}

// TestExpectations_ConcurrentDispatchNeverOverAdmits verifies that
// concurrent callers never push an expectation past its upper bound.
func TestExpectations_ConcurrentDispatchNeverOverAdmits(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		limits := rapid.SliceOfN(rapid.IntRange(1, 20), 1, 4).Draw(rt, "limits")

		s := core.NewExpectations[int, int](nil)
		expectations := make([]*core.Expectation[int, int], len(limits))
		total := 0

		for i, limit := range limits {
			expectations[i] = s.Expect().Times(limit).ReturnConst(i)
			total += limit
		}

		var group errgroup.Group

		for range total {
			group.Go(func() error {
				return failure(func() { s.Call(0) })
			})
		}

		if err := group.Wait(); err != nil {
			rt.Fatalf("dispatch failed within capacity: %v", err)
		}

		for i, e := range expectations {
			if e.CallCount() != limits[i] {
				rt.Fatalf("expectation %d admitted %d calls, limit %d", i, e.CallCount(), limits[i])
			}
		}

		if failure(func() { s.Call(0) }) == nil {
			rt.Fatalf("call beyond total capacity %d was admitted", total)
		}
	})
}

// quietReporter counts failures and returns from Fatalf.
type quietReporter struct {
	failures int
}

func (q *quietReporter) Fatalf(string, ...any) { q.failures++ }

func (q *quietReporter) Helper() {}

func newLoggedSet(logger *zap.Logger) *core.Expectations[int, int] {
	return core.NewExpectations[int, int](nil, core.WithName("Lookup"), core.WithLogger(logger))
}
