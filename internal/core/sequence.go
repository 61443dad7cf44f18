package core

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Sequence orders expectations, possibly across methods and mocks. Each
// expectation added to a Sequence must be satisfied before any expectation
// added after it may be called.
type Sequence struct {
	id uuid.UUID

	mu        sync.Mutex
	satisfied []bool
}

// NewSequence creates an empty Sequence.
func NewSequence() *Sequence {
	return &Sequence{id: uuid.New()}
}

// ID identifies the sequence in diagnostics.
func (s *Sequence) ID() string {
	return s.id.String()
}

// Next issues a handle positioned after every handle issued so far.
func (s *Sequence) Next() *SeqHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.satisfied = append(s.satisfied, false)

	return &SeqHandle{seq: s, index: len(s.satisfied) - 1}
}

// SeqHandle is one expectation's position within a Sequence.
type SeqHandle struct {
	seq   *Sequence
	index int
}

// Index returns the handle's position, starting from zero.
func (h *SeqHandle) Index() int {
	return h.index
}

// Satisfied reports whether this handle's expectation has been minimally called.
func (h *SeqHandle) Satisfied() bool {
	h.seq.mu.Lock()
	defer h.seq.mu.Unlock()

	return h.seq.satisfied[h.index]
}

// satisfy marks the handle's expectation as minimally called.
func (h *SeqHandle) satisfy() {
	h.seq.mu.Lock()
	defer h.seq.mu.Unlock()

	h.seq.satisfied[h.index] = true
}

// verify fails if any earlier handle in the sequence is not yet satisfied.
func (h *SeqHandle) verify() error {
	h.seq.mu.Lock()
	defer h.seq.mu.Unlock()

	for i := range h.index {
		if !h.seq.satisfied[i] {
			return fmt.Errorf(
				"%w: call #%d of sequence %s happened before call #%d was satisfied",
				ErrSequenceViolation, h.index+1, h.seq.id, i+1,
			)
		}
	}

	return nil
}
