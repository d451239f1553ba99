// internal/store/sequence.go
package store

import (
	"context"
	"fmt"
	"sync"
)

// Sequencer hands out monotonically increasing integer ids per kind. Ids
// are never reused, even after the record they were assigned to is deleted,
// and are not rolled back when a downstream insert fails. State lives in
// process memory only; against a fresh volatile store numbering restarts
// from the seed values.
type Sequencer struct {
	mu   sync.Mutex
	next map[Kind]int64
}

// NewSequencer creates a sequencer with every kind starting at 1.
func NewSequencer() *Sequencer {
	return &Sequencer{next: make(map[Kind]int64)}
}

// Next returns the next id for kind and advances the counter.
func (s *Sequencer) Next(kind Kind) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next[kind]
	if id == 0 {
		id = 1
	}
	s.next[kind] = id + 1
	return id
}

// Seed sets the next id to be handed out for kind.
func (s *Sequencer) Seed(kind Kind, next int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next[kind] = next
}

// Peek reports the id Next would return, without advancing.
func (s *Sequencer) Peek(kind Kind) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next[kind]
	if id == 0 {
		return 1
	}
	return id
}

// InitFromStore seeds every sequenced kind from the store's current maximum
// id, so ids assigned by earlier process lifetimes are never reissued.
func (s *Sequencer) InitFromStore(ctx context.Context, st Store) error {
	for _, kind := range SequencedKinds {
		max, err := st.MaxID(ctx, kind)
		if err != nil {
			return fmt.Errorf("seed sequencer for %s: %w", kind, err)
		}
		s.Seed(kind, max+1)
	}
	return nil
}
