package schedule

import "sync"

// Sequencer hands out increasing request ids per key so that a response can be
// dropped when a newer request for the same key has been issued since.
type Sequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[string]uint64)}
}

// Issue returns a new id for key, superseding all earlier ones.
func (s *Sequencer) Issue(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[key]++
	return s.latest[key]
}

// Accept reports whether id is still the latest issued for key.
func (s *Sequencer) Accept(key string, id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[key] == id
}
