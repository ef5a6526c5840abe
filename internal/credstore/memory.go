package credstore

import "github.com/oladimeji-kazeem/budgetpro/internal/domain"

// MemoryStore is a non-durable Store used in tests.
type MemoryStore struct {
	pair *domain.TokenPair
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save keeps the pair in memory.
func (s *MemoryStore) Save(pair domain.TokenPair) error {
	copied := pair
	s.pair = &copied
	return nil
}

// Load returns the held pair, if any.
func (s *MemoryStore) Load() (domain.TokenPair, bool) {
	if s.pair == nil {
		return domain.TokenPair{}, false
	}
	return *s.pair, true
}

// Clear drops the held pair.
func (s *MemoryStore) Clear() error {
	s.pair = nil
	return nil
}
