package session

import (
	"context"
	"sync"

	"github.com/talentforge/skillboard/internal/domain/model"
)

// Record is the persisted shape of one session: principal and token are
// stored together and cleared together.
type Record struct {
	Token     string     `json:"token"`
	Principal model.User `json:"principal"`
}

// Store abstracts session-scoped persistence. The real storage medium is an
// external collaborator; in-process callers get the memory implementation.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Delete(ctx context.Context, token string) error
	List(ctx context.Context) ([]Record, error)
}

// MemoryStore keeps session records in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Save stores or overwrites a record under its token.
func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Token] = rec
	return nil
}

// Delete removes the record for token, if any.
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, token)
	return nil
}

// List returns all persisted records.
func (s *MemoryStore) List(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out, nil
}
