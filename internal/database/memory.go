package database

import (
	"context"
	"sync"
	"time"

	"realestate-listings/internal/models"

	"github.com/google/uuid"
)

var _ PropertyStore = (*MemoryStore)(nil)

// MemoryStore keeps listings in process memory for the life of the process.
// A single RWMutex serialises mutations; reads copy under the read lock.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.Property
	byID    map[string]int

	now   func() time.Time
	newID func() string
}

// MemoryOption customises a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now as the source of default listing dates.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(newID func() string) MemoryOption {
	return func(s *MemoryStore) { s.newID = newID }
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		byID:  make(map[string]int),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns copies in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Property, len(s.records))
	for i := range s.records {
		out[i] = s.records[i].Clone()
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	p := s.records[idx].Clone()
	return &p, nil
}

func (s *MemoryStore) Insert(_ context.Context, in models.PropertyInput) (models.Property, error) {
	if err := in.Validate(); err != nil {
		return models.Property{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for {
		if _, taken := s.byID[id]; !taken {
			break
		}
		id = s.newID()
	}

	p := in.ToProperty(id, s.now())
	s.byID[id] = len(s.records)
	s.records = append(s.records, p)
	return p.Clone(), nil
}

func (s *MemoryStore) IncrementViews(_ context.Context, id string) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	s.records[idx].Views++
	p := s.records[idx].Clone()
	return &p, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
