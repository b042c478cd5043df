package tasbih

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
)

var ErrNotFound = errors.New("tasbih counter not found")

// Store persists counters by user. Load returns ErrNotFound for new users.
type Store interface {
	Load(ctx context.Context, userID string) (Counter, error)
	Save(ctx context.Context, userID string, counter Counter) error
}

type MemoryStore struct {
	mu       sync.RWMutex
	counters map[string]Counter
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counters: make(map[string]Counter)}
}

func (m *MemoryStore) Load(_ context.Context, userID string) (Counter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.counters[userID]
	if !ok {
		return Counter{}, ErrNotFound
	}
	return c, nil
}

func (m *MemoryStore) Save(_ context.Context, userID string, counter Counter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[userID] = counter
	return nil
}

const lockStripes = 64

// Service applies counter operations to stored state. Updates for one user
// are serialized in this process. Users share a fixed set of lock stripes, so
// memory does not grow with the number of user ids seen.
type Service struct {
	store Store
	locks [lockStripes]sync.Mutex
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, userID string) (Counter, error) {
	c, err := s.store.Load(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return NewCounter(), nil
	}
	return c, err
}

func (s *Service) Increment(ctx context.Context, userID string) (Counter, error) {
	return s.update(ctx, userID, func(c *Counter) error {
		c.Increment()
		return nil
	})
}

func (s *Service) Reset(ctx context.Context, userID string) (Counter, error) {
	return s.update(ctx, userID, func(c *Counter) error {
		c.Reset()
		return nil
	})
}

func (s *Service) SetTarget(ctx context.Context, userID string, target int) (Counter, error) {
	return s.update(ctx, userID, func(c *Counter) error {
		return c.SetTarget(target)
	})
}

func (s *Service) update(ctx context.Context, userID string, apply func(*Counter) error) (Counter, error) {
	if userID == "" {
		return Counter{}, errors.New("user id is required")
	}
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	c, err := s.Get(ctx, userID)
	if err != nil {
		return Counter{}, fmt.Errorf("load tasbih: %w", err)
	}
	if err := apply(&c); err != nil {
		return Counter{}, err
	}
	if err := s.store.Save(ctx, userID, c); err != nil {
		return Counter{}, fmt.Errorf("save tasbih: %w", err)
	}
	return c, nil
}

func (s *Service) lockFor(userID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return &s.locks[h.Sum32()%lockStripes]
}
