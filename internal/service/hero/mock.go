package hero

import (
	"context"
	"sort"
	"sync"
)

// MockStore implements Service with in-memory storage for testing.
type MockStore struct {
	mu     sync.RWMutex
	heroes map[int64]Hero
	nextID int64
	// Err, when set, is returned by every call.
	Err error
}

// NewMockStore creates an empty in-memory hero store.
func NewMockStore() *MockStore {
	return &MockStore{heroes: make(map[int64]Hero), nextID: 1}
}

func (m *MockStore) Create(_ context.Context, params CreateParams) (*Hero, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	id := m.nextID
	if params.ID != nil && *params.ID != 0 {
		id = *params.ID
		if _, taken := m.heroes[id]; taken {
			return nil, ErrConflict
		}
	}
	if id >= m.nextID {
		m.nextID = id + 1
	}

	h := Hero{ID: id, Name: params.Name, SecretName: params.SecretName}
	m.heroes[id] = h
	return &h, nil
}

func (m *MockStore) Get(_ context.Context, id int64) (*Hero, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	h, ok := m.heroes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &h, nil
}

func (m *MockStore) List(_ context.Context, afterID int64, limit int) ([]Hero, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]Hero, 0, len(m.heroes))
	for id, h := range m.heroes {
		if id > afterID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ Service = (*MockStore)(nil)
