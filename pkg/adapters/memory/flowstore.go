package memory

import (
	"context"
	"sync"

	"github.com/rankery/rankery/pkg/domain"
)

// FlowStore implements ports.FlowStore in memory.
type FlowStore struct {
	mu   sync.RWMutex
	data map[string]*domain.FlowContext
}

// NewFlowStore creates an empty in-memory flow store.
func NewFlowStore() *FlowStore {
	return &FlowStore{data: make(map[string]*domain.FlowContext)}
}

// Save stores a copy of the flow context, replacing any existing one.
func (s *FlowStore) Save(ctx context.Context, userID string, fc *domain.FlowContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = fc.Clone()
	return nil
}

// Load returns a copy of the user's flow context, or domain.ErrNoActiveFlow.
func (s *FlowStore) Load(ctx context.Context, userID string) (*domain.FlowContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fc, ok := s.data[userID]
	if !ok {
		return nil, domain.ErrNoActiveFlow
	}
	return fc.Clone(), nil
}

// Clear discards the user's flow context.
func (s *FlowStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return nil
}
