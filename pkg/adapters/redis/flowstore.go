// Package redis provides a Redis-backed flow-context store and a
// distributed locker, for deployments that run more than one replica of
// the bot behind the same transport. Catalog data stays in memory either
// way; only the transient conversation state is shared.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/rankery/rankery/pkg/domain"
)

const defaultPrefix = "rankery:flow:"

// FlowStore implements ports.FlowStore on Redis. Contexts are stored as
// JSON under one key per user.
type FlowStore struct {
	client *backend.Client
	prefix string
	ttl    time.Duration // 0 means no expiry
}

// FlowStoreOption configures the FlowStore.
type FlowStoreOption func(*FlowStore)

// WithPrefix overrides the key prefix.
func WithPrefix(prefix string) FlowStoreOption {
	return func(s *FlowStore) {
		s.prefix = prefix
	}
}

// WithTTL sets an expiry on stored contexts. Zero disables expiry, which
// matches the engine contract: abandoned flows have no defined timeout.
func WithTTL(ttl time.Duration) FlowStoreOption {
	return func(s *FlowStore) {
		s.ttl = ttl
	}
}

// NewFlowStore creates a FlowStore from an existing Redis client.
func NewFlowStore(client *backend.Client, opts ...FlowStoreOption) *FlowStore {
	s := &FlowStore{client: client, prefix: defaultPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlowStore) key(userID string) string {
	return s.prefix + userID
}

// Save stores the flow context as JSON, replacing any existing one.
func (s *FlowStore) Save(ctx context.Context, userID string, fc *domain.FlowContext) error {
	raw, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to marshal flow context: %w", err)
	}
	if err := s.client.Set(ctx, s.key(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save flow context: %w", err)
	}
	return nil
}

// Load retrieves the flow context, mapping a missing key to
// domain.ErrNoActiveFlow.
func (s *FlowStore) Load(ctx context.Context, userID string) (*domain.FlowContext, error) {
	raw, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrNoActiveFlow
		}
		return nil, fmt.Errorf("failed to load flow context: %w", err)
	}
	var fc domain.FlowContext
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flow context: %w", err)
	}
	return &fc, nil
}

// Clear removes the flow context. Deleting a missing key is not an error.
func (s *FlowStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear flow context: %w", err)
	}
	return nil
}
