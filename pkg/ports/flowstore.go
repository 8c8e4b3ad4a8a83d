package ports

import (
	"context"

	"github.com/rankery/rankery/pkg/domain"
)

// FlowStore persists the per-user flow context between intents. A user has
// at most one active flow; saving replaces any previous context.
type FlowStore interface {
	// Save stores the flow context for a user, replacing any existing one.
	Save(ctx context.Context, userID string, fc *domain.FlowContext) error

	// Load retrieves the active flow context for a user.
	// Returns domain.ErrNoActiveFlow if none is stored.
	Load(ctx context.Context, userID string) (*domain.FlowContext, error)

	// Clear discards the user's flow context. Clearing an absent context
	// is not an error.
	Clear(ctx context.Context, userID string) error
}
