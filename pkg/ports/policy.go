package ports

import (
	"context"

	"github.com/rankery/rankery/pkg/domain"
)

// AdminChecker is the capability predicate supplied by the transport
// collaborator. Implementations may perform I/O (e.g. a group-membership
// lookup) and may fail; the policy treats a failure as "not admin".
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string, chat domain.Chat) (bool, error)
}

// AdminCheckerFunc adapts a plain function to the AdminChecker interface.
type AdminCheckerFunc func(ctx context.Context, userID string, chat domain.Chat) (bool, error)

// IsAdmin calls the wrapped function.
func (f AdminCheckerFunc) IsAdmin(ctx context.Context, userID string, chat domain.Chat) (bool, error) {
	return f(ctx, userID, chat)
}

// AccessPolicy gates flow-entry intents before they reach the engine.
// Authorize returns false when the intent must be answered with a denial
// reply instead of being dispatched.
type AccessPolicy interface {
	Authorize(ctx context.Context, in domain.Intent) bool
}
