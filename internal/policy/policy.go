// Package policy gates flow-entry intents behind the admin capability.
// It sits between the transport and the engine: a denied intent is
// answered with a fixed denial reply and never reaches the engine.
package policy

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rankery/rankery/internal/logging"
	"github.com/rankery/rankery/pkg/domain"
	"github.com/rankery/rankery/pkg/ports"
)

// adminOnly is the fixed set of entry commands restricted to admins.
var adminOnly = map[string]bool{
	domain.CmdNewList:      true,
	domain.CmdDeleteList:   true,
	domain.CmdDeleteItem:   true,
	domain.CmdDeleteRating: true,
	domain.CmdClearRatings: true,
}

// AdminOnly reports whether a command name is restricted to admins. The
// name is normalized first, so casing and a leading slash cannot slip a
// restricted command past the gate.
func AdminOnly(command string) bool {
	return adminOnly[normalize(command)]
}

func normalize(command string) string {
	return strings.ToLower(strings.TrimPrefix(command, "/"))
}

// Policy implements ports.AccessPolicy. Capability-check failures degrade
// to "not admin" (fail-closed) rather than propagate.
type Policy struct {
	checker ports.AdminChecker
	logger  *slog.Logger
}

// Option configures the Policy.
type Option func(*Policy)

// WithLogger sets the logger for capability-check failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Policy) {
		p.logger = logger
	}
}

// New creates a Policy around a capability predicate. A nil checker means
// the private-chat-only rule: admin in private chats, never in groups.
func New(checker ports.AdminChecker, opts ...Option) *Policy {
	if checker == nil {
		checker = PrivateChatOnly()
	}
	p := &Policy{checker: checker, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Authorize allows every intent except an admin-only entry command issued
// by a non-admin.
func (p *Policy) Authorize(ctx context.Context, in domain.Intent) bool {
	if in.Kind != domain.IntentCommand || !AdminOnly(in.Command) {
		return true
	}
	return p.IsAdmin(ctx, in.UserID, in.Chat)
}

// IsAdmin resolves the capability, failing closed on checker errors.
// Private chats are always admin; the checker is only consulted for the
// rest.
func (p *Policy) IsAdmin(ctx context.Context, userID string, chat domain.Chat) bool {
	if chat.Kind == domain.ChatPrivate {
		return true
	}
	ok, err := p.checker.IsAdmin(ctx, userID, chat)
	if err != nil {
		p.logger.Error("admin check failed, denying", "user", userID, "chat", chat.ID, "err", err)
		return false
	}
	return ok
}

// PrivateChatOnly returns a checker that grants admin only in private
// chats. It is the default when the transport supplies no group-membership
// lookup.
func PrivateChatOnly() ports.AdminChecker {
	return ports.AdminCheckerFunc(func(ctx context.Context, userID string, chat domain.Chat) (bool, error) {
		return chat.Kind == domain.ChatPrivate, nil
	})
}
