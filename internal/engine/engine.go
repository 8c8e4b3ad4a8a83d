/*
Package engine implements the conversation state machine that drives the
multi-step flows (create-list, add-item, rate-item, and the rest).

Each user has at most one active flow, tracked as a domain.FlowContext in
a ports.FlowStore. An inbound intent is routed to the context's current
step, producing a transition: a new (or cleared) context, an outbound
reply, and possibly a catalog mutation. The engine owns the full
transition table; the transport only ferries intents and replies.
*/
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rankery/rankery/internal/i18n"
	"github.com/rankery/rankery/internal/logging"
	"github.com/rankery/rankery/pkg/domain"
	"github.com/rankery/rankery/pkg/observability"
	"github.com/rankery/rankery/pkg/ports"
)

// DefaultReplyLimit is the transport message-size threshold in runes.
// Replies longer than this are truncated with a marker appended.
const DefaultReplyLimit = 4000

// AdminFunc resolves the admin capability for a user in a chat. It is
// used only to decide whether help output includes the admin section;
// actual gating happens in the access policy before the engine runs.
type AdminFunc func(ctx context.Context, userID string, chat domain.Chat) bool

// Engine is the conversation state machine.
type Engine struct {
	store      ports.CatalogStore
	flows      ports.FlowStore
	cat        *i18n.Catalog
	logger     *slog.Logger
	metrics    *observability.Metrics
	admin      AdminFunc
	replyLimit int
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithReplyLimit overrides the truncation threshold (in runes).
func WithReplyLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.replyLimit = limit
		}
	}
}

// WithAdminFunc supplies the capability resolver used for help output.
func WithAdminFunc(fn AdminFunc) Option {
	return func(e *Engine) {
		e.admin = fn
	}
}

// New creates an Engine over the given stores and message catalog.
func New(store ports.CatalogStore, flows ports.FlowStore, cat *i18n.Catalog, opts ...Option) *Engine {
	e := &Engine{
		store:      store,
		flows:      flows,
		cat:        cat,
		logger:     logging.NewNop(),
		replyLimit: DefaultReplyLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.admin == nil {
		e.admin = func(ctx context.Context, userID string, chat domain.Chat) bool {
			return chat.Kind == domain.ChatPrivate
		}
	}
	return e
}

// Handle feeds one intent through the state machine and returns the reply.
// User mistakes (duplicates, stale buttons, unexpected input) are answered
// with guidance replies; the returned error is reserved for flow-store
// failures.
func (e *Engine) Handle(ctx context.Context, in domain.Intent) (domain.Reply, error) {
	e.metrics.IntentSeen(string(in.Kind))

	switch in.Kind {
	case domain.IntentCommand:
		return e.handleCommand(ctx, in)
	case domain.IntentText:
		return e.handleText(ctx, in)
	case domain.IntentChoice:
		return e.handleChoice(ctx, in)
	default:
		return e.text(i18n.MsgUnknownCommand), nil
	}
}

func (e *Engine) handleCommand(ctx context.Context, in domain.Intent) (domain.Reply, error) {
	cmd := strings.ToLower(strings.TrimPrefix(in.Command, "/"))
	e.logger.Debug("command received", "user", in.UserID, "command", cmd)

	switch cmd {
	case domain.CmdStart:
		return e.helpReply(ctx, in, i18n.MsgWelcome), nil
	case domain.CmdHelp:
		return e.helpReply(ctx, in, i18n.MsgHelp), nil
	case domain.CmdLists:
		return e.listsReply(ctx, in.UserID), nil
	case domain.CmdCancel:
		return e.cancel(ctx, in.UserID)
	case domain.CmdSkip:
		return e.skip(ctx, in)
	case domain.CmdNewList, domain.CmdAddItem, domain.CmdViewList, domain.CmdRate,
		domain.CmdRatings, domain.CmdDeleteList, domain.CmdDeleteItem,
		domain.CmdDeleteRating, domain.CmdClearRatings:
		return e.startFlow(ctx, in.UserID, domain.FlowKind(cmd))
	default:
		return e.text(i18n.MsgUnknownCommand), nil
	}
}

// helpReply renders the welcome/help text, appending the admin section
// when the user holds the admin capability.
func (e *Engine) helpReply(ctx context.Context, in domain.Intent, key i18n.Key) domain.Reply {
	body := e.cat.Get(key)
	if e.admin(ctx, in.UserID, in.Chat) {
		body += e.cat.Get(i18n.MsgAdminSection)
	}
	return domain.Reply{Text: body}
}

// listsReply renders the immediate /lists listing.
func (e *Engine) listsReply(ctx context.Context, userID string) domain.Reply {
	lists := e.store.Lists(ctx, userID)
	if len(lists) == 0 {
		return e.text(i18n.MsgNoListsYet)
	}
	var b strings.Builder
	b.WriteString(e.cat.Get(i18n.MsgListsHeader))
	for i, name := range lists {
		b.WriteString("\n")
		b.WriteString(e.cat.Format(i18n.MsgListLine, i+1, name))
	}
	return domain.Reply{Text: b.String()}
}

// cancel discards any active flow context.
func (e *Engine) cancel(ctx context.Context, userID string) (domain.Reply, error) {
	fc, err := e.flows.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveFlow) {
			return e.text(i18n.MsgNothingToCancel), nil
		}
		return domain.Reply{}, fmt.Errorf("failed to load flow context: %w", err)
	}
	if err := e.flows.Clear(ctx, userID); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to clear flow context: %w", err)
	}
	e.metrics.FlowEnded(string(fc.Kind), observability.OutcomeCancelled)
	e.logger.Debug("flow cancelled", "user", userID, "flow", fc.Kind)
	return e.text(i18n.MsgCancelled), nil
}

// endFlow clears the context and records the outcome.
func (e *Engine) endFlow(ctx context.Context, userID string, fc *domain.FlowContext, outcome string) error {
	if err := e.flows.Clear(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear flow context: %w", err)
	}
	e.metrics.FlowEnded(string(fc.Kind), outcome)
	return nil
}

// abort forcibly terminates the active flow after a protocol error.
func (e *Engine) abort(ctx context.Context, userID string, fc *domain.FlowContext) (domain.Reply, error) {
	e.logger.Warn("protocol error, terminating flow", "user", userID, "flow", fc.Kind, "step", fc.Step)
	if err := e.endFlow(ctx, userID, fc, observability.OutcomeError); err != nil {
		return domain.Reply{}, err
	}
	return e.text(i18n.MsgUnexpectedInput), nil
}

// stale answers a choice that references a flow no longer in progress,
// pointing the user back at the entry command.
func (e *Engine) stale(kind domain.FlowKind) domain.Reply {
	return domain.Reply{Text: e.cat.Format(i18n.MsgStaleContext, string(kind))}
}

func (e *Engine) text(key i18n.Key, args ...any) domain.Reply {
	return domain.Reply{Text: e.cat.Format(key, args...)}
}
